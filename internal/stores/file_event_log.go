package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"engagement-analytics/internal/models"
	"engagement-analytics/internal/shared/filestorages"
)

const driverFile = "file"

// fileEventLog stores one JSON document per record in a blob store, keyed by
// course so course-scoped queries only scan one prefix. Queries are a
// scan-with-filter over the listed keys, the same access pattern the
// aggregators were designed against.
type fileEventLog struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewFileEventLog(fileStorage filestorages.FileStorage) EventLog {
	return &fileEventLog{fileStorage: fileStorage, dir: "events"}
}

func (s *fileEventLog) Append(ctx context.Context, record *models.TimeTrackingRecord) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		observeAppend(driverFile, err)
		return fmt.Errorf("failed to marshal time tracking record: %w", err)
	}

	// Record ids are freshly generated ULIDs, so create-if-not-exists never
	// conflicts; a collision would mean an id generation bug.
	key := fmt.Sprintf("%s/%s/%s.json", s.dir, record.CourseID, record.ID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	observeAppend(driverFile, err)
	if err != nil {
		return fmt.Errorf("failed to put time tracking record: %w", err)
	}
	return nil
}

func (s *fileEventLog) Query(ctx context.Context, query RecordQuery) ([]*models.TimeTrackingRecord, error) {
	start := time.Now()
	defer func() {
		metricEventLogQueryDuration.WithLabelValues(driverFile).Observe(time.Since(start).Seconds())
	}()

	prefix := s.dir
	if query.CourseID != "" {
		prefix = fmt.Sprintf("%s/%s", s.dir, query.CourseID)
	}

	keys, err := s.fileStorage.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list time tracking records: %w", err)
	}

	// ULID keys list in creation order within a course prefix.
	matched := []*models.TimeTrackingRecord{}
	for _, key := range keys {
		record, err := s.readRecord(ctx, key)
		if err != nil {
			return nil, err
		}
		if !query.Matches(record) {
			continue
		}
		matched = append(matched, record)
		if query.Limit > 0 && len(matched) >= query.Limit {
			break
		}
	}
	return matched, nil
}

func (s *fileEventLog) readRecord(ctx context.Context, key string) (*models.TimeTrackingRecord, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get time tracking record %q: %w", key, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read time tracking record %q: %w", key, err)
	}
	var record models.TimeTrackingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal time tracking record %q: %w", key, err)
	}
	return &record, nil
}
