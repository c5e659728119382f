package stores

import (
	"context"
	"sync"

	"engagement-analytics/internal/models"
)

// memoryEventLog keeps records in process memory. It backs the "memory"
// storage driver and serves as the fake log in service tests.
type memoryEventLog struct {
	mu      sync.RWMutex
	records []*models.TimeTrackingRecord
}

func NewMemoryEventLog() EventLog {
	return &memoryEventLog{}
}

func (s *memoryEventLog) Append(ctx context.Context, record *models.TimeTrackingRecord) error {
	stored := *record

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, &stored)
	return nil
}

func (s *memoryEventLog) Query(ctx context.Context, query RecordQuery) ([]*models.TimeTrackingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []*models.TimeTrackingRecord{}
	for _, record := range s.records {
		if !query.Matches(record) {
			continue
		}
		copied := *record
		matched = append(matched, &copied)
		if query.Limit > 0 && len(matched) >= query.Limit {
			break
		}
	}
	return matched, nil
}
