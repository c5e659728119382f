package stores

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"engagement-analytics/internal/models"

	_ "modernc.org/sqlite" // SQLite driver.
)

const driverSQLite = "sqlite"

// sqliteEventLog is the default durable event log, one row per record with
// indexes on the queryable equality columns.
type sqliteEventLog struct {
	db *sql.DB
}

// OpenSQLiteEventLog opens or creates the SQLite database at path and
// applies migrations. The returned EventLog also implements io.Closer.
func OpenSQLiteEventLog(path string) (EventLog, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	log := &sqliteEventLog{db: db}
	if err := log.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}
	return log, nil
}

func (s *sqliteEventLog) Close() error {
	return s.db.Close()
}

func (s *sqliteEventLog) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS time_tracking_records (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			course_id TEXT NOT NULL,
			section_id TEXT NOT NULL,
			chapter_id TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			tracked_at TEXT NOT NULL,
			date TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_records_course_chapter ON time_tracking_records(course_id, chapter_id);`,
		`CREATE INDEX IF NOT EXISTS idx_records_user_course ON time_tracking_records(user_id, course_id);`,
		`CREATE INDEX IF NOT EXISTS idx_records_course_date ON time_tracking_records(course_id, date);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteEventLog) Append(ctx context.Context, record *models.TimeTrackingRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO time_tracking_records (id, user_id, course_id, section_id, chapter_id, duration_ms, tracked_at, date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.UserID,
		record.CourseID,
		record.SectionID,
		record.ChapterID,
		record.DurationMs,
		record.TrackedAt.UTC().Format(time.RFC3339Nano),
		record.Date,
	)
	observeAppend(driverSQLite, err)
	if err != nil {
		return fmt.Errorf("failed to insert time tracking record: %w", err)
	}
	return nil
}

func (s *sqliteEventLog) Query(ctx context.Context, query RecordQuery) ([]*models.TimeTrackingRecord, error) {
	start := time.Now()
	defer func() {
		metricEventLogQueryDuration.WithLabelValues(driverSQLite).Observe(time.Since(start).Seconds())
	}()

	var (
		where []string
		args  []any
	)
	if query.UserID != "" {
		where = append(where, "user_id = ?")
		args = append(args, query.UserID)
	}
	if query.CourseID != "" {
		where = append(where, "course_id = ?")
		args = append(args, query.CourseID)
	}
	if query.ChapterID != "" {
		where = append(where, "chapter_id = ?")
		args = append(args, query.ChapterID)
	}
	if query.Date != "" {
		where = append(where, "date = ?")
		args = append(args, query.Date)
	}

	stmt := `SELECT id, user_id, course_id, section_id, chapter_id, duration_ms, tracked_at, date
		FROM time_tracking_records`
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}
	stmt += " ORDER BY tracked_at, id"
	if query.Limit > 0 {
		stmt += " LIMIT ?"
		args = append(args, query.Limit)
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time tracking records: %w", err)
	}
	defer rows.Close()

	records := []*models.TimeTrackingRecord{}
	for rows.Next() {
		var (
			record    models.TimeTrackingRecord
			trackedAt string
		)
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.CourseID,
			&record.SectionID,
			&record.ChapterID,
			&record.DurationMs,
			&trackedAt,
			&record.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time tracking record: %w", err)
		}
		record.TrackedAt, err = time.Parse(time.RFC3339Nano, trackedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tracked_at %q: %w", trackedAt, err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time tracking records: %w", err)
	}
	return records, nil
}
