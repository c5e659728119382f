package stores

import (
	"context"

	"engagement-analytics/internal/models"
)

// RecordQuery is a conjunction of equality constraints over the queryable
// record fields. Empty fields are unconstrained. Limit caps the number of
// returned records; zero means unbounded.
type RecordQuery struct {
	UserID    string
	CourseID  string
	ChapterID string
	Date      string
	Limit     int
}

// Matches reports whether record satisfies every set constraint.
func (q RecordQuery) Matches(record *models.TimeTrackingRecord) bool {
	if q.UserID != "" && record.UserID != q.UserID {
		return false
	}
	if q.CourseID != "" && record.CourseID != q.CourseID {
		return false
	}
	if q.ChapterID != "" && record.ChapterID != q.ChapterID {
		return false
	}
	if q.Date != "" && record.Date != q.Date {
		return false
	}
	return true
}

// EventLog is the append-only store of engagement duration events. Records
// are never updated or deleted; Query is a pure read and any number of
// queries may run concurrently with appends.
//
//go:generate mockgen -source=event_log.go -destination=./mocks/event_log_mock.go -package=mocks
type EventLog interface {
	// Append stores one immutable record.
	Append(ctx context.Context, record *models.TimeTrackingRecord) error
	// Query returns all records matching the conjunction of equality
	// constraints in query, up to query.Limit. A query matching nothing
	// returns an empty slice, not an error.
	Query(ctx context.Context, query RecordQuery) ([]*models.TimeTrackingRecord, error)
}
