package models

import "time"

// DateLayout is the calendar-day format used for the Date field and for
// day-bucketed queries. Lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// TimeTrackingRecord is one recorded slice of engagement time for a user on a
// chapter. Records are append-only: created once at ingestion, read many
// times by the aggregators, never updated or deleted.
//
// Date is always the UTC calendar day of TrackedAt. It is derived once at
// creation and stored redundantly so day-bucketed queries never have to parse
// timestamps at read time.
type TimeTrackingRecord struct {
	ID         string    `json:"timeTrackingId"`
	UserID     string    `json:"userId"`
	CourseID   string    `json:"courseId"`
	SectionID  string    `json:"sectionId"`
	ChapterID  string    `json:"chapterId"`
	DurationMs int64     `json:"durationMs"`
	TrackedAt  time.Time `json:"trackedAt"`
	Date       string    `json:"date"`
}

// UserCourseRecord is a TimeTrackingRecord annotated with its duration in
// whole seconds, as returned by the per-user course listing.
type UserCourseRecord struct {
	TimeTrackingRecord
	Duration int64 `json:"duration"` // seconds, rounded at the boundary
}
