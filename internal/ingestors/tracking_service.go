package ingestors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"engagement-analytics/internal/models"
	"engagement-analytics/internal/shared/loggers"
	"engagement-analytics/internal/shared/metrics"
	"engagement-analytics/internal/shared/ulid"
	"engagement-analytics/internal/shared/validators"
	"engagement-analytics/internal/stores"
)

// TrackRequest is the payload for recording one slice of engagement time.
type TrackRequest struct {
	UserID     string `json:"userId" validate:"required"`
	CourseID   string `json:"courseId" validate:"required"`
	SectionID  string `json:"sectionId" validate:"required"`
	ChapterID  string `json:"chapterId" validate:"required"`
	DurationMs int64  `json:"durationMs" validate:"required,gt=0"`
}

//go:generate mockgen -source=tracking_service.go -destination=./mocks/tracking_service_mock.go -package=mocks
type TrackingService interface {
	// Track validates the request, stamps it with a fresh id, the current
	// UTC timestamp and the derived calendar date, and appends it to the
	// event log. Returns the stored record.
	Track(ctx context.Context, req *TrackRequest) (*models.TimeTrackingRecord, error)
	// ChapterRecords returns the raw records for one chapter.
	ChapterRecords(ctx context.Context, chapterID string) ([]*models.TimeTrackingRecord, error)
	// UserCourseRecords returns one user's records for one course, each
	// annotated with its duration in whole seconds.
	UserCourseRecords(ctx context.Context, userID, courseID string) ([]*models.UserCourseRecord, error)
}

type trackingService struct {
	eventLog stores.EventLog
	validate *validators.Validate

	now   func() time.Time
	newID func() string
}

func NewTrackingService(eventLog stores.EventLog) TrackingService {
	return &trackingService{
		eventLog: eventLog,
		validate: validators.New(),
		now:      time.Now,
		newID:    ulid.NewULID,
	}
}

func (s *trackingService) Track(ctx context.Context, req *TrackRequest) (*models.TimeTrackingRecord, error) {
	logger := loggers.Ctx(ctx)

	if req == nil {
		return nil, errValidationFailed("empty request body", nil)
	}
	if err := s.validate.Struct(req); err != nil {
		svcErr := errValidationFailed(formatTrackValidationError(err), err)
		metricRecordTrackedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	trackedAt := s.now().UTC()
	record := &models.TimeTrackingRecord{
		ID:         s.newID(),
		UserID:     req.UserID,
		CourseID:   req.CourseID,
		SectionID:  req.SectionID,
		ChapterID:  req.ChapterID,
		DurationMs: req.DurationMs,
		// Date is fixed at creation as the UTC calendar day of TrackedAt
		// and never recomputed.
		TrackedAt: trackedAt,
		Date:      trackedAt.Format(models.DateLayout),
	}

	if err := s.eventLog.Append(ctx, record); err != nil {
		svcErr := errInternalEventLogAppendFailed(err)
		metricRecordTrackedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	logger.Debug().
		Str(loggers.FieldRecordID, record.ID).
		Str(loggers.FieldUserID, record.UserID).
		Str(loggers.FieldChapterID, record.ChapterID).
		Msgf("tracked %dms of engagement", record.DurationMs)

	metricRecordTrackedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return record, nil
}

func (s *trackingService) ChapterRecords(ctx context.Context, chapterID string) ([]*models.TimeTrackingRecord, error) {
	if chapterID == "" {
		return nil, errValidationFailed("chapterId is required", nil)
	}

	records, err := s.eventLog.Query(ctx, stores.RecordQuery{ChapterID: chapterID})
	if err != nil {
		return nil, errInternalEventLogQueryFailed(err)
	}
	return records, nil
}

func (s *trackingService) UserCourseRecords(ctx context.Context, userID, courseID string) ([]*models.UserCourseRecord, error) {
	if userID == "" || courseID == "" {
		return nil, errValidationFailed("userId and courseId are required", nil)
	}

	records, err := s.eventLog.Query(ctx, stores.RecordQuery{UserID: userID, CourseID: courseID})
	if err != nil {
		return nil, errInternalEventLogQueryFailed(err)
	}

	annotated := make([]*models.UserCourseRecord, 0, len(records))
	for _, record := range records {
		annotated = append(annotated, &models.UserCourseRecord{
			TimeTrackingRecord: *record,
			Duration:           models.RoundMsToSeconds(record.DurationMs),
		})
	}
	return annotated, nil
}

// formatTrackValidationError turns validator errors into a client-readable
// list of offending fields, e.g. "userId (required), durationMs (gt=0)".
func formatTrackValidationError(err error) string {
	ve, ok := err.(validators.ValidationErrors)
	if !ok {
		return "invalid request"
	}

	parts := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		field := jsonFieldName(fieldErr.Field())
		parts = append(parts, fmt.Sprintf("%s (%s)", field, fieldErr.Tag()))
	}
	return "invalid request: " + strings.Join(parts, ", ")
}

func jsonFieldName(structField string) string {
	switch structField {
	case "UserID":
		return "userId"
	case "CourseID":
		return "courseId"
	case "SectionID":
		return "sectionId"
	case "ChapterID":
		return "chapterId"
	case "DurationMs":
		return "durationMs"
	default:
		return structField
	}
}
