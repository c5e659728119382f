package aggregators

import (
	"context"
	"strings"
	"time"

	"engagement-analytics/internal/models"
	"engagement-analytics/internal/shared/loggers"
	"engagement-analytics/internal/shared/metrics"
	"engagement-analytics/internal/shared/svcerrors"
	"engagement-analytics/internal/stores"
)

const (
	defaultBatchPageLimit = 1000
	defaultBatchPacing    = 100 * time.Millisecond
)

// StatsOptions tunes batch query behavior. Zero values fall back to the
// defaults the service shipped with.
type StatsOptions struct {
	// BatchPageLimit caps records fetched per chapter in a batch request.
	BatchPageLimit int
	// BatchPacing is the fixed wait between successive per-chapter queries
	// in a batch. It bounds peak read load on the event log; do not remove
	// it or fan the batch out without re-evaluating store capacity.
	BatchPacing time.Duration
}

//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	// ChapterStats computes second-precision engagement statistics for one
	// (courseId, chapterId) pair. No matching records is a valid result
	// with zeroed stats, not an error.
	ChapterStats(ctx context.Context, courseID, chapterID string) (*models.ChapterStats, error)
	// CourseStats computes second-precision engagement statistics across
	// all chapters of one course.
	CourseStats(ctx context.Context, courseID string) (*models.CourseStats, error)
	// BatchChapterStats computes ChapterStats for each requested chapter,
	// strictly in request order, pacing successive queries and isolating
	// per-chapter failures as zeroed entries. Every requested chapterId has
	// exactly one entry in the result.
	BatchChapterStats(ctx context.Context, courseID string, chapterIDs []string) (*models.BatchChapterStats, error)
}

type statsService struct {
	eventLog       stores.EventLog
	rolluper       EngagementRolluper
	batchPageLimit int
	batchPacing    time.Duration

	sleep func(d time.Duration)
}

func NewStatsService(eventLog stores.EventLog, rolluper EngagementRolluper, opts StatsOptions) StatsService {
	if opts.BatchPageLimit <= 0 {
		opts.BatchPageLimit = defaultBatchPageLimit
	}
	if opts.BatchPacing <= 0 {
		opts.BatchPacing = defaultBatchPacing
	}
	return &statsService{
		eventLog:       eventLog,
		rolluper:       rolluper,
		batchPageLimit: opts.BatchPageLimit,
		batchPacing:    opts.BatchPacing,
		sleep:          time.Sleep,
	}
}

func (s *statsService) ChapterStats(ctx context.Context, courseID, chapterID string) (*models.ChapterStats, error) {
	start := time.Now()

	if courseID == "" || chapterID == "" {
		svcErr := errValidationFailed("courseId and chapterId are required", nil)
		metricStatsQueriesTotal.WithLabelValues(kindChapter, svcErr.Code).Inc()
		return nil, svcErr
	}

	records, err := s.eventLog.Query(ctx, stores.RecordQuery{CourseID: courseID, ChapterID: chapterID})
	if err != nil {
		svcErr := errInternalEventLogQueryFailed(err)
		metricStatsQueriesTotal.WithLabelValues(kindChapter, svcErr.Code).Inc()
		return nil, svcErr
	}

	stats := FormatChapterStats(s.rolluper.RollupChapter(records))

	metricStatsQueriesTotal.WithLabelValues(kindChapter, metrics.ValueNoError).Inc()
	metricStatsQueryDuration.WithLabelValues(kindChapter).Observe(time.Since(start).Seconds())
	return stats, nil
}

func (s *statsService) CourseStats(ctx context.Context, courseID string) (*models.CourseStats, error) {
	start := time.Now()

	if courseID == "" {
		svcErr := errValidationFailed("courseId is required", nil)
		metricStatsQueriesTotal.WithLabelValues(kindCourse, svcErr.Code).Inc()
		return nil, svcErr
	}

	records, err := s.eventLog.Query(ctx, stores.RecordQuery{CourseID: courseID})
	if err != nil {
		svcErr := errInternalEventLogQueryFailed(err)
		metricStatsQueriesTotal.WithLabelValues(kindCourse, svcErr.Code).Inc()
		return nil, svcErr
	}

	stats := FormatCourseStats(s.rolluper.RollupCourse(records))

	metricStatsQueriesTotal.WithLabelValues(kindCourse, metrics.ValueNoError).Inc()
	metricStatsQueryDuration.WithLabelValues(kindCourse).Observe(time.Since(start).Seconds())
	return stats, nil
}

func (s *statsService) BatchChapterStats(ctx context.Context, courseID string, chapterIDs []string) (*models.BatchChapterStats, error) {
	start := time.Now()
	logger := loggers.Ctx(ctx)

	// All validation happens before any event log access; a bad request
	// never starts per-chapter work.
	if err := validateBatchRequest(courseID, chapterIDs); err != nil {
		metricStatsQueriesTotal.WithLabelValues(kindBatch, err.Code).Inc()
		return nil, err
	}

	batch := models.NewBatchChapterStats()
	for i, chapterID := range chapterIDs {
		// Fixed pacing between successive chapters: a deliberate,
		// sequential throttle on event log reads, not an optimization
		// target.
		if i > 0 {
			s.sleep(s.batchPacing)
		}

		records, err := s.eventLog.Query(ctx, stores.RecordQuery{
			CourseID:  courseID,
			ChapterID: chapterID,
			Limit:     s.batchPageLimit,
		})
		if err != nil {
			// One bad chapter never loses the rest of the batch: record a
			// zeroed entry and keep going.
			logger.Warn().
				Err(err).
				Str(loggers.FieldCourseID, courseID).
				Str(loggers.FieldChapterID, chapterID).
				Msg("batch chapter query failed, recording zeroed stats")
			metricBatchChapterFailedTotal.Inc()
			batch.Set(chapterID, models.NewEmptyChapterStats())
			continue
		}

		batch.Set(chapterID, FormatChapterStats(s.rolluper.RollupChapter(records)))
	}

	metricStatsQueriesTotal.WithLabelValues(kindBatch, metrics.ValueNoError).Inc()
	metricStatsQueryDuration.WithLabelValues(kindBatch).Observe(time.Since(start).Seconds())
	return batch, nil
}

func validateBatchRequest(courseID string, chapterIDs []string) *svcerrors.ServiceError {
	if courseID == "" {
		return errValidationFailed("courseId is required", nil)
	}
	if len(chapterIDs) == 0 {
		return errValidationFailed("chapterIds must be a non-empty array", nil)
	}
	for _, chapterID := range chapterIDs {
		if strings.TrimSpace(chapterID) == "" {
			return errValidationFailed("chapterIds must not contain blank ids", nil)
		}
	}
	return nil
}
