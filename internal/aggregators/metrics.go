package aggregators

import (
	"engagement-analytics/internal/shared/metrics"
)

const (
	kindChapter = "chapter"
	kindCourse  = "course"
	kindBatch   = "batch"
)

var (
	metricStatsQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "queries_total",
		},
		[]string{"kind", metrics.FieldErrorCode},
	)

	metricStatsQueryDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "query_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"kind"},
	)

	// metricBatchChapterFailedTotal counts chapters inside a batch whose
	// sub-query failed and was replaced with zeroed stats.
	metricBatchChapterFailedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "batch_chapter_failed_total",
		},
	)
)
