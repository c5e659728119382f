package stores

import (
	"engagement-analytics/internal/shared/metrics"
)

var (
	metricEventLogAppendsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStorage,
			Name:      "event_log_appends_total",
		},
		[]string{"driver", metrics.FieldErrorCode},
	)

	metricEventLogQueryDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStorage,
			Name:      "event_log_query_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"driver"},
	)
)

const (
	valueErrorStore = "store_error"
)

func observeAppend(driver string, err error) {
	errorCode := metrics.ValueNoError
	if err != nil {
		errorCode = valueErrorStore
	}
	metricEventLogAppendsTotal.WithLabelValues(driver, errorCode).Inc()
}
