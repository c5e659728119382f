package ingestors

import (
	"engagement-analytics/internal/shared/metrics"
)

var (
	metricRecordTrackedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTracking,
			Name:      "record_tracked_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
