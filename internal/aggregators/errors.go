package aggregators

import (
	"fmt"

	"engagement-analytics/internal/shared/svcerrors"
)

// StatsService errors
const (
	codeValidationFailed = "STATS_1000"

	codeInternalEventLogQueryFailed = "STATS_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalEventLogQueryFailed returns an error when an event log query fails.
func errInternalEventLogQueryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogQueryFailed, fmt.Errorf("eventLogQueryFailed: %w", cause))
}
