package ingestors

import (
	"fmt"

	"engagement-analytics/internal/shared/svcerrors"
)

// TrackingService errors
const (
	codeValidationFailed = "TRK_1000"

	codeInternalEventLogAppendFailed = "TRK_9000"
	codeInternalEventLogQueryFailed  = "TRK_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalEventLogAppendFailed returns an error when an event log append fails.
func errInternalEventLogAppendFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogAppendFailed, fmt.Errorf("eventLogAppendFailed: %w", cause))
}

// errInternalEventLogQueryFailed returns an error when an event log query fails.
func errInternalEventLogQueryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogQueryFailed, fmt.Errorf("eventLogQueryFailed: %w", cause))
}
