package http

import (
	"engagement-analytics/internal/shared/svcerrors"
)

const (
	codeMalformedRequestBody = "HTTP_1000"
)

// errMalformedRequestBody returns an error for request bodies that fail to
// decode as JSON.
func errMalformedRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedRequestBody, "request body must be valid JSON", cause)
}
