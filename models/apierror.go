package models

import (
	"errors"
	"net/http"
)

// ErrorKind is the machine-distinguishable classification attached to every
// operation failure
type ErrorKind string

// Error kinds surfaced by case operations
const (
	ErrStoreUnavailable        ErrorKind = "store_unavailable"
	ErrIdentityUnavailable     ErrorKind = "identity_unavailable"
	ErrInvalidCaseCode         ErrorKind = "invalid_case_code"
	ErrPreconditionFailed      ErrorKind = "precondition_failed"
	ErrAdjudicationRateLimited ErrorKind = "adjudication_rate_limited"
	ErrAdjudicationMalformed   ErrorKind = "adjudication_malformed"
	ErrAdjudicationTransport   ErrorKind = "adjudication_transport_error"
)

// HTTPStatus maps an error kind to the status code written at the handler
// boundary
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrStoreUnavailable:
		return http.StatusServiceUnavailable
	case ErrIdentityUnavailable:
		return http.StatusUnauthorized
	case ErrInvalidCaseCode:
		return http.StatusNotFound
	case ErrPreconditionFailed:
		return http.StatusConflict
	case ErrAdjudicationRateLimited:
		return http.StatusTooManyRequests
	case ErrAdjudicationMalformed, ErrAdjudicationTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// APIError carries a user-visible message plus a machine-readable kind
type APIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError builds an APIError with the given kind and message
func NewAPIError(kind ErrorKind, message string, err error) *APIError {
	return &APIError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the error kind from err, or "" when err carries none
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
