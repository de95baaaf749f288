package errors

import "errors"

// Sentinel errors shared across features. Handlers translate these into HTTP
// responses through response.FromError.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrValidation      = errors.New("validation failed")
	ErrDuplicate       = errors.New("resource already exists")
	ErrUpstream        = errors.New("upstream service failure")
)
