package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails the
// form-boundary checks (e.g. missing required field, night count below one).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
