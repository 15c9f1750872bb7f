package sandbox

import "errors"

var (
	ErrIdempotencyConflict = errors.New("sandbox: unique_request_id already used with a different payload")
	ErrInvalidPage         = errors.New("sandbox: page and per_page must be positive integers")
	ErrInvalidDate         = errors.New("sandbox: dates must be formatted YYYY-MM-DD")
	ErrInvalidOrder        = errors.New("sandbox: order must be created_at or updated_at")
)

// FieldError is a rule violation reported against one request parameter.
type FieldError struct {
	Field string
	Code  string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }
