package services

import "errors"

// Error taxonomy surfaced to the presentation layer. Handlers map these to
// 404 / 409 / 400; nothing here is ever fatal to the process.
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidState = errors.New("item is no longer available")
	ErrValidation   = errors.New("invalid input")
)

// Validationf wraps ErrValidation with a field-level reason.
func Validationf(reason string) error {
	return &validationError{reason: reason}
}

type validationError struct{ reason string }

func (e *validationError) Error() string { return "invalid input: " + e.reason }
func (e *validationError) Unwrap() error { return ErrValidation }
