package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrHotelNotFound = errors.New("hotel not found")
	ErrMockData      = errors.New("mock data detected")
)

// ValidationError carries a user-facing message for a rejected request.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

func Invalid(msg string) error { return &ValidationError{Message: msg} }
