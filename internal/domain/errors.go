package domain

import (
	"errors"
	"fmt"
)

// ValidationError rejects a request before anything is persisted. The
// message is user-facing and carries the exact reason so clients can
// render it as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

var (
	// Validation failures
	ErrWeekendDate      = &ValidationError{Msg: "cart reservations cannot fall on a Saturday or Sunday"}
	ErrActiveCartExists = &ValidationError{Msg: "you already have a pending or approved cart reservation"}
	ErrNoCartsAvailable = &ValidationError{Msg: "no carts available for the requested date"}

	// Authorization failures
	ErrForbidden = errors.New("not allowed to access this reservation")
	ErrAdminOnly = errors.New("administrator role required")

	// Lookup failures
	ErrNotFound        = errors.New("reservation not found")
	ErrSettingNotFound = errors.New("setting not found")
	ErrUserNotFound    = errors.New("user not found")

	// State failures
	ErrIllegalTransition = errors.New("status transition not allowed")
	ErrNotPending        = errors.New("only pending reservations can be cancelled")
)

// IsValidation reports whether err belongs to the validation class.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
