package controller

import "errors"

var (
	// ErrDeclined reports that the user answered "no" to a confirmation.
	// A normal branch, not a failure: no request was sent, no state changed.
	ErrDeclined = errors.New("confirmation declined")

	// ErrNoSelection reports a bulk action with an empty selection set.
	ErrNoSelection = errors.New("no rows selected")

	// ErrNoDraft reports a draft operation while no modal is open.
	ErrNoDraft = errors.New("no draft open")
)

// ValidationError is a client-side precondition failure detected before any
// request is dispatched. The draft is preserved and no network call occurs.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a *ValidationError with the given user-facing message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}
