package logic

import "errors"

var (
	ErrBusy         = errors.New("another action is still processing")
	ErrNotConnected = errors.New("wallet not connected")
	ErrInvalidInput = errors.New("invalid input")
)

// ActionError is a failed chain action. Error returns the user-facing reason.
type ActionError struct {
	Action string
	Reason string
	Err    error
}

func (e *ActionError) Error() string { return e.Reason }

func (e *ActionError) Unwrap() error { return e.Err }
