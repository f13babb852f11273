package wallet

import "errors"

var (
	ErrNoProvider     = errors.New("no wallet provider")
	ErrNotPreferred   = errors.New("wallet is not the preferred provider")
	ErrUserRejected   = errors.New("user rejected the request")
	ErrRequestPending = errors.New("request already pending")
	ErrNoAccounts     = errors.New("no accounts")
	ErrUnknownChain   = errors.New("chain unknown to wallet")
	ErrWrongChain     = errors.New("wrong chain")
	ErrRequestFailed  = errors.New("wallet request failed")
)

// InstallURL is where users without a wallet are sent.
const InstallURL = "https://metamask.io/download/"

// Error is a wallet failure carrying the message shown to the user.
// errors.Is matches both the kind and the underlying provider error.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}
