package transfer

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure. Callers receive the kind plus a safe
// message; internal causes (SQL text, stack traces) never cross this
// boundary.
type Kind string

const (
	KindAuthRequired       Kind = "AUTH_REQUIRED"
	KindAccessDenied       Kind = "ACCESS_DENIED"
	KindInvalidRequest     Kind = "INVALID_REQUEST"
	KindInvalidAmount      Kind = "INVALID_AMOUNT"
	KindNotFound           Kind = "NOT_FOUND"
	KindAccountInactive    Kind = "ACCOUNT_INACTIVE"
	KindInsufficientFunds  Kind = "INSUFFICIENT_FUNDS"
	KindDailyLimitExceeded Kind = "DAILY_LIMIT_EXCEEDED"
	KindConflict           Kind = "CONFLICT"
	KindTransient          Kind = "TRANSIENT_UNAVAILABLE"
	KindInternal           Kind = "INTERNAL"
)

// Error is the typed failure returned by every engine operation.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// E builds a typed engine error.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrAuthRequired      = E(KindAuthRequired, "authentication required")
	ErrAccessDenied      = E(KindAccessDenied, "access denied")
	ErrSelfTransfer      = E(KindInvalidRequest, "source and destination accounts must differ")
	ErrAccountNotFound   = E(KindNotFound, "account not found")
	ErrInsufficientFunds = E(KindInsufficientFunds, "insufficient funds")
	ErrDailyLimit        = E(KindDailyLimitExceeded, "daily transfer limit reached")
	ErrConflict          = E(KindConflict, "concurrent modification, retry the transfer")
	ErrTransient         = E(KindTransient, "transfer could not be committed in time, retry")
)

// KindOf extracts the Kind from an error chain. Unrecognized errors map to
// KindInternal so unexpected causes are never exposed as-is.
func KindOf(err error) Kind {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Kind
	}
	return KindInternal
}

// Retryable reports whether the caller may safely retry the same request.
// Only conflict and transient store failures qualify; every other kind is
// permanent for the given input.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindConflict, KindTransient:
		return true
	}
	return false
}
