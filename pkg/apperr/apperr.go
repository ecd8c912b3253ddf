package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so handlers can map it to an HTTP status
// without string-matching error messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindEmptyCart
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindEmptyCart:
		return "empty_cart"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error carries a failure kind, a human-readable message and the
// original cause for diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func EmptyCart(message string) *Error {
	return &Error{Kind: KindEmptyCart, Message: message}
}

func Store(message string, cause error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: cause}
}

// KindOf extracts the kind from an error chain, KindUnknown if none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
