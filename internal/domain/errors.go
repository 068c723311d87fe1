package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags a business-rule failure so the transport layer can map it
// to a status code without inspecting message text.
type ErrorKind string

const (
	ErrorKindValidation        ErrorKind = "validation_error"
	ErrorKindAuth              ErrorKind = "auth_error"
	ErrorKindNotFound          ErrorKind = "not_found"
	ErrorKindConflict          ErrorKind = "conflict"
	ErrorKindInsufficientFunds ErrorKind = "insufficient_funds"
	ErrorKindInternal          ErrorKind = "internal_error"
)

// Error is the closed set of typed failures raised by the core services.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewValidationError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorKindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewAuthError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorKindAuth, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorKindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorKindConflict, Message: fmt.Sprintf(format, args...)}
}

func NewInsufficientFundsError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorKindInsufficientFunds, Message: fmt.Sprintf(format, args...)}
}

// NewInternalError wraps a storage or infrastructure failure. The cause is
// logged server-side and never exposed in the response body.
func NewInternalError(err error) *Error {
	return &Error{Kind: ErrorKindInternal, Message: "internal error", Cause: err}
}

// KindOf returns the kind of a typed error, or ErrorKindInternal for any
// other error value.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrorKindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func IsNotFound(err error) bool {
	return IsKind(err, ErrorKindNotFound)
}

func IsConflict(err error) bool {
	return IsKind(err, ErrorKindConflict)
}

func IsInsufficientFunds(err error) bool {
	return IsKind(err, ErrorKindInsufficientFunds)
}
