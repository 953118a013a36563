// Package rozerr defines the error taxonomy shared across roz's packages.
package rozerr

import "fmt"

// Kind classifies an Error so callers can branch on category without
// string-matching messages.
type Kind string

const (
	KindStorage         Kind = "storage"
	KindSerialization    Kind = "serialization"
	KindInvalidState     Kind = "invalid_state"
	KindSessionNotFound  Kind = "session_not_found"
	KindInvalidDecision  Kind = "invalid_decision"
	KindMissingField     Kind = "missing_field"
	KindConfig           Kind = "config"
)

// Error is a roz-domain error: a Kind plus a human message and an optional
// wrapped cause.
type Error struct {
	Kind    Kind
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

func newf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func Storage(cause error, format string, args ...any) *Error {
	return newf(KindStorage, cause, format, args...)
}

func Serialization(cause error, format string, args ...any) *Error {
	return newf(KindSerialization, cause, format, args...)
}

func InvalidState(format string, args ...any) *Error {
	return newf(KindInvalidState, nil, format, args...)
}

func SessionNotFound(id string) *Error {
	return newf(KindSessionNotFound, nil, "session not found: %s", id)
}

func InvalidDecision(format string, args ...any) *Error {
	return newf(KindInvalidDecision, nil, format, args...)
}

func MissingField(field string) *Error {
	return newf(KindMissingField, nil, "missing required field: %s", field)
}

func Config(format string, args ...any) *Error {
	return newf(KindConfig, nil, format, args...)
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if err == nil {
		return false
	}
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}
	return e.Kind == kind
}
