package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for transports
type Kind string

const (
	KindUnauthenticated        Kind = "unauthenticated"
	KindForbidden              Kind = "forbidden"
	KindNotFound               Kind = "not_found"
	KindConflict               Kind = "conflict"
	KindInvalidArgument        Kind = "invalid_argument"
	KindInvalidTransition      Kind = "invalid_transition"
	KindSessionFull            Kind = "session_full"
	KindInsufficientExperience Kind = "insufficient_experience"
	KindMaxLevelReached        Kind = "max_level_reached"
	KindInvalidPassword        Kind = "invalid_password"
	KindPasswordRequired       Kind = "password_required"
	KindInternal               Kind = "internal"
)

// HTTPStatus maps a kind to the status code the REST surface answers with
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden, KindInvalidPassword, KindPasswordRequired:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInvalidTransition, KindSessionFull:
		return http.StatusConflict
	case KindInvalidArgument, KindInsufficientExperience, KindMaxLevelReached:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified error. Sentinels are declared once per package
// and compared with errors.Is.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New declares a classified error
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies cause under kind. A nil cause returns nil.
func Wrap(kind Kind, message string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Internal wraps an unexpected failure, typically from a repository
func Internal(message string, cause error) error {
	return Wrap(KindInternal, message, cause)
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of the first classified error in the chain,
// or KindInternal for anything unclassified.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message for err. Internal failures
// never leak their cause.
func MessageOf(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return "internal server error"
	}
	return e.Message
}
