// Package errors defines the error kinds the core reports to the boundary layer.
//
// A kind is one of the sentinels below. Concrete failures are *Error values that
// match their kind through errors.Is and carry a human-readable reason.
package errors

import (
	"errors"
)

// Kinds.
var (
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Error is a failure of a given kind with a reason meant for the caller.
type Error struct {
	kind   error
	reason string
	cause  error
}

// New creates an error of the given kind.
func New(kind error, reason string) *Error {
	return &Error{kind: kind, reason: reason}
}

// Wrap creates an error of the given kind around an underlying cause.
func Wrap(kind error, reason string, cause error) *Error {
	return &Error{kind: kind, reason: reason, cause: cause}
}

// Forbidden, NotFound, Validation and Unavailable are shorthands for New/Wrap.
func Forbidden(reason string) *Error  { return New(ErrForbidden, reason) }
func NotFound(reason string) *Error   { return New(ErrNotFound, reason) }
func Validation(reason string) *Error { return New(ErrValidation, reason) }

func Unavailable(reason string, cause error) *Error {
	return Wrap(ErrStoreUnavailable, reason, cause)
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.reason + ": " + e.cause.Error()
	}
	return e.reason
}

// Reason returns the caller-facing message without the cause.
func (e *Error) Reason() string { return e.reason }

// Kind returns the sentinel this error belongs to.
func (e *Error) Kind() error { return e.kind }

func (e *Error) Is(target error) bool { return target == e.kind }

func (e *Error) Unwrap() error { return e.cause }

// WithReason returns a copy of e with a more specific reason, keeping kind and cause.
func (e *Error) WithReason(reason string) *Error {
	return &Error{kind: e.kind, reason: reason, cause: e.cause}
}

// ReasonOf extracts the caller-facing reason of err, falling back to err.Error().
func ReasonOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.reason
	}
	return err.Error()
}

// KindOf returns the kind sentinel of err, or nil for errors outside the taxonomy.
func KindOf(err error) error {
	for _, kind := range []error{ErrForbidden, ErrNotFound, ErrValidation, ErrStoreUnavailable} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// IsRetryable reports whether the caller may retry the operation as-is.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
