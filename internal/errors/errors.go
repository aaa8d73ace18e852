// Package errors defines the error taxonomy shared by every auth operation.
//
// Each failure leaving the service layer is an *Error carrying a Kind plus
// the operation and collection it happened in. Handlers map kinds to HTTP
// status codes; nothing below the handler layer knows about HTTP.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the propagation layer.
type Kind string

const (
	// KindValidation covers malformed input and failed business-rule checks.
	// Always safe to show to the end user.
	KindValidation Kind = "validation"

	// KindNotFound marks an absent entity. Translated to KindValidation at
	// auth boundaries so existence information never leaks.
	KindNotFound Kind = "not_found"

	// KindDuplicate marks a uniqueness violation (email already registered).
	KindDuplicate Kind = "duplicate"

	// KindPermission marks an authorization or account-state violation
	// (account locked, email unverified).
	KindPermission Kind = "permission"

	// KindDatabase marks a repository or token-persistence failure. Detail
	// is logged internally and withheld from the client.
	KindDatabase Kind = "database"

	// KindConnection marks a transport-level failure. Reported to clients
	// exactly like KindDatabase.
	KindConnection Kind = "connection"
)

// Error is the tagged error type used throughout the auth subsystem.
type Error struct {
	Kind       Kind
	Op         string // operation that failed, e.g. "auth.login"
	Collection string // storage collection involved, e.g. "users"
	Message    string // user-safe for validation/permission kinds
	Err        error  // underlying cause, never shown to clients
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes two taxonomy errors match when their kinds match, so callers can
// do errors.Is(err, &Error{Kind: KindValidation}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Validation creates a user-visible input or business-rule error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound creates an absent-entity error for the given collection.
func NotFound(collection, message string) *Error {
	return &Error{Kind: KindNotFound, Collection: collection, Message: message}
}

// Duplicate creates a uniqueness-violation error.
func Duplicate(collection, message string) *Error {
	return &Error{Kind: KindDuplicate, Collection: collection, Message: message}
}

// Permission creates an authorization/state-violation error.
func Permission(message string) *Error {
	return &Error{Kind: KindPermission, Message: message}
}

// Database wraps a repository or persistence failure.
func Database(message string, err error) *Error {
	return &Error{Kind: KindDatabase, Message: message, Err: err}
}

// Connection wraps a transport-level failure.
func Connection(message string, err error) *Error {
	return &Error{Kind: KindConnection, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindDatabase for anything outside the
// taxonomy (unknown failures are never user-actionable).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindDatabase
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// WithOp attaches operation and collection context to an error on its way
// out of a service method. Taxonomy errors keep their kind and message and
// gain context only if they had none; anything else becomes a KindDatabase
// error. Returns nil for nil.
func WithOp(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		out := *e
		if out.Op == "" {
			out.Op = op
		}
		if out.Collection == "" {
			out.Collection = collection
		}
		return &out
	}
	return &Error{Kind: KindDatabase, Op: op, Collection: collection, Err: err}
}

// HTTPStatus maps an error kind to the transport status code. Used only by
// the handler layer.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	case KindPermission:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// SafeMessage returns the client-facing message for err. Database and
// connection failures collapse to a generic message; their detail belongs
// in the logs, not the response body.
func SafeMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindDatabase, KindConnection:
			return "An internal error occurred. Please try again."
		default:
			if e.Message != "" {
				return e.Message
			}
		}
	}
	return "An internal error occurred. Please try again."
}
