// Package apperr carries the error taxonomy the services speak: every failure
// a caller can act on is one of a small set of kinds, with a message safe to
// show to the user.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindUnknown is the zero value: an unclassified internal error.
	KindUnknown Kind = iota
	// KindNotFound - the entity does not exist.
	KindNotFound
	// KindForbidden - the principal may not perform the operation.
	KindForbidden
	// KindConflict - a business rule rejects the operation (duplicate booking,
	// illegal status transition, inactive or expired listing).
	KindConflict
	// KindInvalid - malformed input.
	KindInvalid
	// KindUpstream - storage or another collaborator failed.
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

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

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Invalid(msg string) error {
	return &Error{Kind: KindInvalid, Message: msg}
}

func Upstream(msg string, err error) error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

// KindOf classifies err, unwrapping as needed. KindUnknown when err carries
// no taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}

// MessageOf returns the user-safe message, or a generic one for unclassified
// errors so internals never leak to the caller.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
