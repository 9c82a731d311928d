// Package apperr defines the error taxonomy shared by the record services.
// Callers branch on the Kind instead of matching message substrings; the
// message is for display only.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation marks rejected input (empty or over-length name).
	KindValidation
	// KindDuplicate marks a case-insensitive name collision on registration.
	KindDuplicate
	// KindStorage marks an underlying read/write failure.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error carries an error kind alongside a human-readable message. The
// messages are shown to users verbatim, so they stay in the club's language.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a KindValidation error with the given message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Duplicate returns a KindDuplicate error with the given message.
func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

// Storage wraps an underlying read/write failure.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf extracts the kind from err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
