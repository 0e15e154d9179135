// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Error kinds. Every domain sentinel unwraps to exactly one of these, so callers can
// classify an error with errors.Is without knowing the aggregate it came from.
var (
	// ErrValidation marks a missing or invalid input. No side effect has occurred.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a record that is absent or owned by another user.
	ErrNotFound = errors.New("not found")

	// ErrConservationFailure marks a jar transfer whose two halves could not both be applied.
	ErrConservationFailure = errors.New("conservation failure")
)

// kindError is a sentinel that belongs to a kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// CodedError is implemented by every aggregate error carrying an API error code.
type CodedError interface {
	error
	ErrorCode() string
	ErrorMessage() string
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a missing or foreign record.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConservationFailure reports whether err is a failed atomic jar transfer.
func IsConservationFailure(err error) bool { return errors.Is(err, ErrConservationFailure) }
