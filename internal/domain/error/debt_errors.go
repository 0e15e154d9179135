// Package error defines domain-specific errors for the ledger.
package error

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt does not exist or belongs to another user.
	ErrDebtNotFound = newKindError(ErrNotFound, "debt not found")

	// ErrInvalidDebtAmount is returned when the debt amount is not positive.
	ErrInvalidDebtAmount = newKindError(ErrValidation, "amount must be greater than zero")

	// ErrInvalidDebtDirection is returned when the direction is unknown.
	ErrInvalidDebtDirection = newKindError(ErrValidation, "direction must be 'owed_to' or 'owed_by'")

	// ErrMissingDebtPerson is returned when the counterparty name is empty.
	ErrMissingDebtPerson = newKindError(ErrValidation, "person is required")

	// ErrEmptyDebtBatch is returned when a batch contains no debts.
	ErrEmptyDebtBatch = newKindError(ErrValidation, "at least one debt is required")

	// ErrNoSplitParticipants is returned when a bill split names nobody.
	ErrNoSplitParticipants = newKindError(ErrValidation, "at least one participant is required")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is the kind (01 validation, 02 not found, 03 conservation, 99 internal).
type DebtErrorCode string

const (
	ErrCodeInvalidDebtAmount    DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtDirection DebtErrorCode = "DBT-010002"
	ErrCodeMissingDebtPerson    DebtErrorCode = "DBT-010003"
	ErrCodeEmptyDebtBatch       DebtErrorCode = "DBT-010004"
	ErrCodeNoSplitParticipants  DebtErrorCode = "DBT-010005"
	ErrCodeMissingDebtFields    DebtErrorCode = "DBT-010006"
	ErrCodeDebtNotFound         DebtErrorCode = "DBT-020001"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the API error code.
func (e *DebtError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the client-facing message.
func (e *DebtError) ErrorMessage() string {
	return e.Message
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
