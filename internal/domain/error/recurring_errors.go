// Package error defines domain-specific errors for the ledger.
package error

// Recurring (subscription) domain errors.
var (
	// ErrRecurringNotFound is returned when a subscription does not exist or belongs to another user.
	ErrRecurringNotFound = newKindError(ErrNotFound, "subscription not found")

	// ErrInvalidRecurringAmount is returned when the amount is not positive.
	ErrInvalidRecurringAmount = newKindError(ErrValidation, "amount must be greater than zero")

	// ErrInvalidBillingDate is returned when the billing day is outside 1..31.
	ErrInvalidBillingDate = newKindError(ErrValidation, "billing date must be between 1 and 31")

	// ErrMissingRecurringName is returned when the name is empty.
	ErrMissingRecurringName = newKindError(ErrValidation, "name is required")
)

// RecurringErrorCode defines error codes for recurring errors.
// Format: REC-XXYYYY where XX is the kind (01 validation, 02 not found, 03 conservation, 99 internal).
type RecurringErrorCode string

const (
	ErrCodeInvalidRecurringAmount RecurringErrorCode = "REC-010001"
	ErrCodeInvalidBillingDate     RecurringErrorCode = "REC-010002"
	ErrCodeMissingRecurringName   RecurringErrorCode = "REC-010003"
	ErrCodeInvalidRecurringKind   RecurringErrorCode = "REC-010004"
	ErrCodeMissingRecurringFields RecurringErrorCode = "REC-010005"
	ErrCodeRecurringNotFound      RecurringErrorCode = "REC-020001"
)

// RecurringError represents a recurring error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the API error code.
func (e *RecurringError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the client-facing message.
func (e *RecurringError) ErrorMessage() string {
	return e.Message
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
