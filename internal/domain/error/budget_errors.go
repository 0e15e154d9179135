// Package error defines domain-specific errors for the ledger.
package error

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist for the user.
	ErrBudgetNotFound = newKindError(ErrNotFound, "budget not found")

	// ErrInvalidBudgetLimit is returned when the limit is zero, negative or not finite.
	ErrInvalidBudgetLimit = newKindError(ErrValidation, "limit must be a positive finite number")

	// ErrMissingBudgetCategory is returned when the category is empty.
	ErrMissingBudgetCategory = newKindError(ErrValidation, "category is required")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is the kind (01 validation, 02 not found, 03 conservation, 99 internal).
type BudgetErrorCode string

const (
	ErrCodeInvalidBudgetLimit    BudgetErrorCode = "BGT-010001"
	ErrCodeMissingBudgetCategory BudgetErrorCode = "BGT-010002"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the API error code.
func (e *BudgetError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the client-facing message.
func (e *BudgetError) ErrorMessage() string {
	return e.Message
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
