// Package error defines domain-specific errors for the ledger.
package error

// Savings jar domain errors.
var (
	// ErrJarNotFound is returned when a jar does not exist or belongs to another user.
	ErrJarNotFound = newKindError(ErrNotFound, "savings jar not found")

	// ErrInvalidJarTarget is returned when the jar target is not positive.
	ErrInvalidJarTarget = newKindError(ErrValidation, "target amount must be greater than zero")

	// ErrMissingJarName is returned when the jar name is empty.
	ErrMissingJarName = newKindError(ErrValidation, "jar name is required")

	// ErrZeroJarTransfer is returned when a jar transfer moves nothing.
	ErrZeroJarTransfer = newKindError(ErrValidation, "transfer amount must not be zero")

	// ErrInvalidJarTransfer is returned when a jar transfer amount has sub-cent digits.
	ErrInvalidJarTransfer = newKindError(ErrValidation, "transfer amount must have at most two decimal places")

	// ErrJarTransferIncomplete is returned when the jar update or its mirrored transaction failed and both were rolled back.
	ErrJarTransferIncomplete = newKindError(ErrConservationFailure, "jar transfer could not be completed atomically")
)

// SavingsErrorCode defines error codes for savings errors.
// Format: SAV-XXYYYY where XX is the kind (01 validation, 02 not found, 03 conservation, 99 internal).
type SavingsErrorCode string

const (
	ErrCodeInvalidJarTarget      SavingsErrorCode = "SAV-010001"
	ErrCodeMissingJarName        SavingsErrorCode = "SAV-010002"
	ErrCodeZeroJarTransfer       SavingsErrorCode = "SAV-010003"
	ErrCodeInvalidJarWallet      SavingsErrorCode = "SAV-010004"
	ErrCodeMissingJarFields      SavingsErrorCode = "SAV-010005"
	ErrCodeInvalidJarTransfer    SavingsErrorCode = "SAV-010006"
	ErrCodeJarNotFound           SavingsErrorCode = "SAV-020001"
	ErrCodeJarTransferIncomplete SavingsErrorCode = "SAV-030001"
)

// SavingsError represents a savings error with code and message.
type SavingsError struct {
	Code    SavingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the API error code.
func (e *SavingsError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the client-facing message.
func (e *SavingsError) ErrorMessage() string {
	return e.Message
}

// NewSavingsError creates a new SavingsError with the given code and message.
func NewSavingsError(code SavingsErrorCode, message string, err error) *SavingsError {
	return &SavingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
