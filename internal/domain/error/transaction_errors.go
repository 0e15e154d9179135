// Package error defines domain-specific errors for the ledger.
package error

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist or belongs to another user.
	ErrTransactionNotFound = newKindError(ErrNotFound, "transaction not found")

	// ErrInvalidTransactionAmount is returned when the amount is not positive.
	ErrInvalidTransactionAmount = newKindError(ErrValidation, "amount must be greater than zero")

	// ErrInvalidTransactionKind is returned when the kind is not a known kind.
	ErrInvalidTransactionKind = newKindError(ErrValidation, "kind must be 'income' or 'expense'")

	// ErrInvalidWallet is returned when the wallet is not a known wallet.
	ErrInvalidWallet = newKindError(ErrValidation, "wallet must be 'cash' or 'online'")

	// ErrMissingCategory is returned when the category is empty.
	ErrMissingCategory = newKindError(ErrValidation, "category is required")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = newKindError(ErrValidation, "description too long")

	// ErrSameWalletTransfer is returned when a wallet transfer targets its own source.
	ErrSameWalletTransfer = newKindError(ErrValidation, "source and destination wallets must differ")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is the kind (01 validation, 02 not found, 03 conservation, 99 internal).
type TransactionErrorCode string

const (
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionKind   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidWallet            TransactionErrorCode = "TXN-010003"
	ErrCodeMissingCategory          TransactionErrorCode = "TXN-010004"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010007"
	ErrCodeSameWalletTransfer       TransactionErrorCode = "TXN-010008"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the API error code.
func (e *TransactionError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the client-facing message.
func (e *TransactionError) ErrorMessage() string {
	return e.Message
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
