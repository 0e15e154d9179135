// Package error defines domain-specific errors for the ledger.
package error

// Report domain errors.
var (
	// ErrInvalidReportRange is returned when the export range is inverted.
	ErrInvalidReportRange = newKindError(ErrValidation, "'to' must not be before 'from'")

	// ErrInvalidDateFormat is returned when a date parameter cannot be parsed.
	ErrInvalidDateFormat = newKindError(ErrValidation, "invalid date format, expected YYYY-MM-DD")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is the kind (01 validation, 02 not found, 03 conservation, 99 internal).
type ReportErrorCode string

const (
	ErrCodeInvalidReportRange  ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDateFormat   ReportErrorCode = "RPT-010002"
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the API error code.
func (e *ReportError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the client-facing message.
func (e *ReportError) ErrorMessage() string {
	return e.Message
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
