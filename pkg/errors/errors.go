package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeMissingField      ErrorType = "missing_field"
	ErrorTypeEmptyFilename     ErrorType = "empty_filename"
	ErrorTypeUnsupportedType   ErrorType = "unsupported_type"
	ErrorTypePayloadTooLarge   ErrorType = "payload_too_large"
	ErrorTypeExtractionFailure ErrorType = "extraction_failure"
	ErrorTypeWriteFailure      ErrorType = "write_failure"
	ErrorTypeInternal          ErrorType = "internal"
)

// Client-facing messages for upload validation.
const (
	MessageMissingField  = "No file provided/Check the key, spelling or any space after or in the key."
	MessageEmptyFilename = "No file selected."
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewMissingFieldError reports a request without a "file" part.
func NewMissingFieldError() *AppError {
	return &AppError{
		Type:       ErrorTypeMissingField,
		Message:    MessageMissingField,
		StatusCode: http.StatusBadRequest,
	}
}

// NewEmptyFilenameError reports a "file" part sent without a filename.
func NewEmptyFilenameError() *AppError {
	return &AppError{
		Type:       ErrorTypeEmptyFilename,
		Message:    MessageEmptyFilename,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUnsupportedTypeError reports a filename outside the allowed extensions.
func NewUnsupportedTypeError(filename string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnsupportedType,
		Message:    fmt.Sprintf("%s not allowed. Please send pdf format only.", filename),
		StatusCode: http.StatusUnsupportedMediaType,
	}
}

// NewPayloadTooLargeError reports an upload over the configured size limit.
func NewPayloadTooLargeError(limit int64, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypePayloadTooLarge,
		Message:    fmt.Sprintf("File too large. Maximum size is %d bytes.", limit),
		StatusCode: http.StatusRequestEntityTooLarge,
		Cause:      cause,
	}
}

// NewExtractionError reports a PDF that could not be opened or read.
func NewExtractionError(filename string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExtractionFailure,
		Message:    fmt.Sprintf("Could not extract text from %s. The file may be corrupt or not a valid PDF.", filename),
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewWriteError reports a failure persisting the upload or its outputs.
func NewWriteError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeWriteFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
