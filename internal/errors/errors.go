package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Error codes for the pipeline failure domains
const (
	CodeConfigInvalid       = "CONFIG_INVALID"
	CodeIngestion           = "INGESTION_ERROR"
	CodeSchemaIntrospection = "SCHEMA_INTROSPECTION_ERROR"
	CodeSynthesisUnavail    = "SYNTHESIS_UNAVAILABLE"
	CodeRejectedQuery       = "REJECTED_QUERY"
	CodeExecution           = "EXECUTION_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func IngestionError(message string) *AppError {
	return New(CodeIngestion, message)
}

func SynthesisUnavailable(message string) *AppError {
	return New(CodeSynthesisUnavail, message)
}

func RejectedQuery(message string) *AppError {
	return New(CodeRejectedQuery, message)
}

// ExecutionError carries the offending query text so callers can show both
// the attempted SQL and the failure.
func ExecutionError(query string, cause error) *AppError {
	return &AppError{
		Code:    CodeExecution,
		Message: fmt.Sprintf("query execution failed for %q", query),
		Cause:   cause,
	}
}
