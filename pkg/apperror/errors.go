package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Errors  []FieldError           `json:"errors,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// String renders the error the way it is surfaced to API callers
func (f FieldError) String() string {
	return f.Field + " " + f.Message
}

func (e *AppError) Error() string {
	return e.Message
}

// Wire-level error codes
const (
	CodeAlreadyRegistered = "ALREADY_REGISTERED"
	CodeNotFound          = "NOT_FOUND"
)

// Common errors
var (
	ErrNotFound         = &AppError{Code: http.StatusNotFound, Message: CodeNotFound}
	ErrInvalidJSON      = &AppError{Code: http.StatusBadRequest, Message: "Invalid JSON"}
	ErrMethodNotAllowed = &AppError{Code: http.StatusMethodNotAllowed, Message: "Method Not Allowed"}
	ErrTooManyRequests  = &AppError{Code: http.StatusTooManyRequests, Message: "Rate limit exceeded. Please try again later."}
)

// NewValidationError creates a new validation error. The first field error
// becomes the top-level message.
func NewValidationError(fieldErrors []FieldError) *AppError {
	message := "Validation failed"
	if len(fieldErrors) > 0 {
		message = fieldErrors[0].String()
	}
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Errors:  fieldErrors,
	}
}

// NewAlreadyRegisteredError signals a duplicate transaction submission
func NewAlreadyRegisteredError(transactionID string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: CodeAlreadyRegistered,
		Details: map[string]interface{}{"transaction_id": transactionID},
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible. Anything else is an
// infrastructure failure: 500 with the message passed through.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
