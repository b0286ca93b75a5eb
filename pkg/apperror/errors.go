package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrMissingOrderID = &AppError{Code: http.StatusBadRequest, Message: "Order ID is required"}
	ErrOrderNotFound  = &AppError{Code: http.StatusNotFound, Message: "Order not found"}
)

// GetAppError converts an error to AppError if possible. Anything that is
// not already an AppError is treated as an internal failure and keeps its
// original message, which is what the invoice frontend expects in the
// error body.
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
