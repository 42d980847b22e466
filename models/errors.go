package models

import "net/http"

// AppError is an operational error surfaced to the caller with a stable
// machine-readable code and a translatable message key. Anything that is
// not an AppError is logged and returned as a generic internal error.
type AppError struct {
	Code       string
	Status     int
	MessageKey string
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.MessageKey
}

const (
	CodeNotFound          = "NOT_FOUND"
	CodeUnavailable       = "UNAVAILABLE"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeForbidden         = "FORBIDDEN"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInternal          = "INTERNAL_ERROR"
)

func ErrNotFound(messageKey string) *AppError {
	return &AppError{Code: CodeNotFound, Status: http.StatusNotFound, MessageKey: messageKey}
}

func ErrUnavailable(messageKey string) *AppError {
	return &AppError{Code: CodeUnavailable, Status: http.StatusBadRequest, MessageKey: messageKey}
}

func ErrInsufficientStock(messageKey string) *AppError {
	return &AppError{Code: CodeInsufficientStock, Status: http.StatusBadRequest, MessageKey: messageKey}
}

func ErrInvalidTransition(messageKey string) *AppError {
	return &AppError{Code: CodeInvalidTransition, Status: http.StatusBadRequest, MessageKey: messageKey}
}

func ErrForbidden(messageKey string) *AppError {
	return &AppError{Code: CodeForbidden, Status: http.StatusForbidden, MessageKey: messageKey}
}

func ErrTooManyRequests(messageKey string) *AppError {
	return &AppError{Code: CodeTooManyRequests, Status: http.StatusTooManyRequests, MessageKey: messageKey}
}

func ErrValidation(messageKey string) *AppError {
	return &AppError{Code: CodeValidationFailed, Status: http.StatusBadRequest, MessageKey: messageKey}
}

func ErrUnauthorized(messageKey string) *AppError {
	return &AppError{Code: CodeUnauthorized, Status: http.StatusUnauthorized, MessageKey: messageKey}
}
