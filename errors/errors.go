package errors

import (
	"errors"
	"net/http"
)

// AppError carries an error code and the HTTP status it maps to.
// Controllers translate every failure into one of these before writing
// the response envelope.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_ERROR"
	CodeDatabase        = "DATABASE_ERROR"
)

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func InvalidArgument(message string) *AppError {
	return NewAppError(CodeInvalidArgument, message, http.StatusBadRequest)
}

func Unauthorized(message string) *AppError {
	return NewAppError(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(CodeForbidden, message, http.StatusForbidden)
}

func NotFound(message string) *AppError {
	return NewAppError(CodeNotFound, message, http.StatusNotFound)
}

func Conflict(message string) *AppError {
	return NewAppError(CodeConflict, message, http.StatusConflict)
}

func Internal(message string) *AppError {
	return NewAppError(CodeInternal, message, http.StatusInternalServerError)
}

func Database(message string) *AppError {
	return NewAppError(CodeDatabase, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
