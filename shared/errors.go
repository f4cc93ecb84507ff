package shared

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned by the repositories and services.
// Each kind maps to exactly one HTTP status code.
const (
	KindMissingField       = "MISSING_FIELD"
	KindInvalidCombination = "INVALID_COMBINATION"
	KindTypeMismatch       = "TYPE_MISMATCH"
	KindLengthMismatch     = "LENGTH_MISMATCH"
	KindNotFound           = "NOT_FOUND"
	KindInvalidState       = "INVALID_STATE"
	KindPermissionDenied   = "PERMISSION_DENIED"
	KindExpired            = "EXPIRED"
	KindInvalidSignature   = "INVALID_SIGNATURE"
	KindMalformed          = "MALFORMED"
	KindInternal           = "INTERNAL_ERROR"
)

type AppError struct {
	StatusCode int
	Kind       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsKind(err error, kind string) bool {
	if appErr, ok := GetAppError(err); ok {
		return appErr.Kind == kind
	}
	return false
}

func NewMissingFieldError(field string) *AppError {
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Kind:       KindMissingField,
		Message:    fmt.Sprintf("Must have '%s'.", field),
	}
}

func NewInvalidCombinationError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Kind: KindInvalidCombination, Message: message}
}

func NewTypeMismatchError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Kind: KindTypeMismatch, Message: message}
}

func NewLengthMismatchError(field string) *AppError {
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Kind:       KindLengthMismatch,
		Message:    fmt.Sprintf("Length of '%s' does not match.", field),
	}
}

func NewNotFoundError(what string) *AppError {
	return &AppError{
		StatusCode: http.StatusNotFound,
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("No such %s.", what),
	}
}

func NewInvalidStateError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Kind: KindInvalidState, Message: message}
}

func NewPermissionDeniedError() *AppError {
	return &AppError{StatusCode: http.StatusForbidden, Kind: KindPermissionDenied, Message: "Permission denied."}
}

func NewExpiredTokenError() *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Kind: KindExpired, Message: "Token has expired."}
}

func NewInvalidSignatureError() *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Kind: KindInvalidSignature, Message: "Invalid token signature."}
}

func NewMalformedTokenError() *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Kind: KindMalformed, Message: "Malformed token."}
}

func NewBadRequestError(err error, message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Kind: KindMissingField, Message: message, Err: err}
}

func NewInternalError(err error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal server error.", Err: err}
}
