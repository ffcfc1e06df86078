package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAlreadyRegistered is returned when a signup OTP is requested for an existing account.
	ErrAlreadyRegistered = errors.New("email is already registered")
	// ErrNotFound is returned when no account exists for the given email.
	ErrNotFound = errors.New("account not found")
	// ErrInvalidOTP is returned when a verification code is wrong, expired, or already used.
	ErrInvalidOTP = errors.New("invalid or expired verification code")
	// ErrInvalidCredentials is returned when login identifier or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotVerified is returned when credentials match but the account never completed verification.
	ErrNotVerified = errors.New("account not verified")
	// ErrDuplicateIdentity is returned when the insert loses a uniqueness race in the store.
	ErrDuplicateIdentity = errors.New("account already exists")
	// ErrNotificationFailed is returned when the verification email could not be sent.
	ErrNotificationFailed = errors.New("failed to send verification email")
	// ErrUploadFailed is returned when a file could not be written to object storage.
	ErrUploadFailed = errors.New("file upload failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrAlreadyRegistered:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_REGISTERED")
	case ErrNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case ErrInvalidOTP:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_OTP")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrNotVerified:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_VERIFIED")
	case ErrDuplicateIdentity:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_IDENTITY")
	case ErrNotificationFailed:
		return NewHTTPError(http.StatusBadGateway, err.Error(), "NOTIFICATION_FAILED")
	case ErrUploadFailed:
		return NewHTTPError(http.StatusBadGateway, err.Error(), "UPLOAD_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
