package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services to the HTTP layer.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound       = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "Email already exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeValidationFailed, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeValidationFailed, "Invalid user role", http.StatusBadRequest)

	// Clubs and events
	ErrClubNotFound     = New(CodeNotFound, "Club not found", http.StatusNotFound)
	ErrClubNotApproved  = New(CodeInvalidStatus, "Club is not approved", http.StatusBadRequest)
	ErrEventNotFound    = New(CodeNotFound, "Event not found", http.StatusNotFound)
	ErrInvalidClubState = New(CodeInvalidStatus, "Invalid club status transition", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Payments
	ErrPaymentProvider = New(CodePaymentProviderError, "Payment provider unavailable", http.StatusBadGateway)
	ErrInvalidSession  = New(CodeInvalidSession, "Checkout session not found or invalid", http.StatusBadRequest)
	ErrFractionalFee   = New(CodeValidationFailed, "Fee must be an exact cent amount", http.StatusBadRequest)

	// Entitlements
	ErrAlreadyMember     = New(CodeConflict, "Active membership already exists for this club", http.StatusConflict)
	ErrAlreadyRegistered = New(CodeConflict, "Registration already exists for this event", http.StatusConflict)
)

func ValidationError(details interface{}) *AppError {
	return &AppError{
		Code:     CodeValidationFailed,
		Message:  "Validation failed",
		Details:  details,
		HTTPCode: http.StatusBadRequest,
	}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// StorageError wraps a persistence failure. Not retried automatically.
func StorageError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Storage operation failed", http.StatusInternalServerError)
}

// ProviderError wraps an upstream payment provider failure. Retryable by the caller.
func ProviderError(err error) *AppError {
	return Wrap(err, CodePaymentProviderError, "Payment provider unavailable", http.StatusBadGateway)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
