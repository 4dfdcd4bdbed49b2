package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorType classifies application errors for HTTP mapping.
type ErrorType string

const (
	// ErrorTypeValidation indicates malformed or missing input
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInvalidCredentials indicates a failed login. Unknown email
	// and wrong password both map here so account existence never leaks.
	ErrorTypeInvalidCredentials ErrorType = "INVALID_CREDENTIALS"

	// ErrorTypeMissingToken indicates a protected route without a bearer token
	ErrorTypeMissingToken ErrorType = "MISSING_TOKEN"

	// ErrorTypeInvalidToken indicates a token that failed verification or expired
	ErrorTypeInvalidToken ErrorType = "INVALID_TOKEN"

	// ErrorTypeDuplicate indicates a uniqueness conflict (user email, favorite pair)
	ErrorTypeDuplicate ErrorType = "DUPLICATE"

	// ErrorTypeNotFound indicates a missing resource
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeRatingUpdate indicates a failed step of the rating recompute
	ErrorTypeRatingUpdate ErrorType = "RATING_UPDATE"

	// ErrorTypeUnavailable indicates an unreachable or timed-out external dependency
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE"

	// ErrorTypeInternal indicates an unclassified server error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError is the application error carried across layer boundaries.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{Type: ErrorTypeInvalidCredentials, Message: "Invalid credentials"}
}

func NewMissingTokenError() *AppError {
	return &AppError{Type: ErrorTypeMissingToken, Message: "Access denied. No token provided."}
}

func NewInvalidTokenError() *AppError {
	return &AppError{Type: ErrorTypeInvalidToken, Message: "Invalid token."}
}

func NewDuplicateError(message string) *AppError {
	return &AppError{Type: ErrorTypeDuplicate, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// NewRatingUpdateError tags a failed rating submission with the step that
// broke (upsert, recompute) so the consistency gap is diagnosable. Retryable
// failures classify as unavailable like every other store error.
func NewRatingUpdateError(step string, err error) *AppError {
	if retryable(err) {
		return NewUnavailableError("Service temporarily unavailable", err)
	}
	return &AppError{
		Type:    ErrorTypeRatingUpdate,
		Message: fmt.Sprintf("rating update failed at %s", step),
		Err:     err,
	}
}

func NewUnavailableError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeUnavailable, Message: message, Err: err}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// NewStoreError classifies a failed store call. A deadline hit or an
// unreachable dependency is transient and the caller may retry; anything
// else is an internal error.
func NewStoreError(message string, err error) *AppError {
	if retryable(err) {
		return NewUnavailableError("Service temporarily unavailable", err)
	}
	return NewInternalError(message, err)
}

func retryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// TypeOf extracts the error type, defaulting to internal for plain errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// HTTPStatus maps an error to its response status. Duplicates surface as
// 400 rather than 409, matching the API's existing convention.
func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case ErrorTypeValidation, ErrorTypeInvalidCredentials, ErrorTypeDuplicate:
		return http.StatusBadRequest
	case ErrorTypeMissingToken:
		return http.StatusUnauthorized
	case ErrorTypeInvalidToken:
		return http.StatusForbidden
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-facing message for an error. Unclassified
// errors get a generic message so internals never leak to responses.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type != ErrorTypeInternal {
		return appErr.Message
	}
	return "Server error"
}
