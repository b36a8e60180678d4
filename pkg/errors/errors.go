package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrLoginRequired = errors.New("login required")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrBackend       = errors.New("backend request failed")
	ErrInternal      = errors.New("internal error")
)

// AppError represents a structured application error with HTTP status mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// LoginRequired creates a 401 error for purchase actions attempted without a
// stored session. The message matches the storefront's user-facing notice.
func LoginRequired(action string) *AppError {
	return &AppError{
		Code:    "LOGIN_REQUIRED",
		Message: fmt.Sprintf("Please log in before %s!", action),
		Status:  http.StatusUnauthorized,
		Err:     ErrLoginRequired,
	}
}

// EmptyCart creates a 400 error for a checkout attempted on an empty cart.
func EmptyCart() *AppError {
	return &AppError{
		Code:    "EMPTY_CART",
		Message: "Your cart is empty!",
		Status:  http.StatusBadRequest,
		Err:     ErrEmptyCart,
	}
}

// BackendUnavailable creates a 502 error for a transport-level failure talking
// to the catalog backend. The failed call is terminal for the user action; the
// user recovers by retrying the gesture.
func BackendUnavailable(op string, err error) *AppError {
	return &AppError{
		Code:    "BACKEND_UNAVAILABLE",
		Message: fmt.Sprintf("%s is currently unavailable, please try again", op),
		Status:  http.StatusBadGateway,
		Err:     fmt.Errorf("%w: %s: %w", ErrBackend, op, err),
	}
}

// BackendRejected creates a 502 error for a backend-reported logical failure
// (non-2xx status or an error payload).
func BackendRejected(op string, status int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("%s failed", op)
	}
	return &AppError{
		Code:    "BACKEND_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     fmt.Errorf("%w: %s: status %d", ErrBackend, op, status),
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, ErrLoginRequired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrBackend):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
