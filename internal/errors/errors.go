// Package errors provides custom error types for the debtpilot API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Debt errors.
var (
	ErrDebtNotFound  = &AppError{Code: "DEBT_NOT_FOUND", Message: "Debt not found", StatusCode: http.StatusNotFound}
	ErrInvalidDebt   = &AppError{Code: "INVALID_DEBT", Message: "Debt values are invalid", StatusCode: http.StatusBadRequest}
	ErrDebtInactive  = &AppError{Code: "DEBT_INACTIVE", Message: "Debt is no longer active", StatusCode: http.StatusConflict}
	ErrNoActiveDebts = &AppError{Code: "NO_ACTIVE_DEBTS", Message: "No active debts to plan for", StatusCode: http.StatusUnprocessableEntity}
)

// Payment errors.
var (
	ErrInvalidPayment = &AppError{Code: "INVALID_PAYMENT", Message: "Payment amount must be positive", StatusCode: http.StatusBadRequest}
)

// Strategy errors.
var (
	ErrStrategyNotFound      = &AppError{Code: "STRATEGY_NOT_FOUND", Message: "Strategy not found", StatusCode: http.StatusNotFound}
	ErrNoActiveStrategy      = &AppError{Code: "NO_ACTIVE_STRATEGY", Message: "No active strategy", StatusCode: http.StatusNotFound}
	ErrInvalidHeuristic      = &AppError{Code: "INVALID_HEURISTIC", Message: "Unsupported strategy heuristic", StatusCode: http.StatusBadRequest}
	ErrStrategyInvariant     = &AppError{Code: "STRATEGY_INVARIANT", Message: "More than one active strategy would exist", StatusCode: http.StatusConflict}
	ErrInvalidInsightContext = &AppError{Code: "INVALID_INSIGHT_CONTEXT", Message: "Unsupported insight context", StatusCode: http.StatusBadRequest}
)
