package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthNotLoggedIn  ErrorCode = "AUTH-001"
	ErrCodeAuthRoleMismatch ErrorCode = "AUTH-002"
	ErrCodeAuthLoginFailed  ErrorCode = "AUTH-003"
	ErrCodeAuthSignupFailed ErrorCode = "AUTH-004"
	ErrCodeAuthTokenStore   ErrorCode = "AUTH-005"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest     ErrorCode = "API-001"
	ErrCodeAPIResponse    ErrorCode = "API-002"
	ErrCodeAPIUnavailable ErrorCode = "API-003"

	// Cart errors (CART-001 to CART-099)
	ErrCodeCartEmpty    ErrorCode = "CART-001"
	ErrCodeCartCheckout ErrorCode = "CART-002"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
)

// ShopError represents an enhanced error with code, suggestions, and documentation
type ShopError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *ShopError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ShopError) Unwrap() error {
	return e.Cause
}

// New creates a new ShopError
func New(code ErrorCode, message string) *ShopError {
	return &ShopError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ShopError wrapping an underlying cause
func Wrap(code ErrorCode, message string, cause error) *ShopError {
	return &ShopError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestions attaches remediation hints to the error
func (e *ShopError) WithSuggestions(suggestions ...string) *ShopError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// NotLoggedIn builds the standard "no session" error for a role
func NotLoggedIn(role string) *ShopError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestions(fmt.Sprintf("run 'shopctl auth login --role %s' first", role))
}

// RoleMismatch builds the standard role-gate refusal error
func RoleMismatch(have, want string) *ShopError {
	return New(ErrCodeAuthRoleMismatch,
		fmt.Sprintf("logged in as %s, but this command requires the %s role", have, want))
}
