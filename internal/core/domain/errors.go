// Package domain defines the core domain models for unityvault.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Codes follow the format UV-{AREA}-{NNNN}.
type DomainError struct {
	Code    string // Error code (e.g., "UV-TOK-4090")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Entropy Errors (ENT)
// ============================================================================

var (
	// ErrEntropyUnavailable indicates the secure random source could not be read.
	// Token generation must fail rather than fall back to a weaker generator.
	ErrEntropyUnavailable = NewDomainError("UV-ENT-5030", "entropy source unavailable")
)

// ============================================================================
// Token Errors (TOK)
// ============================================================================

var (
	// ErrTokenAlreadyArmed indicates a token is active and generation is blocked.
	ErrTokenAlreadyArmed = NewDomainError("UV-TOK-4090", "token already armed")

	// ErrNoActiveToken indicates an operation needed an active token.
	ErrNoActiveToken = NewDomainError("UV-TOK-4040", "no active token")
)

// ============================================================================
// Vault Errors (VLT)
// ============================================================================

var (
	// ErrUnityCheckFailed indicates the active token failed the unity predicate.
	ErrUnityCheckFailed = NewDomainError("UV-VLT-4220", "unity check failed")

	// ErrVaultStorage indicates the vault backend rejected an operation.
	ErrVaultStorage = NewDomainError("UV-VLT-5001", "vault storage error")

	// ErrVaultClosed indicates the vault has been closed.
	ErrVaultClosed = NewDomainError("UV-VLT-5002", "vault closed")
)

// ============================================================================
// Configuration Errors (CFG)
// ============================================================================

var (
	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = NewDomainError("UV-CFG-4000", "invalid configuration")
)
