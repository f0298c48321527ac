// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError indicates an order or menu failed validation.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s: %s", e.Field, e.Message, strings.Join(e.Details, "; "))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// ConstructionError indicates a pizza could not be built. The partly
// assembled pizza is discarded.
type ConstructionError struct {
	Cause   error
	OrderID string
	Token   string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("order %s (%s) could not be prepared: %v", e.OrderID, e.Token, e.Cause)
}

func (e *ConstructionError) Unwrap() error {
	return e.Cause
}

// NewConstructionError creates a new construction error.
func NewConstructionError(orderID, token string, cause error) *ConstructionError {
	return &ConstructionError{
		OrderID: orderID,
		Token:   token,
		Cause:   cause,
	}
}

// ConfigurationError indicates a config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
