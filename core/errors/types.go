// ABOUTME: Custom error types for the core business logic
// ABOUTME: Distinguishes configuration problems from upstream API and page failures

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents an invalid or missing configuration value
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a failed call to an upstream service,
// either the headline API or an article page
type ExternalAPIError struct {
	StatusCode int
	// Code is the upstream error code when the payload carries one
	Code    string
	Message string
	API     string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("external API error from %s: %d %s - %s", e.API, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// AsExternalAPI returns the ExternalAPIError wrapped in err, if any
func AsExternalAPI(err error) (*ExternalAPIError, bool) {
	var apiErr *ExternalAPIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
