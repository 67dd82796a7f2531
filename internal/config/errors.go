// Package config loads optional layout-override files that extend the
// built-in fallback scaffolds with user-defined directories.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout-override operations.
var (
	// ErrOverridesNotFound indicates the overrides file does not exist.
	ErrOverridesNotFound = errors.New("config: layout overrides file not found")

	// ErrInvalidYAML indicates invalid YAML syntax in an overrides file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidOverrides indicates the overrides failed validation.
	ErrInvalidOverrides = errors.New("config: invalid layout overrides")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap ties every validation error to ErrInvalidOverrides for errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidOverrides
}
