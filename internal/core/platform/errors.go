// Package platform resolves the target platform and its parameters into a
// ResolvedConfig, the single value every artifact template renders from.
package platform

import (
	"errors"
	"fmt"

	"github.com/modu-ai/dockergen/internal/prompt"
)

// Sentinel errors for platform resolution.
var (
	// ErrProjectFileNotFound indicates the project descriptor required by the
	// resolved platform is missing. Add the file and retry.
	ErrProjectFileNotFound = errors.New("platform: project file not found")

	// ErrConfigurationIncomplete indicates a parameter without a default was
	// not supplied.
	ErrConfigurationIncomplete = errors.New("platform: configuration incomplete")

	// ErrInvalidParameter indicates a supplied parameter failed validation.
	ErrInvalidParameter = errors.New("platform: invalid parameter")

	// ErrUnsupportedPlatform indicates a platform outside the supported set.
	ErrUnsupportedPlatform = errors.New("platform: unsupported platform")
)

// ProjectFileNotFoundError names the file pattern a platform needed.
type ProjectFileNotFoundError struct {
	Kind    Kind
	Pattern string
	Dir     string
}

// Error implements the error interface.
func (e *ProjectFileNotFoundError) Error() string {
	return fmt.Sprintf("no %s file found in %s (required for %s)", e.Pattern, e.Dir, e.Kind)
}

// Unwrap returns ErrProjectFileNotFound.
func (e *ProjectFileNotFoundError) Unwrap() error {
	return ErrProjectFileNotFound
}

// ParameterError reports a supplied value that failed validation.
type ParameterError struct {
	Field   prompt.Field
	Value   string
	Message string
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
