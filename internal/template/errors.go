// Package template holds the artifact catalog for every supported platform,
// the strict text/template renderer that fills it from a ResolvedConfig, and
// the deployer that writes the rendered set into a target directory.
package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template is not embedded.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced a field the
	// context does not have.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template syntax survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates an artifact name escapes the target directory.
	ErrPathTraversal = errors.New("template: path escapes target directory")

	// ErrInvalidArtifact indicates rendered content failed validation.
	ErrInvalidArtifact = errors.New("template: invalid artifact")

	// ErrInvalidTarget indicates the target exists and is not a directory.
	ErrInvalidTarget = errors.New("template: target is not a directory")

	// ErrWriteFailed indicates storage rejected an artifact write.
	ErrWriteFailed = errors.New("template: write failed")
)

// WriteError names the artifact whose write failed and wraps the cause.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns both ErrWriteFailed and the underlying I/O error.
func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}
