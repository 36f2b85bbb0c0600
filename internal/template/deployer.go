package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modu-ai/dockergen/internal/core/platform"
)

// Artifact is a rendered file that has not been written yet.
type Artifact struct {
	Name    string
	Kind    ArtifactKind
	Content []byte
}

// Deployer renders an artifact set and writes it into a target directory.
type Deployer interface {
	// Generate renders and validates every spec in order without touching
	// storage. Any failure aborts before a single file exists.
	Generate(ctx context.Context, cfg platform.ResolvedConfig, specs []ArtifactSpec) ([]Artifact, error)

	// Render generates the artifacts and writes them into dir in catalog
	// order, returning the relative names written. Writing is not
	// transactional: when a write fails, earlier files stay on disk.
	Render(ctx context.Context, dir string, cfg platform.ResolvedConfig, specs []ArtifactSpec) ([]string, error)
}

// WriteHook is called after each artifact is written, with its position
// in the set.
type WriteHook func(name string, index, total int)

// deployer is the concrete implementation of Deployer.
type deployer struct {
	validator Validator
	onWrite   WriteHook
	logger    *slog.Logger
}

// DeployerOption configures a Deployer.
type DeployerOption func(*deployer)

// WithValidator replaces the compose validator. Pass nil to skip validation.
func WithValidator(v Validator) DeployerOption {
	return func(d *deployer) {
		d.validator = v
	}
}

// WithWriteHook registers a callback for completed writes.
func WithWriteHook(hook WriteHook) DeployerOption {
	return func(d *deployer) {
		d.onWrite = hook
	}
}

// NewDeployer creates a Deployer that validates compose artifacts against
// the embedded schema. A nil logger discards output.
func NewDeployer(logger *slog.Logger, opts ...DeployerOption) Deployer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d := &deployer{validator: NewValidator(), logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Generate implements Deployer.
func (d *deployer) Generate(ctx context.Context, cfg platform.ResolvedConfig, specs []ArtifactSpec) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := spec.Render(cfg)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", spec.Name, err)
		}

		if spec.Kind == ArtifactCompose && d.validator != nil {
			if err := d.validator.ValidateCompose(content); err != nil {
				return nil, fmt.Errorf("validate %s: %w", spec.Name, err)
			}
		}

		artifacts = append(artifacts, Artifact{Name: spec.Name, Kind: spec.Kind, Content: content})
	}
	return artifacts, nil
}

// Render implements Deployer.
func (d *deployer) Render(ctx context.Context, dir string, cfg platform.ResolvedConfig, specs []ArtifactSpec) ([]string, error) {
	dir = filepath.Clean(dir)

	for _, spec := range specs {
		if err := validateDeployPath(dir, spec.Name); err != nil {
			return nil, err
		}
	}

	artifacts, err := d.Generate(ctx, cfg, specs)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := prepareTarget(dir); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		destPath := filepath.Join(dir, filepath.FromSlash(a.Name))
		if parent := filepath.Dir(destPath); parent != dir {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return written, &WriteError{Path: a.Name, Err: err}
			}
		}
		if err := os.WriteFile(destPath, a.Content, 0o644); err != nil {
			return written, &WriteError{Path: a.Name, Err: err}
		}
		d.logger.Debug("artifact written", "path", destPath, "bytes", len(a.Content))
		written = append(written, a.Name)
		if d.onWrite != nil {
			d.onWrite(a.Name, len(written), len(artifacts))
		}
	}

	return written, nil
}

// prepareTarget creates dir when missing and rejects non-directories.
func prepareTarget(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrInvalidTarget, dir)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: dir, Err: err}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s: %v", ErrInvalidTarget, dir, err)
	}
}

// validateDeployPath ensures an artifact name does not escape dir.
func validateDeployPath(dir, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if relPath == "" || cleaned == "." {
		return fmt.Errorf("%w: empty artifact name", ErrPathTraversal)
	}

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve target directory: %w", err)
	}

	absPath := filepath.Join(absDir, cleaned)
	if !strings.HasPrefix(absPath, absDir+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes target directory", ErrPathTraversal, relPath)
	}

	return nil
}
