// Package scaffold wires the scanner, resolver, catalog and deployer into
// the single configure pipeline: scan the target directory, resolve the
// parameters, then render and write the artifact set for the platform.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/modu-ai/dockergen/internal/core/platform"
	"github.com/modu-ai/dockergen/internal/core/project"
	"github.com/modu-ai/dockergen/internal/prompt"
	"github.com/modu-ai/dockergen/internal/template"
)

// ErrNoTarget indicates Options.Dir was empty.
var ErrNoTarget = errors.New("scaffold: target directory is required")

// Options describes one configure invocation.
type Options struct {
	// Dir is the target directory. It is scanned and receives the artifacts.
	Dir string

	// Platform skips the platform request when non-zero.
	Platform platform.Kind

	// Source answers parameter requests. Nil means every request gets no
	// value.
	Source prompt.Source
}

// Result is the outcome of a successful invocation.
type Result struct {
	Config platform.ResolvedConfig

	// Files lists the artifact names in write order, relative to Dir.
	Files []string

	// Artifacts holds rendered content. Only Plan fills it.
	Artifacts []template.Artifact
}

// Configurator runs the configure pipeline.
type Configurator struct {
	Scanner  project.Scanner
	Resolver platform.Resolver
	Catalog  template.Catalog
	Deployer template.Deployer
	Logger   *slog.Logger
}

// New creates a Configurator over the embedded templates with default
// components. Pass deployer options to observe writes.
func New(logger *slog.Logger, opts ...template.DeployerOption) (*Configurator, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	catalog, err := template.NewEmbeddedCatalog()
	if err != nil {
		return nil, err
	}

	return &Configurator{
		Scanner:  project.NewScanner(logger),
		Resolver: platform.NewResolver(logger),
		Catalog:  catalog,
		Deployer: template.NewDeployer(logger, opts...),
		Logger:   logger,
	}, nil
}

// Configure scans opts.Dir, resolves the parameters and writes the artifact
// set into opts.Dir, overwriting existing files of the same name.
func (c *Configurator) Configure(ctx context.Context, opts Options) (*Result, error) {
	cfg, specs, err := c.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	files, err := c.Deployer.Render(ctx, opts.Dir, cfg, specs)
	if err != nil {
		if len(files) > 0 {
			c.logger().Warn("artifact set partially written", "dir", opts.Dir, "written", files)
		}
		return nil, err
	}

	c.logger().Info("artifacts generated", "platform", cfg.Kind, "dir", opts.Dir, "files", len(files))
	return &Result{Config: cfg, Files: files}, nil
}

// Plan runs the pipeline up to rendering and returns the artifacts without
// writing anything.
func (c *Configurator) Plan(ctx context.Context, opts Options) (*Result, error) {
	cfg, specs, err := c.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	artifacts, err := c.Deployer.Generate(ctx, cfg, specs)
	if err != nil {
		return nil, err
	}

	files := make([]string, len(artifacts))
	for i, a := range artifacts {
		files[i] = a.Name
	}
	return &Result{Config: cfg, Files: files, Artifacts: artifacts}, nil
}

// prepare runs the scan, resolve and catalog stages.
func (c *Configurator) prepare(ctx context.Context, opts Options) (platform.ResolvedConfig, []template.ArtifactSpec, error) {
	var zero platform.ResolvedConfig

	if opts.Dir == "" {
		return zero, nil, ErrNoTarget
	}
	if err := ctx.Err(); err != nil {
		return zero, nil, err
	}

	scan, err := c.scan(opts.Dir)
	if err != nil {
		return zero, nil, err
	}

	if err := ctx.Err(); err != nil {
		return zero, nil, err
	}

	cfg, err := c.Resolver.Resolve(ctx, opts.Dir, scan, opts.Platform, opts.Source)
	if err != nil {
		return zero, nil, err
	}
	c.logger().Debug("configuration resolved",
		"platform", cfg.Kind, "os", cfg.OS, "port", cfg.Port, "image", cfg.ImageName)

	if err := ctx.Err(); err != nil {
		return zero, nil, err
	}

	specs, err := c.Catalog.TemplatesFor(cfg.Kind)
	if err != nil {
		return zero, nil, err
	}
	return cfg, specs, nil
}

// scan inspects dir. A missing dir scans as empty so the deployer can
// create it; a dir that is a regular file is an invalid target.
func (c *Configurator) scan(dir string) (*project.ScanResult, error) {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c.logger().Debug("target directory does not exist yet", "dir", dir)
		return &project.ScanResult{}, nil
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("%w: %s", template.ErrInvalidTarget, dir)
	}

	scan, err := c.Scanner.Scan(dir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return scan, nil
}

func (c *Configurator) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}
