// Package cli provides the Cobra command tree and dependency wiring for
// dockergen. This file defines the Dependencies struct (Composition Root)
// that builds the logger, terminal helpers and the configure pipeline.
package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/modu-ai/dockergen/internal/config"
	"github.com/modu-ai/dockergen/internal/scaffold"
	"github.com/modu-ai/dockergen/internal/template"
	"github.com/modu-ai/dockergen/internal/ui"
)

// Dependencies holds the services used by CLI commands. It is the only
// place where concrete types are instantiated and wired together.
type Dependencies struct {
	Headless *ui.HeadlessManager
	Theme    *ui.Theme
	Logger   *slog.Logger

	// NewConfigurator builds the pipeline once the logger and write hook
	// for a command are known. Tests replace it.
	NewConfigurator func(logger *slog.Logger, opts ...template.DeployerOption) (*scaffold.Configurator, error)

	// ConfigLoader builds the project config loader.
	ConfigLoader func(logger *slog.Logger) *config.Loader
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. Logging is
// discarded until a command configures its own level.
func InitDependencies() {
	deps = &Dependencies{
		Headless:        ui.NewHeadlessManager(),
		Theme:           ui.NewTheme(),
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewConfigurator: scaffold.New,
		ConfigLoader:    config.NewLoader,
	}
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
