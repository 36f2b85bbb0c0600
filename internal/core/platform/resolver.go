package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docker/go-connections/nat"

	"github.com/modu-ai/dockergen/internal/core/project"
	"github.com/modu-ai/dockergen/internal/prompt"
)

// Resolver turns scan results and prompted values into a ResolvedConfig.
type Resolver interface {
	// Resolve determines the platform (explicit, or requested from src when
	// explicit is zero), validates the project files it needs, and resolves
	// the OS flavor and port.
	Resolve(ctx context.Context, dir string, scan *project.ScanResult, explicit Kind, src prompt.Source) (ResolvedConfig, error)
}

type resolver struct {
	logger *slog.Logger
}

// NewResolver creates a Resolver. A nil logger discards output.
func NewResolver(logger *slog.Logger) Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &resolver{logger: logger}
}

// Resolve implements Resolver.
func (r *resolver) Resolve(ctx context.Context, dir string, scan *project.ScanResult, explicit Kind, src prompt.Source) (ResolvedConfig, error) {
	if scan == nil {
		scan = &project.ScanResult{}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return ResolvedConfig{}, fmt.Errorf("resolve target path %q: %w", dir, err)
	}

	kind, err := r.resolveKind(ctx, explicit, Suggest(scan), src)
	if err != nil {
		return ResolvedConfig{}, err
	}

	if err := checkProjectFile(kind, scan, absDir); err != nil {
		return ResolvedConfig{}, err
	}

	var osFlavor OS
	if kind.RequiresOS() {
		osFlavor, err = r.resolveOS(ctx, src)
		if err != nil {
			return ResolvedConfig{}, err
		}
	}

	port, err := r.resolvePort(ctx, kind, src)
	if err != nil {
		return ResolvedConfig{}, err
	}

	imageName := ImageName(absDir)
	if err := ValidateImageName(imageName); err != nil {
		r.logger.Warn("derived image name is not a valid docker reference", "image", imageName, "error", err)
	}

	cfg := ResolvedConfig{
		Kind:      kind,
		OS:        osFlavor,
		Port:      port,
		ImageName: imageName,
		Project:   newProjectMetadata(kind, scan, imageName),
	}

	r.logger.Debug("configuration resolved",
		"platform", cfg.Kind.String(),
		"os", string(cfg.OS),
		"port", cfg.Port,
		"image", cfg.ImageName,
	)
	return cfg, nil
}

func (r *resolver) resolveKind(ctx context.Context, explicit, suggested Kind, src prompt.Source) (Kind, error) {
	if explicit != 0 {
		if !explicit.Valid() {
			return 0, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, explicit)
		}
		return explicit, nil
	}

	req := prompt.Request{
		Field:   prompt.FieldPlatform,
		Title:   "Select application platform",
		Options: Names(),
	}
	if suggested.Valid() {
		req.Default = suggested.String()
	}
	ans, err := ask(ctx, src, req)
	if err != nil {
		return 0, err
	}
	if !ans.Set {
		return 0, fmt.Errorf("%w: no value for %q", ErrConfigurationIncomplete, prompt.FieldPlatform)
	}
	return ParseKind(ans.Value)
}

func (r *resolver) resolveOS(ctx context.Context, src prompt.Source) (OS, error) {
	ans, err := ask(ctx, src, prompt.Request{
		Field:   prompt.FieldOS,
		Title:   "Select operating system",
		Options: OSNames(),
	})
	if err != nil {
		return "", err
	}
	if !ans.Set {
		return "", fmt.Errorf("%w: no value for %q", ErrConfigurationIncomplete, prompt.FieldOS)
	}

	osFlavor, ok := ParseOS(ans.Value)
	if !ok {
		return "", &ParameterError{
			Field:   prompt.FieldOS,
			Value:   ans.Value,
			Message: "must be one of " + strings.Join(OSNames(), ", "),
		}
	}
	return osFlavor, nil
}

func (r *resolver) resolvePort(ctx context.Context, kind Kind, src prompt.Source) (int, error) {
	def := kind.DefaultPort()
	ans, err := ask(ctx, src, prompt.Request{
		Field:   prompt.FieldPort,
		Title:   "What port does your app listen on?",
		Default: strconv.Itoa(def),
	})
	if err != nil {
		return 0, err
	}
	if !ans.Set {
		return def, nil
	}
	return ParsePort(ans.Value)
}

// ParsePort validates a literal port. Blank input is not accepted here;
// callers treat it as "use default" before calling.
func ParsePort(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, &ParameterError{Field: prompt.FieldPort, Value: raw, Message: "must not be empty"}
	}

	port, err := nat.ParsePort(value)
	if err != nil {
		return 0, &ParameterError{Field: prompt.FieldPort, Value: raw, Message: "must be a number between 1 and 65535"}
	}
	if port < 1 {
		return 0, &ParameterError{Field: prompt.FieldPort, Value: raw, Message: "must be between 1 and 65535"}
	}
	return port, nil
}

// ask requests a value and folds a blank literal into "no value".
func ask(ctx context.Context, src prompt.Source, req prompt.Request) (prompt.Answer, error) {
	if src == nil {
		return prompt.NoValue(), nil
	}
	ans, err := src.NextValueFor(ctx, req)
	if err != nil {
		return prompt.Answer{}, fmt.Errorf("request %s: %w", req.Field, err)
	}
	if ans.Set && strings.TrimSpace(ans.Value) == "" {
		return prompt.NoValue(), nil
	}
	return ans, nil
}

// checkProjectFile fails when kind needs a marker file the scan did not find.
func checkProjectFile(kind Kind, scan *project.ScanResult, dir string) error {
	var found bool
	switch kind.ProjectFile() {
	case CsprojPattern:
		found = scan.HasCsproj()
	case PomPattern:
		found = scan.HasPom
	default:
		return nil
	}
	if found {
		return nil
	}
	return &ProjectFileNotFoundError{Kind: kind, Pattern: kind.ProjectFile(), Dir: dir}
}
