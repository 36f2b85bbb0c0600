package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/dockergen/internal/core/platform"
	"github.com/modu-ai/dockergen/internal/core/project"
)

// scanReport is the YAML document printed by the scan command.
type scanReport struct {
	Dir       string              `yaml:"dir"`
	ImageName string              `yaml:"image_name"`
	Suggested string              `yaml:"suggested_platform,omitempty"`
	Markers   *project.ScanResult `yaml:"markers"`
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Show the project markers configure would detect",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve project path %q: %w", dir, err)
	}

	logger := deps.Logger
	if getBoolFlag(cmd, "verbose") {
		logger = newLogger(cmd.ErrOrStderr(), slog.LevelDebug, "text")
	}

	result, err := project.NewScanner(logger).Scan(absDir)
	if err != nil {
		return fmt.Errorf("scan project: %w", err)
	}

	report := scanReport{
		Dir:       absDir,
		ImageName: platform.ImageName(absDir),
		Markers:   result,
	}
	if kind := platform.Suggest(result); kind.Valid() {
		report.Suggested = kind.String()
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal scan result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
