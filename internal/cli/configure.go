package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modu-ai/dockergen/internal/cli/wizard"
	"github.com/modu-ai/dockergen/internal/config"
	"github.com/modu-ai/dockergen/internal/core/platform"
	"github.com/modu-ai/dockergen/internal/prompt"
	"github.com/modu-ai/dockergen/internal/scaffold"
	"github.com/modu-ai/dockergen/internal/template"
	"github.com/modu-ai/dockergen/internal/ui"
)

func newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure [dir]",
		Short: "Write Docker files for the project in dir",
		Long: `Scan the project in dir (default: current directory), resolve the
platform, OS flavor and port, and write the Docker artifacts into dir.
Existing files with the same names are overwritten.

Parameter precedence: flags, then DOCKERGEN_* environment variables (and
--env-file), then .dockergen.yaml, then the interactive prompt. A port with
no value anywhere uses the platform default.

Examples:
  dockergen configure                          Prompt for anything not configured
  dockergen configure ./api --platform java    Java project, default port
  dockergen configure --platform aspnetcore --os Linux --port 5000 --non-interactive`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: validateConfigureFlags,
		RunE:    runConfigure,
	}

	cmd.Flags().String("platform", "", "Application platform (Node.js, ASP.NET Core, .NET Core Console, Java)")
	cmd.Flags().String("os", "", "Container OS flavor for .NET platforms (Windows, Linux)")
	cmd.Flags().String("port", "", "Port the application listens on")
	cmd.Flags().String("env-file", "", "Read DOCKERGEN_* overrides from a dotenv file")
	cmd.Flags().Bool("non-interactive", false, "Never prompt; missing values use defaults or fail")
	cmd.Flags().Bool("dry-run", false, "Print the artifacts instead of writing them")
	cmd.Flags().Bool("accessible", false, "Use plain line-based prompts")
	return cmd
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateConfigureFlags validates flag values before execution.
func validateConfigureFlags(cmd *cobra.Command, _ []string) error {
	if p := getStringFlag(cmd, "platform"); p != "" {
		if _, err := platform.ParseKind(p); err != nil {
			return fmt.Errorf("invalid --platform value %q: %w", p, err)
		}
	}
	if o := getStringFlag(cmd, "os"); o != "" {
		if _, ok := platform.ParseOS(o); !ok {
			return fmt.Errorf("invalid --os value %q: must be one of: Windows, Linux", o)
		}
	}
	if p := getStringFlag(cmd, "port"); p != "" {
		if _, err := platform.ParsePort(p); err != nil {
			return fmt.Errorf("invalid --port value: %w", err)
		}
	}
	return nil
}

// runConfigure executes the configure pipeline for one target directory.
func runConfigure(cmd *cobra.Command, args []string) error {
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

	stderr := cmd.ErrOrStderr()
	cfg, err := deps.ConfigLoader(deps.Logger).Load(absDir, getStringFlag(cmd, "env-file"))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level := cfg.SlogLevel()
	if getBoolFlag(cmd, "verbose") {
		level = slog.LevelDebug
	}
	logger := newLogger(stderr, level, cfg.LogFormat)

	var explicit platform.Kind
	if p := getStringFlag(cmd, "platform"); p != "" {
		explicit, _ = platform.ParseKind(p) // validated in PreRunE
	}

	interactive := !getBoolFlag(cmd, "non-interactive") && !deps.Headless.IsHeadless()
	src := buildSource(cmd, cfg, interactive)

	dryRun := getBoolFlag(cmd, "dry-run")
	var hookOpts []template.DeployerOption
	var bar *progressHook
	if !dryRun {
		bar = &progressHook{progress: ui.NewProgress(deps.Theme, deps.Headless, stderr)}
		hookOpts = append(hookOpts, template.WithWriteHook(bar.onWrite))
	}

	configurator, err := deps.NewConfigurator(logger, hookOpts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := scaffold.Options{Dir: absDir, Platform: explicit, Source: src}

	out := cmd.OutOrStdout()
	if dryRun {
		result, err := configurator.Plan(ctx, opts)
		if err != nil {
			return configureError(stderr, err)
		}
		printPlan(out, result)
		return nil
	}

	result, err := configurator.Configure(ctx, opts)
	bar.done()
	if err != nil {
		return configureError(stderr, err)
	}

	_, _ = fmt.Fprintln(out, renderSuccessCard("Docker files generated", resultDetails(absDir, result)...))
	return nil
}

// buildSource chains the parameter sources in precedence order.
func buildSource(cmd *cobra.Command, cfg *config.Config, interactive bool) prompt.Source {
	flagValues := map[prompt.Field]string{
		prompt.FieldOS:   getStringFlag(cmd, "os"),
		prompt.FieldPort: getStringFlag(cmd, "port"),
	}

	var interactiveSrc prompt.Source
	if interactive {
		interactiveSrc = wizard.NewSource(getBoolFlag(cmd, "accessible"))
	}

	return prompt.Chain(
		prompt.NewStaticSource(flagValues),
		prompt.NewStaticSource(cfg.PromptValues()),
		interactiveSrc,
	)
}

// configureError turns a cancelled prompt into a clean exit and adds a hint
// for errors the user can fix.
func configureError(w io.Writer, err error) error {
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(w, "Configuration cancelled.")
		return nil
	}

	var pfErr *platform.ProjectFileNotFoundError
	switch {
	case errors.As(err, &pfErr):
		_, _ = fmt.Fprintf(w, "%s Add a %s file to the project or choose another platform.\n", symWarning(), pfErr.Pattern)
	case errors.Is(err, platform.ErrConfigurationIncomplete):
		_, _ = fmt.Fprintf(w, "%s Pass the value as a flag, set it in %s, or run in a terminal to be prompted.\n", symWarning(), config.FileName)
	case errors.Is(err, template.ErrWriteFailed):
		_, _ = fmt.Fprintf(w, "%s Files written before the failure were left in place.\n", symWarning())
	}
	return fmt.Errorf("configure failed: %w", err)
}

func resultDetails(dir string, result *scaffold.Result) []string {
	pairs := []kvPair{
		{"Directory", dir},
		{"Platform", result.Config.Kind.String()},
	}
	if result.Config.OS != "" {
		pairs = append(pairs, kvPair{"OS", string(result.Config.OS)})
	}
	pairs = append(pairs,
		kvPair{"Port", strconv.Itoa(result.Config.Port)},
		kvPair{"Image", result.Config.ImageName},
	)

	details := []string{renderKeyValueLines(pairs), ""}
	for _, f := range result.Files {
		details = append(details, "  "+symSuccess()+" "+f)
	}
	return details
}

// printPlan writes every planned artifact under a header line.
func printPlan(w io.Writer, result *scaffold.Result) {
	for i, a := range result.Artifacts {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, cliPrimary.Bold(true).Render("# "+a.Name))
		_, _ = w.Write(a.Content)
	}
}

// progressHook reports artifact writes on a progress bar started on the
// first write.
type progressHook struct {
	progress ui.Progress
	bar      ui.ProgressBar
}

func (h *progressHook) onWrite(name string, _, total int) {
	if h.bar == nil {
		h.bar = h.progress.Start(name, total)
	}
	h.bar.SetTitle(name)
	h.bar.Increment(1)
}

func (h *progressHook) done() {
	if h != nil && h.bar != nil {
		h.bar.Done()
	}
}
