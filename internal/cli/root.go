package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/dockergen/pkg/version"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dockergen",
		Short: "Generate Dockerfile, compose and .dockerignore files for a project",
		Long: `dockergen inspects a project folder, works out its platform
(Node.js, ASP.NET Core, .NET Core Console or Java) and writes a Dockerfile,
docker-compose files for release and debug, and a .dockerignore.

Parameters come from flags, DOCKERGEN_* environment variables, an optional
.dockergen.yaml in the project folder, or an interactive prompt.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("dockergen %s\n", version.GetFullVersion()))
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(newConfigureCmd(), newPlatformsCmd(), newScanCmd())
	return root
}

// Execute initializes dependencies and runs the root command. Errors are
// printed to stderr before they are returned.
func Execute() error {
	InitDependencies()
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(root.ErrOrStderr(), "%s %v\n", symError(), err)
		return err
	}
	return nil
}
