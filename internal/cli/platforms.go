package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/dockergen/internal/core/platform"
	"github.com/modu-ai/dockergen/internal/template"
)

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms and the files generated for each",
		Args:  cobra.NoArgs,
		RunE:  runPlatforms,
	}
}

func runPlatforms(cmd *cobra.Command, _ []string) error {
	catalog, err := template.NewEmbeddedCatalog()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, kind := range platform.Kinds() {
		specs, err := catalog.TemplatesFor(kind)
		if err != nil {
			return err
		}
		names := make([]string, len(specs))
		for i, s := range specs {
			names[i] = s.Name
		}

		pairs := []kvPair{{"Default port", strconv.Itoa(kind.DefaultPort())}}
		if kind.RequiresOS() {
			pairs = append(pairs, kvPair{"OS", strings.Join(platform.OSNames(), ", ")})
		}
		if pf := kind.ProjectFile(); pf != "" {
			pairs = append(pairs, kvPair{"Requires", pf})
		}
		pairs = append(pairs, kvPair{"Files", strings.Join(names, ", ")})

		_, _ = fmt.Fprintln(out, renderCard(kind.String(), renderKeyValueLines(pairs)))
	}
	return nil
}
