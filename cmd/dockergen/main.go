// Command dockergen writes Docker build and compose files for a project.
// It exits with status 1 when a command fails.
package main

import (
	"os"

	"github.com/modu-ai/dockergen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
