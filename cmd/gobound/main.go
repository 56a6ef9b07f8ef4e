package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gobound/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobound",
	Short: "Bounding volume queries for meshes and scenes",
	Long: `gobound computes bounding boxes and spheres for STL meshes and answers
containment, culling, plane and ray queries against scene files written
in YAML or TOML.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
