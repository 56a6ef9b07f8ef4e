package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gobound/pkg/analysis"
	"github.com/philipparndt/gobound/pkg/geometry"
	"github.com/philipparndt/gobound/pkg/scene"
	"github.com/philipparndt/gobound/pkg/watcher"
	"github.com/spf13/cobra"
)

var cullWatch bool

var cullCmd = &cobra.Command{
	Use:   "cull [scene]",
	Short: "Classify scene volumes against the camera frustum",
	Long: `Load a YAML or TOML scene and report for every volume whether it is inside,
partially inside or outside the camera's view frustum.
With --watch the scene is re-evaluated whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runCull,
}

func init() {
	rootCmd.AddCommand(cullCmd)

	cullCmd.Flags().BoolVarP(&cullWatch, "watch", "w", false, "Re-run when the scene file changes")
}

func runCull(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	if err := printCull(out, path); err != nil {
		return err
	}
	if !cullWatch {
		return nil
	}

	fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{path}, func(string) {
		fmt.Fprintf(out, "\n%s changed\n", path)
		if err := printCull(out, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	fw.Start()

	fmt.Fprintf(out, "\nWatching %s, press Ctrl+C to stop\n", path)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

func printCull(out io.Writer, path string) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	frustum, err := s.Frustum()
	if err != nil {
		return err
	}
	results, err := s.Cull(frustum)
	if err != nil {
		return err
	}

	visible := 0
	fmt.Fprintf(out, "%-20s %-8s %s\n", "NAME", "KIND", "RESULT")
	for _, r := range results {
		fmt.Fprintf(out, "%-20s %-8s %s\n", r.Name, r.Kind, analysis.FormatContainment(r.Result))
		if r.Result != geometry.Disjoint {
			visible++
		}
	}
	fmt.Fprintf(out, "\n%d of %d volumes visible\n", visible, len(results))
	return nil
}
