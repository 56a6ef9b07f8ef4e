package main

import (
	"fmt"

	"github.com/philipparndt/gobound/pkg/scene"
	"github.com/spf13/cobra"
)

var planeValues []float64

var classifyCmd = &cobra.Command{
	Use:   "classify [scene]",
	Short: "Report which side of a plane each scene volume lies on",
	Long: `Classify every volume of a scene against the plane a*x + b*y + c*z + d = 0.
Volumes are in front when they lie entirely on the side the normal points to.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().Float64SliceVar(&planeValues, "plane", nil, "Plane as a,b,c,d")
	_ = classifyCmd.MarkFlagRequired("plane")
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	plane, err := toPlane(planeValues)
	if err != nil {
		return err
	}

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	sides, err := s.Classify(plane)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Plane: %v\n\n", plane)
	fmt.Fprintf(out, "%-20s %-8s %s\n", "NAME", "KIND", "SIDE")
	for _, side := range sides {
		fmt.Fprintf(out, "%-20s %-8s %s\n", side.Name, side.Kind, side.Result)
	}
	return nil
}
