package main

import (
	"fmt"

	"github.com/philipparndt/gobound/pkg/analysis"
	"github.com/philipparndt/gobound/pkg/stl"
	"github.com/spf13/cobra"
)

var boundsNearest []float64

var boundsCmd = &cobra.Command{
	Use:   "bounds [file]",
	Short: "Show the bounding box and sphere of an STL file",
	Long:  "Parse an ASCII or binary STL file and report its axis-aligned bounding box, fitted bounding sphere and dimensions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)

	boundsCmd.Flags().Float64SliceVar(&boundsNearest, "nearest", nil, "Also report the vertex nearest to x,y,z")
}

func runBounds(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("parsing STL file: %w", err)
	}

	result, err := analysis.AnalyzeModel(model)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "STL Bounds")
	fmt.Fprintln(out, "==========")
	if result.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", result.Name)
	}
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Triangles: %d\n\n", result.TriangleCount)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
	fmt.Fprintf(out, "  Size: %s\n", analysis.FormatVector(result.Dimensions))
	fmt.Fprintf(out, "  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))
	fmt.Fprintf(out, "  Volume: %s\n\n", analysis.FormatMeasurement(result.Volume, "cubic units"))

	fmt.Fprintln(out, "Bounding Sphere:")
	fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(result.Sphere.Center))
	fmt.Fprintf(out, "  Radius: %s\n", analysis.FormatMeasurement(result.Sphere.Radius, ""))
	fmt.Fprintf(out, "  Box sphere radius: %s\n", analysis.FormatMeasurement(result.BoxSphere.Radius, ""))
	fmt.Fprintf(out, "  Box fills %.1f%% of the sphere\n\n", result.SphereFill*100)

	fmt.Fprintf(out, "Surface Area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))

	if len(boundsNearest) > 0 {
		point, err := toVector("nearest", boundsNearest)
		if err != nil {
			return err
		}
		vertex, distance := analysis.FindNearestVertex(model, point)
		fmt.Fprintf(out, "\nNearest vertex to %s: %s (distance: %.6f)\n",
			analysis.FormatVector(point), analysis.FormatVector(vertex), distance)
	}
	return nil
}
