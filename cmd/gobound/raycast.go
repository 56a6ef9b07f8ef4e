package main

import (
	"fmt"

	"github.com/philipparndt/gobound/pkg/analysis"
	"github.com/philipparndt/gobound/pkg/geometry"
	"github.com/philipparndt/gobound/pkg/scene"
	"github.com/spf13/cobra"
)

var (
	rayOrigin    []float64
	rayDirection []float64
	rayScreen    []float64
	rayWidth     float64
	rayHeight    float64
)

var raycastCmd = &cobra.Command{
	Use:   "raycast [scene]",
	Short: "Find the nearest scene volume hit by a ray",
	Long: `Cast a ray into a scene and report the nearest volume it hits.
The ray is given by --origin and --dir, or by a --screen position that is
unprojected through the scene camera for a --width x --height viewport.`,
	Args: cobra.ExactArgs(1),
	RunE: runRaycast,
}

func init() {
	rootCmd.AddCommand(raycastCmd)

	raycastCmd.Flags().Float64SliceVar(&rayOrigin, "origin", nil, "Ray origin as x,y,z")
	raycastCmd.Flags().Float64SliceVar(&rayDirection, "dir", nil, "Ray direction as x,y,z")
	raycastCmd.Flags().Float64SliceVar(&rayScreen, "screen", nil, "Screen position as x,y")
	raycastCmd.Flags().Float64Var(&rayWidth, "width", 800, "Viewport width for --screen")
	raycastCmd.Flags().Float64Var(&rayHeight, "height", 600, "Viewport height for --screen")

	raycastCmd.MarkFlagsRequiredTogether("origin", "dir")
	raycastCmd.MarkFlagsMutuallyExclusive("origin", "screen")
	raycastCmd.MarkFlagsOneRequired("origin", "screen")
}

func runRaycast(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	ray, err := buildRay(s)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Ray: %s -> %s\n", analysis.FormatVector(ray.Position), analysis.FormatVector(ray.Direction))

	hit, ok, err := s.Raycast(ray)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No hit")
		return nil
	}
	fmt.Fprintf(out, "Hit: %s at distance %.6f\n", hit.Name, hit.Distance)
	fmt.Fprintf(out, "Point: %s\n", analysis.FormatVector(hit.Point))
	return nil
}

func buildRay(s *scene.Scene) (geometry.Ray, error) {
	if len(rayScreen) > 0 {
		if len(rayScreen) != 2 {
			return geometry.Ray{}, fmt.Errorf("--screen needs x,y, got %d values", len(rayScreen))
		}
		return s.Viewer().Unproject(rayScreen[0], rayScreen[1], rayWidth, rayHeight)
	}

	origin, err := toVector("origin", rayOrigin)
	if err != nil {
		return geometry.Ray{}, err
	}
	direction, err := toVector("dir", rayDirection)
	if err != nil {
		return geometry.Ray{}, err
	}
	if direction.LengthSquared() == 0 {
		return geometry.Ray{}, fmt.Errorf("--dir must not be zero")
	}
	return geometry.NewRay(origin, direction), nil
}
