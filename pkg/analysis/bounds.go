package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gobound/pkg/geometry"
	"github.com/philipparndt/gobound/pkg/stl"
)

// BoundsReport summarises the bounding volumes of an STL model
type BoundsReport struct {
	Name          string
	BoundingBox   geometry.BoundingBox
	Sphere        geometry.BoundingSphere
	BoxSphere     geometry.BoundingSphere
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	// SphereFill is the box volume divided by the fitted sphere volume.
	SphereFill float64
}

// AnalyzeModel computes the bounds of an STL model
func AnalyzeModel(model *stl.Model) (*BoundsReport, error) {
	box, err := model.BoundingBox()
	if err != nil {
		return nil, fmt.Errorf("failed to bound %q: %w", model.Name, err)
	}
	sphere, err := model.BoundingSphere()
	if err != nil {
		return nil, fmt.Errorf("failed to bound %q: %w", model.Name, err)
	}

	result := &BoundsReport{
		Name:          model.Name,
		BoundingBox:   box,
		Sphere:        sphere,
		BoxSphere:     geometry.BoundingSphereFromBox(box),
		Dimensions:    box.Size(),
		Volume:        box.Volume(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}

	if sphereVolume := 4.0 / 3.0 * math.Pi * math.Pow(sphere.Radius, 3); sphereVolume > 0 {
		result.SphereFill = result.Volume / sphereVolume
	}

	return result, nil
}

// FindNearestVertex finds the vertex in the model nearest to a given point
func FindNearestVertex(model *stl.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDistance := math.MaxFloat64

	for _, vertex := range model.Vertices() {
		distance := point.Distance(vertex)
		if distance < minDistance {
			minDistance = distance
			nearestVertex = vertex
		}
	}

	return nearestVertex, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatContainment renders a containment result for tables
func FormatContainment(c geometry.ContainmentType) string {
	switch c {
	case geometry.Contains:
		return "inside"
	case geometry.Intersects:
		return "partial"
	case geometry.Disjoint:
		return "culled"
	}
	return c.String()
}
