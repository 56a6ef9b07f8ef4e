package stl

import (
	"github.com/philipparndt/gobound/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Vertices returns the corners of every triangle, three per facet
func (m *Model) Vertices() []geometry.Vector3 {
	vertices := make([]geometry.Vector3, 0, 3*len(m.Triangles))
	for _, triangle := range m.Triangles {
		vertices = append(vertices, triangle.V1, triangle.V2, triangle.V3)
	}
	return vertices
}

// BoundingBox returns the axis-aligned box around all vertices.
// An empty model has no bounds and returns geometry.ErrEmptyPoints.
func (m *Model) BoundingBox() (geometry.BoundingBox, error) {
	return geometry.BoundingBoxFromPoints(m.Vertices())
}

// BoundingSphere returns a sphere around all vertices
func (m *Model) BoundingSphere() (geometry.BoundingSphere, error) {
	return geometry.BoundingSphereFromPoints(m.Vertices())
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Transform returns a copy of the model with every vertex moved by matrix.
// Stored normals are recomputed from the transformed winding.
func (m *Model) Transform(matrix geometry.Matrix) *Model {
	out := NewModel(m.Name)
	for _, triangle := range m.Triangles {
		moved := geometry.NewTriangle(
			geometry.Vector3Zero,
			triangle.V1.Transform(matrix),
			triangle.V2.Transform(matrix),
			triangle.V3.Transform(matrix),
		)
		moved.Normal = moved.CalculateNormal()
		out.AddTriangle(moved)
	}
	return out
}
