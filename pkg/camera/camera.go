package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gobound/pkg/geometry"
)

// ErrViewport is returned for screen sizes that cannot be projected onto
var ErrViewport = errors.New("invalid viewport")

// Camera is an orbit camera looking at a target point
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // vertical field of view in radians
	Near      float64
	Far       float64
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a new camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	distance := math.Max(bbox.Diagonal(), 1) * 2.0

	return &Camera{
		Position: center.Add(geometry.NewVector3(0, 0, distance)),
		Target:   center,
		Up:       geometry.Vector3Up,
		FOV:      geometry.PiOver4,
		Near:     distance / 100,
		Far:      distance * 10,
		Distance: distance,
	}
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationY = geometry.WrapAngle(c.RotationY + deltaY)
	// stay clear of the poles where the up vector degenerates
	maxAngle := geometry.PiOver2 - 0.1
	c.RotationX = geometry.Clamp(c.RotationX+deltaX, -maxAngle, maxAngle)

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(c.Distance*(1.0+delta), c.Near)
	c.UpdatePosition()
}

// View returns the world to camera matrix
func (c *Camera) View() geometry.Matrix {
	return geometry.CreateLookAt(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection for the given aspect ratio
func (c *Camera) Projection(aspectRatio float64) (geometry.Matrix, error) {
	if aspectRatio <= 0 || math.IsNaN(aspectRatio) || math.IsInf(aspectRatio, 0) {
		return geometry.Matrix{}, fmt.Errorf("%w: aspect ratio %g", ErrViewport, aspectRatio)
	}
	return geometry.CreatePerspectiveFieldOfView(c.FOV, aspectRatio, c.Near, c.Far)
}

// ViewProjection returns View followed by Projection
func (c *Camera) ViewProjection(aspectRatio float64) (geometry.Matrix, error) {
	proj, err := c.Projection(aspectRatio)
	if err != nil {
		return geometry.Matrix{}, err
	}
	return c.View().Mul(proj), nil
}

// Frustum returns the volume the camera sees
func (c *Camera) Frustum(aspectRatio float64) (geometry.BoundingFrustum, error) {
	m, err := c.ViewProjection(aspectRatio)
	if err != nil {
		return geometry.BoundingFrustum{}, err
	}
	return geometry.NewBoundingFrustum(m), nil
}

// Project maps a world point to screen coordinates. Depth is 0 on the near
// plane and 1 on the far plane.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (screenX, screenY, depth float64, err error) {
	m, err := c.ViewProjection(width / height)
	if err != nil {
		return 0, 0, 0, err
	}

	clip := geometry.NewVector4FromVector3(point, 1).Transform(m)
	ndc := clip.XYZ().Div(clip.W)

	screenX = (ndc.X + 1) / 2 * width
	screenY = (1 - ndc.Y) / 2 * height
	return screenX, screenY, ndc.Z, nil
}

// Unproject converts 2D screen coordinates back to a 3D ray starting on the
// near plane
func (c *Camera) Unproject(screenX, screenY, width, height float64) (geometry.Ray, error) {
	m, err := c.ViewProjection(width / height)
	if err != nil {
		return geometry.Ray{}, err
	}
	inverse := m.Invert()

	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	near := unprojectPoint(geometry.NewVector3(ndcX, ndcY, 0), inverse)
	far := unprojectPoint(geometry.NewVector3(ndcX, ndcY, 1), inverse)

	return geometry.NewRay(near, far.Sub(near).Normalize()), nil
}

func unprojectPoint(ndc geometry.Vector3, inverse geometry.Matrix) geometry.Vector3 {
	v := geometry.NewVector4FromVector3(ndc, 1).Transform(inverse)
	return v.XYZ().Div(v.W)
}
