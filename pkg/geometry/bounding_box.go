package geometry

import (
	"fmt"
	"math"
)

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates a bounding box from its corners
func NewBoundingBox(min, max Vector3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// EmptyBoundingBox returns an inverted box that any call to Extend replaces
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{
		Min: SplatVector3(math.MaxFloat64),
		Max: SplatVector3(-math.MaxFloat64),
	}
}

// BoundingBoxFromPoints returns the smallest box containing all points
func BoundingBoxFromPoints(points []Vector3) (BoundingBox, error) {
	return BoundingBoxFromPointRange(points, 0, len(points))
}

// BoundingBoxFromPointRange returns the smallest box containing
// points[index:index+count]
func BoundingBoxFromPointRange(points []Vector3, index, count int) (BoundingBox, error) {
	if len(points) == 0 || count == 0 {
		return BoundingBox{}, ErrEmptyPoints
	}
	if index < 0 || count < 0 || index+count > len(points) {
		return BoundingBox{}, fmt.Errorf("%w: index %d count %d with %d points", ErrPointRange, index, count, len(points))
	}

	box := EmptyBoundingBox()
	for _, p := range points[index : index+count] {
		box.Extend(p)
	}
	return box, nil
}

// BoundingBoxFromSphere returns the box that tightly encloses a sphere
func BoundingBoxFromSphere(sphere BoundingSphere) BoundingBox {
	corner := SplatVector3(sphere.Radius)
	return BoundingBox{Min: sphere.Center.Sub(corner), Max: sphere.Center.Add(corner)}
}

// MergeBoundingBoxes returns the smallest box containing both boxes
func MergeBoundingBoxes(original, additional BoundingBox) BoundingBox {
	return BoundingBox{
		Min: original.Min.Min(additional.Min),
		Max: original.Max.Max(additional.Max),
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// SurfaceArea returns the total area of the six faces
func (b BoundingBox) SurfaceArea() float64 {
	s := b.Size()
	return 2 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// Corners returns the eight corners: the z=Max face then the z=Min face,
// each starting at (Min.X, Max.Y) and going clockwise
func (b BoundingBox) Corners() [8]Vector3 {
	return [8]Vector3{
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
	}
}

// ContainsPoint returns Contains for points inside or on the box, Disjoint otherwise
func (b BoundingBox) ContainsPoint(point Vector3) ContainmentType {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return Disjoint
	}
	return Contains
}

// ContainsBox classifies another box against this one
func (b BoundingBox) ContainsBox(box BoundingBox) ContainmentType {
	if box.Max.X < b.Min.X || box.Min.X > b.Max.X ||
		box.Max.Y < b.Min.Y || box.Min.Y > b.Max.Y ||
		box.Max.Z < b.Min.Z || box.Min.Z > b.Max.Z {
		return Disjoint
	}

	if box.Min.X >= b.Min.X && box.Max.X <= b.Max.X &&
		box.Min.Y >= b.Min.Y && box.Max.Y <= b.Max.Y &&
		box.Min.Z >= b.Min.Z && box.Max.Z <= b.Max.Z {
		return Contains
	}

	return Intersects
}

// ContainsSphere classifies a sphere against this box
func (b BoundingBox) ContainsSphere(sphere BoundingSphere) ContainmentType {
	c, r := sphere.Center, sphere.Radius

	if c.X-b.Min.X >= r && c.Y-b.Min.Y >= r && c.Z-b.Min.Z >= r &&
		b.Max.X-c.X >= r && b.Max.Y-c.Y >= r && b.Max.Z-c.Z >= r {
		return Contains
	}

	dmin := 0.0
	axes := [3][3]float64{
		{c.X, b.Min.X, b.Max.X},
		{c.Y, b.Min.Y, b.Max.Y},
		{c.Z, b.Min.Z, b.Max.Z},
	}
	for _, a := range axes {
		center, lo, hi := a[0], a[1], a[2]
		if e := center - lo; e < 0 {
			if e < -r {
				return Disjoint
			}
			dmin += e * e
		} else if e := center - hi; e > 0 {
			if e > r {
				return Disjoint
			}
			dmin += e * e
		}
	}

	if dmin <= r*r {
		return Intersects
	}
	return Disjoint
}

// ContainsFrustum classifies a frustum against this box by its corners.
// The first corner outside the box decides: none means Contains, a later
// one means Intersects. When the very first corner is outside, the rest
// decide between Intersects and Disjoint.
func (b BoundingBox) ContainsFrustum(frustum BoundingFrustum) ContainmentType {
	corners := frustum.Corners()

	i := 0
	for ; i < len(corners); i++ {
		if b.ContainsPoint(corners[i]) == Disjoint {
			break
		}
	}

	if i == len(corners) {
		return Contains
	}
	if i != 0 {
		return Intersects
	}

	for i++; i < len(corners); i++ {
		if b.ContainsPoint(corners[i]) != Disjoint {
			return Intersects
		}
	}
	return Disjoint
}

// IntersectsBox reports whether the boxes overlap, touching included
func (b BoundingBox) IntersectsBox(box BoundingBox) bool {
	return b.Max.X >= box.Min.X && b.Min.X <= box.Max.X &&
		b.Max.Y >= box.Min.Y && b.Min.Y <= box.Max.Y &&
		b.Max.Z >= box.Min.Z && b.Min.Z <= box.Max.Z
}

// IntersectsSphere reports whether the sphere reaches the box
func (b BoundingBox) IntersectsSphere(sphere BoundingSphere) bool {
	closest := sphere.Center.Clamp(b.Min, b.Max)
	return closest.DistanceSquared(sphere.Center) <= sphere.Radius*sphere.Radius
}

// IntersectsFrustum reports whether any part of the frustum touches the box
func (b BoundingBox) IntersectsFrustum(frustum BoundingFrustum) bool {
	return b.ContainsFrustum(frustum) != Disjoint
}

// IntersectsPlane classifies the box against a plane using the corners
// furthest along and against the plane normal
func (b BoundingBox) IntersectsPlane(plane Plane) PlaneIntersectionType {
	positive, negative := b.Max, b.Min
	if plane.Normal.X < 0 {
		positive.X, negative.X = b.Min.X, b.Max.X
	}
	if plane.Normal.Y < 0 {
		positive.Y, negative.Y = b.Min.Y, b.Max.Y
	}
	if plane.Normal.Z < 0 {
		positive.Z, negative.Z = b.Min.Z, b.Max.Z
	}

	if plane.DotCoordinate(negative) > 0 {
		return Front
	}
	if plane.DotCoordinate(positive) < 0 {
		return Back
	}
	return Intersecting
}

// IntersectsRay returns the ray distance to the box, or NaN
func (b BoundingBox) IntersectsRay(ray Ray) float64 {
	return ray.IntersectsBox(b)
}

// ApproxEqual reports whether both corners differ by at most epsilon
func (b BoundingBox) ApproxEqual(other BoundingBox, epsilon float64) bool {
	return b.Min.ApproxEqual(other.Min, epsilon) && b.Max.ApproxEqual(other.Max, epsilon)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("{Min:%v Max:%v}", b.Min, b.Max)
}
