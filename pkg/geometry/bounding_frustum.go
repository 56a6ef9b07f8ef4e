package geometry

import (
	"fmt"
	"math"
)

// Plane and corner counts of a frustum
const (
	FrustumPlaneCount  = 6
	FrustumCornerCount = 8
)

// BoundingFrustum is the convex volume described by a combined
// view*projection matrix. Planes are ordered Near, Far, Left, Right, Top,
// Bottom and their normals point out of the volume.
//
// The zero value has no planes or corners and must not be queried. Use
// NewBoundingFrustum or SetMatrix first.
type BoundingFrustum struct {
	matrix  Matrix
	planes  [FrustumPlaneCount]Plane
	corners [FrustumCornerCount]Vector3
}

// NewBoundingFrustum creates a frustum from a view*projection matrix
func NewBoundingFrustum(m Matrix) BoundingFrustum {
	var f BoundingFrustum
	f.SetMatrix(m)
	return f
}

// SetMatrix replaces the matrix and recomputes planes and corners
func (f *BoundingFrustum) SetMatrix(m Matrix) {
	f.matrix = m
	f.createPlanes()
	f.createCorners()
}

// Matrix returns the view*projection matrix
func (f BoundingFrustum) Matrix() Matrix {
	return f.matrix
}

// Near returns the near plane
func (f BoundingFrustum) Near() Plane { return f.planes[0] }

// Far returns the far plane
func (f BoundingFrustum) Far() Plane { return f.planes[1] }

// Left returns the left plane
func (f BoundingFrustum) Left() Plane { return f.planes[2] }

// Right returns the right plane
func (f BoundingFrustum) Right() Plane { return f.planes[3] }

// Top returns the top plane
func (f BoundingFrustum) Top() Plane { return f.planes[4] }

// Bottom returns the bottom plane
func (f BoundingFrustum) Bottom() Plane { return f.planes[5] }

// Planes returns all six planes in Near, Far, Left, Right, Top, Bottom order
func (f BoundingFrustum) Planes() [FrustumPlaneCount]Plane {
	return f.planes
}

// Corners returns the near corners (left-top, right-top, right-bottom,
// left-bottom) followed by the far corners in the same order
func (f BoundingFrustum) Corners() [FrustumCornerCount]Vector3 {
	return f.corners
}

func (f *BoundingFrustum) createPlanes() {
	m := f.matrix
	f.planes = [FrustumPlaneCount]Plane{
		NewPlaneFromComponents(-m.M13, -m.M23, -m.M33, -m.M43),
		NewPlaneFromComponents(m.M13-m.M14, m.M23-m.M24, m.M33-m.M34, m.M43-m.M44),
		NewPlaneFromComponents(-m.M14-m.M11, -m.M24-m.M21, -m.M34-m.M31, -m.M44-m.M41),
		NewPlaneFromComponents(m.M11-m.M14, m.M21-m.M24, m.M31-m.M34, m.M41-m.M44),
		NewPlaneFromComponents(m.M12-m.M14, m.M22-m.M24, m.M32-m.M34, m.M42-m.M44),
		NewPlaneFromComponents(-m.M14-m.M12, -m.M24-m.M22, -m.M34-m.M32, -m.M44-m.M42),
	}
	for i := range f.planes {
		f.planes[i] = f.planes[i].Normalize()
	}
}

func (f *BoundingFrustum) createCorners() {
	near, far := f.planes[0], f.planes[1]
	left, right := f.planes[2], f.planes[3]
	top, bottom := f.planes[4], f.planes[5]

	f.corners = [FrustumCornerCount]Vector3{
		intersectionPoint(near, left, top),
		intersectionPoint(near, right, top),
		intersectionPoint(near, right, bottom),
		intersectionPoint(near, left, bottom),
		intersectionPoint(far, left, top),
		intersectionPoint(far, right, top),
		intersectionPoint(far, right, bottom),
		intersectionPoint(far, left, bottom),
	}
}

// intersectionPoint returns the point shared by three planes
func intersectionPoint(a, b, c Plane) Vector3 {
	bc := b.Normal.Cross(c.Normal)
	ca := c.Normal.Cross(a.Normal)
	ab := a.Normal.Cross(b.Normal)

	f := -a.Normal.Dot(bc)
	v1 := bc.Mul(a.D)
	v2 := ca.Mul(b.D)
	v3 := ab.Mul(c.D)

	return v1.Add(v2).Add(v3).Div(f)
}

// classify runs the six-plane test shared by the box, sphere and frustum
// containment checks
func (f BoundingFrustum) classify(side func(Plane) PlaneIntersectionType) ContainmentType {
	intersects := false
	for _, plane := range f.planes {
		switch side(plane) {
		case Front:
			return Disjoint
		case Intersecting:
			intersects = true
		}
	}
	if intersects {
		return Intersects
	}
	return Contains
}

// ContainsBox classifies a box against the frustum
func (f BoundingFrustum) ContainsBox(box BoundingBox) ContainmentType {
	return f.classify(box.IntersectsPlane)
}

// ContainsSphere classifies a sphere against the frustum
func (f BoundingFrustum) ContainsSphere(sphere BoundingSphere) ContainmentType {
	return f.classify(sphere.IntersectsPlane)
}

// ContainsFrustum classifies another frustum against this one. A frustum
// with the same matrix is contained.
func (f BoundingFrustum) ContainsFrustum(frustum BoundingFrustum) ContainmentType {
	if f.Equals(frustum) {
		return Contains
	}
	return f.classify(frustum.IntersectsPlane)
}

// boundaryTolerance is the distance, relative to max(1, |D|), a point may lie
// in front of a plane and still count as on it. Corners computed from three
// planes carry round-off of that order.
const boundaryTolerance = 1e-9

// ContainsPoint returns Disjoint when the point is in front of any plane,
// Contains otherwise. Points on the boundary count as contained.
func (f BoundingFrustum) ContainsPoint(point Vector3) ContainmentType {
	for _, plane := range f.planes {
		if ClassifyPoint(point, plane) > boundaryTolerance*math.Max(1, math.Abs(plane.D)) {
			return Disjoint
		}
	}
	return Contains
}

// IntersectsBox reports whether the box reaches into the frustum
func (f BoundingFrustum) IntersectsBox(box BoundingBox) bool {
	return f.ContainsBox(box) != Disjoint
}

// IntersectsSphere reports whether the sphere reaches into the frustum
func (f BoundingFrustum) IntersectsSphere(sphere BoundingSphere) bool {
	return f.ContainsSphere(sphere) != Disjoint
}

// IntersectsFrustum reports whether the frustums overlap
func (f BoundingFrustum) IntersectsFrustum(frustum BoundingFrustum) bool {
	return f.ContainsFrustum(frustum) != Disjoint
}

// IntersectsPlane classifies all eight corners; mixed sides mean Intersecting
func (f BoundingFrustum) IntersectsPlane(plane Plane) PlaneIntersectionType {
	result := plane.IntersectsPoint(f.corners[0])
	for _, corner := range f.corners[1:] {
		if plane.IntersectsPoint(corner) != result {
			return Intersecting
		}
	}
	return result
}

// IntersectsRay returns 0 when the ray starts inside, the distance at which
// it enters the frustum, or NaN when it misses
func (f BoundingFrustum) IntersectsRay(ray Ray) float64 {
	if f.ContainsPoint(ray.Position) == Contains {
		return 0
	}

	// clip the ray parameter range against every half-space
	enter, exit := 0.0, math.Inf(1)
	for _, plane := range f.planes {
		den := plane.DotNormal(ray.Direction)
		dist := plane.DotCoordinate(ray.Position)

		if math.Abs(den) < Epsilon {
			if dist > 0 {
				return math.NaN()
			}
			continue
		}

		t := -dist / den
		if den > 0 {
			exit = math.Min(exit, t)
		} else {
			enter = math.Max(enter, t)
		}
		if enter > exit {
			return math.NaN()
		}
	}
	return enter
}

// Equals reports whether both frustums were built from the same matrix
func (f BoundingFrustum) Equals(other BoundingFrustum) bool {
	return f.matrix == other.matrix
}

func (f BoundingFrustum) String() string {
	return fmt.Sprintf("{Near:%v Far:%v Left:%v Right:%v Top:%v Bottom:%v}",
		f.planes[0], f.planes[1], f.planes[2], f.planes[3], f.planes[4], f.planes[5])
}
