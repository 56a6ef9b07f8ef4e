package geometry

import (
	"fmt"
	"math"
)

// Plane is the set of points p with Normal·p + D = 0.
// The normal points to the Front side.
type Plane struct {
	Normal Vector3
	D      float64
}

// NewPlane creates a plane from a normal and a distance term
func NewPlane(normal Vector3, d float64) Plane {
	return Plane{Normal: normal, D: d}
}

// NewPlaneFromComponents creates the plane ax + by + cz + d = 0
func NewPlaneFromComponents(a, b, c, d float64) Plane {
	return Plane{Normal: Vector3{X: a, Y: b, Z: c}, D: d}
}

// NewPlaneFromVector4 uses xyz as the normal and w as D
func NewPlaneFromVector4(v Vector4) Plane {
	return Plane{Normal: v.XYZ(), D: v.W}
}

// NewPlaneFromPoints creates the plane through three points. The normal is
// the normalized cross product of (b-a) and (c-a); collinear points give NaN.
func NewPlaneFromPoints(a, b, c Vector3) Plane {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: normal, D: -normal.Dot(a)}
}

// NewPlaneFromPointNormal creates the plane through point with the given normal
func NewPlaneFromPointNormal(point, normal Vector3) Plane {
	return Plane{Normal: normal, D: -normal.Dot(point)}
}

// Normalize scales the plane so the normal has unit length
func (p Plane) Normalize() Plane {
	factor := 1 / p.Normal.Length()
	return Plane{Normal: p.Normal.Mul(factor), D: p.D * factor}
}

// Dot returns Normal·xyz + D·w
func (p Plane) Dot(v Vector4) float64 {
	return p.Normal.Dot(v.XYZ()) + p.D*v.W
}

// DotCoordinate returns the signed distance term Normal·point + D
func (p Plane) DotCoordinate(point Vector3) float64 {
	return p.Normal.Dot(point) + p.D
}

// DotNormal returns Normal·v
func (p Plane) DotNormal(v Vector3) float64 {
	return p.Normal.Dot(v)
}

// IntersectsPoint reports the side of the plane the point lies on
func (p Plane) IntersectsPoint(point Vector3) PlaneIntersectionType {
	distance := p.DotCoordinate(point)
	switch {
	case distance > 0:
		return Front
	case distance < 0:
		return Back
	default:
		return Intersecting
	}
}

// IntersectsBox classifies a box against the plane
func (p Plane) IntersectsBox(box BoundingBox) PlaneIntersectionType {
	return box.IntersectsPlane(p)
}

// IntersectsSphere classifies a sphere against the plane
func (p Plane) IntersectsSphere(sphere BoundingSphere) PlaneIntersectionType {
	return sphere.IntersectsPlane(p)
}

// IntersectsFrustum classifies a frustum against the plane
func (p Plane) IntersectsFrustum(frustum BoundingFrustum) PlaneIntersectionType {
	return frustum.IntersectsPlane(p)
}

// Transform applies a matrix to the plane using the inverse transpose of m
func (p Plane) Transform(m Matrix) Plane {
	v := NewVector4FromVector3(p.Normal, p.D).Transform(m.Invert().Transpose())
	return NewPlaneFromVector4(v)
}

// TransformQuaternion rotates the normal and keeps D
func (p Plane) TransformQuaternion(q Quaternion) Plane {
	return Plane{Normal: p.Normal.TransformQuaternion(q), D: p.D}
}

// ApproxEqual reports whether normal and D differ by at most epsilon
func (p Plane) ApproxEqual(other Plane, epsilon float64) bool {
	return p.Normal.ApproxEqual(other.Normal, epsilon) && math.Abs(p.D-other.D) <= epsilon
}

func (p Plane) String() string {
	return fmt.Sprintf("{Normal:%v D:%g}", p.Normal, p.D)
}

// ClassifyPoint returns the signed value Normal·point + D
func ClassifyPoint(point Vector3, plane Plane) float64 {
	return plane.DotCoordinate(point)
}

// PerpendicularDistance returns the unsigned distance from point to plane
func PerpendicularDistance(point Vector3, plane Plane) float64 {
	return math.Abs(plane.DotCoordinate(point)) / plane.Normal.Length()
}
