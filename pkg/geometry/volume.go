package geometry

import (
	"fmt"
	"math"
)

// Volume is a bounding volume: BoundingBox, BoundingSphere or BoundingFrustum
type Volume interface {
	volume()
}

func (BoundingBox) volume()     {}
func (BoundingSphere) volume()  {}
func (BoundingFrustum) volume() {}

func unsupported(v Volume) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedVolume, v)
}

// ContainsVolume classifies b against a
func ContainsVolume(a, b Volume) (ContainmentType, error) {
	switch a := a.(type) {
	case BoundingBox:
		switch b := b.(type) {
		case BoundingBox:
			return a.ContainsBox(b), nil
		case BoundingSphere:
			return a.ContainsSphere(b), nil
		case BoundingFrustum:
			return a.ContainsFrustum(b), nil
		}
		return Disjoint, unsupported(b)
	case BoundingSphere:
		switch b := b.(type) {
		case BoundingBox:
			return a.ContainsBox(b), nil
		case BoundingSphere:
			return a.ContainsSphere(b), nil
		case BoundingFrustum:
			return a.ContainsFrustum(b), nil
		}
		return Disjoint, unsupported(b)
	case BoundingFrustum:
		switch b := b.(type) {
		case BoundingBox:
			return a.ContainsBox(b), nil
		case BoundingSphere:
			return a.ContainsSphere(b), nil
		case BoundingFrustum:
			return a.ContainsFrustum(b), nil
		}
		return Disjoint, unsupported(b)
	}
	return Disjoint, unsupported(a)
}

// IntersectsVolume reports whether two volumes overlap
func IntersectsVolume(a, b Volume) (bool, error) {
	switch a := a.(type) {
	case BoundingBox:
		switch b := b.(type) {
		case BoundingBox:
			return a.IntersectsBox(b), nil
		case BoundingSphere:
			return a.IntersectsSphere(b), nil
		case BoundingFrustum:
			return a.IntersectsFrustum(b), nil
		}
		return false, unsupported(b)
	case BoundingSphere:
		switch b := b.(type) {
		case BoundingBox:
			return a.IntersectsBox(b), nil
		case BoundingSphere:
			return a.IntersectsSphere(b), nil
		case BoundingFrustum:
			return a.IntersectsFrustum(b), nil
		}
		return false, unsupported(b)
	case BoundingFrustum:
		switch b := b.(type) {
		case BoundingBox:
			return a.IntersectsBox(b), nil
		case BoundingSphere:
			return a.IntersectsSphere(b), nil
		case BoundingFrustum:
			return a.IntersectsFrustum(b), nil
		}
		return false, unsupported(b)
	}
	return false, unsupported(a)
}

// ContainsPointIn classifies a point against any volume
func ContainsPointIn(v Volume, point Vector3) (ContainmentType, error) {
	switch v := v.(type) {
	case BoundingBox:
		return v.ContainsPoint(point), nil
	case BoundingSphere:
		return v.ContainsPoint(point), nil
	case BoundingFrustum:
		return v.ContainsPoint(point), nil
	}
	return Disjoint, unsupported(v)
}

// ClassifyPlane returns the side of plane p that v lies on
func ClassifyPlane(v Volume, p Plane) (PlaneIntersectionType, error) {
	switch v := v.(type) {
	case BoundingBox:
		return p.IntersectsBox(v), nil
	case BoundingSphere:
		return p.IntersectsSphere(v), nil
	case BoundingFrustum:
		return p.IntersectsFrustum(v), nil
	}
	return Intersecting, unsupported(v)
}

// RayDistance returns the distance along r to v. The boolean is false when
// the ray misses.
func RayDistance(r Ray, v Volume) (float64, bool, error) {
	var t float64
	switch v := v.(type) {
	case BoundingBox:
		t = r.IntersectsBox(v)
	case BoundingSphere:
		t = r.IntersectsSphere(v)
	case BoundingFrustum:
		t = r.IntersectsFrustum(v)
	default:
		return math.NaN(), false, unsupported(v)
	}
	return t, !math.IsNaN(t), nil
}

// BoundsOf returns the axis-aligned box around any volume
func BoundsOf(v Volume) (BoundingBox, error) {
	switch v := v.(type) {
	case BoundingBox:
		return v, nil
	case BoundingSphere:
		return BoundingBoxFromSphere(v), nil
	case BoundingFrustum:
		corners := v.Corners()
		return BoundingBoxFromPoints(corners[:])
	}
	return BoundingBox{}, unsupported(v)
}
