package geometry

import (
	"fmt"
	"math"
)

// BoundingSphere is a sphere given by its center and radius
type BoundingSphere struct {
	Center Vector3
	Radius float64
}

// NewBoundingSphere creates a bounding sphere
func NewBoundingSphere(center Vector3, radius float64) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

// BoundingSphereFromPoints returns a sphere enclosing all points. The result
// is Ritter's approximation, not the minimal sphere: it starts from the most
// distant pair of axis-extreme points and grows to include any outliers.
func BoundingSphereFromPoints(points []Vector3) (BoundingSphere, error) {
	if len(points) == 0 {
		return BoundingSphere{}, ErrEmptyPoints
	}

	minX, maxX := points[0], points[0]
	minY, maxY := points[0], points[0]
	minZ, maxZ := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < minX.X {
			minX = p
		}
		if p.X > maxX.X {
			maxX = p
		}
		if p.Y < minY.Y {
			minY = p
		}
		if p.Y > maxY.Y {
			maxY = p
		}
		if p.Z < minZ.Z {
			minZ = p
		}
		if p.Z > maxZ.Z {
			maxZ = p
		}
	}

	sqDistX := maxX.DistanceSquared(minX)
	sqDistY := maxY.DistanceSquared(minY)
	sqDistZ := maxZ.DistanceSquared(minZ)

	lo, hi := minX, maxX
	if sqDistY > sqDistX && sqDistY > sqDistZ {
		lo, hi = minY, maxY
	}
	if sqDistZ > sqDistX && sqDistZ > sqDistY {
		lo, hi = minZ, maxZ
	}

	center := lo.Add(hi).Mul(0.5)
	radius := hi.Distance(center)
	sqRadius := radius * radius

	for _, p := range points {
		diff := p.Sub(center)
		sqDist := diff.LengthSquared()
		if sqDist <= sqRadius {
			continue
		}
		direction := diff.Div(math.Sqrt(sqDist))
		back := center.Sub(direction.Mul(radius))
		center = back.Add(p).Mul(0.5)
		radius = p.Distance(center)
		sqRadius = radius * radius
	}

	return BoundingSphere{Center: center, Radius: radius}, nil
}

// BoundingSphereFromBox returns the sphere through the corners of a box
func BoundingSphereFromBox(box BoundingBox) BoundingSphere {
	center := box.Center()
	return BoundingSphere{Center: center, Radius: center.Distance(box.Max)}
}

// BoundingSphereFromFrustum returns a sphere enclosing the frustum corners
func BoundingSphereFromFrustum(frustum BoundingFrustum) BoundingSphere {
	corners := frustum.Corners()
	// eight corners, never empty
	sphere, _ := BoundingSphereFromPoints(corners[:])
	return sphere
}

// MergeBoundingSpheres returns the smallest sphere containing both spheres
func MergeBoundingSpheres(original, additional BoundingSphere) BoundingSphere {
	toAdditional := additional.Center.Sub(original.Center)
	distance := toAdditional.Length()

	if distance <= original.Radius+additional.Radius {
		if distance <= original.Radius-additional.Radius {
			return original
		}
		if distance <= additional.Radius-original.Radius {
			return additional
		}
	}

	left := math.Max(original.Radius-distance, additional.Radius)
	right := math.Max(original.Radius+distance, additional.Radius)
	offset := toAdditional.Add(toAdditional.Mul((left - right) / (2 * distance)))

	return BoundingSphere{
		Center: original.Center.Add(offset),
		Radius: (left + right) / 2,
	}
}

// ContainsPoint returns Contains strictly inside, Intersects on the surface
// and Disjoint outside
func (s BoundingSphere) ContainsPoint(point Vector3) ContainmentType {
	sqRadius := s.Radius * s.Radius
	sqDistance := point.DistanceSquared(s.Center)

	switch {
	case sqDistance > sqRadius:
		return Disjoint
	case sqDistance < sqRadius:
		return Contains
	default:
		return Intersects
	}
}

// ContainsSphere classifies another sphere against this one
func (s BoundingSphere) ContainsSphere(sphere BoundingSphere) ContainmentType {
	sqDistance := sphere.Center.DistanceSquared(s.Center)
	sum := sphere.Radius + s.Radius
	diff := s.Radius - sphere.Radius

	switch {
	case sqDistance > sum*sum:
		return Disjoint
	case diff >= 0 && sqDistance <= diff*diff:
		return Contains
	default:
		return Intersects
	}
}

// ContainsBox classifies a box against this sphere
func (s BoundingSphere) ContainsBox(box BoundingBox) ContainmentType {
	inside := true
	for _, corner := range box.Corners() {
		if s.ContainsPoint(corner) == Disjoint {
			inside = false
			break
		}
	}
	if inside {
		return Contains
	}

	closest := s.Center.Clamp(box.Min, box.Max)
	if closest.DistanceSquared(s.Center) <= s.Radius*s.Radius {
		return Intersects
	}
	return Disjoint
}

// ContainsFrustum classifies a frustum against this sphere. All corners
// inside means Contains; otherwise the frustum planes decide between
// Intersects and Disjoint.
func (s BoundingSphere) ContainsFrustum(frustum BoundingFrustum) ContainmentType {
	inside := true
	for _, corner := range frustum.Corners() {
		if s.ContainsPoint(corner) == Disjoint {
			inside = false
			break
		}
	}
	if inside {
		return Contains
	}

	if frustum.ContainsSphere(s) != Disjoint {
		return Intersects
	}
	return Disjoint
}

// IntersectsBox reports whether the sphere reaches the box
func (s BoundingSphere) IntersectsBox(box BoundingBox) bool {
	return box.IntersectsSphere(s)
}

// IntersectsSphere reports whether the spheres overlap, touching included
func (s BoundingSphere) IntersectsSphere(sphere BoundingSphere) bool {
	sum := sphere.Radius + s.Radius
	return sphere.Center.DistanceSquared(s.Center) <= sum*sum
}

// IntersectsFrustum reports whether the sphere reaches into the frustum
func (s BoundingSphere) IntersectsFrustum(frustum BoundingFrustum) bool {
	return frustum.ContainsSphere(s) != Disjoint
}

// IntersectsPlane classifies the sphere against a plane
func (s BoundingSphere) IntersectsPlane(plane Plane) PlaneIntersectionType {
	distance := plane.DotCoordinate(s.Center)
	switch {
	case distance > s.Radius:
		return Front
	case distance < -s.Radius:
		return Back
	default:
		return Intersecting
	}
}

// IntersectsRay returns the ray distance to the sphere, or NaN
func (s BoundingSphere) IntersectsRay(ray Ray) float64 {
	return ray.IntersectsSphere(s)
}

// Transform moves the center by the full matrix and scales the radius by
// the largest axis scale of m
func (s BoundingSphere) Transform(m Matrix) BoundingSphere {
	scaleSq := math.Max(
		m.M11*m.M11+m.M12*m.M12+m.M13*m.M13,
		math.Max(
			m.M21*m.M21+m.M22*m.M22+m.M23*m.M23,
			m.M31*m.M31+m.M32*m.M32+m.M33*m.M33,
		),
	)
	return BoundingSphere{
		Center: s.Center.Transform(m),
		Radius: s.Radius * math.Sqrt(scaleSq),
	}
}

// ApproxEqual reports whether center and radius differ by at most epsilon
func (s BoundingSphere) ApproxEqual(other BoundingSphere, epsilon float64) bool {
	return s.Center.ApproxEqual(other.Center, epsilon) && math.Abs(s.Radius-other.Radius) <= epsilon
}

func (s BoundingSphere) String() string {
	return fmt.Sprintf("{Center:%v Radius:%g}", s.Center, s.Radius)
}
