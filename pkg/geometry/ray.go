package geometry

import (
	"fmt"
	"math"
)

// Ray is a half-line starting at Position. Distances returned by the
// Intersects methods are in units of Direction, so the hit point is
// Position + t*Direction. NaN means no hit.
type Ray struct {
	Position  Vector3
	Direction Vector3
}

// NewRay creates a ray from an origin and a direction
func NewRay(position, direction Vector3) Ray {
	return Ray{Position: position, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Position.Add(r.Direction.Mul(t))
}

// slab narrows the running [tMin, tMax] interval by one axis. NaN bounds
// mean the interval is still open. It returns false on a miss.
func slab(origin, dir, lo, hi float64, tMin, tMax *float64) bool {
	if math.Abs(dir) < Epsilon {
		return origin >= lo && origin <= hi
	}

	near := (lo - origin) / dir
	far := (hi - origin) / dir
	if near > far {
		near, far = far, near
	}

	if (!math.IsNaN(*tMin) && *tMin > far) || (!math.IsNaN(*tMax) && near > *tMax) {
		return false
	}
	if math.IsNaN(*tMin) || near > *tMin {
		*tMin = near
	}
	if math.IsNaN(*tMax) || far < *tMax {
		*tMax = far
	}
	return true
}

// IntersectsBox returns the distance to the first hit with the box, 0 when
// the origin is inside, or NaN
func (r Ray) IntersectsBox(box BoundingBox) float64 {
	tMin, tMax := math.NaN(), math.NaN()

	if !slab(r.Position.X, r.Direction.X, box.Min.X, box.Max.X, &tMin, &tMax) ||
		!slab(r.Position.Y, r.Direction.Y, box.Min.Y, box.Max.Y, &tMin, &tMax) ||
		!slab(r.Position.Z, r.Direction.Z, box.Min.Z, box.Max.Z, &tMin, &tMax) {
		return math.NaN()
	}

	// origin between the slabs
	if !math.IsNaN(tMin) && tMin < 0 && tMax > 0 {
		return 0
	}
	// box is behind the origin
	if tMin < 0 {
		return math.NaN()
	}
	return tMin
}

// IntersectsSphere returns the distance to the sphere surface, 0 when the
// origin is inside, or NaN
func (r Ray) IntersectsSphere(sphere BoundingSphere) float64 {
	diff := sphere.Center.Sub(r.Position)
	diffLengthSq := diff.LengthSquared()
	radiusSq := sphere.Radius * sphere.Radius

	if diffLengthSq < radiusSq {
		return 0
	}

	proj := r.Direction.Dot(diff)
	if proj < 0 {
		return math.NaN()
	}

	dist := radiusSq + proj*proj - diffLengthSq
	if dist < 0 {
		return math.NaN()
	}
	return proj - math.Sqrt(dist)
}

// IntersectsPlane returns the distance to the plane or NaN when the ray is
// parallel to it or points away
func (r Ray) IntersectsPlane(plane Plane) float64 {
	const tolerance = 1e-5

	den := r.Direction.Dot(plane.Normal)
	if math.Abs(den) < tolerance {
		return math.NaN()
	}

	t := (-plane.D - plane.Normal.Dot(r.Position)) / den
	if t < 0 {
		if t < -tolerance {
			return math.NaN()
		}
		t = 0
	}
	return t
}

// IntersectsFrustum returns the distance at which the ray enters the
// frustum, 0 when the origin is inside, or NaN
func (r Ray) IntersectsFrustum(frustum BoundingFrustum) float64 {
	return frustum.IntersectsRay(r)
}

// ApproxEqual reports whether position and direction differ by at most epsilon
func (r Ray) ApproxEqual(other Ray, epsilon float64) bool {
	return r.Position.ApproxEqual(other.Position, epsilon) && r.Direction.ApproxEqual(other.Direction, epsilon)
}

func (r Ray) String() string {
	return fmt.Sprintf("{Position:%v Direction:%v}", r.Position, r.Direction)
}
