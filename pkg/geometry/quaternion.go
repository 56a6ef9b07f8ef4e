package geometry

import (
	"fmt"
	"math"
)

// Quaternion represents a rotation as X, Y, Z (vector part) and W (scalar part)
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a quaternion from its components
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionFromVector3 creates a quaternion from a vector part and a scalar part
func NewQuaternionFromVector3(v Vector3, w float64) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// IdentityQuaternion returns the rotation that does nothing
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle returns a rotation of angle radians around a unit axis
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	half := angle * 0.5
	s := math.Sin(half)
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: math.Cos(half)}
}

// QuaternionFromYawPitchRoll returns a rotation from yaw (around Y), pitch
// (around X) and roll (around Z)
func QuaternionFromYawPitchRoll(yaw, pitch, roll float64) Quaternion {
	sr, cr := math.Sincos(roll * 0.5)
	sp, cp := math.Sincos(pitch * 0.5)
	sy, cy := math.Sincos(yaw * 0.5)

	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuaternionFromRotationMatrix extracts the rotation of the upper-left 3x3 of m.
// The matrix must be orthonormal.
func QuaternionFromRotationMatrix(m Matrix) Quaternion {
	trace := m.M11 + m.M22 + m.M33

	switch {
	case trace > 0:
		s := math.Sqrt(trace + 1)
		half := 0.5 / s
		return Quaternion{
			X: (m.M23 - m.M32) * half,
			Y: (m.M31 - m.M13) * half,
			Z: (m.M12 - m.M21) * half,
			W: s * 0.5,
		}
	case m.M11 >= m.M22 && m.M11 >= m.M33:
		s := math.Sqrt(1 + m.M11 - m.M22 - m.M33)
		half := 0.5 / s
		return Quaternion{
			X: 0.5 * s,
			Y: (m.M12 + m.M21) * half,
			Z: (m.M13 + m.M31) * half,
			W: (m.M23 - m.M32) * half,
		}
	case m.M22 > m.M33:
		s := math.Sqrt(1 + m.M22 - m.M11 - m.M33)
		half := 0.5 / s
		return Quaternion{
			X: (m.M21 + m.M12) * half,
			Y: 0.5 * s,
			Z: (m.M32 + m.M23) * half,
			W: (m.M31 - m.M13) * half,
		}
	default:
		s := math.Sqrt(1 + m.M33 - m.M11 - m.M22)
		half := 0.5 / s
		return Quaternion{
			X: (m.M31 + m.M13) * half,
			Y: (m.M32 + m.M23) * half,
			Z: 0.5 * s,
			W: (m.M12 - m.M21) * half,
		}
	}
}

// Add returns the component-wise sum
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{X: q.X + other.X, Y: q.Y + other.Y, Z: q.Z + other.Z, W: q.W + other.W}
}

// Sub returns the component-wise difference
func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{X: q.X - other.X, Y: q.Y - other.Y, Z: q.Z - other.Z, W: q.W - other.W}
}

// Mul returns the Hamilton product q * other
func (q Quaternion) Mul(other Quaternion) Quaternion {
	cx := q.Y*other.Z - q.Z*other.Y
	cy := q.Z*other.X - q.X*other.Z
	cz := q.X*other.Y - q.Y*other.X
	dot := q.X*other.X + q.Y*other.Y + q.Z*other.Z

	return Quaternion{
		X: q.X*other.W + other.X*q.W + cx,
		Y: q.Y*other.W + other.Y*q.W + cy,
		Z: q.Z*other.W + other.Z*q.W + cz,
		W: q.W*other.W - dot,
	}
}

// MulScalar scales every component
func (q Quaternion) MulScalar(scalar float64) Quaternion {
	return Quaternion{X: q.X * scalar, Y: q.Y * scalar, Z: q.Z * scalar, W: q.W * scalar}
}

// Divide returns q multiplied by the inverse of other
func (q Quaternion) Divide(other Quaternion) Quaternion {
	return q.Mul(other.Inverse())
}

// Concatenate returns the rotation that applies first and then second
func Concatenate(first, second Quaternion) Quaternion {
	return second.Mul(first)
}

// Conjugate negates the vector part
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().MulScalar(1 / q.LengthSquared())
}

// Negate flips the sign of every component
func (q Quaternion) Negate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Dot returns the four-component dot product
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the magnitude
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.LengthSquared())
}

// LengthSquared returns the squared magnitude
func (q Quaternion) LengthSquared() float64 {
	return q.Dot(q)
}

// Normalize scales the quaternion to unit length
func (q Quaternion) Normalize() Quaternion {
	return q.MulScalar(1 / q.Length())
}

// Lerp blends towards other along the shorter arc and renormalizes
func (q Quaternion) Lerp(other Quaternion, amount float64) Quaternion {
	a := q.MulScalar(1 - amount)
	if q.Dot(other) >= 0 {
		return a.Add(other.MulScalar(amount)).Normalize()
	}
	return a.Sub(other.MulScalar(amount)).Normalize()
}

// Slerp interpolates along the great arc between two unit quaternions
func (q Quaternion) Slerp(other Quaternion, amount float64) Quaternion {
	cos := q.Dot(other)
	flip := false
	if cos < 0 {
		flip = true
		cos = -cos
	}

	var from, to float64
	if cos > 0.999999 {
		from = 1 - amount
		to = amount
	} else {
		angle := math.Acos(cos)
		inv := 1 / math.Sin(angle)
		from = math.Sin((1-amount)*angle) * inv
		to = math.Sin(amount*angle) * inv
	}
	if flip {
		to = -to
	}

	return q.MulScalar(from).Add(other.MulScalar(to))
}

// ApproxEqual reports whether every component differs by at most epsilon
func (q Quaternion) ApproxEqual(other Quaternion, epsilon float64) bool {
	return math.Abs(q.X-other.X) <= epsilon &&
		math.Abs(q.Y-other.Y) <= epsilon &&
		math.Abs(q.Z-other.Z) <= epsilon &&
		math.Abs(q.W-other.W) <= epsilon
}

func (q Quaternion) String() string {
	return fmt.Sprintf("{X:%g Y:%g Z:%g W:%g}", q.X, q.Y, q.Z, q.W)
}
