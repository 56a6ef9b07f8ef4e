package geometry

import (
	"fmt"
	"math"
)

// Vector4 represents a homogeneous 4D vector
type Vector4 struct {
	X, Y, Z, W float64
}

// NewVector4 creates a new 4D vector
func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// NewVector4FromVector3 extends a 3D vector with a w component
func NewVector4FromVector3(v Vector3, w float64) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// XYZ drops the w component
func (v Vector4) XYZ() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns the sum of two vectors
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

// Sub returns the difference between two vectors
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

// Mul multiplies the vector by a scalar
func (v Vector4) Mul(scalar float64) Vector4 {
	return Vector4{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar, W: v.W * scalar}
}

// Multiply multiplies two vectors component by component
func (v Vector4) Multiply(other Vector4) Vector4 {
	return Vector4{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z, W: v.W * other.W}
}

// Div divides the vector by a scalar
func (v Vector4) Div(scalar float64) Vector4 {
	return Vector4{X: v.X / scalar, Y: v.Y / scalar, Z: v.Z / scalar, W: v.W / scalar}
}

// Negate returns the vector pointing the opposite way
func (v Vector4) Negate() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product of two vectors
func (v Vector4) Dot(other Vector4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude of the vector
func (v Vector4) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector4) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Distance returns the distance between two points
func (v Vector4) Distance(other Vector4) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vector4) Normalize() Vector4 {
	return v.Mul(1.0 / v.Length())
}

// Min returns a vector with the minimum components of two vectors
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
		W: math.Min(v.W, other.W),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
		W: math.Max(v.W, other.W),
	}
}

// Lerp linearly interpolates towards other
func (v Vector4) Lerp(other Vector4, amount float64) Vector4 {
	return Vector4{
		X: Lerp(v.X, other.X, amount),
		Y: Lerp(v.Y, other.Y, amount),
		Z: Lerp(v.Z, other.Z, amount),
		W: Lerp(v.W, other.W, amount),
	}
}

// LerpPrecise linearly interpolates towards other using (1-t)*a + t*b
func (v Vector4) LerpPrecise(other Vector4, amount float64) Vector4 {
	return Vector4{
		X: LerpPrecise(v.X, other.X, amount),
		Y: LerpPrecise(v.Y, other.Y, amount),
		Z: LerpPrecise(v.Z, other.Z, amount),
		W: LerpPrecise(v.W, other.W, amount),
	}
}

// Transform multiplies the row vector by a matrix
func (v Vector4) Transform(m Matrix) Vector4 {
	return Vector4{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		W: v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// TransformQuaternion rotates the xyz part by a quaternion, keeping w
func (v Vector4) TransformQuaternion(q Quaternion) Vector4 {
	return NewVector4FromVector3(v.XYZ().TransformQuaternion(q), v.W)
}

// ApproxEqual reports whether every component differs by at most epsilon
func (v Vector4) ApproxEqual(other Vector4, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon &&
		math.Abs(v.W-other.W) <= epsilon
}

func (v Vector4) String() string {
	return fmt.Sprintf("{X:%g Y:%g Z:%g W:%g}", v.X, v.Y, v.Z, v.W)
}
