package geometry

import (
	"fmt"
	"math"
)

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// SplatVector3 creates a vector with all three components set to value
func SplatVector3(value float64) Vector3 {
	return Vector3{X: value, Y: value, Z: value}
}

// Direction and axis vectors. Forward is -Z (right-handed).
var (
	Vector3Zero     = Vector3{}
	Vector3One      = Vector3{X: 1, Y: 1, Z: 1}
	Vector3UnitX    = Vector3{X: 1}
	Vector3UnitY    = Vector3{Y: 1}
	Vector3UnitZ    = Vector3{Z: 1}
	Vector3Up       = Vector3{Y: 1}
	Vector3Down     = Vector3{Y: -1}
	Vector3Right    = Vector3{X: 1}
	Vector3Left     = Vector3{X: -1}
	Vector3Forward  = Vector3{Z: -1}
	Vector3Backward = Vector3{Z: 1}
)

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Multiply multiplies two vectors component by component
func (v Vector3) Multiply(other Vector3) Vector3 {
	return Vector3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Div divides the vector by a scalar
func (v Vector3) Div(scalar float64) Vector3 {
	return Vector3{
		X: v.X / scalar,
		Y: v.Y / scalar,
		Z: v.Z / scalar,
	}
}

// Divide divides two vectors component by component
func (v Vector3) Divide(other Vector3) Vector3 {
	return Vector3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

// Negate returns the vector pointing the opposite way
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between two points
func (v Vector3) DistanceSquared(other Vector3) float64 {
	return v.Sub(other).LengthSquared()
}

// Normalize returns a unit vector in the same direction.
// A zero vector yields NaN components.
func (v Vector3) Normalize() Vector3 {
	return v.Mul(1.0 / v.Length())
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

// Clamp restricts each component to the range given by min and max
func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return Vector3{
		X: Clamp(v.X, min.X, max.X),
		Y: Clamp(v.Y, min.Y, max.Y),
		Z: Clamp(v.Z, min.Z, max.Z),
	}
}

// Floor rounds each component down
func (v Vector3) Floor() Vector3 {
	return Vector3{X: math.Floor(v.X), Y: math.Floor(v.Y), Z: math.Floor(v.Z)}
}

// Ceiling rounds each component up
func (v Vector3) Ceiling() Vector3 {
	return Vector3{X: math.Ceil(v.X), Y: math.Ceil(v.Y), Z: math.Ceil(v.Z)}
}

// Round rounds each component to the nearest integer, halves to even
func (v Vector3) Round() Vector3 {
	return Vector3{X: math.RoundToEven(v.X), Y: math.RoundToEven(v.Y), Z: math.RoundToEven(v.Z)}
}

// Reflect returns the reflection of the vector off a surface with the given normal
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Lerp linearly interpolates towards other
func (v Vector3) Lerp(other Vector3, amount float64) Vector3 {
	return Vector3{
		X: Lerp(v.X, other.X, amount),
		Y: Lerp(v.Y, other.Y, amount),
		Z: Lerp(v.Z, other.Z, amount),
	}
}

// LerpPrecise linearly interpolates towards other using (1-t)*a + t*b
func (v Vector3) LerpPrecise(other Vector3, amount float64) Vector3 {
	return Vector3{
		X: LerpPrecise(v.X, other.X, amount),
		Y: LerpPrecise(v.Y, other.Y, amount),
		Z: LerpPrecise(v.Z, other.Z, amount),
	}
}

// SmoothStep interpolates towards other with a cubic ease
func (v Vector3) SmoothStep(other Vector3, amount float64) Vector3 {
	return Vector3{
		X: SmoothStep(v.X, other.X, amount),
		Y: SmoothStep(v.Y, other.Y, amount),
		Z: SmoothStep(v.Z, other.Z, amount),
	}
}

// HermiteVector3 performs a Hermite spline interpolation
func HermiteVector3(value1, tangent1, value2, tangent2 Vector3, amount float64) Vector3 {
	return Vector3{
		X: Hermite(value1.X, tangent1.X, value2.X, tangent2.X, amount),
		Y: Hermite(value1.Y, tangent1.Y, value2.Y, tangent2.Y, amount),
		Z: Hermite(value1.Z, tangent1.Z, value2.Z, tangent2.Z, amount),
	}
}

// CatmullRomVector3 performs a Catmull-Rom interpolation between value2 and value3
func CatmullRomVector3(value1, value2, value3, value4 Vector3, amount float64) Vector3 {
	return Vector3{
		X: CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		Y: CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount),
		Z: CatmullRom(value1.Z, value2.Z, value3.Z, value4.Z, amount),
	}
}

// BarycentricVector3 returns the point at the given barycentric coordinates of a triangle
func BarycentricVector3(value1, value2, value3 Vector3, amount1, amount2 float64) Vector3 {
	return Vector3{
		X: Barycentric(value1.X, value2.X, value3.X, amount1, amount2),
		Y: Barycentric(value1.Y, value2.Y, value3.Y, amount1, amount2),
		Z: Barycentric(value1.Z, value2.Z, value3.Z, amount1, amount2),
	}
}

// Transform applies a matrix to the point, including translation
func (v Vector3) Transform(m Matrix) Vector3 {
	return Vector3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformNormal applies a matrix to a direction, ignoring translation
func (v Vector3) TransformNormal(m Matrix) Vector3 {
	return Vector3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// TransformQuaternion rotates the vector by a quaternion
func (v Vector3) TransformQuaternion(q Quaternion) Vector3 {
	x := 2 * (q.Y*v.Z - q.Z*v.Y)
	y := 2 * (q.Z*v.X - q.X*v.Z)
	z := 2 * (q.X*v.Y - q.Y*v.X)

	return Vector3{
		X: v.X + x*q.W + (q.Y*z - q.Z*y),
		Y: v.Y + y*q.W + (q.Z*x - q.X*z),
		Z: v.Z + z*q.W + (q.X*y - q.Y*x),
	}
}

// ApproxEqual reports whether every component differs by at most epsilon
func (v Vector3) ApproxEqual(other Vector3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// String formats the vector as {X:1 Y:2 Z:3}
func (v Vector3) String() string {
	return fmt.Sprintf("{X:%g Y:%g Z:%g}", v.X, v.Y, v.Z)
}
