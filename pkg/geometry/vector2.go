package geometry

import (
	"fmt"
	"math"
)

// Vector2 represents a 2D point or vector
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Multiply multiplies two vectors component by component
func (v Vector2) Multiply(other Vector2) Vector2 {
	return Vector2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Div divides the vector by a scalar
func (v Vector2) Div(scalar float64) Vector2 {
	return Vector2{X: v.X / scalar, Y: v.Y / scalar}
}

// Divide divides two vectors component by component
func (v Vector2) Divide(other Vector2) Vector2 {
	return Vector2{X: v.X / other.X, Y: v.Y / other.Y}
}

// Negate returns the vector pointing the opposite way
func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between two points
func (v Vector2) DistanceSquared(other Vector2) float64 {
	return v.Sub(other).LengthSquared()
}

// Normalize returns a unit vector in the same direction
func (v Vector2) Normalize() Vector2 {
	return v.Mul(1.0 / v.Length())
}

// Min returns a vector with the minimum components of two vectors
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y)}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y)}
}

// Clamp restricts each component to the range given by min and max
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{X: Clamp(v.X, min.X, max.X), Y: Clamp(v.Y, min.Y, max.Y)}
}

// Reflect returns the reflection of the vector off a surface with the given normal
func (v Vector2) Reflect(normal Vector2) Vector2 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Lerp linearly interpolates towards other
func (v Vector2) Lerp(other Vector2, amount float64) Vector2 {
	return Vector2{X: Lerp(v.X, other.X, amount), Y: Lerp(v.Y, other.Y, amount)}
}

// LerpPrecise linearly interpolates towards other using (1-t)*a + t*b
func (v Vector2) LerpPrecise(other Vector2, amount float64) Vector2 {
	return Vector2{X: LerpPrecise(v.X, other.X, amount), Y: LerpPrecise(v.Y, other.Y, amount)}
}

// SmoothStep interpolates towards other with a cubic ease
func (v Vector2) SmoothStep(other Vector2, amount float64) Vector2 {
	return Vector2{X: SmoothStep(v.X, other.X, amount), Y: SmoothStep(v.Y, other.Y, amount)}
}

// HermiteVector2 performs a Hermite spline interpolation
func HermiteVector2(value1, tangent1, value2, tangent2 Vector2, amount float64) Vector2 {
	return Vector2{
		X: Hermite(value1.X, tangent1.X, value2.X, tangent2.X, amount),
		Y: Hermite(value1.Y, tangent1.Y, value2.Y, tangent2.Y, amount),
	}
}

// CatmullRomVector2 performs a Catmull-Rom interpolation between value2 and value3
func CatmullRomVector2(value1, value2, value3, value4 Vector2, amount float64) Vector2 {
	return Vector2{
		X: CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		Y: CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount),
	}
}

// Transform applies a matrix to the point, including translation
func (v Vector2) Transform(m Matrix) Vector2 {
	return Vector2{
		X: v.X*m.M11 + v.Y*m.M21 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// TransformNormal applies a matrix to a direction, ignoring translation
func (v Vector2) TransformNormal(m Matrix) Vector2 {
	return Vector2{
		X: v.X*m.M11 + v.Y*m.M21,
		Y: v.X*m.M12 + v.Y*m.M22,
	}
}

// TransformQuaternion rotates the vector in the XY plane by a quaternion
func (v Vector2) TransformQuaternion(q Quaternion) Vector2 {
	r := Vector3{X: v.X, Y: v.Y}.TransformQuaternion(q)
	return Vector2{X: r.X, Y: r.Y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("{X:%g Y:%g}", v.X, v.Y)
}
