package geometry

import "math"

// Common angle constants in radians
const (
	PiOver2 = math.Pi / 2
	PiOver4 = math.Pi / 4
	TwoPi   = math.Pi * 2
)

// Epsilon is the tolerance below which a ray direction component is treated as zero
const Epsilon = 1e-6

// Lerp linearly interpolates between two values as a + (b-a)*t
func Lerp(value1, value2, amount float64) float64 {
	return value1 + (value2-value1)*amount
}

// LerpPrecise linearly interpolates as (1-t)*a + t*b.
// It is exact at t == 1 where Lerp may lose precision for values of very
// different magnitude.
func LerpPrecise(value1, value2, amount float64) float64 {
	return (1-amount)*value1 + value2*amount
}

// Hermite performs a Hermite spline interpolation
func Hermite(value1, tangent1, value2, tangent2, amount float64) float64 {
	if amount == 0 {
		return value1
	}
	if amount == 1 {
		return value2
	}

	s := amount
	sSquared := s * s
	sCubed := sSquared * s

	return (2*value1-2*value2+tangent2+tangent1)*sCubed +
		(3*value2-3*value1-2*tangent1-tangent2)*sSquared +
		tangent1*s +
		value1
}

// CatmullRom performs a Catmull-Rom interpolation between value2 and value3
func CatmullRom(value1, value2, value3, value4, amount float64) float64 {
	amountSquared := amount * amount
	amountCubed := amountSquared * amount

	return 0.5 * (2.0*value2 +
		(value3-value1)*amount +
		(2.0*value1-5.0*value2+4.0*value3-value4)*amountSquared +
		(3.0*value2-value1-3.0*value3+value4)*amountCubed)
}

// SmoothStep interpolates between two values using a cubic equation
func SmoothStep(value1, value2, amount float64) float64 {
	return Hermite(value1, 0, value2, 0, Clamp(amount, 0, 1))
}

// Barycentric returns the coordinate of a point given in barycentric
// coordinates relative to a triangle
func Barycentric(value1, value2, value3, amount1, amount2 float64) float64 {
	return value1 + (value2-value1)*amount1 + (value3-value1)*amount2
}

// Clamp restricts a value to the range [min, max]
func Clamp(value, min, max float64) float64 {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

// Distance returns the absolute difference of two values
func Distance(value1, value2 float64) float64 {
	return math.Abs(value1 - value2)
}

// ToRadians converts degrees to radians
func ToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// ToDegrees converts radians to degrees
func ToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// WrapAngle reduces an angle to the range (-Pi, Pi]
func WrapAngle(angle float64) float64 {
	if angle > -math.Pi && angle <= math.Pi {
		return angle
	}
	angle = math.Remainder(angle, TwoPi)
	if angle <= -math.Pi {
		return angle + TwoPi
	}
	if angle > math.Pi {
		return angle - TwoPi
	}
	return angle
}

// IsPowerOfTwo reports whether value is a positive power of two
func IsPowerOfTwo(value int) bool {
	return value > 0 && value&(value-1) == 0
}
