package geometry

import (
	"fmt"
	"math"
)

// Matrix is a 4x4 transform stored row-major (M<row><col>).
// Points are row vectors multiplied on the left, so translation lives in
// M41, M42 and M43 and a.Mul(b) applies a first, then b.
type Matrix struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// NewMatrix creates a matrix from its sixteen components in row order
func NewMatrix(m11, m12, m13, m14, m21, m22, m23, m24, m31, m32, m33, m34, m41, m42, m43, m44 float64) Matrix {
	return Matrix{
		M11: m11, M12: m12, M13: m13, M14: m14,
		M21: m21, M22: m22, M23: m23, M24: m24,
		M31: m31, M32: m32, M33: m33, M34: m34,
		M41: m41, M42: m42, M43: m43, M44: m44,
	}
}

// NewMatrixFromRows creates a matrix from four row vectors
func NewMatrixFromRows(row1, row2, row3, row4 Vector4) Matrix {
	return NewMatrix(
		row1.X, row1.Y, row1.Z, row1.W,
		row2.X, row2.Y, row2.Z, row2.W,
		row3.X, row3.Y, row3.Z, row3.W,
		row4.X, row4.Y, row4.Z, row4.W,
	)
}

// Identity returns the identity matrix
func Identity() Matrix {
	return Matrix{M11: 1, M22: 1, M33: 1, M44: 1}
}

// Array returns the components in row order
func (m Matrix) Array() [16]float64 {
	return [16]float64{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// MatrixFromArray is the inverse of Array
func MatrixFromArray(a [16]float64) Matrix {
	return NewMatrix(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11], a[12], a[13], a[14], a[15])
}

// At returns the component at a zero-based row and column
func (m Matrix) At(row, col int) float64 {
	return m.Array()[row*4+col]
}

func (m Matrix) apply(other Matrix, op func(a, b float64) float64) Matrix {
	a, b := m.Array(), other.Array()
	var r [16]float64
	for i := range r {
		r[i] = op(a[i], b[i])
	}
	return MatrixFromArray(r)
}

// Add returns the component-wise sum
func (m Matrix) Add(other Matrix) Matrix {
	return m.apply(other, func(a, b float64) float64 { return a + b })
}

// Sub returns the component-wise difference
func (m Matrix) Sub(other Matrix) Matrix {
	return m.apply(other, func(a, b float64) float64 { return a - b })
}

// Divide returns the component-wise quotient
func (m Matrix) Divide(other Matrix) Matrix {
	return m.apply(other, func(a, b float64) float64 { return a / b })
}

// MulScalar multiplies every component by a scalar
func (m Matrix) MulScalar(scalar float64) Matrix {
	return m.apply(Matrix{}, func(a, _ float64) float64 { return a * scalar })
}

// DivScalar divides every component by a scalar
func (m Matrix) DivScalar(divider float64) Matrix {
	return m.MulScalar(1 / divider)
}

// Negate flips the sign of every component
func (m Matrix) Negate() Matrix {
	return m.MulScalar(-1)
}

// Lerp interpolates every component towards other
func (m Matrix) Lerp(other Matrix, amount float64) Matrix {
	return m.apply(other, func(a, b float64) float64 { return Lerp(a, b, amount) })
}

// Mul returns the matrix product m * other
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		M11: m.M11*other.M11 + m.M12*other.M21 + m.M13*other.M31 + m.M14*other.M41,
		M12: m.M11*other.M12 + m.M12*other.M22 + m.M13*other.M32 + m.M14*other.M42,
		M13: m.M11*other.M13 + m.M12*other.M23 + m.M13*other.M33 + m.M14*other.M43,
		M14: m.M11*other.M14 + m.M12*other.M24 + m.M13*other.M34 + m.M14*other.M44,

		M21: m.M21*other.M11 + m.M22*other.M21 + m.M23*other.M31 + m.M24*other.M41,
		M22: m.M21*other.M12 + m.M22*other.M22 + m.M23*other.M32 + m.M24*other.M42,
		M23: m.M21*other.M13 + m.M22*other.M23 + m.M23*other.M33 + m.M24*other.M43,
		M24: m.M21*other.M14 + m.M22*other.M24 + m.M23*other.M34 + m.M24*other.M44,

		M31: m.M31*other.M11 + m.M32*other.M21 + m.M33*other.M31 + m.M34*other.M41,
		M32: m.M31*other.M12 + m.M32*other.M22 + m.M33*other.M32 + m.M34*other.M42,
		M33: m.M31*other.M13 + m.M32*other.M23 + m.M33*other.M33 + m.M34*other.M43,
		M34: m.M31*other.M14 + m.M32*other.M24 + m.M33*other.M34 + m.M34*other.M44,

		M41: m.M41*other.M11 + m.M42*other.M21 + m.M43*other.M31 + m.M44*other.M41,
		M42: m.M41*other.M12 + m.M42*other.M22 + m.M43*other.M32 + m.M44*other.M42,
		M43: m.M41*other.M13 + m.M42*other.M23 + m.M43*other.M33 + m.M44*other.M43,
		M44: m.M41*other.M14 + m.M42*other.M24 + m.M43*other.M34 + m.M44*other.M44,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	return NewMatrix(
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	)
}

// Determinant returns the determinant of the matrix
func (m Matrix) Determinant() float64 {
	// 2x2 minors of the bottom two rows
	m3344 := m.M33*m.M44 - m.M34*m.M43
	m3244 := m.M32*m.M44 - m.M34*m.M42
	m3243 := m.M32*m.M43 - m.M33*m.M42
	m3144 := m.M31*m.M44 - m.M34*m.M41
	m3143 := m.M31*m.M43 - m.M33*m.M41
	m3142 := m.M31*m.M42 - m.M32*m.M41

	return m.M11*(m.M22*m3344-m.M23*m3244+m.M24*m3243) -
		m.M12*(m.M21*m3344-m.M23*m3144+m.M24*m3143) +
		m.M13*(m.M21*m3244-m.M22*m3144+m.M24*m3142) -
		m.M14*(m.M21*m3243-m.M22*m3143+m.M23*m3142)
}

// Invert returns the inverse computed from the adjugate.
// A singular matrix yields Inf/NaN components.
func (m Matrix) Invert() Matrix {
	// minors of rows 3 and 4
	a := m.M33*m.M44 - m.M34*m.M43
	b := m.M32*m.M44 - m.M34*m.M42
	c := m.M32*m.M43 - m.M33*m.M42
	d := m.M31*m.M44 - m.M34*m.M41
	e := m.M31*m.M43 - m.M33*m.M41
	f := m.M31*m.M42 - m.M32*m.M41

	c11 := m.M22*a - m.M23*b + m.M24*c
	c12 := -(m.M21*a - m.M23*d + m.M24*e)
	c13 := m.M21*b - m.M22*d + m.M24*f
	c14 := -(m.M21*c - m.M22*e + m.M23*f)

	invDet := 1 / (m.M11*c11 + m.M12*c12 + m.M13*c13 + m.M14*c14)

	var r Matrix
	r.M11 = c11 * invDet
	r.M21 = c12 * invDet
	r.M31 = c13 * invDet
	r.M41 = c14 * invDet

	r.M12 = -(m.M12*a - m.M13*b + m.M14*c) * invDet
	r.M22 = (m.M11*a - m.M13*d + m.M14*e) * invDet
	r.M32 = -(m.M11*b - m.M12*d + m.M14*f) * invDet
	r.M42 = (m.M11*c - m.M12*e + m.M13*f) * invDet

	// minors of rows 2 and 4
	g := m.M23*m.M44 - m.M24*m.M43
	h := m.M22*m.M44 - m.M24*m.M42
	i := m.M22*m.M43 - m.M23*m.M42
	j := m.M21*m.M44 - m.M24*m.M41
	k := m.M21*m.M43 - m.M23*m.M41
	l := m.M21*m.M42 - m.M22*m.M41

	r.M13 = (m.M12*g - m.M13*h + m.M14*i) * invDet
	r.M23 = -(m.M11*g - m.M13*j + m.M14*k) * invDet
	r.M33 = (m.M11*h - m.M12*j + m.M14*l) * invDet
	r.M43 = -(m.M11*i - m.M12*k + m.M13*l) * invDet

	// minors of rows 2 and 3
	n := m.M23*m.M34 - m.M24*m.M33
	o := m.M22*m.M34 - m.M24*m.M32
	p := m.M22*m.M33 - m.M23*m.M32
	q := m.M21*m.M34 - m.M24*m.M31
	s := m.M21*m.M33 - m.M23*m.M31
	t := m.M21*m.M32 - m.M22*m.M31

	r.M14 = -(m.M12*n - m.M13*o + m.M14*p) * invDet
	r.M24 = (m.M11*n - m.M13*q + m.M14*s) * invDet
	r.M34 = -(m.M11*o - m.M12*q + m.M14*t) * invDet
	r.M44 = (m.M11*p - m.M12*s + m.M13*t) * invDet

	return r
}

// Decompose splits an affine matrix into scale, rotation and translation.
// The sign of each scale axis is guessed from the sign of the product of
// that row's components. It returns false when any scale axis is zero, in
// which case rotation is the identity.
func (m Matrix) Decompose() (scale Vector3, rotation Quaternion, translation Vector3, ok bool) {
	translation = Vector3{X: m.M41, Y: m.M42, Z: m.M43}

	sign := func(a, b, c, d float64) float64 {
		if a*b*c*d < 0 {
			return -1
		}
		return 1
	}

	scale.X = sign(m.M11, m.M12, m.M13, m.M14) * math.Sqrt(m.M11*m.M11+m.M12*m.M12+m.M13*m.M13)
	scale.Y = sign(m.M21, m.M22, m.M23, m.M24) * math.Sqrt(m.M21*m.M21+m.M22*m.M22+m.M23*m.M23)
	scale.Z = sign(m.M31, m.M32, m.M33, m.M34) * math.Sqrt(m.M31*m.M31+m.M32*m.M32+m.M33*m.M33)

	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return scale, IdentityQuaternion(), translation, false
	}

	rot := NewMatrix(
		m.M11/scale.X, m.M12/scale.X, m.M13/scale.X, 0,
		m.M21/scale.Y, m.M22/scale.Y, m.M23/scale.Y, 0,
		m.M31/scale.Z, m.M32/scale.Z, m.M33/scale.Z, 0,
		0, 0, 0, 1,
	)
	return scale, QuaternionFromRotationMatrix(rot), translation, true
}

// Translation returns the translation row
func (m Matrix) Translation() Vector3 {
	return Vector3{X: m.M41, Y: m.M42, Z: m.M43}
}

// WithTranslation returns a copy with the translation row replaced
func (m Matrix) WithTranslation(v Vector3) Matrix {
	m.M41, m.M42, m.M43 = v.X, v.Y, v.Z
	return m
}

// Right returns the first basis row
func (m Matrix) Right() Vector3 {
	return Vector3{X: m.M11, Y: m.M12, Z: m.M13}
}

// Left returns the negated first basis row
func (m Matrix) Left() Vector3 {
	return m.Right().Negate()
}

// Up returns the second basis row
func (m Matrix) Up() Vector3 {
	return Vector3{X: m.M21, Y: m.M22, Z: m.M23}
}

// Down returns the negated second basis row
func (m Matrix) Down() Vector3 {
	return m.Up().Negate()
}

// Backward returns the third basis row
func (m Matrix) Backward() Vector3 {
	return Vector3{X: m.M31, Y: m.M32, Z: m.M33}
}

// Forward returns the negated third basis row
func (m Matrix) Forward() Vector3 {
	return m.Backward().Negate()
}

// ApproxEqual reports whether every component differs by at most epsilon
func (m Matrix) ApproxEqual(other Matrix, epsilon float64) bool {
	a, b := m.Array(), other.Array()
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("{ {M11:%g M12:%g M13:%g M14:%g} {M21:%g M22:%g M23:%g M24:%g} {M31:%g M32:%g M33:%g M34:%g} {M41:%g M42:%g M43:%g M44:%g} }",
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44)
}

// CreateTranslation returns a matrix that moves points by position
func CreateTranslation(position Vector3) Matrix {
	m := Identity()
	m.M41, m.M42, m.M43 = position.X, position.Y, position.Z
	return m
}

// CreateScale returns a matrix that scales each axis independently
func CreateScale(scales Vector3) Matrix {
	return Matrix{M11: scales.X, M22: scales.Y, M33: scales.Z, M44: 1}
}

// CreateUniformScale returns a matrix that scales all axes by the same factor
func CreateUniformScale(scale float64) Matrix {
	return CreateScale(SplatVector3(scale))
}

// CreateRotationX returns a rotation around the X axis
func CreateRotationX(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.M22, m.M23 = c, s
	m.M32, m.M33 = -s, c
	return m
}

// CreateRotationY returns a rotation around the Y axis
func CreateRotationY(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.M11, m.M13 = c, -s
	m.M31, m.M33 = s, c
	return m
}

// CreateRotationZ returns a rotation around the Z axis
func CreateRotationZ(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.M11, m.M12 = c, s
	m.M21, m.M22 = -s, c
	return m
}

// CreateFromAxisAngle returns a rotation of angle radians around a unit axis
func CreateFromAxisAngle(axis Vector3, angle float64) Matrix {
	x, y, z := axis.X, axis.Y, axis.Z
	s, c := math.Sin(angle), math.Cos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	return Matrix{
		M11: xx + c*(1-xx),
		M12: xy - c*xy + s*z,
		M13: xz - c*xz - s*y,
		M21: xy - c*xy - s*z,
		M22: yy + c*(1-yy),
		M23: yz - c*yz + s*x,
		M31: xz - c*xz + s*y,
		M32: yz - c*yz - s*x,
		M33: zz + c*(1-zz),
		M44: 1,
	}
}

// CreateFromQuaternion returns the rotation matrix of a unit quaternion
func CreateFromQuaternion(q Quaternion) Matrix {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, zw, zx := q.X*q.Y, q.Z*q.W, q.Z*q.X
	yw, yz, xw := q.Y*q.W, q.Y*q.Z, q.X*q.W

	return Matrix{
		M11: 1 - 2*(yy+zz),
		M12: 2 * (xy + zw),
		M13: 2 * (zx - yw),
		M21: 2 * (xy - zw),
		M22: 1 - 2*(zz+xx),
		M23: 2 * (yz + xw),
		M31: 2 * (zx + yw),
		M32: 2 * (yz - xw),
		M33: 1 - 2*(yy+xx),
		M44: 1,
	}
}

// CreateFromYawPitchRoll returns a rotation from yaw (Y), pitch (X) and roll (Z) angles
func CreateFromYawPitchRoll(yaw, pitch, roll float64) Matrix {
	return CreateFromQuaternion(QuaternionFromYawPitchRoll(yaw, pitch, roll))
}

// CreateLookAt returns a view matrix for a camera at position looking at target
func CreateLookAt(position, target, up Vector3) Matrix {
	zaxis := position.Sub(target).Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	return Matrix{
		M11: xaxis.X, M12: yaxis.X, M13: zaxis.X,
		M21: xaxis.Y, M22: yaxis.Y, M23: zaxis.Y,
		M31: xaxis.Z, M32: yaxis.Z, M33: zaxis.Z,
		M41: -xaxis.Dot(position),
		M42: -yaxis.Dot(position),
		M43: -zaxis.Dot(position),
		M44: 1,
	}
}

// CreateWorld returns a world matrix placing an object at position facing forward
func CreateWorld(position, forward, up Vector3) Matrix {
	z := forward.Normalize()
	x := forward.Cross(up).Normalize()
	y := x.Cross(forward).Normalize()

	return Matrix{
		M11: x.X, M12: x.Y, M13: x.Z,
		M21: y.X, M22: y.Y, M23: y.Z,
		M31: -z.X, M32: -z.Y, M33: -z.Z,
		M41: position.X, M42: position.Y, M43: position.Z,
		M44: 1,
	}
}

// CreateBillboard returns a matrix that rotates an object to face the camera
func CreateBillboard(objectPosition, cameraPosition, cameraUp, cameraForward Vector3) Matrix {
	toCamera := objectPosition.Sub(cameraPosition)
	if lengthSq := toCamera.LengthSquared(); lengthSq < 0.0001 {
		toCamera = cameraForward.Negate()
	} else {
		toCamera = toCamera.Mul(1 / math.Sqrt(lengthSq))
	}

	right := cameraUp.Cross(toCamera).Normalize()
	up := toCamera.Cross(right)

	return Matrix{
		M11: right.X, M12: right.Y, M13: right.Z,
		M21: up.X, M22: up.Y, M23: up.Z,
		M31: toCamera.X, M32: toCamera.Y, M33: toCamera.Z,
		M41: objectPosition.X, M42: objectPosition.Y, M43: objectPosition.Z,
		M44: 1,
	}
}

// CreateOrthographic returns an orthographic projection centered on the view axis
func CreateOrthographic(width, height, near, far float64) Matrix {
	return Matrix{
		M11: 2 / width,
		M22: 2 / height,
		M33: 1 / (near - far),
		M43: near / (near - far),
		M44: 1,
	}
}

// CreateOrthographicOffCenter returns an orthographic projection for an
// arbitrary view volume. Z maps to [0, 1] between near and far.
func CreateOrthographicOffCenter(left, right, bottom, top, near, far float64) Matrix {
	return Matrix{
		M11: 2 / (right - left),
		M22: 2 / (top - bottom),
		M33: 1 / (near - far),
		M41: (left + right) / (left - right),
		M42: (top + bottom) / (bottom - top),
		M43: near / (near - far),
		M44: 1,
	}
}

func checkPerspective(near, far float64) error {
	if near <= 0 {
		return fmt.Errorf("%w: near plane distance %g must be positive", ErrInvalidProjection, near)
	}
	if far <= 0 {
		return fmt.Errorf("%w: far plane distance %g must be positive", ErrInvalidProjection, far)
	}
	if near >= far {
		return fmt.Errorf("%w: near plane distance %g must be less than far %g", ErrInvalidProjection, near, far)
	}
	return nil
}

// farRange returns far/(near-far), or -1 for an infinite far plane
func farRange(near, far float64) float64 {
	if math.IsInf(far, 1) {
		return -1
	}
	return far / (near - far)
}

// CreatePerspective returns a perspective projection for a view volume of
// the given size at the near plane
func CreatePerspective(width, height, near, far float64) (Matrix, error) {
	if err := checkPerspective(near, far); err != nil {
		return Matrix{}, err
	}
	negFarRange := farRange(near, far)

	return Matrix{
		M11: 2 * near / width,
		M22: 2 * near / height,
		M33: negFarRange,
		M34: -1,
		M43: near * negFarRange,
	}, nil
}

// CreatePerspectiveFieldOfView returns a perspective projection from a
// vertical field of view in radians
func CreatePerspectiveFieldOfView(fieldOfView, aspectRatio, near, far float64) (Matrix, error) {
	if fieldOfView <= 0 || fieldOfView >= math.Pi {
		return Matrix{}, fmt.Errorf("%w: field of view %g must be in (0, Pi)", ErrInvalidProjection, fieldOfView)
	}
	if err := checkPerspective(near, far); err != nil {
		return Matrix{}, err
	}

	yScale := 1 / math.Tan(fieldOfView*0.5)
	negFarRange := farRange(near, far)

	return Matrix{
		M11: yScale / aspectRatio,
		M22: yScale,
		M33: negFarRange,
		M34: -1,
		M43: near * negFarRange,
	}, nil
}

// CreatePerspectiveOffCenter returns a perspective projection for an
// off-center view volume given at the near plane
func CreatePerspectiveOffCenter(left, right, bottom, top, near, far float64) (Matrix, error) {
	if err := checkPerspective(near, far); err != nil {
		return Matrix{}, err
	}

	negFarRange := farRange(near, far)

	return Matrix{
		M11: 2 * near / (right - left),
		M22: 2 * near / (top - bottom),
		M31: (left + right) / (right - left),
		M32: (top + bottom) / (top - bottom),
		M33: negFarRange,
		M34: -1,
		M43: near * negFarRange,
	}, nil
}

// CreateReflection returns a matrix that mirrors points across a plane
func CreateReflection(plane Plane) Matrix {
	p := plane.Normalize()
	x, y, z := p.Normal.X, p.Normal.Y, p.Normal.Z
	fx, fy, fz := -2*x, -2*y, -2*z

	return Matrix{
		M11: fx*x + 1, M12: fy * x, M13: fz * x,
		M21: fx * y, M22: fy*y + 1, M23: fz * y,
		M31: fx * z, M32: fy * z, M33: fz*z + 1,
		M41: fx * p.D, M42: fy * p.D, M43: fz * p.D,
		M44: 1,
	}
}

// CreateShadow returns a matrix that flattens geometry onto a plane as
// seen from a directional light
func CreateShadow(lightDirection Vector3, plane Plane) Matrix {
	dot := plane.Normal.Dot(lightDirection)
	x, y, z, d := -plane.Normal.X, -plane.Normal.Y, -plane.Normal.Z, -plane.D
	l := lightDirection

	return Matrix{
		M11: x*l.X + dot, M12: x * l.Y, M13: x * l.Z,
		M21: y * l.X, M22: y*l.Y + dot, M23: y * l.Z,
		M31: z * l.X, M32: z * l.Y, M33: z*l.Z + dot,
		M41: d * l.X, M42: d * l.Y, M43: d * l.Z,
		M44: dot,
	}
}
