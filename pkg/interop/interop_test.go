package interop

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/philipparndt/gobound/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestVectorConversions(t *testing.T) {
	v := geometry.NewVector3(1.5, -2, 3.25)

	assert.Equal(t, mgl64.Vec3{1.5, -2, 3.25}, ToMgl(v))
	assert.Equal(t, v, FromMgl(ToMgl(v)))
	assert.Equal(t, r3.Vector{X: 1.5, Y: -2, Z: 3.25}, ToR3(v))
	assert.Equal(t, v, FromR3(ToR3(v)))
}

func TestVectorOpsAgree(t *testing.T) {
	a := geometry.NewVector3(1, 2, 3)
	b := geometry.NewVector3(-4, 0.5, 2)

	assert.Equal(t, ToMgl(a.Cross(b)), ToMgl(a).Cross(ToMgl(b)))
	assert.Equal(t, ToR3(a.Cross(b)), ToR3(a).Cross(ToR3(b)))
	assert.Equal(t, a.Dot(b), ToR3(a).Dot(ToR3(b)))
	assert.InDelta(t, a.Length(), ToMgl(a).Len(), eps)
	assert.InDelta(t, a.Distance(b), ToR3(a).Distance(ToR3(b)), eps)
}

func TestMatrixLayout(t *testing.T) {
	assert.Equal(t, mgl64.Translate3D(1, 2, 3), MatrixToMgl(geometry.CreateTranslation(geometry.NewVector3(1, 2, 3))))
	assert.Equal(t, mgl64.Scale3D(2, 3, 4), MatrixToMgl(geometry.CreateScale(geometry.NewVector3(2, 3, 4))))
	assertMat(t, mgl64.HomogRotate3DY(0.7), MatrixToMgl(geometry.CreateRotationY(0.7)), eps)

	m := geometry.CreateFromYawPitchRoll(0.3, -0.2, 1.1).Mul(geometry.CreateTranslation(geometry.NewVector3(4, 5, 6)))
	assert.Equal(t, m, MatrixFromMgl(MatrixToMgl(m)))
}

func TestMatrixOpsAgree(t *testing.T) {
	a := geometry.CreateRotationX(0.4).Mul(geometry.CreateTranslation(geometry.NewVector3(1, -2, 3)))
	b := geometry.CreateScale(geometry.NewVector3(2, 1, 0.5)).Mul(geometry.CreateRotationZ(-1.2))

	assertMat(t, MatrixToMgl(b).Mul4(MatrixToMgl(a)), MatrixToMgl(a.Mul(b)), eps)
	assertMat(t, MatrixToMgl(a).Inv(), MatrixToMgl(a.Invert()), 1e-9)
	assert.InDelta(t, b.Determinant(), MatrixToMgl(b).Det(), 1e-9)

	p := geometry.NewVector3(0.5, 7, -3)
	want := mgl64.TransformCoordinate(ToMgl(p), MatrixToMgl(a.Mul(b)))
	assertVec(t, want, ToMgl(p.Transform(a.Mul(b))), 1e-9)
}

func TestLookAtAgrees(t *testing.T) {
	eye := geometry.NewVector3(3, 4, 5)
	target := geometry.NewVector3(0, 1, -2)

	want := mgl64.LookAtV(ToMgl(eye), ToMgl(target), mgl64.Vec3{0, 1, 0})
	assertMat(t, want, MatrixToMgl(geometry.CreateLookAt(eye, target, geometry.Vector3Up)), 1e-9)
}

func TestQuaternionsAgree(t *testing.T) {
	axis := geometry.NewVector3(1, 2, 2).Normalize()
	q := geometry.QuaternionFromAxisAngle(axis, 0.9)
	r := geometry.QuaternionFromAxisAngle(geometry.Vector3UnitX, -0.4)

	assertQuat(t, mgl64.QuatRotate(0.9, ToMgl(axis)), QuaternionToMgl(q))
	assert.Equal(t, q, QuaternionFromMgl(QuaternionToMgl(q)))
	assertQuat(t, QuaternionToMgl(q).Mul(QuaternionToMgl(r)), QuaternionToMgl(q.Mul(r)))

	v := geometry.NewVector3(1, -1, 0.5)
	assertVec(t, QuaternionToMgl(q).Rotate(ToMgl(v)), ToMgl(v.TransformQuaternion(q)), 1e-9)
	assertMat(t, QuaternionToMgl(q).Mat4(), MatrixToMgl(geometry.CreateFromQuaternion(q)), 1e-9)
}

func TestBoxes(t *testing.T) {
	points := []r3.Vector{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 5, Z: 0}, {X: 0, Y: 0, Z: math.Pi}}

	box, err := geometry.BoundingBoxFromPoints(PointsFromR3(points))
	require.NoError(t, err)

	lo, hi := BoxToR3(box)
	assert.Equal(t, r3.Vector{X: -1, Y: 0, Z: 0}, lo)
	assert.Equal(t, r3.Vector{X: 1, Y: 5, Z: math.Pi}, hi)

	mlo, mhi := BoxToMgl(box)
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, mlo)
	assert.Equal(t, mgl64.Vec3{1, 5, math.Pi}, mhi)
}

func assertMat(t *testing.T, want, got mgl64.Mat4, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, "want %v, got %v", want, got)
}

func assertVec(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, "want %v, got %v", want, got)
}

func assertQuat(t *testing.T, want, got mgl64.Quat) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, eps)
	assertVec(t, want.V, got.V, eps)
}
