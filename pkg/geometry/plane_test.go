package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaneFromPoints(t *testing.T) {
	p := NewPlaneFromPoints(NewVector3(0, 0, 3), NewVector3(1, 0, 3), NewVector3(0, 1, 3))

	assert.Equal(t, Vector3UnitZ, p.Normal)
	assert.Equal(t, -3.0, p.D)
	assert.Equal(t, Intersecting, p.IntersectsPoint(NewVector3(5, -2, 3)))
}

func TestPlaneFromPointNormal(t *testing.T) {
	p := NewPlaneFromPointNormal(NewVector3(0, 2, 0), Vector3Up)

	assert.Equal(t, NewPlane(Vector3Up, -2), p)
	assert.Equal(t, NewPlaneFromComponents(0, 1, 0, -2), p)
	assert.Equal(t, NewPlaneFromVector4(NewVector4(0, 1, 0, -2)), p)
}

func TestPlaneNormalize(t *testing.T) {
	p := NewPlane(NewVector3(0, 0, 2), 6)
	n := p.Normalize()

	assert.Equal(t, NewPlane(Vector3UnitZ, 3), n)
	assert.Equal(t, n, n.Normalize())
}

func TestPlaneNormalizeZero(t *testing.T) {
	n := NewPlane(Vector3Zero, 1).Normalize()
	assert.True(t, math.IsInf(n.D, 1))
	assert.True(t, math.IsNaN(n.Normal.X))
}

func TestPlaneDots(t *testing.T) {
	p := NewPlane(NewVector3(1, 2, 3), 4)

	assert.Equal(t, 1+4+9+4.0, p.DotCoordinate(NewVector3(1, 2, 3)))
	assert.Equal(t, 1+4+9.0, p.DotNormal(NewVector3(1, 2, 3)))
	assert.Equal(t, 1+4+9+8.0, p.Dot(NewVector4(1, 2, 3, 2)))
}

func TestPlaneIntersectsPoint(t *testing.T) {
	p := NewPlane(Vector3Up, -1)

	assert.Equal(t, Front, p.IntersectsPoint(NewVector3(0, 2, 0)))
	assert.Equal(t, Back, p.IntersectsPoint(NewVector3(0, 0, 0)))
	assert.Equal(t, Intersecting, p.IntersectsPoint(NewVector3(7, 1, -7)))
}

func TestPlaneClassifyAndDistance(t *testing.T) {
	p := NewPlane(NewVector3(0, 2, 0), -4)
	point := NewVector3(1, 5, 1)

	assert.Equal(t, 6.0, ClassifyPoint(point, p))
	assert.Equal(t, 3.0, PerpendicularDistance(point, p))
	assert.Equal(t, 3.0, PerpendicularDistance(NewVector3(0, -1, 0), p))
}

func TestPlaneDelegatesToVolumes(t *testing.T) {
	p := NewPlane(Vector3Up, 0)
	box := NewBoundingBox(NewVector3(-1, 1, -1), NewVector3(1, 2, 1))
	sphere := NewBoundingSphere(NewVector3(0, -5, 0), 1)

	assert.Equal(t, box.IntersectsPlane(p), p.IntersectsBox(box))
	assert.Equal(t, Front, p.IntersectsBox(box))
	assert.Equal(t, Back, p.IntersectsSphere(sphere))

	f := testFrustum(t)
	assert.Equal(t, Intersecting, NewPlane(Vector3UnitX, 0).IntersectsFrustum(f))
}

func TestPlaneTransform(t *testing.T) {
	p := NewPlane(Vector3Up, -1)

	moved := p.Transform(CreateTranslation(NewVector3(0, 3, 0)))
	assert.True(t, moved.ApproxEqual(NewPlane(Vector3Up, -4), 1e-12), "got %v", moved)

	m := CreateRotationZ(PiOver2).Mul(CreateTranslation(NewVector3(2, 0, 0)))
	point := NewVector3(5, 1, 5)
	transformed := p.Transform(m)
	assert.InDelta(t, 0, transformed.DotCoordinate(point.Transform(m)), 1e-12)

	rotated := p.TransformQuaternion(QuaternionFromAxisAngle(Vector3UnitZ, PiOver2))
	assert.True(t, rotated.ApproxEqual(NewPlane(Vector3Left, -1), 1e-12), "got %v", rotated)
}
