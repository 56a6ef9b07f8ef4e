package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsDispatch(t *testing.T) {
	f := testFrustum(t)
	box := NewBoundingBox(NewVector3(-1, -1, -20), NewVector3(1, 1, -10))
	sphere := NewBoundingSphere(NewVector3(0, 0, -50), 10)

	tests := []struct {
		name string
		a, b Volume
		want ContainmentType
	}{
		{"box/box", box, box, box.ContainsBox(box)},
		{"box/sphere", box, sphere, box.ContainsSphere(sphere)},
		{"box/frustum", box, f, box.ContainsFrustum(f)},
		{"sphere/box", sphere, box, sphere.ContainsBox(box)},
		{"sphere/sphere", sphere, sphere, Contains},
		{"sphere/frustum", sphere, f, sphere.ContainsFrustum(f)},
		{"frustum/box", f, box, Contains},
		{"frustum/sphere", f, sphere, Contains},
		{"frustum/frustum", f, f, Contains},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContainsVolume(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			hit, err := IntersectsVolume(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, got != Disjoint, hit)
		})
	}
}

func TestDispatchUnsupported(t *testing.T) {
	box := unitBox()

	_, err := ContainsVolume(nil, box)
	assert.ErrorIs(t, err, ErrUnsupportedVolume)
	_, err = ContainsVolume(box, nil)
	assert.ErrorIs(t, err, ErrUnsupportedVolume)
	_, err = IntersectsVolume(box, nil)
	assert.ErrorIs(t, err, ErrUnsupportedVolume)
	_, err = ContainsPointIn(nil, Vector3Zero)
	assert.ErrorIs(t, err, ErrUnsupportedVolume)
	_, err = ClassifyPlane(nil, NewPlane(Vector3Up, 0))
	assert.ErrorIs(t, err, ErrUnsupportedVolume)
	_, _, err = RayDistance(NewRay(Vector3Zero, Vector3UnitX), nil)
	assert.ErrorIs(t, err, ErrUnsupportedVolume)
	_, err = BoundsOf(nil)
	assert.ErrorIs(t, err, ErrUnsupportedVolume)
}

func TestContainsPointIn(t *testing.T) {
	volumes := []Volume{
		unitBox(),
		NewBoundingSphere(SplatVector3(0.5), 1),
	}

	for _, v := range volumes {
		got, err := ContainsPointIn(v, SplatVector3(0.5))
		require.NoError(t, err)
		assert.Equal(t, Contains, got, "%v", v)

		got, err = ContainsPointIn(v, SplatVector3(5))
		require.NoError(t, err)
		assert.Equal(t, Disjoint, got, "%v", v)
	}

	got, err := ContainsPointIn(testFrustum(t), NewVector3(0, 0, -50))
	require.NoError(t, err)
	assert.Equal(t, Contains, got)
}

func TestClassifyPlane(t *testing.T) {
	p := NewPlane(Vector3UnitZ, 0)

	side, err := ClassifyPlane(unitBox(), p)
	require.NoError(t, err)
	assert.Equal(t, Intersecting, side)

	side, err = ClassifyPlane(NewBoundingSphere(NewVector3(0, 0, 5), 1), p)
	require.NoError(t, err)
	assert.Equal(t, Front, side)

	side, err = ClassifyPlane(testFrustum(t), p)
	require.NoError(t, err)
	assert.Equal(t, Back, side)
}

func TestRayDistance(t *testing.T) {
	ray := NewRay(NewVector3(-2, 0.5, 0.5), Vector3UnitX)

	d, ok, err := RayDistance(ray, unitBox())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 2, d, 1e-12)

	d, ok, err = RayDistance(ray, NewBoundingSphere(NewVector3(0, 10, 0), 1))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, math.IsNaN(d))

	d, ok, err = RayDistance(NewRay(NewVector3(0, 0, 5), Vector3Forward), testFrustum(t))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 6, d, 1e-9)
}

func TestBoundsOf(t *testing.T) {
	box, err := BoundsOf(unitBox())
	require.NoError(t, err)
	assert.Equal(t, unitBox(), box)

	box, err = BoundsOf(NewBoundingSphere(Vector3Zero, 2))
	require.NoError(t, err)
	assert.Equal(t, NewBoundingBox(SplatVector3(-2), SplatVector3(2)), box)

	box, err = BoundsOf(testFrustum(t))
	require.NoError(t, err)
	assert.True(t, box.Min.ApproxEqual(NewVector3(-100, -100, -100), 1e-9), "got %v", box)
	assert.True(t, box.Max.ApproxEqual(NewVector3(100, 100, -1), 1e-9), "got %v", box)
}

func TestScenarios(t *testing.T) {
	box := NewBoundingBox(NewVector3(0, 0, 0), NewVector3(1, 1, 1))
	assert.Equal(t, Contains, box.ContainsPoint(NewVector3(0.5, 0.5, 0.5)))
	assert.Equal(t, Disjoint, box.ContainsPoint(NewVector3(2, 0, 0)))

	a := NewBoundingSphere(NewVector3(0, 0, 0), 1)
	assert.True(t, a.IntersectsSphere(NewBoundingSphere(NewVector3(1.5, 0, 0), 1)))

	ray := NewRay(NewVector3(0, 0, -5), NewVector3(0, 0, 1))
	assert.Equal(t, 5.0, ray.IntersectsPlane(NewPlane(NewVector3(0, 0, 1), 0)))

	_, err := BoundingBoxFromPoints([]Vector3{})
	assert.ErrorIs(t, err, ErrEmptyPoints)
}
