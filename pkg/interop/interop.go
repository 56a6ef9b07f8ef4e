// Package interop converts geometry values to and from the mgl64 and r3
// vector libraries.
//
// Matrix is stored row by row and multiplies row vectors, mgl64.Mat4 is
// stored column by column and multiplies column vectors. The two transposes
// cancel, so the sixteen values carry over in order.
package interop

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/philipparndt/gobound/pkg/geometry"
)

// ToMgl converts a vector to mgl64
func ToMgl(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts an mgl64 vector
func FromMgl(v mgl64.Vec3) geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

// ToR3 converts a vector to r3
func ToR3(v geometry.Vector3) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// FromR3 converts an r3 vector
func FromR3(v r3.Vector) geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}

// MatrixToMgl converts a matrix. a.Mul(b) maps to
// MatrixToMgl(b).Mul4(MatrixToMgl(a)).
func MatrixToMgl(m geometry.Matrix) mgl64.Mat4 {
	return mgl64.Mat4(m.Array())
}

// MatrixFromMgl converts an mgl64 matrix
func MatrixFromMgl(m mgl64.Mat4) geometry.Matrix {
	return geometry.MatrixFromArray([16]float64(m))
}

// QuaternionToMgl converts a quaternion
func QuaternionToMgl(q geometry.Quaternion) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// QuaternionFromMgl converts an mgl64 quaternion
func QuaternionFromMgl(q mgl64.Quat) geometry.Quaternion {
	return geometry.NewQuaternion(q.V[0], q.V[1], q.V[2], q.W)
}

// BoxToMgl returns the box corners as mgl64 vectors
func BoxToMgl(b geometry.BoundingBox) (min, max mgl64.Vec3) {
	return ToMgl(b.Min), ToMgl(b.Max)
}

// BoxToR3 returns the box corners as r3 vectors
func BoxToR3(b geometry.BoundingBox) (min, max r3.Vector) {
	return ToR3(b.Min), ToR3(b.Max)
}

// PointsFromR3 converts a point cloud, ready for BoundingBoxFromPoints
func PointsFromR3(points []r3.Vector) []geometry.Vector3 {
	out := make([]geometry.Vector3, len(points))
	for i, p := range points {
		out[i] = FromR3(p)
	}
	return out
}
