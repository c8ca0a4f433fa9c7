// Package geom provides the small set of value types the other devtools
// packages operate on: 2D and 3D vectors, rotations and axis-aligned bounds.
//
// Vectors and quaternions are the float32 types of mgl32; this package adds
// the engine conventions on top of them.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Vec2 is a 2D vector.
type Vec2 = mgl32.Vec2

// Vec3 is a 3D vector.
type Vec3 = mgl32.Vec3

var (
	// Vec3Zero is the origin.
	Vec3Zero = Vec3{0, 0, 0}
	// Vec3One has every component set to one, the default scale.
	Vec3One = Vec3{1, 1, 1}
)

// ToVec3XZ maps (x, y) onto the ground plane as (x, 0, y).
func ToVec3XZ(v Vec2) Vec3 {
	return Vec3{v[0], 0, v[1]}
}

// MulComponents multiplies a and b component-wise.
func MulComponents(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// DivComponents divides a by b component-wise. A zero component of b yields
// zero.
func DivComponents(a, b Vec3) Vec3 {
	return Vec3{div(a[0], b[0]), div(a[1], b[1]), div(a[2], b[2])}
}

func div(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}
