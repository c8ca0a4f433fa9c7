package geom

import "github.com/go-gl/mathgl/mgl32"

// Quat is a rotation quaternion.
type Quat = mgl32.Quat

// QuatIdentity is the rotation that leaves vectors unchanged.
var QuatIdentity = mgl32.QuatIdent()

// QuatAxisAngle returns the rotation of rad radians around axis. The axis need
// not be unit length; a zero axis yields QuatIdentity.
func QuatAxisAngle(axis Vec3, rad float32) Quat {
	if axis.Len() == 0 {
		return QuatIdentity
	}
	return mgl32.QuatRotate(rad, axis.Normalize())
}
