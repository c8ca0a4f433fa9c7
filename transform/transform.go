// Package transform provides reset helpers for scene transforms and a small
// hierarchical Node that implements them.
package transform

import (
	"reflect"

	"github.com/edwinsyarief/devtools/geom"
)

// Transform is a scene-graph node with separately settable local and world
// placement.
type Transform interface {
	SetLocalPosition(geom.Vec3)
	SetLocalRotation(geom.Quat)
	SetLocalScale(geom.Vec3)
	SetPosition(geom.Vec3)
	SetRotation(geom.Quat)
}

// isNil reports whether t is nil or wraps a nil pointer.
func isNil(t Transform) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Reset sets the local position to zero, the local rotation to identity and
// the local scale to one, like the editor's "Reset" command. A nil t,
// including a nil pointer held in the interface, is ignored.
func Reset(t Transform) {
	if isNil(t) {
		return
	}
	t.SetLocalPosition(geom.Vec3Zero)
	t.SetLocalRotation(geom.QuatIdentity)
	t.SetLocalScale(geom.Vec3One)
}

// ResetWorld moves t to the world origin with identity world rotation and
// sets its local scale to one. A nil t, including a nil pointer held in the
// interface, is ignored.
func ResetWorld(t Transform) {
	if isNil(t) {
		return
	}
	t.SetPosition(geom.Vec3Zero)
	t.SetRotation(geom.QuatIdentity)
	t.SetLocalScale(geom.Vec3One)
}
