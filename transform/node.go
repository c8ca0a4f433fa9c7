package transform

import (
	"github.com/edwinsyarief/devtools/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// Node is a Transform with an optional parent. Its world placement is derived
// from the parent chain on every call; nothing is cached.
//
// All methods are safe to call on a nil *Node: setters do nothing and getters
// return the identity placement.
type Node struct {
	parent        *Node
	localPosition geom.Vec3
	localRotation geom.Quat
	localScale    geom.Vec3
}

// NewNode returns a node at the local origin with identity rotation and unit
// scale, attached to parent (which may be nil).
func NewNode(parent *Node) *Node {
	return &Node{
		parent:        parent,
		localRotation: geom.QuatIdentity,
		localScale:    geom.Vec3One,
	}
}

// Parent returns the node n is attached to, or nil.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// SetParent attaches n to parent, keeping its local values.
func (n *Node) SetParent(parent *Node) {
	if n == nil {
		return
	}
	n.parent = parent
}

// LocalPosition returns the position of n relative to its parent.
func (n *Node) LocalPosition() geom.Vec3 {
	if n == nil {
		return geom.Vec3Zero
	}
	return n.localPosition
}

// LocalRotation returns the rotation of n relative to its parent.
func (n *Node) LocalRotation() geom.Quat {
	if n == nil {
		return geom.QuatIdentity
	}
	return n.localRotation
}

// LocalScale returns the scale of n relative to its parent.
func (n *Node) LocalScale() geom.Vec3 {
	if n == nil {
		return geom.Vec3One
	}
	return n.localScale
}

// SetLocalPosition sets the position of n relative to its parent.
func (n *Node) SetLocalPosition(p geom.Vec3) {
	if n == nil {
		return
	}
	n.localPosition = p
}

// SetLocalRotation sets the rotation of n relative to its parent.
func (n *Node) SetLocalRotation(q geom.Quat) {
	if n == nil {
		return
	}
	n.localRotation = q
}

// SetLocalScale sets the scale of n relative to its parent.
func (n *Node) SetLocalScale(s geom.Vec3) {
	if n == nil {
		return
	}
	n.localScale = s
}

// localMatrix composes translation, rotation and scale, applied right to left.
func (n *Node) localMatrix() mgl32.Mat4 {
	p, s := n.localPosition, n.localScale
	return mgl32.Translate3D(p[0], p[1], p[2]).
		Mul4(n.localRotation.Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// worldMatrix maps n's local space to world space.
func (n *Node) worldMatrix() mgl32.Mat4 {
	m := mgl32.Ident4()
	for cur := n; cur != nil; cur = cur.parent {
		m = cur.localMatrix().Mul4(m)
	}
	return m
}

// TransformPoint maps p from n's local space to world space.
func (n *Node) TransformPoint(p geom.Vec3) geom.Vec3 {
	return n.worldMatrix().Mul4x1(p.Vec4(1)).Vec3()
}

// InverseTransformPoint maps p from world space to n's local space. A
// singular chain (a zero scale somewhere) maps every point to the origin.
func (n *Node) InverseTransformPoint(p geom.Vec3) geom.Vec3 {
	return n.worldMatrix().Inv().Mul4x1(p.Vec4(1)).Vec3()
}

// Position returns the world position of n.
func (n *Node) Position() geom.Vec3 {
	if n == nil {
		return geom.Vec3Zero
	}
	if n.parent == nil {
		return n.localPosition
	}
	return n.parent.TransformPoint(n.localPosition)
}

// SetPosition moves n so that its world position is p.
func (n *Node) SetPosition(p geom.Vec3) {
	if n == nil {
		return
	}
	if n.parent == nil {
		n.localPosition = p
		return
	}
	n.localPosition = n.parent.InverseTransformPoint(p)
}

// Rotation returns the world rotation of n.
func (n *Node) Rotation() geom.Quat {
	if n == nil {
		return geom.QuatIdentity
	}
	q := n.localRotation
	for cur := n.parent; cur != nil; cur = cur.parent {
		q = cur.localRotation.Mul(q)
	}
	return q
}

// SetRotation rotates n so that its world rotation is q.
func (n *Node) SetRotation(q geom.Quat) {
	if n == nil {
		return
	}
	if n.parent == nil {
		n.localRotation = q
		return
	}
	n.localRotation = n.parent.Rotation().Inverse().Mul(q)
}
