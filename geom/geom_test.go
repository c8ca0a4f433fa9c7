package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestComponentWise(t *testing.T) {
	assert.Equal(t, Vec3{4, 10, 18}, MulComponents(Vec3{1, 2, 3}, Vec3{4, 5, 6}))
	assert.Equal(t, Vec3{2, 0, 3}, DivComponents(Vec3{4, 5, 9}, Vec3{2, 0, 3}))
}

func TestToVec3XZ(t *testing.T) {
	assert.Equal(t, Vec3{1.5, 0, -2}, ToVec3XZ(Vec2{1.5, -2}))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3Zero)
	assert.Equal(t, Vec3{1, 1, 1}, Vec3One)
	assert.Equal(t, Vec3{1, 2, 3}, QuatIdentity.Rotate(Vec3{1, 2, 3}))
}

func TestQuatAxisAngle(t *testing.T) {
	q := QuatAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	got := q.Rotate(Vec3{1, 0, 0})
	assert.True(t, got.ApproxEqualThreshold(Vec3{0, 0, -1}, eps), "got %v", got)

	long := QuatAxisAngle(Vec3{0, 5, 0}, math.Pi/2)
	assert.True(t, long.ApproxEqualThreshold(q, eps), "axis length should not matter")

	assert.Equal(t, QuatIdentity, QuatAxisAngle(Vec3Zero, 1))
}

func TestBounds(t *testing.T) {
	b := NewBounds(Vec3{1, 1, 1}, Vec3{2, 4, 6})

	assert.Equal(t, Vec3{0, -1, -2}, b.Min())
	assert.Equal(t, Vec3{2, 3, 4}, b.Max())
	assert.Equal(t, Vec3{2, 4, 6}, b.Size())
	assert.True(t, b.Contains(Vec3{1, 1, 1}))
	assert.True(t, b.Contains(b.Max()))
	assert.True(t, b.Contains(b.Min()))
	assert.False(t, b.Contains(Vec3{2.1, 1, 1}))
	assert.False(t, b.Contains(Vec3{1, 1, -2.5}))
}
