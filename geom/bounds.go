package geom

// Bounds is an axis-aligned box stored as a center and half-size extents.
type Bounds struct {
	Center  Vec3
	Extents Vec3
}

// NewBounds returns the box centered on center with the given full size.
func NewBounds(center, size Vec3) Bounds {
	return Bounds{Center: center, Extents: size.Mul(0.5)}
}

// Min returns the corner with the smallest coordinates.
func (b Bounds) Min() Vec3 { return b.Center.Sub(b.Extents) }

// Max returns the corner with the largest coordinates.
func (b Bounds) Max() Vec3 { return b.Center.Add(b.Extents) }

// Size returns the full size of the box, twice its extents.
func (b Bounds) Size() Vec3 { return b.Extents.Mul(2) }

// Contains reports whether p lies inside b, faces included.
func (b Bounds) Contains(p Vec3) bool {
	lo, hi := b.Min(), b.Max()
	for i := range p {
		if p[i] < lo[i] || p[i] > hi[i] {
			return false
		}
	}
	return true
}
