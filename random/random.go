// Package random provides range, chance and spatial helpers on top of a
// uniform random source.
//
// A nil *Rand passed to any function in this package selects Default.
package random

import (
	"math"
	"math/rand/v2"

	"github.com/edwinsyarief/devtools/geom"
	"golang.org/x/exp/constraints"
)

// chanceMax is the percentage that always succeeds.
const chanceMax = 100

// Rand produces random values for the helpers in this package.
type Rand struct {
	r *rand.Rand
}

// globalSource draws from the runtime's concurrency-safe generator.
type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

var defaultRand = &Rand{r: rand.New(globalSource{})}

// Default returns a Rand backed by the global source. It is safe for
// concurrent use.
func Default() *Rand {
	return defaultRand
}

// New returns a deterministic Rand seeded with seed. It is not safe for
// concurrent use.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewFromSource wraps src. The caller is responsible for src's thread safety.
// A nil src selects the global source, as Default does.
func NewFromSource(src rand.Source) *Rand {
	if src == nil {
		src = globalSource{}
	}
	return &Rand{r: rand.New(src)}
}

func orDefault(r *Rand) *Rand {
	if r == nil {
		return defaultRand
	}
	return r
}

// Range returns a random integer in [min, max). If min is greater than max
// the two are swapped; if they are equal, min is returned.
func Range[T constraints.Integer](r *Rand, min, max T) T {
	r = orDefault(r)
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	// unsigned difference stays exact for the full span of signed T
	span := uint64(max) - uint64(min)
	return min + T(r.r.Uint64N(span))
}

// Between returns a random float in [min, max]. If min is greater than max
// the two are swapped.
func Between[T constraints.Float](r *Rand, min, max T) T {
	r = orDefault(r)
	if min > max {
		min, max = max, min
	}
	return min + T(r.r.Float64())*(max-min)
}

// Element returns a random element of list, or the zero value if list is
// empty.
func Element[T any](r *Rand, list []T) T {
	if len(list) == 0 {
		var zero T
		return zero
	}
	r = orDefault(r)
	return list[r.r.IntN(len(list))]
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return orDefault(r).r.Float64()
}

// Chance returns true with the given probability, expressed in percent. A
// percent of 0 or less never succeeds; 100 or more always does.
//
// Example:
//
//	if rng.Chance(25) { dropLoot() }
func (r *Rand) Chance(percent float64) bool {
	return r.Float64() < percent/chanceMax
}

// Vec3Between returns a vector whose components each lie between the
// corresponding components of min and max.
func (r *Rand) Vec3Between(min, max geom.Vec3) geom.Vec3 {
	var v geom.Vec3
	for i := range v {
		v[i] = Between(r, min[i], max[i])
	}
	return v
}

// PointIn returns a random point inside b. Useful for spawning within a
// collider's bounds.
func (r *Rand) PointIn(b geom.Bounds) geom.Vec3 {
	return r.Vec3Between(b.Min(), b.Max())
}

// InsideUnitCircle returns a point uniformly distributed inside the unit
// circle.
func (r *Rand) InsideUnitCircle() geom.Vec2 {
	rad := math.Sqrt(r.Float64())
	s, c := math.Sincos(2 * math.Pi * r.Float64())
	return geom.Vec2{float32(rad * c), float32(rad * s)}
}

// OnPlaneXZ returns a point inside the unit circle on the ground plane
// (Y = 0).
func (r *Rand) OnPlaneXZ() geom.Vec3 {
	return geom.ToVec3XZ(r.InsideUnitCircle())
}

// Chance rolls against percent using Default.
func Chance(percent float64) bool { return defaultRand.Chance(percent) }

// PointIn returns a random point inside b using Default.
func PointIn(b geom.Bounds) geom.Vec3 { return defaultRand.PointIn(b) }

// Vec3Between returns a random vector between min and max using Default.
func Vec3Between(min, max geom.Vec3) geom.Vec3 { return defaultRand.Vec3Between(min, max) }

// OnPlaneXZ returns a random ground-plane point using Default.
func OnPlaneXZ() geom.Vec3 { return defaultRand.OnPlaneXZ() }
