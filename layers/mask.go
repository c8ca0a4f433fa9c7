// Package layers provides bit masks over the 32 engine layers.
package layers

import "github.com/bits-and-blooms/bitset"

// MaxLayers is the number of layers a Mask can address.
const MaxLayers = 32

// Mask represents a set of layers. Bit i is set when layer i is part of the
// mask. The zero value selects nothing and -1 selects every layer, matching
// the engine's serialized int32 form.
type Mask int32

const (
	// Nothing selects no layer.
	Nothing Mask = 0
	// Everything selects all MaxLayers layers.
	Everything Mask = -1
)

// Layered is anything that lives on a single layer, such as a game object.
type Layered interface {
	Layer() int
}

func valid(layer int) bool {
	return layer >= 0 && layer < MaxLayers
}

func bit(layer int) uint32 {
	return uint32(1) << uint(layer)
}

// MaskOf returns a mask selecting the given layers. Layers outside
// [0, MaxLayers) are ignored.
func MaskOf(layers ...int) Mask {
	var m Mask
	for _, l := range layers {
		m = m.With(l)
	}
	return m
}

// Contains checks if the layer with the given index is part of m.
//
// Parameters:
//   - layer: The layer index, in [0, MaxLayers).
//
// Returns:
//   - true if the layer bit is set, false otherwise or when the index is out
//     of range.
func (m Mask) Contains(layer int) bool {
	if !valid(layer) {
		return false
	}
	return uint32(m)&bit(layer) != 0
}

// ContainsObject checks if the layer of o is part of m. A nil o is never
// contained.
func (m Mask) ContainsObject(o Layered) bool {
	if o == nil {
		return false
	}
	return m.Contains(o.Layer())
}

// With returns m with layer added.
func (m Mask) With(layer int) Mask {
	if !valid(layer) {
		return m
	}
	return Mask(uint32(m) | bit(layer))
}

// Without returns m with layer removed.
func (m Mask) Without(layer int) Mask {
	if !valid(layer) {
		return m
	}
	return Mask(uint32(m) &^ bit(layer))
}

// BitSet returns the layers of m as a bit set.
func (m Mask) BitSet() *bitset.BitSet {
	return bitset.From([]uint64{uint64(uint32(m))})
}

// Layers returns the layer indices in m in ascending order.
func (m Mask) Layers() []int {
	bs := m.BitSet()
	out := make([]int, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// FromBitSet builds a mask from the first MaxLayers bits of bs. A nil bs
// yields Nothing.
func FromBitSet(bs *bitset.BitSet) Mask {
	if bs == nil {
		return Nothing
	}
	var m Mask
	for i, ok := bs.NextSet(0); ok && i < MaxLayers; i, ok = bs.NextSet(i + 1) {
		m = m.With(int(i))
	}
	return m
}
