// Copyright (C) 2026 Sneller Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package bitmap implements a packed, append-only boolean vector used
// as the physical storage for Boolean columns and nullable validity
// masks.
package bitmap

import (
	"github.com/sneller-labs/chunkwise/ints"
)

const wordBits = 64

// Bitmap is an immutable, packed sequence of bits, LSB-first within
// each 64-bit word — the engine's canonical bit ordering.
type Bitmap struct {
	words []uint64
	n     int
}

// Len returns the number of bits in b.
func (b Bitmap) Len() int { return b.n }

// Get returns the i-th bit.
func (b Bitmap) Get(i int) bool {
	return ints.TestBit(b.words, i)
}

// Slice returns the bits in [lo, hi) as a freshly built Bitmap.
func (b Bitmap) Slice(lo, hi int) Bitmap {
	w := NewBuilder(hi - lo)
	for i := lo; i < hi; i++ {
		w.Push(b.Get(i))
	}
	return w.Build()
}

// Builder appends bits one at a time into a preallocated word buffer.
//
// Builder is append-only: Push must be called exactly once per row,
// in row order, and Build consumes the builder.
type Builder struct {
	words []uint64
	n     int
}

// NewBuilder returns a Builder with capacity for at least n bits.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}
	return &Builder{words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Push appends one bit.
func (w *Builder) Push(bit bool) {
	idx := w.n / wordBits
	if idx >= len(w.words) {
		w.words = append(w.words, 0)
	}
	if bit {
		ints.SetBit(w.words, w.n)
	}
	w.n++
}

// AppendBitmap appends every bit of src, in order.
func (w *Builder) AppendBitmap(src Bitmap) {
	for i := 0; i < src.n; i++ {
		w.Push(src.Get(i))
	}
}

// Build finalizes the builder into an immutable Bitmap.
func (w *Builder) Build() Bitmap {
	return Bitmap{words: w.words, n: w.n}
}
