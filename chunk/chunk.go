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

// Package chunk implements the chunk concat driver (§4.1): the
// row-aligned bundle of columns, the scalar/column Value union, and
// Concat, which broadcasts scalars to dense columns and delegates the
// rest to column.Concat.
package chunk

import (
	"errors"

	"github.com/sneller-labs/chunkwise/column"
)

// ErrEmptyInput is returned by Concat when called with zero chunks
// (§6 External Interfaces, §7 Error Handling Design). It is the only
// reported error the kernel emits; everything else is a precondition
// violation handled by panicking deeper in the column package.
var ErrEmptyInput = errors.New("chunkwise: cannot concat an empty sequence of chunks")

// Chunk is an immutable bundle of N columns sharing one row count R
// (§3). A column slot is either a dense Column or a Scalar standing in
// for R repetitions of one value.
type Chunk struct {
	Columns  []Value
	RowCount int
}

// New builds a Chunk from its column slots and row count. Callers are
// responsible for every slot agreeing with rowCount (dense columns
// must have length rowCount; scalars broadcast to it).
func New(columns []Value, rowCount int) Chunk {
	return Chunk{Columns: columns, RowCount: rowCount}
}

// NumColumns returns the chunk's arity.
func (c Chunk) NumColumns() int { return len(c.Columns) }

// Clone returns a shallow copy of c: the column slice is copied, but
// the underlying scalars/columns are shared, matching the
// single-input fast path of Concat (§4.1, §9 zero-copy vs copy).
func (c Chunk) Clone() Chunk {
	cols := make([]Value, len(c.Columns))
	copy(cols, c.Columns)
	return Chunk{Columns: cols, RowCount: c.RowCount}
}

// Concat merges an ordered list of chunks into one chunk of the same
// schema, per §4.1.
//
// Concat fails with ErrEmptyInput if chunks is empty. For a single
// chunk it returns a shallow clone with no column rebuilding. For k >
// 1 it broadcasts every scalar column slot to a dense column of its
// chunk's row count, then delegates the per-column merge to
// column.Concat.
//
// Concat assumes — and does not validate — that every chunk shares
// the same column count and that corresponding columns share a type;
// callers must guarantee schema compatibility before calling Concat
// (§4.1 Preconditions, §7 Error Handling Design).
func Concat(chunks []Chunk) (Chunk, error) {
	if len(chunks) == 0 {
		return Chunk{}, ErrEmptyInput
	}
	if len(chunks) == 1 {
		return chunks[0].Clone(), nil
	}

	total := 0
	for _, c := range chunks {
		total += c.RowCount
	}

	arity := chunks[0].NumColumns()
	out := make([]Value, arity)
	for j := 0; j < arity; j++ {
		cols := make([]column.Column, len(chunks))
		for i, c := range chunks {
			v := c.Columns[j]
			if v.IsScalar() {
				cols[i] = v.Broadcast(c.RowCount)
			} else {
				cols[i] = v.col
			}
		}
		out[j] = FromColumn(column.Concat(cols))
	}
	return Chunk{Columns: out, RowCount: total}, nil
}
