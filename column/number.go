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

package column

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/sneller-labs/chunkwise/date"
)

// Element is the set of types a Number column may hold: any
// fixed-width integer or float, plus date.Time for the Timestamp
// element type. The primitive-buffer concat strategy (§4.4) applies
// unchanged to any of these — it never inspects the element values,
// only copies them.
type Element interface {
	constraints.Integer | constraints.Float | date.Time
}

// NumberKind names the concrete element types a Number column may
// hold. No Number method returns it: the column package and the CLI
// codec dispatch by type-switching on Number[T] directly.
type NumberKind uint8

const (
	NumberInt8 NumberKind = iota
	NumberInt16
	NumberInt32
	NumberInt64
	NumberUint8
	NumberUint16
	NumberUint32
	NumberUint64
	NumberFloat32
	NumberFloat64
	NumberTimestamp
)

// Number is a contiguous, fixed-width buffer of T, one element per
// row (§3, Number<T>).
type Number[T Element] struct {
	values []T
}

// NewNumber wraps values as a Number column. The caller must not
// mutate values afterward.
func NewNumber[T Element](values []T) Number[T] { return Number[T]{values: values} }

func (c Number[T]) Kind() Kind      { return KindNumber }
func (c Number[T]) Len() int        { return len(c.values) }
func (c Number[T]) At(i int) T      { return c.values[i] }
func (c Number[T]) Values() []T     { return c.values }

// NumberBuilder accumulates T values into a fixed-width buffer with a
// single upfront allocation (§4.10).
type NumberBuilder[T Element] struct {
	values []T
}

// NewNumberBuilder returns a builder preallocated for n rows.
func NewNumberBuilder[T Element](n int) *NumberBuilder[T] {
	return &NumberBuilder[T]{values: make([]T, 0, n)}
}

// Push appends one element.
func (b *NumberBuilder[T]) Push(v T) { b.values = append(b.values, v) }

// Build finalizes the builder into an immutable Number column.
func (b *NumberBuilder[T]) Build() Number[T] { return Number[T]{values: b.values} }

// RepeatNumber materializes a scalar value into a dense Number column
// of length n (the "repeat(n) builder" of §6 External Interfaces).
func RepeatNumber[T Element](v T, n int) Column {
	values := make([]T, n)
	for i := range values {
		values[i] = v
	}
	return Number[T]{values: values}
}

func concatNumber(columns []Column) Column {
	switch columns[0].(type) {
	case Number[int8]:
		return concatNumberT[int8](columns)
	case Number[int16]:
		return concatNumberT[int16](columns)
	case Number[int32]:
		return concatNumberT[int32](columns)
	case Number[int64]:
		return concatNumberT[int64](columns)
	case Number[uint8]:
		return concatNumberT[uint8](columns)
	case Number[uint16]:
		return concatNumberT[uint16](columns)
	case Number[uint32]:
		return concatNumberT[uint32](columns)
	case Number[uint64]:
		return concatNumberT[uint64](columns)
	case Number[float32]:
		return concatNumberT[float32](columns)
	case Number[float64]:
		return concatNumberT[float64](columns)
	case Number[date.Time]:
		return concatNumberT[date.Time](columns)
	default:
		return wrongKind("concatNumber", columns[0].Kind())
	}
}

// concatNumberT implements the primitive buffer concat strategy
// (§4.4): allocate once, then copy each input buffer end-to-end. No
// element is inspected or transformed.
func concatNumberT[T Element](columns []Column) Column {
	capacity := sum(columns)
	values := slices.Grow([]T(nil), capacity)
	for _, c := range columns {
		values = append(values, c.(Number[T]).values...)
	}
	return Number[T]{values: values}
}

func sliceNumber(c Column, lo, hi int) Column {
	switch v := c.(type) {
	case Number[int8]:
		return Number[int8]{values: slices.Clone(v.values[lo:hi])}
	case Number[int16]:
		return Number[int16]{values: slices.Clone(v.values[lo:hi])}
	case Number[int32]:
		return Number[int32]{values: slices.Clone(v.values[lo:hi])}
	case Number[int64]:
		return Number[int64]{values: slices.Clone(v.values[lo:hi])}
	case Number[uint8]:
		return Number[uint8]{values: slices.Clone(v.values[lo:hi])}
	case Number[uint16]:
		return Number[uint16]{values: slices.Clone(v.values[lo:hi])}
	case Number[uint32]:
		return Number[uint32]{values: slices.Clone(v.values[lo:hi])}
	case Number[uint64]:
		return Number[uint64]{values: slices.Clone(v.values[lo:hi])}
	case Number[float32]:
		return Number[float32]{values: slices.Clone(v.values[lo:hi])}
	case Number[float64]:
		return Number[float64]{values: slices.Clone(v.values[lo:hi])}
	case Number[date.Time]:
		return Number[date.Time]{values: slices.Clone(v.values[lo:hi])}
	default:
		return wrongKind("sliceNumber", c.Kind())
	}
}
