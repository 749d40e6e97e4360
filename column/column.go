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

// Package column implements the typed, row-indexed column variants of
// the concat kernel (§3-§4 of the concat kernel design) and the
// column-level concat dispatcher.
//
// A Column is a tagged value: Null, EmptyArray, Number[T], Boolean,
// String, Array, Nullable or Tuple. Go has no sum type, so Column is
// an interface implemented by one concrete struct per variant, and
// Concat type-switches on Kind() the way ion.Datum type-switches on
// Type().
package column

import (
	"fmt"

	"github.com/sneller-labs/chunkwise/bitmap"
)

// Kind identifies which variant a Column value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindEmptyArray
	KindNumber
	KindBoolean
	KindString
	KindArray
	KindNullable
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindEmptyArray:
		return "empty_array"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindNullable:
		return "nullable"
	case KindTuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// Column is a dense, row-indexed, immutable sequence of length Len().
// Every concrete implementation is a value type safe to share by
// reference; concat never mutates an input Column.
type Column interface {
	Kind() Kind
	Len() int
}

// Null is a column whose rows are all logically absent; it carries no
// payload, only a row count.
type Null struct{ n int }

func NewNull(n int) Null       { return Null{n: n} }
func (c Null) Kind() Kind      { return KindNull }
func (c Null) Len() int        { return c.n }

// EmptyArray is a column whose every row is the empty array []; it
// carries no payload beyond the row count.
type EmptyArray struct{ n int }

func NewEmptyArray(n int) EmptyArray { return EmptyArray{n: n} }
func (c EmptyArray) Kind() Kind      { return KindEmptyArray }
func (c EmptyArray) Len() int        { return c.n }

func wrongKind(op string, got Kind) Column {
	panic(fmt.Sprintf("column: %s: unexpected column kind %s", op, got))
}

// sum returns the total row count across columns. Callers must ensure
// columns is non-empty; concat never calls sum on an empty slice.
func sum(columns []Column) int {
	n := 0
	for _, c := range columns {
		n += c.Len()
	}
	return n
}

// Concat merges an ordered list of same-kind columns into one column
// of that kind, per §4.2 of the concat kernel design.
//
// Concat assumes — and does not validate — that every column in
// columns shares the same Kind and, for parametric kinds, the same
// inner type. A mismatch is a programmer error and Concat may panic
// rather than recover from it (see the kernel's error-handling
// design: type mismatches are precondition violations, not reported
// errors).
func Concat(columns []Column) Column {
	if len(columns) == 1 {
		return columns[0]
	}
	switch columns[0].Kind() {
	case KindNull:
		return concatNull(columns)
	case KindEmptyArray:
		return concatEmptyArray(columns)
	case KindNumber:
		return concatNumber(columns)
	case KindBoolean:
		return concatBoolean(columns)
	case KindString:
		return concatString(columns)
	case KindArray:
		return concatArray(columns)
	case KindNullable:
		return concatNullable(columns)
	case KindTuple:
		return concatTuple(columns)
	default:
		return wrongKind("Concat", columns[0].Kind())
	}
}

func concatNull(columns []Column) Column {
	return Null{n: sum(columns)}
}

func concatEmptyArray(columns []Column) Column {
	return EmptyArray{n: sum(columns)}
}

// Slice returns the subsequence [lo, hi) of c as a freshly built
// Column of the same kind. It is used by the array concat strategy
// (§4.7) to project a single row's subsequence out of an inner
// column, and to seed an array builder with a zero-length column of
// the correct inner type.
func Slice(c Column, lo, hi int) Column {
	switch v := c.(type) {
	case Null:
		return Null{n: hi - lo}
	case EmptyArray:
		return EmptyArray{n: hi - lo}
	case Boolean:
		return Boolean{bits: v.bits.Slice(lo, hi)}
	case String:
		return sliceString(v, lo, hi)
	case Array:
		return sliceArray(v, lo, hi)
	case Nullable:
		return Nullable{
			validity: v.validity.Slice(lo, hi),
			inner:    Slice(v.inner, lo, hi),
		}
	case Tuple:
		fields := make([]Column, len(v.fields))
		for i, f := range v.fields {
			fields[i] = Slice(f, lo, hi)
		}
		return Tuple{fields: fields, n: hi - lo}
	default:
		return sliceNumber(c, lo, hi)
	}
}
