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

package chunk

import (
	"fmt"

	"github.com/sneller-labs/chunkwise/column"
	"github.com/sneller-labs/chunkwise/date"
	"github.com/sneller-labs/chunkwise/ion"
)

// Value is a chunk's per-column slot: either a Scalar standing in for
// a constant value repeated over every row of its chunk, or a dense
// Column (§3 Value).
//
// Scalars are carried as ion.Datum rather than a bespoke scalar type:
// Datum already self-describes its logical type (ion.Type), so
// Broadcast can dispatch on it the same way column.Concat dispatches
// on column.Kind.
type Value struct {
	scalar ion.Datum
	col    column.Column
	isCol  bool
}

// Scalar wraps d as a scalar column slot.
func Scalar(d ion.Datum) Value { return Value{scalar: d} }

// FromColumn wraps c as a dense column slot.
func FromColumn(c column.Column) Value { return Value{col: c, isCol: true} }

// IsScalar reports whether v holds a scalar rather than a dense
// column.
func (v Value) IsScalar() bool { return !v.isCol }

// Column returns the dense column v holds. It panics if v is a
// scalar; callers that may hold a scalar should call Broadcast
// instead.
func (v Value) Column() column.Column {
	if v.IsScalar() {
		panic("chunk: Value.Column called on a scalar slot")
	}
	return v.col
}

// Broadcast materializes v into a dense column of length n. If v is
// already a dense column, n must equal its length and it is returned
// unchanged.
//
// This is the scalar-broadcast rule of §4.1: "Scalars in different
// chunks are independently broadcast; the result is always a dense
// column."
func (v Value) Broadcast(n int) column.Column {
	if !v.IsScalar() {
		return v.col
	}
	d := v.scalar
	switch d.Type() {
	case ion.NullType:
		return column.NewNull(n)
	case ion.BoolType:
		b, _ := d.Bool()
		return column.RepeatBoolean(b, n)
	case ion.IntType:
		i, _ := d.Int()
		return column.RepeatNumber[int64](i, n)
	case ion.UintType:
		u, _ := d.Uint()
		return column.RepeatNumber[uint64](u, n)
	case ion.FloatType:
		f, _ := d.Float()
		return column.RepeatNumber[float64](f, n)
	case ion.StringType, ion.SymbolType:
		s, _ := d.String()
		return column.RepeatString([]byte(s), n)
	case ion.TimestampType:
		t, _ := d.Timestamp()
		return column.RepeatNumber[date.Time](t, n)
	default:
		panic(fmt.Sprintf("chunk: Broadcast: unsupported scalar type %v", d.Type()))
	}
}
