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

import "github.com/sneller-labs/chunkwise/bitmap"

// Boolean is a packed bitmap column, one bit per row.
type Boolean struct {
	bits bitmap.Bitmap
}

// NewBoolean wraps a bitmap as a Boolean column.
func NewBoolean(bits bitmap.Bitmap) Boolean { return Boolean{bits: bits} }

func (c Boolean) Kind() Kind    { return KindBoolean }
func (c Boolean) Len() int      { return c.bits.Len() }
func (c Boolean) At(i int) bool { return c.bits.Get(i) }
func (c Boolean) Bits() bitmap.Bitmap { return c.bits }

// RepeatBoolean materializes a scalar bool into a dense Boolean column
// of length n.
func RepeatBoolean(v bool, n int) Column {
	b := bitmap.NewBuilder(n)
	for i := 0; i < n; i++ {
		b.Push(v)
	}
	return Boolean{bits: b.Build()}
}

func concatBoolean(columns []Column) Column {
	capacity := sum(columns)
	b := bitmap.NewBuilder(capacity)
	for _, c := range columns {
		b.AppendBitmap(c.(Boolean).bits)
	}
	return Boolean{bits: b.Build()}
}
