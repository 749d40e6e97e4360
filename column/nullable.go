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

// Nullable wraps an inner column with a validity bitmap: validity bit
// false marks a row as absent, per §3 Nullable<Inner>.
//
// Rows whose validity bit is false still occupy a slot in the inner
// column with an arbitrary but well-formed value; concat never scrubs
// or canonicalizes null payloads (§4.8).
type Nullable struct {
	validity bitmap.Bitmap
	inner    Column
}

// NewNullable wraps validity/inner as a Nullable column. len(validity)
// must equal inner.Len().
func NewNullable(validity bitmap.Bitmap, inner Column) Nullable {
	return Nullable{validity: validity, inner: inner}
}

func (c Nullable) Kind() Kind          { return KindNullable }
func (c Nullable) Len() int            { return c.validity.Len() }
func (c Nullable) Valid(i int) bool    { return c.validity.Get(i) }
func (c Nullable) Inner() Column       { return c.inner }
func (c Nullable) Validity() bitmap.Bitmap { return c.validity }

// concatNullable implements the nullable composer (§4.8): split every
// input into its inner column and validity bitmap, recursively concat
// each independently, then recompose.
func concatNullable(columns []Column) Column {
	inners := make([]Column, len(columns))
	valids := make([]Column, len(columns))
	for i, c := range columns {
		n := c.(Nullable)
		inners[i] = n.inner
		valids[i] = Boolean{bits: n.validity}
	}
	inner := Concat(inners)
	validity := Concat(valids).(Boolean)
	return Nullable{validity: validity.bits, inner: inner}
}
