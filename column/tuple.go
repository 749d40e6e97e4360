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

// Tuple is an ordered list of equal-length field columns sharing one
// row count, per §3 Tuple(fields).
type Tuple struct {
	fields []Column
	n      int
}

// NewTuple wraps fields/n as a Tuple column. Every field must have
// length n.
func NewTuple(fields []Column, n int) Tuple { return Tuple{fields: fields, n: n} }

func (c Tuple) Kind() Kind       { return KindTuple }
func (c Tuple) Len() int         { return c.n }
func (c Tuple) Fields() []Column { return c.fields }
func (c Tuple) Field(j int) Column { return c.fields[j] }

// concatTuple implements the tuple composer (§4.9): for each field
// index, gather that field from every input and recursively concat.
// Field count and order follow columns[0].
func concatTuple(columns []Column) Column {
	t0 := columns[0].(Tuple)
	fields := make([]Column, len(t0.fields))
	for j := range t0.fields {
		col := make([]Column, len(columns))
		for i, c := range columns {
			col[i] = c.(Tuple).fields[j]
		}
		fields[j] = Concat(col)
	}
	return Tuple{fields: fields, n: sum(columns)}
}
