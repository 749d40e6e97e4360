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

package main

import (
	"testing"

	"github.com/sneller-labs/chunkwise/bitmap"
	"github.com/sneller-labs/chunkwise/chunk"
	"github.com/sneller-labs/chunkwise/column"
	"github.com/sneller-labs/chunkwise/ion"
)

func boolColumn(bits ...bool) column.Column {
	b := bitmap.NewBuilder(len(bits))
	for _, bit := range bits {
		b.Push(bit)
	}
	return column.NewBoolean(b.Build())
}

func stringColumn(rows ...string) column.Column {
	sb := column.NewStringBuilder(len(rows), 0)
	for _, r := range rows {
		sb.Push([]byte(r))
	}
	return sb.Build()
}

// round-trips a chunk through the wire codec and checks the decoded
// chunk holds the same int64, string and boolean rows as the original.
func TestCodecRoundTrip(t *testing.T) {
	c := chunk.New([]chunk.Value{
		chunk.FromColumn(column.NewNumber([]int64{1, 2, 3})),
		chunk.FromColumn(stringColumn("a", "bc", "")),
		chunk.FromColumn(boolColumn(true, false, true)),
	}, 3)

	var st ion.Symtab
	d := encodeChunk(&st, c)

	got, err := decodeChunk(d)
	if err != nil {
		t.Fatal(err)
	}
	if got.RowCount != c.RowCount {
		t.Fatalf("RowCount = %d, want %d", got.RowCount, c.RowCount)
	}

	nums := got.Columns[0].Column().(column.Number[int64])
	wantNums := []int64{1, 2, 3}
	for i, w := range wantNums {
		if g := nums.At(i); g != w {
			t.Errorf("nums[%d] = %d, want %d", i, g, w)
		}
	}

	strs := got.Columns[1].Column().(column.String)
	wantStrs := []string{"a", "bc", ""}
	for i, w := range wantStrs {
		if g := string(strs.At(i)); g != w {
			t.Errorf("strs[%d] = %q, want %q", i, g, w)
		}
	}

	bools := got.Columns[2].Column().(column.Boolean)
	wantBools := []bool{true, false, true}
	for i, w := range wantBools {
		if g := bools.At(i); g != w {
			t.Errorf("bools[%d] = %v, want %v", i, g, w)
		}
	}
}

// concatenating two encoded/decoded chunks should match concatenating
// the originals directly, exercising string concat and row order (as
// in S2) across the wire format rather than just the in-memory kernel.
func TestCodecRoundTripThenConcat(t *testing.T) {
	c0 := chunk.New([]chunk.Value{chunk.FromColumn(stringColumn("x", "y"))}, 2)
	c1 := chunk.New([]chunk.Value{chunk.FromColumn(stringColumn("z"))}, 1)

	var st ion.Symtab
	d0 := encodeChunk(&st, c0)
	d1 := encodeChunk(&st, c1)

	dec0, err := decodeChunk(d0)
	if err != nil {
		t.Fatal(err)
	}
	dec1, err := decodeChunk(d1)
	if err != nil {
		t.Fatal(err)
	}

	got, err := chunk.Concat([]chunk.Chunk{dec0, dec1})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"x", "y", "z"}
	strs := got.Columns[0].Column().(column.String)
	for i, w := range want {
		if g := string(strs.At(i)); g != w {
			t.Errorf("strs[%d] = %q, want %q", i, g, w)
		}
	}
}

func TestDecodeColumnRejectsUnknownKind(t *testing.T) {
	var st ion.Symtab
	bad := ion.NewStruct(&st, []ion.Field{
		{Label: "kind", Value: ion.String("tuple")},
	}).Datum()
	if _, err := decodeColumn(bad); err == nil {
		t.Fatal("expected error for unsupported wire-format kind")
	}
}
