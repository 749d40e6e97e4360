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
	"errors"
	"testing"

	"github.com/sneller-labs/chunkwise/bitmap"
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

// S6 (empty).
func TestConcatEmptyInput(t *testing.T) {
	_, err := Concat(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

// Property 4: identity/singleton — no column rebuilding.
func TestConcatSingleton(t *testing.T) {
	c := New([]Value{FromColumn(column.NewNumber([]int32{1, 2, 3}))}, 3)
	got, err := Concat([]Chunk{c})
	if err != nil {
		t.Fatal(err)
	}
	if got.RowCount != 3 {
		t.Fatalf("RowCount = %d, want 3", got.RowCount)
	}
}

// S4 (scalar broadcast).
func TestConcatScalarBroadcast(t *testing.T) {
	// chunk 0: 3 rows, column is Scalar(true)
	c0 := New([]Value{Scalar(ion.Bool(true))}, 3)
	// chunk 1: 2 rows, column is a dense Boolean [false, true]
	c1 := New([]Value{FromColumn(boolColumn(false, true))}, 2)

	got, err := Concat([]Chunk{c0, c1})
	if err != nil {
		t.Fatal(err)
	}
	if got.RowCount != 5 {
		t.Fatalf("RowCount = %d, want 5", got.RowCount)
	}
	col := got.Columns[0].Column().(column.Boolean)
	want := []bool{true, true, true, false, true}
	if col.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", col.Len(), len(want))
	}
	for i, w := range want {
		if g := col.At(i); g != w {
			t.Errorf("At(%d) = %v, want %v", i, g, w)
		}
	}
}

func TestConcatRowOrderMultiColumn(t *testing.T) {
	c0 := New([]Value{
		FromColumn(column.NewNumber([]int64{1, 2})),
		FromColumn(boolColumn(true, false)),
	}, 2)
	c1 := New([]Value{
		FromColumn(column.NewNumber([]int64{3})),
		FromColumn(boolColumn(false)),
	}, 1)

	got, err := Concat([]Chunk{c0, c1})
	if err != nil {
		t.Fatal(err)
	}
	if got.RowCount != 3 {
		t.Fatalf("RowCount = %d, want 3", got.RowCount)
	}
	nums := got.Columns[0].Column().(column.Number[int64])
	wantNums := []int64{1, 2, 3}
	for i, w := range wantNums {
		if g := nums.At(i); g != w {
			t.Errorf("nums[%d] = %v, want %v", i, g, w)
		}
	}
	bools := got.Columns[1].Column().(column.Boolean)
	wantBools := []bool{true, false, false}
	for i, w := range wantBools {
		if g := bools.At(i); g != w {
			t.Errorf("bools[%d] = %v, want %v", i, g, w)
		}
	}
}
