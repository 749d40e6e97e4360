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
	"reflect"
	"testing"

	"github.com/sneller-labs/chunkwise/bitmap"
	"github.com/sneller-labs/chunkwise/date"
)

func stringCol(rows ...string) String {
	b := NewStringBuilder(len(rows), 0)
	for _, r := range rows {
		b.Push([]byte(r))
	}
	return b.Build()
}

func boolCol(bits ...bool) Boolean {
	b := bitmap.NewBuilder(len(bits))
	for _, bit := range bits {
		b.Push(bit)
	}
	return Boolean{bits: b.Build()}
}

// S1 (primitives).
func TestConcatPrimitives(t *testing.T) {
	a := NewNumber([]int32{1, 2, 3})
	b := NewNumber([]int32{4})
	c := NewNumber([]int32{5, 6})

	got := Concat([]Column{a, b, c}).(Number[int32])
	want := []int32{1, 2, 3, 4, 5, 6}
	if !reflect.DeepEqual(got.values, want) {
		t.Fatalf("got %v, want %v", got.values, want)
	}
	if got.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", got.Len())
	}
}

// S2 (strings).
func TestConcatStrings(t *testing.T) {
	a := stringCol("")
	b := stringCol("a", "bc")
	c := stringCol("", "def")

	got := Concat([]Column{a, b, c}).(String)
	wantRows := []string{"", "a", "bc", "", "def"}
	if got.Len() != len(wantRows) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(wantRows))
	}
	for i, w := range wantRows {
		if g := string(got.At(i)); g != w {
			t.Errorf("At(%d) = %q, want %q", i, g, w)
		}
	}
	wantOffsets := []int{0, 0, 1, 3, 3, 6}
	if !reflect.DeepEqual(got.offsets, wantOffsets) {
		t.Fatalf("offsets = %v, want %v", got.offsets, wantOffsets)
	}
	if string(got.data) != "abcdef" {
		t.Fatalf("data = %q, want %q", got.data, "abcdef")
	}
}

// S3 (nullable).
func TestConcatNullable(t *testing.T) {
	v1 := bitmap.NewBuilder(2)
	v1.Push(true)
	v1.Push(false)
	n1 := Nullable{validity: v1.Build(), inner: NewNumber([]int64{1, 0})}

	v2 := bitmap.NewBuilder(3)
	v2.Push(false)
	v2.Push(true)
	v2.Push(true)
	n2 := Nullable{validity: v2.Build(), inner: NewNumber([]int64{0, 4, 5})}

	got := Concat([]Column{n1, n2}).(Nullable)
	wantValid := []bool{true, false, false, true, true}
	if got.Len() != len(wantValid) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(wantValid))
	}
	for i, w := range wantValid {
		if g := got.Valid(i); g != w {
			t.Errorf("Valid(%d) = %v, want %v", i, g, w)
		}
	}
	inner := got.inner.(Number[int64])
	wantInner := []int64{1, 0, 0, 4, 5}
	if !reflect.DeepEqual(inner.values, wantInner) {
		t.Fatalf("inner values = %v, want %v", inner.values, wantInner)
	}
}

// S4 (scalar broadcast) is exercised at the chunk layer; see chunk
// package tests. The dispatcher-level analogue here concats a
// pre-broadcast Boolean column.
func TestConcatBoolean(t *testing.T) {
	a := RepeatBoolean(true, 3).(Boolean)
	b := boolCol(false, true)

	got := Concat([]Column{a, b}).(Boolean)
	want := []bool{true, true, true, false, true}
	if got.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if g := got.At(i); g != w {
			t.Errorf("At(%d) = %v, want %v", i, g, w)
		}
	}
}

// S5 (array of strings).
func TestConcatArrayOfStrings(t *testing.T) {
	a0 := NewArrayBuilder(Slice(stringCol(), 0, 0), 2)
	a0.Push(stringCol("x"))
	a0.Push(stringCol())
	arr0 := a0.Build()

	a1 := NewArrayBuilder(Slice(stringCol(), 0, 0), 1)
	a1.Push(stringCol("y", "z"))
	arr1 := a1.Build()

	got := Concat([]Column{arr0, arr1}).(Array)
	if got.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", got.Len())
	}
	row0 := got.Row(0).(String)
	if row0.Len() != 1 || string(row0.At(0)) != "x" {
		t.Fatalf("row 0 = %v, want [x]", row0)
	}
	row1 := got.Row(1).(String)
	if row1.Len() != 0 {
		t.Fatalf("row 1 len = %d, want 0", row1.Len())
	}
	row2 := got.Row(2).(String)
	if row2.Len() != 2 || string(row2.At(0)) != "y" || string(row2.At(1)) != "z" {
		t.Fatalf("row 2 = %v, want [y z]", row2)
	}
	inner := got.inner.(String)
	wantInner := []string{"x", "y", "z"}
	for i, w := range wantInner {
		if string(inner.At(i)) != w {
			t.Errorf("inner[%d] = %q, want %q", i, inner.At(i), w)
		}
	}
}

// Property 3: associativity.
func TestConcatAssociativity(t *testing.T) {
	a := NewNumber([]int32{1, 2})
	b := NewNumber([]int32{3})
	c := NewNumber([]int32{4, 5, 6})

	left := Concat([]Column{Concat([]Column{a, b}), c}).(Number[int32])
	right := Concat([]Column{a, Concat([]Column{b, c})}).(Number[int32])
	flat := Concat([]Column{a, b, c}).(Number[int32])

	if !reflect.DeepEqual(left.values, flat.values) {
		t.Fatalf("left-assoc = %v, flat = %v", left.values, flat.values)
	}
	if !reflect.DeepEqual(right.values, flat.values) {
		t.Fatalf("right-assoc = %v, flat = %v", right.values, flat.values)
	}
}

// Property 4: identity/singleton.
func TestConcatSingleton(t *testing.T) {
	a := NewNumber([]int32{1, 2, 3})
	got := Concat([]Column{a})
	if got.(Number[int32]).Len() != 3 {
		t.Fatalf("Len() = %d, want 3", got.(Number[int32]).Len())
	}
	// single-input fast path returns the input unchanged
	if _, ok := got.(Number[int32]); !ok {
		t.Fatalf("got wrong type %T", got)
	}
}

// Property 9: tuple field-wise projection commutes with concat.
func TestConcatTupleFieldwise(t *testing.T) {
	t1 := Tuple{fields: []Column{NewNumber([]int32{1, 2}), stringCol("a", "b")}, n: 2}
	t2 := Tuple{fields: []Column{NewNumber([]int32{3}), stringCol("c")}, n: 1}

	got := Concat([]Column{t1, t2}).(Tuple)
	if got.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", got.Len())
	}
	f0 := got.Field(0).(Number[int32])
	wantF0 := []int32{1, 2, 3}
	if !reflect.DeepEqual(f0.values, wantF0) {
		t.Fatalf("field 0 = %v, want %v", f0.values, wantF0)
	}
	f1 := got.Field(1).(String)
	wantF1 := []string{"a", "b", "c"}
	for i, w := range wantF1 {
		if string(f1.At(i)) != w {
			t.Errorf("field 1[%d] = %q, want %q", i, f1.At(i), w)
		}
	}
}

func TestConcatNullAndEmptyArray(t *testing.T) {
	n := Concat([]Column{NewNull(2), NewNull(3)}).(Null)
	if n.Len() != 5 {
		t.Fatalf("Null Len() = %d, want 5", n.Len())
	}
	e := Concat([]Column{NewEmptyArray(1), NewEmptyArray(4)}).(EmptyArray)
	if e.Len() != 5 {
		t.Fatalf("EmptyArray Len() = %d, want 5", e.Len())
	}
}

// Timestamp values round-trip through Number[date.Time] the same way
// any other fixed-width element does.
func TestConcatTimestamp(t *testing.T) {
	a := NewNumber([]date.Time{date.Unix(100, 0), date.Unix(200, 0)})
	b := NewNumber([]date.Time{date.Unix(300, 0)})

	got := Concat([]Column{a, b}).(Number[date.Time])
	want := []int64{100, 200, 300}
	if got.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if g := got.At(i).Unix(); g != w {
			t.Errorf("At(%d).Unix() = %d, want %d", i, g, w)
		}
	}
}

func TestDigestTimestamp(t *testing.T) {
	a := NewNumber([]date.Time{date.Unix(1, 0), date.Unix(2, 0)})
	b := NewNumber([]date.Time{date.Unix(1, 0), date.Unix(2, 0)})
	if Digest(a) != Digest(b) {
		t.Fatalf("Digest of identical timestamp columns differ")
	}
	c := NewNumber([]date.Time{date.Unix(1, 0), date.Unix(3, 0)})
	if Digest(a) == Digest(c) {
		t.Fatalf("Digest of differing timestamp columns match")
	}
}

func TestSliceString(t *testing.T) {
	s := stringCol("a", "bc", "def", "")
	got := Slice(s, 1, 3).(String)
	want := []string{"bc", "def"}
	if got.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if string(got.At(i)) != w {
			t.Errorf("At(%d) = %q, want %q", i, got.At(i), w)
		}
	}
}
