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

package bitmap

import "testing"

func build(bits ...bool) Bitmap {
	b := NewBuilder(len(bits))
	for _, bit := range bits {
		b.Push(bit)
	}
	return b.Build()
}

func TestBuilderPush(t *testing.T) {
	b := build(true, false, true, true, false)
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	want := []bool{true, false, true, true, false}
	for i, w := range want {
		if got := b.Get(i); got != w {
			t.Errorf("Get(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestAppendBitmap(t *testing.T) {
	a := build(true, false)
	c := build(false, true, true)

	w := NewBuilder(a.Len() + c.Len())
	w.AppendBitmap(a)
	w.AppendBitmap(c)
	got := w.Build()

	want := []bool{true, false, false, true, true}
	if got.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if g := got.Get(i); g != w {
			t.Errorf("Get(%d) = %v, want %v", i, g, w)
		}
	}
}

func TestSlice(t *testing.T) {
	a := build(true, false, true, true, false, true)
	s := a.Slice(2, 5)
	want := []bool{true, true, false}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for i, w := range want {
		if g := s.Get(i); g != w {
			t.Errorf("Get(%d) = %v, want %v", i, g, w)
		}
	}
}

func TestLargeBitmapCrossesWordBoundary(t *testing.T) {
	bits := make([]bool, 200)
	for i := range bits {
		bits[i] = i%3 == 0
	}
	b := build(bits...)
	for i, w := range bits {
		if got := b.Get(i); got != w {
			t.Fatalf("Get(%d) = %v, want %v", i, got, w)
		}
	}
}
