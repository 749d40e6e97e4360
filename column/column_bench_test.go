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

//go:build bench

package column

import (
	"fmt"
	"testing"

	"github.com/sneller-labs/chunkwise/internal/fuzzutil"
)

// benchmarks the string-column concat path at a chunk count/row
// width chosen to land each input column within one host page, to
// separate allocation cost from page-fault noise.
func BenchmarkConcatStringPageAligned(b *testing.B) {
	page := fuzzutil.PageSize()
	rowBytes := 16
	rows := page / rowBytes
	if rows < 1 {
		rows = 1
	}

	const numChunks = 8
	inputs := make([]Column, numChunks)
	for i := range inputs {
		sb := NewStringBuilder(rows, rows*rowBytes)
		row := make([]byte, rowBytes)
		for r := 0; r < rows; r++ {
			copy(row, []byte(fmt.Sprintf("row-%d-%d", i, r)))
			sb.Push(row)
		}
		inputs[i] = sb.Build()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Concat(inputs)
	}
}

func BenchmarkConcatNumberPageAligned(b *testing.B) {
	page := fuzzutil.PageSize()
	rows := page / 8
	if rows < 1 {
		rows = 1
	}

	const numChunks = 8
	inputs := make([]Column, numChunks)
	for i := range inputs {
		values := make([]int64, rows)
		for r := range values {
			values[r] = int64(i*rows + r)
		}
		inputs[i] = NewNumber(values)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Concat(inputs)
	}
}
