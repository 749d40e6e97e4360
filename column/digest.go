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
	"encoding/binary"
	"math"

	"github.com/dchest/siphash"

	"github.com/sneller-labs/chunkwise/date"
)

// digestKey0/digestKey1 are fixed siphash keys. Digest is a
// diagnostic fingerprint, not a cryptographic commitment, so a fixed
// key is fine: it only needs to be stable across calls within one
// process, which is what chunkcat's idempotency check (SPEC_FULL.md
// §6) relies on.
const (
	digestKey0 = 0x636875_6e6b7769 // "chunkwi"
	digestKey1 = 0x73655f63617421 // "se_cat!"
)

// Digest returns a siphash-64 fingerprint of c's logical contents. Two
// columns with equal Digest are very likely logically equal; it is
// used for cheap associativity/idempotency checks (§8 property 3),
// never for correctness.
func Digest(c Column) uint64 {
	var buf []byte
	buf = appendDigestBytes(buf, c)
	return siphash.Hash(digestKey0, digestKey1, buf)
}

func appendDigestBytes(buf []byte, c Column) []byte {
	buf = append(buf, byte(c.Kind()))
	switch v := c.(type) {
	case Null:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v.n))
	case EmptyArray:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v.n))
	case Boolean:
		for i := 0; i < v.Len(); i++ {
			b := byte(0)
			if v.At(i) {
				b = 1
			}
			buf = append(buf, b)
		}
	case String:
		for i := 0; i < v.Len(); i++ {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(len(v.At(i))))
			buf = append(buf, v.At(i)...)
		}
	case Array:
		for i := 0; i < v.Len(); i++ {
			buf = appendDigestBytes(buf, v.Row(i))
		}
	case Nullable:
		for i := 0; i < v.Len(); i++ {
			b := byte(0)
			if v.Valid(i) {
				b = 1
			}
			buf = append(buf, b)
		}
		buf = appendDigestBytes(buf, v.inner)
	case Tuple:
		for _, f := range v.fields {
			buf = appendDigestBytes(buf, f)
		}
	default:
		buf = appendDigestNumber(buf, c)
	}
	return buf
}

func appendDigestNumber(buf []byte, c Column) []byte {
	switch v := c.(type) {
	case Number[int8]:
		for _, x := range v.values {
			buf = append(buf, byte(x))
		}
	case Number[int16]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(x))
		}
	case Number[int32]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(x))
		}
	case Number[int64]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(x))
		}
	case Number[uint8]:
		buf = append(buf, v.values...)
	case Number[uint16]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint16(buf, x)
		}
	case Number[uint32]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint32(buf, x)
		}
	case Number[uint64]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint64(buf, x)
		}
	case Number[float32]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(x))
		}
	case Number[float64]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
		}
	case Number[date.Time]:
		for _, x := range v.values {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(x.UnixNano()))
		}
	default:
		wrongKind("Digest", c.Kind())
	}
	return buf
}
