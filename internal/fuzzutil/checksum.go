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

// Package fuzzutil holds test-only helpers shared by the concat
// property tests: fixture fingerprinting (to dedup generated test
// chunks) and capacity hints used by benchmarks.
package fuzzutil

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint hashes an arbitrary sequence of byte slices into a
// single digest, used to recognize a previously-seen fuzz fixture so
// the corpus doesn't accumulate duplicate test cases.
func Fingerprint(parts ...[]byte) [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("fuzzutil: blake2b.New256: " + err.Error())
	}
	for _, p := range parts {
		var length [8]byte
		binary.LittleEndian.PutUint64(length[:], uint64(len(p)))
		h.Write(length[:])
		h.Write(p)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// Seen is a small set of fixture fingerprints, used by generators to
// skip fixtures structurally identical to one already exercised.
type Seen struct {
	m map[[32]byte]struct{}
}

func NewSeen() *Seen {
	return &Seen{m: make(map[[32]byte]struct{})}
}

// Add reports whether fp was newly added (true) or already present.
func (s *Seen) Add(fp [32]byte) bool {
	if _, ok := s.m[fp]; ok {
		return false
	}
	s.m[fp] = struct{}{}
	return true
}
