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

//go:build bench && (linux || darwin)

package fuzzutil

import "golang.org/x/sys/unix"

// PageSize returns the host's memory page size, used by the
// concat benchmarks to size each input column to about one page
// and so separate allocation cost from page-fault noise.
func PageSize() int {
	return unix.Getpagesize()
}
