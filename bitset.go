// github.com/tobler/bicart - distance cartograms via bidimensional regression
// Copyright (C) 2026  The bicart authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cartogram

import "github.com/kelindar/bitmap"

// bitmapSet is a thin wrapper around kelindar/bitmap.Bitmap restricted to
// the dense, preallocated membership-set usage this package needs: track
// which of a fixed number of lattice indices are "constrained" nodes.
type bitmapSet struct {
	bits bitmap.Bitmap
}

func (s *bitmapSet) grow(n int) {
	if n <= 0 {
		return
	}
	s.bits.Grow(uint32(n - 1))
}

func (s *bitmapSet) set(idx int) {
	s.bits.Set(uint32(idx))
}

func (s *bitmapSet) contains(idx int) bool {
	return s.bits.Contains(uint32(idx))
}
