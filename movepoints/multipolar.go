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

package movepoints

import (
	"fmt"

	"github.com/tobler/bicart"
	"github.com/tobler/bicart/pcoa"
	"github.com/tobler/bicart/procrustes"
)

// MoveMultipolar derives new positions for referencePoints from a square
// matrix of pairwise travel durations: it embeds the duration matrix into
// the plane via classical scaling (pcoa.Embed) and then rotates, scales
// and translates that embedding to best match referencePoints via
// Procrustes alignment, so the result keeps referencePoints' overall
// frame while reflecting the relative travel durations between them.
//
// durations must be square, and its dimension must equal
// len(referencePoints).
func MoveMultipolar(durations [][]float64, referencePoints []cartogram.Coord) ([]cartogram.Coord, error) {
	m := len(durations)
	for _, row := range durations {
		if len(row) != m {
			return nil, ErrDurationMatrixNotSquare
		}
	}
	if m != len(referencePoints) {
		return nil, ErrInvalidDurationsDimensions
	}

	embedded, err := pcoa.Embed(durations, 2)
	if err != nil {
		return nil, fmt.Errorf("movepoints: PCoA embedding failed: %w", err)
	}

	target := make([]procrustes.Coord, m)
	for i, row := range embedded {
		target[i] = procrustes.Coord{X: row[0], Y: row[1]}
	}

	reference := make([]procrustes.Coord, m)
	for i, p := range referencePoints {
		reference[i] = procrustes.Coord{X: p.X, Y: p.Y}
	}

	result, err := procrustes.Align(reference, target)
	if err != nil {
		return nil, fmt.Errorf("movepoints: Procrustes alignment failed: %w", err)
	}

	out := make([]cartogram.Coord, m)
	for i, p := range result.Points {
		out[i] = cartogram.Coord{X: p.X, Y: p.Y}
	}
	return out, nil
}
