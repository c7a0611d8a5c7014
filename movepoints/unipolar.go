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
	"math"
	"sort"

	"github.com/tobler/bicart"
)

// CentralTendency selects how the reference speed is computed from the
// individual point speeds in MoveUnipolar.
type CentralTendency int

const (
	Mean CentralTendency = iota
	Median
)

func distance(a, b cartogram.Coord) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// interpolateLine returns the point at distance targetDist from a, along
// the ray from a through b.
func interpolateLine(a, b cartogram.Coord, targetDist float64) cartogram.Coord {
	d := distance(a, b)
	if d == 0 {
		return a
	}
	t := targetDist / d
	return cartogram.Coord{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// MoveUnipolar moves sourcePoints towards or away from a single reference
// point (the point whose duration is 0), so that their Euclidean distance
// from it reflects a shared reference travel speed rather than raw
// distance: a point reachable faster than the reference speed (distance
// per unit duration above the reference) is pulled inward, one reachable
// slower is pushed outward.
//
// factor scales the displacement (1.0 applies it as computed; a larger
// factor exaggerates the effect). sourcePoints and durations must have
// equal length (ErrInvalidDurationsLength otherwise), and durations must
// contain a 0 (ErrNoReferencePoint otherwise); the first 0 identifies the
// reference point, and further zeros are not rejected.
func MoveUnipolar(sourcePoints []cartogram.Coord, durations []float64, factor float64, method CentralTendency) ([]cartogram.Coord, error) {
	if len(sourcePoints) != len(durations) {
		return nil, ErrInvalidDurationsLength
	}

	idx := -1
	for i, t := range durations {
		if t == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNoReferencePoint
	}

	refPoint := sourcePoints[idx]

	speeds := make([]float64, 0, len(sourcePoints)-1)
	dists := make([]float64, len(sourcePoints))
	for i, pt := range sourcePoints {
		if i == idx {
			continue
		}
		d := distance(refPoint, pt)
		dists[i] = d
		speeds = append(speeds, d/durations[i])
	}

	var refSpeed float64
	switch method {
	case Median:
		refSpeed = median(speeds)
	default:
		var sum float64
		for _, s := range speeds {
			sum += s
		}
		refSpeed = sum / float64(len(speeds))
	}

	out := make([]cartogram.Coord, len(sourcePoints))
	for i, pt := range sourcePoints {
		if i == idx {
			out[i] = refPoint
			continue
		}
		speed := dists[i] / durations[i]
		displacement := refSpeed / speed
		d := 1 + (displacement-1)*factor
		out[i] = interpolateLine(refPoint, pt, d*dists[i])
	}
	return out, nil
}
