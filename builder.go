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

import "math"

// buildNodeSet sizes and populates the lattice for sourcePoints, optionally
// widened to cover bbox, at the given precision. See spec §4.3: resolution
// is derived from precision and the point density, width/height get a +2
// pad, and the zone is re-centered to stay symmetric around its own center
// after padding. Together with the cell lookup (NodeSet.col/row), which
// maps points on the last node column or row to the last cell, every
// source point (including ones exactly on the east/south edges) has all
// four corners in-grid.
func buildNodeSet(sourcePoints []Coord, precision float64, bbox *BBox) *NodeSet {
	var zone rectangle
	if bbox == nil {
		zone = rectangleFromPoints(sourcePoints)
	} else {
		zone = rectangleFromBBox(*bbox)
		for _, p := range sourcePoints {
			zone.add(p)
		}
	}

	n := float64(len(sourcePoints))
	resolution := math.Sqrt(zone.width*zone.height/n) / precision

	width := int(math.Ceil(zone.width/resolution)) + 2
	height := int(math.Ceil(zone.height/resolution)) + 2

	center := Coord{X: zone.centerX(), Y: zone.centerY()}
	dx := float64(width)*resolution - zone.width
	dy := float64(height)*resolution - zone.height
	corner := Coord{X: zone.minX() - dx/2, Y: zone.minY() - dy/2}
	zone.setRectFromCenter(center, corner)

	ns := newNodeSet(zone, resolution, width, height)
	for _, p := range sourcePoints {
		ns.seedWeight(p)
	}
	return ns
}
