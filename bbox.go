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

// BBox is an axis-aligned bounding box used on public boundaries, with
// xmin <= xmax and ymin <= ymax.
type BBox struct {
	Xmin, Ymin, Xmax, Ymax float64
}

// Contains reports whether point lies inside the bounding box, inclusive
// of all four edges.
func (b BBox) Contains(point Coord) bool {
	return point.X >= b.Xmin && point.X <= b.Xmax && point.Y >= b.Ymin && point.Y <= b.Ymax
}

// ContainsBBox reports whether other is entirely inside b, inclusive.
func (b BBox) ContainsBBox(other BBox) bool {
	return other.Xmin >= b.Xmin && other.Xmax <= b.Xmax && other.Ymin >= b.Ymin && other.Ymax <= b.Ymax
}

// BBoxFromGeometries reduces min/max over every vertex of every geometry,
// recursing into multi-part and collection members.
func BBoxFromGeometries(geoms []Geometry) BBox {
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for _, g := range geoms {
		g.eachVertex(func(c Coord) {
			if c.X < xmin {
				xmin = c.X
			}
			if c.X > xmax {
				xmax = c.X
			}
			if c.Y < ymin {
				ymin = c.Y
			}
			if c.Y > ymax {
				ymax = c.Y
			}
		})
	}
	return BBox{Xmin: xmin, Ymin: ymin, Xmax: xmax, Ymax: ymax}
}
