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

// rectangle is a mutable axis-aligned extent (x, y, width, height), used
// internally while sizing the lattice. BBox is the immutable public view.
type rectangle struct {
	x, y          float64
	width, height float64
}

func newEmptyRectangle() rectangle {
	return rectangle{x: math.NaN(), y: math.NaN(), width: math.NaN(), height: math.NaN()}
}

// add grows the rectangle to contain pt, moving the origin left/down if
// pt falls outside the current extent on those sides.
func (r *rectangle) add(pt Coord) {
	if math.IsNaN(r.width) || math.IsNaN(r.height) {
		r.x, r.y = pt.X, pt.Y
		r.width, r.height = 0, 0
	}
	if pt.X < r.x {
		r.width += r.x - pt.X
		r.x = pt.X
	} else if pt.X > r.x+r.width {
		r.width = pt.X - r.x
	}
	if pt.Y < r.y {
		r.height += r.y - pt.Y
		r.y = pt.Y
	} else if pt.Y > r.y+r.height {
		r.height = pt.Y - r.y
	}
}

// setRectFromCenter sets the rectangle symmetrically around center so that
// corner lies on its boundary.
func (r *rectangle) setRectFromCenter(center, corner Coord) {
	r.x = center.X - math.Abs(corner.X-center.X)
	r.y = center.Y - math.Abs(corner.Y-center.Y)
	r.width = math.Abs(corner.X-center.X) * 2
	r.height = math.Abs(corner.Y-center.Y) * 2
}

func rectangleFromPoints(points []Coord) rectangle {
	if len(points) == 0 {
		return rectangle{}
	}
	r := rectangle{x: points[0].X, y: points[0].Y}
	for _, p := range points[1:] {
		r.add(p)
	}
	return r
}

func rectangleFromBBox(b BBox) rectangle {
	return rectangle{x: b.Xmin, y: b.Ymin, width: b.Xmax - b.Xmin, height: b.Ymax - b.Ymin}
}

func (r rectangle) centerX() float64 { return r.x + r.width/2 }
func (r rectangle) centerY() float64 { return r.y + r.height/2 }
func (r rectangle) minX() float64    { return r.x }
func (r rectangle) maxX() float64    { return r.x + r.width }
func (r rectangle) minY() float64    { return r.y }
func (r rectangle) maxY() float64    { return r.y + r.height }

func (r rectangle) asBBox() BBox {
	return BBox{Xmin: r.x, Ymin: r.y, Xmax: r.x + r.width, Ymax: r.y + r.height}
}
