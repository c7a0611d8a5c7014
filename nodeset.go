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

// NodeSet is the lattice: a row-major buffer of Node plus the zone it
// covers and the cell resolution. Invariants (guaranteed by the builder):
// width >= 2, height >= 2; zone strictly contains every source point;
// nodes[i*width+j].Source == (zone.Xmin + j*resolution, zone.Ymax - i*resolution).
type NodeSet struct {
	nodes      []Node
	zone       rectangle
	resolution float64
	width      int
	height     int

	// constrained tracks which nodes have Weight > 0 (seeded by a source
	// point's containing cell); Phase II's free-node sweep tests membership
	// in this bitmap rather than Weight == 0 for each node.
	constrained bitmapSet
}

func newNodeSet(zone rectangle, resolution float64, width, height int) *NodeSet {
	nodes := make([]Node, width*height)
	minX := zone.minX()
	maxY := zone.maxY()
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			src := Coord{X: minX + float64(j)*resolution, Y: maxY - float64(i)*resolution}
			nodes[i*width+j] = Node{I: i, J: j, Source: src, Interp: src}
		}
	}
	ns := &NodeSet{
		nodes:      nodes,
		zone:       zone,
		resolution: resolution,
		width:      width,
		height:     height,
	}
	ns.constrained.grow(width * height)
	return ns
}

func (ns *NodeSet) isInGrid(i, j int) bool {
	return i >= 0 && i < ns.height && j >= 0 && j < ns.width
}

func (ns *NodeSet) at(i, j int) *Node {
	return &ns.nodes[i*ns.width+j]
}

// col returns the column index of the cell containing p. Points on or east
// of the last node column map to the last cell, so its four corners stay
// in-grid.
func (ns *NodeSet) col(p Coord) int {
	c := int(math.Floor((p.X - ns.zone.minX()) / ns.resolution))
	if c > ns.width-2 {
		c = ns.width - 2
	}
	return c
}

// row returns the row index of the cell containing p. Points on or south
// of the last node row map to the last cell, so its four corners stay
// in-grid.
func (ns *NodeSet) row(p Coord) int {
	r := int(math.Floor((ns.zone.maxY() - p.Y) / ns.resolution))
	if r > ns.height-2 {
		r = ns.height - 2
	}
	return r
}

// adjacentIndex returns the (i, j) of the k-th adjacent node of p in the
// contractual order [(row,col), (row,col+1), (row+1,col), (row+1,col+1)].
func (ns *NodeSet) adjacentIndex(p Coord, k int) (int, int) {
	i, j := ns.row(p), ns.col(p)
	switch k {
	case 0:
		return i, j
	case 1:
		return i, j + 1
	case 2:
		return i + 1, j
	default:
		return i + 1, j + 1
	}
}

// adjacentNodes returns pointers to the four corners of the cell
// containing p, in the fixed order referenced throughout the solver.
func (ns *NodeSet) adjacentNodes(p Coord) [4]*Node {
	i, j := ns.row(p), ns.col(p)
	return [4]*Node{
		ns.at(i, j),
		ns.at(i, j+1),
		ns.at(i+1, j),
		ns.at(i+1, j+1),
	}
}

// seedWeight increments the weight of the four adjacent nodes of p by 1,
// marking them as constrained.
func (ns *NodeSet) seedWeight(p Coord) {
	for k := 0; k < 4; k++ {
		i, j := ns.adjacentIndex(p, k)
		n := ns.at(i, j)
		n.Weight++
		ns.constrained.set(i*ns.width + j)
	}
}

func (ns *NodeSet) isConstrained(i, j int) bool {
	return ns.constrained.contains(i*ns.width + j)
}

// getSmoothed returns a weighted combination (weights summing to 1) of the
// interp positions of the neighbors of (i, j): a 12-neighbor stencil with
// coefficients 8, -2 and -1 over 20 in the interior, or an
// average of the real 4-connected neighbors with a phantom displacement
// standing in for each missing cardinal neighbor at the edges/corners.
func (ns *NodeSet) getSmoothed(i, j int, scaleX, scaleY float64) Coord {
	if i > 1 && j > 1 && i < ns.height-2 && j < ns.width-2 {
		n := ns.at(i-1, j).Interp
		s := ns.at(i+1, j).Interp
		w := ns.at(i, j-1).Interp
		e := ns.at(i, j+1).Interp
		nw := ns.at(i-1, j-1).Interp
		sw := ns.at(i+1, j-1).Interp
		se := ns.at(i+1, j+1).Interp
		ne := ns.at(i-1, j+1).Interp
		nn := ns.at(i-2, j).Interp
		ss := ns.at(i+2, j).Interp
		ww := ns.at(i, j-2).Interp
		ee := ns.at(i, j+2).Interp
		return Coord{
			X: (8*(n.X+s.X+w.X+e.X) - 2*(nw.X+sw.X+se.X+ne.X) - (nn.X + ss.X + ww.X + ee.X)) / 20,
			Y: (8*(n.Y+s.Y+w.Y+e.Y) - 2*(nw.Y+sw.Y+se.Y+ne.Y) - (nn.Y + ss.Y + ww.Y + ee.Y)) / 20,
		}
	}

	nb := 0
	var sx, sy float64
	if i > 0 {
		n := ns.at(i-1, j).Interp
		sx += n.X
		sy += n.Y
		nb++
	} else {
		sy += ns.resolution * scaleY
	}
	if j > 0 {
		n := ns.at(i, j-1).Interp
		sx += n.X
		sy += n.Y
		nb++
	} else {
		sx -= ns.resolution * scaleX
	}
	if i < ns.height-1 {
		n := ns.at(i+1, j).Interp
		sx += n.X
		sy += n.Y
		nb++
	} else {
		sy -= ns.resolution * scaleY
	}
	if j < ns.width-1 {
		n := ns.at(i, j+1).Interp
		sx += n.X
		sy += n.Y
		nb++
	} else {
		sx += ns.resolution * scaleX
	}
	return Coord{X: sx / float64(nb), Y: sy / float64(nb)}
}
