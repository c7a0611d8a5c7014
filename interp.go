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

// bilinearAt evaluates the bilinear stencil shared by the point
// interpolator and the Phase I solver update, given the four adjacent
// nodes of a query point and its offsets (ux1, vy1) from the top-left (A0)
// and bottom-left (A2) corners.
func bilinearAt(adj [4]*Node, ux1, vy1, resolution float64) Coord {
	hx1 := ux1/resolution*(adj[1].Interp.X-adj[0].Interp.X) + adj[0].Interp.X
	hx2 := ux1/resolution*(adj[3].Interp.X-adj[2].Interp.X) + adj[2].Interp.X
	hx := vy1/resolution*(hx1-hx2) + hx2

	hy1 := ux1/resolution*(adj[1].Interp.Y-adj[0].Interp.Y) + adj[0].Interp.Y
	hy2 := ux1/resolution*(adj[3].Interp.Y-adj[2].Interp.Y) + adj[2].Interp.Y
	hy := vy1/resolution*(hy1-hy2) + hy2

	return Coord{X: hx, Y: hy}
}

// interpolatePoint evaluates the converged interp field at an arbitrary
// source-plane point q, without bounds checking (callers must ensure q is
// within ns's covered zone; the public facade checks this).
func (ns *NodeSet) interpolatePoint(q Coord) Coord {
	adj := ns.adjacentNodes(q)
	ux1 := q.X - adj[0].Source.X
	vy1 := q.Y - adj[2].Source.Y
	return bilinearAt(adj, ux1, vy1, ns.resolution)
}
