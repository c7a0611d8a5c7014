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

// solve runs nIter outer passes of Gauss-Seidel relaxation, mutating ns in
// place so that the bilinear interpolation of ns at each sourcePoints[k]
// approaches imagePoints[k]. Pass order and in-pass mutation visibility are
// load-bearing: this is not safe to parallelize across pairs within a pass.
func solve(ns *NodeSet, sourcePoints, imagePoints []Coord, nIter int) {
	sourceRect := rectangleFromPoints(sourcePoints)
	imageRect := rectangleFromPoints(imagePoints)
	scaleX := imageRect.width / sourceRect.width
	scaleY := imageRect.height / sourceRect.height

	resolution := ns.resolution
	cellCount := float64(ns.width * ns.height)

	for pass := 0; pass < nIter; pass++ {
		phaseOne(ns, sourcePoints, imagePoints, scaleX, scaleY, resolution)
		phaseTwo(ns, scaleX, scaleY, cellCount)
	}
}

// phaseOne is the constrained update: for each homologous pair, nudge its
// four adjacent nodes so the bilinear interpolation at the source point
// moves towards the image point.
func phaseOne(ns *NodeSet, sourcePoints, imagePoints []Coord, scaleX, scaleY, resolution float64) {
	for idx, src := range sourcePoints {
		img := imagePoints[idx]
		adj := ns.adjacentNodes(src)

		var smoothed [4]Coord
		for k := 0; k < 4; k++ {
			smoothed[k] = ns.getSmoothed(adj[k].I, adj[k].J, scaleX, scaleY)
		}

		ux1 := src.X - adj[0].Source.X
		ux2 := resolution - ux1
		vy1 := src.Y - adj[2].Source.Y
		vy2 := resolution - vy1
		u := 1 / (ux1*ux1 + ux2*ux2)
		v := 1 / (vy1*vy1 + vy2*vy2)

		w := [4]float64{vy1 * ux2, vy1 * ux1, vy2 * ux2, vy2 * ux1}

		var dzx, dzy, qx, qy [4]float64
		var sw, sqx, sqy float64
		for k := 0; k < 4; k++ {
			sw += w[k] * w[k]
			dzx[k] = adj[k].Interp.X - smoothed[k].X
			dzy[k] = adj[k].Interp.Y - smoothed[k].Y
			qx[k] = w[k] * dzx[k]
			qy[k] = w[k] * dzy[k]
			sqx += qx[k]
			sqy += qy[k]
		}

		h := bilinearAt(adj, ux1, vy1, resolution)
		deltaX := img.X - h.X
		deltaY := img.Y - h.Y
		dx := deltaX * resolution * resolution
		dy := deltaY * resolution * resolution

		var adjX, adjY [4]float64
		for k := 0; k < 4; k++ {
			adjX[k] = u * v * ((dx-qx[k]+sqx)*w[k]+dzx[k]*(w[k]*w[k]-sw)) / adj[k].Weight
			adjY[k] = u * v * ((dy-qy[k]+sqy)*w[k]+dzy[k]*(w[k]*w[k]-sw)) / adj[k].Weight
		}
		for k := 0; k < 4; k++ {
			adj[k].Interp.X += adjX[k]
			adj[k].Interp.Y += adjY[k]
		}
	}
}

// phaseTwo relaxes every unconstrained (Weight == 0) node towards a
// harmonic interpolant of its neighbors, sweeping up to width*height
// times or until the per-sweep displacement converges.
func phaseTwo(ns *NodeSet, scaleX, scaleY, cellCount float64) {
	maxSweeps := ns.width * ns.height
	for l := 0; l < maxSweeps; l++ {
		delta := 0.0
		for i := 0; i < ns.height; i++ {
			for j := 0; j < ns.width; j++ {
				if ns.isConstrained(i, j) {
					continue
				}
				node := ns.at(i, j)
				p := ns.getSmoothed(i, j, scaleX, scaleY)
				prev := node.Interp
				node.Interp = p
				d := distanceSq(prev, p) / cellCount
				if d > delta {
					delta = d
				}
			}
		}
		if l > 5 && math.Sqrt(delta) < 1e-4 {
			break
		}
	}
}
