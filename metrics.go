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

// RMSE holds combined and per-axis root-mean-square error.
type RMSE struct {
	RMSE, RMSEX, RMSEY float64
}

func computeRMSE(a, b []Coord) RMSE {
	n := float64(len(a))
	var sumSq, sumSqX, sumSqY float64
	for i := range a {
		dx := a[i].X - b[i].X
		dy := a[i].Y - b[i].Y
		sumSq += dx*dx + dy*dy
		sumSqX += dx * dx
		sumSqY += dy * dy
	}
	return RMSE{
		RMSE:  math.Sqrt(sumSq / n),
		RMSEX: math.Sqrt(sumSqX / n),
		RMSEY: math.Sqrt(sumSqY / n),
	}
}

// computeMAE is the mean of |dx|+|dy| per point -- an L1 norm on stacked
// x,y, not divided by 2N. Do not "simplify" this to mean distance.
func computeMAE(image, interp []Coord) float64 {
	n := float64(len(image))
	var sum float64
	for i := range image {
		sum += math.Abs(image[i].X-interp[i].X) + math.Abs(image[i].Y-interp[i].Y)
	}
	return sum / n
}

func computeRSquared(image, interp []Coord) float64 {
	n := float64(len(image))
	var meanX, meanY float64
	for _, p := range image {
		meanX += p.X
		meanY += p.Y
	}
	meanX /= n
	meanY /= n

	var ssRes, ssTot float64
	for i := range image {
		dxRes := image[i].X - interp[i].X
		dyRes := image[i].Y - interp[i].Y
		ssRes += dxRes*dxRes + dyRes*dyRes

		dxTot := image[i].X - meanX
		dyTot := image[i].Y - meanY
		ssTot += dxTot*dxTot + dyTot*dyTot
	}
	return 1 - ssRes/ssTot
}

// nodeDeformationStrength approximates the local Jacobian magnitude of the
// interp field at node (i, j) via centered (or one-sided, at the edges)
// finite differences.
func (ns *NodeSet) nodeDeformationStrength(i, j int) float64 {
	res := ns.resolution

	var dxdj, dydj float64
	switch {
	case j > 0 && j < ns.width-1:
		dxdj = (ns.at(i, j+1).Interp.X - ns.at(i, j-1).Interp.X) / (2 * res)
		dydj = (ns.at(i, j+1).Interp.Y - ns.at(i, j-1).Interp.Y) / (2 * res)
	case j == 0:
		dxdj = (ns.at(i, j+1).Interp.X - ns.at(i, j).Interp.X) / res
		dydj = (ns.at(i, j+1).Interp.Y - ns.at(i, j).Interp.Y) / res
	default:
		dxdj = (ns.at(i, j).Interp.X - ns.at(i, j-1).Interp.X) / res
		dydj = (ns.at(i, j).Interp.Y - ns.at(i, j-1).Interp.Y) / res
	}

	var dxdi, dydi float64
	switch {
	case i > 0 && i < ns.height-1:
		dxdi = (ns.at(i+1, j).Interp.X - ns.at(i-1, j).Interp.X) / (2 * res)
		dydi = (ns.at(i+1, j).Interp.Y - ns.at(i-1, j).Interp.Y) / (2 * res)
	case i == 0:
		dxdi = (ns.at(i+1, j).Interp.X - ns.at(i, j).Interp.X) / res
		dydi = (ns.at(i+1, j).Interp.Y - ns.at(i, j).Interp.Y) / res
	default:
		dxdi = (ns.at(i, j).Interp.X - ns.at(i-1, j).Interp.X) / res
		dydi = (ns.at(i, j).Interp.Y - ns.at(i-1, j).Interp.Y) / res
	}

	return math.Sqrt((dxdj*dxdj + dydj*dydj + dxdi*dxdi + dydi*dydi) / 2)
}

func (ns *NodeSet) averageDeformationStrength() float64 {
	var sumSq float64
	for i := 0; i < ns.height; i++ {
		for j := 0; j < ns.width; j++ {
			s := ns.nodeDeformationStrength(i, j)
			sumSq += s * s
		}
	}
	return math.Sqrt(sumSq / float64(ns.width*ns.height))
}

// DefaultIterations is the recommended number of outer solver passes for n
// homologous point pairs, round(4*sqrt(n)).
func DefaultIterations(n int) int {
	return int(math.Round(4 * math.Sqrt(float64(n))))
}
