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

// GridType selects which field of each node GetGrid renders into cell
// polygons: the fixed source-plane lattice, or its current image-plane
// (interpolated) counterpart.
type GridType int

const (
	Source GridType = iota
	Interpolated
)

// Grid is the public facade: a converged interpolation lattice plus the
// cached interpolated points and fit-quality metrics for the source/image
// pairs it was built from. A Grid is immutable after New and safe for
// concurrent reads.
type Grid struct {
	nodes *NodeSet

	sourcePoints []Coord
	imagePoints  []Coord

	interpolatedPoints []Coord
	mae                float64
	rSquared           float64
	rmseInterpImage    RMSE
	rmseInterpSource   RMSE
}

// New builds a Grid fitting imagePoints to sourcePoints: it sizes a
// lattice covering sourcePoints (widened to cover bbox if given), then
// runs nIter outer Gauss-Seidel passes. It fails with
// InvalidInputPointsLength if sourcePoints and imagePoints differ in
// length or are empty.
func New(sourcePoints, imagePoints []Coord, precision float64, nIter int, bbox *BBox) (*Grid, error) {
	if len(sourcePoints) == 0 || len(sourcePoints) != len(imagePoints) {
		return nil, newError(InvalidInputPointsLength, "")
	}

	nodes := buildNodeSet(sourcePoints, precision, bbox)
	solve(nodes, sourcePoints, imagePoints, nIter)

	interpolated := make([]Coord, len(sourcePoints))
	for i, p := range sourcePoints {
		interpolated[i] = nodes.interpolatePoint(p)
	}

	g := &Grid{
		nodes:              nodes,
		sourcePoints:       sourcePoints,
		imagePoints:        imagePoints,
		interpolatedPoints: interpolated,
		mae:                computeMAE(imagePoints, interpolated),
		rSquared:           computeRSquared(imagePoints, interpolated),
		rmseInterpImage:    computeRMSE(interpolated, imagePoints),
		rmseInterpSource:   computeRMSE(interpolated, sourcePoints),
	}
	return g, nil
}

// BBox returns the zone covered by the lattice.
func (g *Grid) BBox() BBox {
	return g.nodes.zone.asBBox()
}

// Resolution returns the lattice cell size.
func (g *Grid) Resolution() float64 {
	return g.nodes.resolution
}

// GridDimensions returns the number of columns and rows of lattice nodes.
func (g *Grid) GridDimensions() (width, height int) {
	return g.nodes.width, g.nodes.height
}

// InterpolatedPoints returns interpolatedPoints[k], the bilinear
// interpolation of sourcePoints[k] on the converged field, for every k.
func (g *Grid) InterpolatedPoints() []Coord {
	return g.interpolatedPoints
}

// Mae is the mean absolute error (L1 on stacked x,y) between image points
// and their interpolated counterparts.
func (g *Grid) Mae() float64 {
	return g.mae
}

// RSquared is the coefficient of determination of the fit against image
// points.
func (g *Grid) RSquared() float64 {
	return g.rSquared
}

// RMSEInterpImage is the interpolated-vs-image root-mean-square error.
func (g *Grid) RMSEInterpImage() RMSE {
	return g.rmseInterpImage
}

// RMSEInterpSource is the interpolated-vs-source root-mean-square error,
// i.e. how far the interpolated points moved from their original position.
func (g *Grid) RMSEInterpSource() RMSE {
	return g.rmseInterpSource
}

// DeformationStrength is the average local Jacobian magnitude over every
// lattice node.
func (g *Grid) DeformationStrength() float64 {
	return g.nodes.averageDeformationStrength()
}

// NodeDeformationStrength is the local Jacobian magnitude at lattice node
// (i, j).
func (g *Grid) NodeDeformationStrength(i, j int) float64 {
	return g.nodes.nodeDeformationStrength(i, j)
}

// GetInterpPoint evaluates the converged field at an arbitrary
// source-plane point. It fails with PointNotInBBox if point lies outside
// g.BBox().
func (g *Grid) GetInterpPoint(point Coord) (Coord, error) {
	if !g.BBox().Contains(point) {
		return Coord{}, newError(PointNotInBBox, "")
	}
	return g.nodes.interpolatePoint(point), nil
}

// GetGrid renders the lattice as (width-1)*(height-1) quadrilateral cell
// polygons, each built from the Source or Interp field of its four corner
// nodes in CCW order (i,j), (i+1,j), (i+1,j+1), (i,j+1).
func (g *Grid) GetGrid(which GridType) []Geometry {
	ns := g.nodes
	cells := make([]Geometry, 0, (ns.width-1)*(ns.height-1))
	field := func(n *Node) Coord {
		if which == Source {
			return n.Source
		}
		return n.Interp
	}
	for i := 0; i < ns.height-1; i++ {
		for j := 0; j < ns.width-1; j++ {
			a := field(ns.at(i, j))
			b := field(ns.at(i+1, j))
			c := field(ns.at(i+1, j+1))
			d := field(ns.at(i, j+1))
			cells = append(cells, Geometry{
				Kind:    KindPolygon,
				Polygon: Ring{Exterior: []Coord{a, b, c, d}},
			})
		}
	}
	return cells
}
