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

// Coord is a planar point, (x, y) in 64-bit floats.
type Coord struct {
	X, Y float64
}

func distanceSq(a, b Coord) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// GeometryKind tags the variant held by a Geometry. The set is closed and
// exhaustive: adding a member is a breaking change to this package, since
// every consumer of Geometry (BBoxFromGeometries, Grid.InterpolateLayer)
// must switch over every kind.
type GeometryKind int

const (
	KindPoint GeometryKind = iota
	KindMultiPoint
	KindLineString
	KindMultiLineString
	KindPolygon
	KindMultiPolygon
	KindTriangle
	KindRect
	KindLine
	KindGeometryCollection
)

// Ring is a polygon's exterior ring plus zero or more interior (hole)
// rings. Rings are open: the closing vertex equal to the first is not
// stored, and callers reconstructing a closed ring append it themselves.
type Ring struct {
	Exterior  []Coord
	Interiors [][]Coord
}

// Geometry is the planar geometry value type this package consumes and
// produces. It is a closed tagged union over the variant named by Kind;
// only the field(s) matching Kind are meaningful.
type Geometry struct {
	Kind GeometryKind

	Point      Coord      // KindPoint
	MultiPoint []Coord    // KindMultiPoint
	Line       [2]Coord   // KindLine
	LineString []Coord    // KindLineString
	Polygon    Ring       // KindPolygon
	Triangle   [3]Coord   // KindTriangle
	Rect       [2]Coord   // KindRect: min corner, max corner
	Multi      []Geometry // KindMultiLineString, KindMultiPolygon, KindGeometryCollection
}

// eachVertex calls fn on every vertex of g, recursing into collection and
// multi-part members. BBoxFromGeometries uses it, and mapVertices (the
// layer warper's transform) visits the same vertex set.
func (g Geometry) eachVertex(fn func(Coord)) {
	switch g.Kind {
	case KindPoint:
		fn(g.Point)
	case KindMultiPoint:
		for _, p := range g.MultiPoint {
			fn(p)
		}
	case KindLine:
		fn(g.Line[0])
		fn(g.Line[1])
	case KindLineString:
		for _, p := range g.LineString {
			fn(p)
		}
	case KindPolygon:
		for _, p := range g.Polygon.Exterior {
			fn(p)
		}
		for _, ring := range g.Polygon.Interiors {
			for _, p := range ring {
				fn(p)
			}
		}
	case KindMultiLineString, KindMultiPolygon, KindGeometryCollection:
		for _, sub := range g.Multi {
			sub.eachVertex(fn)
		}
	case KindTriangle:
		fn(g.Triangle[0])
		fn(g.Triangle[1])
		fn(g.Triangle[2])
	case KindRect:
		fn(g.Rect[0])
		fn(g.Rect[1])
	}
}

// mapVertices returns a copy of g with every vertex replaced by fn(vertex),
// preserving Kind and structure (ring membership, multi-part membership).
func (g Geometry) mapVertices(fn func(Coord) Coord) Geometry {
	switch g.Kind {
	case KindPoint:
		return Geometry{Kind: KindPoint, Point: fn(g.Point)}
	case KindMultiPoint:
		out := make([]Coord, len(g.MultiPoint))
		for i, p := range g.MultiPoint {
			out[i] = fn(p)
		}
		return Geometry{Kind: KindMultiPoint, MultiPoint: out}
	case KindLine:
		return Geometry{Kind: KindLine, Line: [2]Coord{fn(g.Line[0]), fn(g.Line[1])}}
	case KindLineString:
		out := make([]Coord, len(g.LineString))
		for i, p := range g.LineString {
			out[i] = fn(p)
		}
		return Geometry{Kind: KindLineString, LineString: out}
	case KindPolygon:
		ext := make([]Coord, len(g.Polygon.Exterior))
		for i, p := range g.Polygon.Exterior {
			ext[i] = fn(p)
		}
		var interiors [][]Coord
		if len(g.Polygon.Interiors) > 0 {
			interiors = make([][]Coord, len(g.Polygon.Interiors))
			for i, ring := range g.Polygon.Interiors {
				r := make([]Coord, len(ring))
				for j, p := range ring {
					r[j] = fn(p)
				}
				interiors[i] = r
			}
		}
		return Geometry{Kind: KindPolygon, Polygon: Ring{Exterior: ext, Interiors: interiors}}
	case KindMultiLineString, KindMultiPolygon, KindGeometryCollection:
		out := make([]Geometry, len(g.Multi))
		for i, sub := range g.Multi {
			out[i] = sub.mapVertices(fn)
		}
		return Geometry{Kind: g.Kind, Multi: out}
	case KindTriangle:
		return Geometry{Kind: KindTriangle, Triangle: [3]Coord{fn(g.Triangle[0]), fn(g.Triangle[1]), fn(g.Triangle[2])}}
	case KindRect:
		return Geometry{Kind: KindRect, Rect: [2]Coord{fn(g.Rect[0]), fn(g.Rect[1])}}
	default:
		return g
	}
}
