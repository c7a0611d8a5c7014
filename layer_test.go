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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildTestGrid(t *testing.T) *Grid {
	t.Helper()
	source := []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}
	image := []Coord{{X: 0, Y: 0}, {X: 12, Y: -1}, {X: 11, Y: 11}, {X: -1, Y: 9}, {X: 5, Y: 6}}
	g, err := New(source, image, 2, DefaultIterations(len(source)), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// TestInterpolateLayerPreservesStructure is invariant 4: variant structure
// (point->point, polygon ring lengths, multi-part membership) survives the
// warp even though vertex positions move.
func TestInterpolateLayerPreservesStructure(t *testing.T) {
	g := buildTestGrid(t)

	geoms := []Geometry{
		{Kind: KindPoint, Point: Coord{X: 2, Y: 2}},
		{
			Kind: KindPolygon,
			Polygon: Ring{
				Exterior:  []Coord{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 9}},
				Interiors: [][]Coord{{{X: 3, Y: 3}, {X: 6, Y: 3}, {X: 6, Y: 6}, {X: 3, Y: 6}}},
			},
		},
		{
			Kind: KindMultiLineString,
			Multi: []Geometry{
				{Kind: KindLineString, LineString: []Coord{{X: 1, Y: 1}, {X: 2, Y: 2}}},
				{Kind: KindLineString, LineString: []Coord{{X: 5, Y: 5}, {X: 6, Y: 6}, {X: 7, Y: 1}}},
			},
		},
	}

	warped, err := g.InterpolateLayer(geoms)
	if err != nil {
		t.Fatalf("InterpolateLayer: %v", err)
	}
	if len(warped) != len(geoms) {
		t.Fatalf("got %d geometries, want %d", len(warped), len(geoms))
	}
	if warped[0].Kind != KindPoint {
		t.Errorf("geometry 0 kind = %v, want KindPoint", warped[0].Kind)
	}
	if warped[1].Kind != KindPolygon {
		t.Errorf("geometry 1 kind = %v, want KindPolygon", warped[1].Kind)
	}
	if len(warped[1].Polygon.Exterior) != 4 {
		t.Errorf("exterior ring length = %d, want 4", len(warped[1].Polygon.Exterior))
	}
	if len(warped[1].Polygon.Interiors) != 1 || len(warped[1].Polygon.Interiors[0]) != 4 {
		t.Errorf("interior ring shape = %v, want one ring of length 4", warped[1].Polygon.Interiors)
	}
	if warped[2].Kind != KindMultiLineString || len(warped[2].Multi) != 2 {
		t.Errorf("geometry 2 structure not preserved: %+v", warped[2])
	}
	if len(warped[2].Multi[1].LineString) != 3 {
		t.Errorf("second linestring length = %d, want 3", len(warped[2].Multi[1].LineString))
	}
}

func TestInterpolateLayerParallelMatchesSequential(t *testing.T) {
	g := buildTestGrid(t)

	geoms := make([]Geometry, 0, 40)
	for i := 0; i < 40; i++ {
		x := float64(i%9) + 0.5
		y := float64((i*3)%9) + 0.5
		geoms = append(geoms, Geometry{Kind: KindPoint, Point: Coord{X: x, Y: y}})
	}

	sequential, err := g.InterpolateLayer(geoms)
	if err != nil {
		t.Fatalf("InterpolateLayer: %v", err)
	}
	parallel, err := g.InterpolateLayerParallel(geoms)
	if err != nil {
		t.Fatalf("InterpolateLayerParallel: %v", err)
	}

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel result differs from sequential (-sequential +parallel):\n%s", diff)
	}
}

func TestInterpolateLayerRejectsGeometriesOutsideBBox(t *testing.T) {
	g := buildTestGrid(t)

	outside := Geometry{Kind: KindPoint, Point: Coord{X: 1000, Y: 1000}}
	_, err := g.InterpolateLayer([]Geometry{outside})
	if err == nil {
		t.Fatal("expected GeometriesNotInBBox error")
	}
}
