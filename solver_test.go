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
	"math"
	"testing"
)

// TestIdentityInputLeavesFieldUnchanged is S1 plus invariant 1: when image
// equals source, the converged field should leave every node at its
// original position.
func TestIdentityInputLeavesFieldUnchanged(t *testing.T) {
	points := []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}

	g, err := New(points, points, 2, 9, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if mae := g.Mae(); mae > 1e-9 {
		t.Errorf("MAE = %v, want ~0", mae)
	}
	if r2 := g.RSquared(); math.Abs(r2-1) > 1e-9 {
		t.Errorf("R^2 = %v, want ~1", r2)
	}
	if ds := g.DeformationStrength(); ds >= 1e-6 {
		t.Errorf("deformation strength = %v, want < 1e-6", ds)
	}

	width, height := g.GridDimensions()
	res := g.Resolution()
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			n := g.nodes.at(i, j)
			if dist := math.Hypot(n.Interp.X-n.Source.X, n.Interp.Y-n.Source.Y); dist > res*1e-6 {
				t.Errorf("node (%d,%d) moved by %v, want < %v", i, j, dist, res*1e-6)
			}
		}
	}

	square := Geometry{Kind: KindPolygon, Polygon: Ring{Exterior: []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}}
	warped, err := g.InterpolateLayer([]Geometry{square})
	if err != nil {
		t.Fatalf("InterpolateLayer: %v", err)
	}
	for i, p := range warped[0].Polygon.Exterior {
		want := square.Polygon.Exterior[i]
		if math.Abs(p.X-want.X) > 1e-9 || math.Abs(p.Y-want.Y) > 1e-9 {
			t.Errorf("vertex %d = %+v, want %+v", i, p, want)
		}
	}
}

// TestPureTranslation is S2.
func TestPureTranslation(t *testing.T) {
	source := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	image := make([]Coord, len(source))
	for i, p := range source {
		image[i] = Coord{X: p.X + 5, Y: p.Y + 7}
	}

	g, err := New(source, image, 2, 8, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i, p := range source {
		got, err := g.GetInterpPoint(p)
		if err != nil {
			t.Fatalf("GetInterpPoint(%v): %v", p, err)
		}
		want := image[i]
		if math.Abs(got.X-want.X) > 1e-3 || math.Abs(got.Y-want.Y) > 1e-3 {
			t.Errorf("point %d: interp = %+v, want %+v", i, got, want)
		}
	}
	if r2 := g.RSquared(); r2 <= 0.999 {
		t.Errorf("R^2 = %v, want > 0.999", r2)
	}
}

// TestInvalidInputLengthMismatch is S3.
func TestInvalidInputLengthMismatch(t *testing.T) {
	source := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	image := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	_, err := New(source, image, 2, 4, nil)
	if err == nil {
		t.Fatal("expected an error for mismatched input lengths")
	}
	cartErr, ok := err.(*Error)
	if !ok || cartErr.Kind != InvalidInputPointsLength {
		t.Errorf("err = %v, want InvalidInputPointsLength", err)
	}
}

// TestOutOfBBoxQuery is S4.
func TestOutOfBBoxQuery(t *testing.T) {
	source := []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	g, err := New(source, source, 2, 1, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = g.GetInterpPoint(Coord{X: 100, Y: 100})
	cartErr, ok := err.(*Error)
	if !ok || cartErr.Kind != PointNotInBBox {
		t.Errorf("err = %v, want PointNotInBBox", err)
	}
}

// TestAnisotropicScale is S5.
func TestAnisotropicScale(t *testing.T) {
	source := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5}}
	image := []Coord{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0.5}}

	g, err := New(source, image, 2, DefaultIterations(len(source)), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := g.GetInterpPoint(Coord{X: 0.25, Y: 0.75})
	if err != nil {
		t.Fatalf("GetInterpPoint: %v", err)
	}
	want := Coord{X: 0.5, Y: 0.75}
	tol := 5 * g.Resolution() * 1e-2
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
		t.Errorf("interp(0.25,0.75) = %+v, want %+v within %v", got, want, tol)
	}
}

// TestLayerContainment is S6.
func TestLayerContainment(t *testing.T) {
	source := []Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	// Precision 8 gives a 0.625 cell and a padded zone of [-0.625, 10.625]^2,
	// which the [-1, 11]^2 polygon below overflows.
	g, err := New(source, source, 8, 1, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	outOfBounds := Geometry{
		Kind: KindPolygon,
		Polygon: Ring{Exterior: []Coord{
			{X: -1, Y: -1}, {X: 11, Y: -1}, {X: 11, Y: 11}, {X: -1, Y: 11},
		}},
	}
	_, err = g.InterpolateLayer([]Geometry{outOfBounds})
	cartErr, ok := err.(*Error)
	if !ok || cartErr.Kind != GeometriesNotInBBox {
		t.Errorf("err = %v, want GeometriesNotInBBox", err)
	}
}

func TestDeterminism(t *testing.T) {
	source := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0.5, Y: 0.2}}
	image := []Coord{{X: 0, Y: 0}, {X: 1.5, Y: 0.2}, {X: 0.1, Y: 1.3}, {X: 1.4, Y: 1.1}, {X: 0.6, Y: 0.4}}

	g1, err := New(source, image, 2, 10, nil)
	if err != nil {
		t.Fatalf("New (1): %v", err)
	}
	g2, err := New(source, image, 2, 10, nil)
	if err != nil {
		t.Fatalf("New (2): %v", err)
	}

	for i := range g1.interpolatedPoints {
		a, b := g1.interpolatedPoints[i], g2.interpolatedPoints[i]
		if a != b {
			t.Errorf("run 1 vs run 2 diverged at point %d: %+v vs %+v", i, a, b)
		}
	}
}
