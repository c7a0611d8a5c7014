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

func TestComputeMAE(t *testing.T) {
	image := []Coord{{X: 0, Y: 0}, {X: 2, Y: 2}}
	interp := []Coord{{X: 1, Y: 1}, {X: 2, Y: 2}}
	// |1|+|1| + |0|+|0| = 2, / N=2 => 1
	if got := computeMAE(image, interp); got != 1 {
		t.Errorf("computeMAE = %v, want 1", got)
	}
}

func TestComputeRMSE(t *testing.T) {
	a := []Coord{{X: 0, Y: 0}, {X: 4, Y: 0}}
	b := []Coord{{X: 3, Y: 4}, {X: 0, Y: 0}}
	got := computeRMSE(a, b)
	// per-point squared distances: 9+16=25, 16+0=16 -> sum 41, /2 = 20.5
	wantRMSE := math.Sqrt(20.5)
	if math.Abs(got.RMSE-wantRMSE) > 1e-9 {
		t.Errorf("RMSE = %v, want %v", got.RMSE, wantRMSE)
	}
	wantX := math.Sqrt((9.0 + 16.0) / 2)
	if math.Abs(got.RMSEX-wantX) > 1e-9 {
		t.Errorf("RMSEX = %v, want %v", got.RMSEX, wantX)
	}
}

func TestComputeRSquaredPerfectFitIsOne(t *testing.T) {
	image := []Coord{{X: 0, Y: 0}, {X: 5, Y: 1}, {X: 2, Y: 9}}
	if got := computeRSquared(image, image); math.Abs(got-1) > 1e-9 {
		t.Errorf("R^2 of a perfect fit = %v, want 1", got)
	}
}

func TestDefaultIterations(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 4},
		{25, 20},
		{100, 40},
	}
	for _, tt := range tests {
		if got := DefaultIterations(tt.n); got != tt.want {
			t.Errorf("DefaultIterations(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNodeDeformationStrengthUniformOnAffineField(t *testing.T) {
	zone := rectangle{x: 0, y: 0, width: 10, height: 10}
	ns := newNodeSet(zone, 1, 12, 12)
	// interp == source everywhere: the field is exactly affine, so every
	// partial derivative is constant and the Jacobian matches the
	// identity map's magnitude, not necessarily zero -- check it is finite
	// and identical at two interior nodes instead of asserting a literal
	// value, since source is itself non-degenerate (dx/dj=1, dy/di=-1).
	s1 := ns.nodeDeformationStrength(5, 5)
	s2 := ns.nodeDeformationStrength(6, 6)
	if math.Abs(s1-s2) > 1e-9 {
		t.Errorf("deformation strength should be uniform on an affine field: %v vs %v", s1, s2)
	}
}
