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

// Package pcoa implements classical multidimensional scaling (Principal
// Coordinates Analysis) over a symmetric dissimilarity matrix, used to
// recover planar positions from a matrix of travel durations.
package pcoa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Embed computes an n-dimensional Euclidean embedding of the rows of a
// square, symmetric dissimilarity matrix via classical scaling: double
// center the squared dissimilarities, eigendecompose, and scale the
// leading nDims eigenvectors by the square root of their eigenvalues.
//
// durations must be square; its dimension must match len(durations). An
// error is returned if the matrix is not square, or if the decomposition
// does not yield nDims non-negative eigenvalues (the matrix is not
// embeddable in nDims Euclidean dimensions).
func Embed(durations [][]float64, nDims int) ([][]float64, error) {
	m := len(durations)
	for i, row := range durations {
		if len(row) != m {
			return nil, fmt.Errorf("pcoa: duration matrix is not square: row %d has %d columns, want %d", i, len(row), m)
		}
	}
	if m == 0 {
		return nil, fmt.Errorf("pcoa: duration matrix must not be empty")
	}

	// Squared dissimilarities.
	sq := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			d := durations[i][j]
			sq.SetSym(i, j, d*d)
		}
	}

	// Double-center: B = -1/2 J Sq J, with J = I - (1/m) * ones.
	ones := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			ones.Set(i, j, 1.0/float64(m))
		}
	}
	var identity mat.Dense
	identity.Sub(eye(m), ones)

	var jsq mat.Dense
	jsq.Mul(&identity, sq)
	var b mat.Dense
	b.Mul(&jsq, &identity)
	b.Scale(-0.5, &b)

	bSym := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			bSym.SetSym(i, j, b.At(i, j))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(bSym, true); !ok {
		return nil, fmt.Errorf("pcoa: eigendecomposition failed")
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// Eigenvalues come back ascending; we want the nDims largest.
	type pair struct {
		value  float64
		column int
	}
	pairs := make([]pair, m)
	for i, v := range values {
		pairs[i] = pair{value: v, column: i}
	}
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[j].value > pairs[i].value {
				pairs[i], pairs[j] = pairs[j], pairs[i]
			}
		}
	}

	if nDims > m {
		return nil, fmt.Errorf("pcoa: requested %d dimensions from a %d-point matrix", nDims, m)
	}
	for k := 0; k < nDims; k++ {
		if pairs[k].value < 0 {
			return nil, fmt.Errorf("pcoa: eigenvalue %d is negative (%.6g); matrix is not embeddable in %d dimensions", k, pairs[k].value, nDims)
		}
	}

	coords := make([][]float64, m)
	for i := range coords {
		coords[i] = make([]float64, nDims)
	}
	for k := 0; k < nDims; k++ {
		scale := math.Sqrt(pairs[k].value)
		col := pairs[k].column
		for i := 0; i < m; i++ {
			coords[i][k] = vectors.At(i, col) * scale
		}
	}
	return coords, nil
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}
