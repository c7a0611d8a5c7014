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

import "fmt"

// ErrorKind identifies the category of an *Error returned by this package.
type ErrorKind int

const (
	// InvalidInputPointsLength indicates that the source and image point
	// slices differ in length, or that either is empty.
	InvalidInputPointsLength ErrorKind = iota
	// PointNotInBBox indicates that a point-interpolation query lies
	// outside the grid's covered zone.
	PointNotInBBox
	// GeometriesNotInBBox indicates that a geometry collection's bounding
	// box is not contained in the grid's covered zone.
	GeometriesNotInBBox
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInputPointsLength:
		return "invalid input points length"
	case PointNotInBBox:
		return "point not in bbox"
	case GeometriesNotInBBox:
		return "geometries not in bbox"
	default:
		return "unknown error"
	}
}

// Error is returned by every fallible operation in this package.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("cartogram: %s", e.Kind)
	}
	return fmt.Sprintf("cartogram: %s: %s", e.Kind, e.Detail)
}

// Is supports errors.Is against the package-level sentinel errors below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors, one per ErrorKind, for use with errors.Is.
var (
	ErrInvalidInputPointsLength = &Error{Kind: InvalidInputPointsLength}
	ErrPointNotInBBox           = &Error{Kind: PointNotInBBox}
	ErrGeometriesNotInBBox      = &Error{Kind: GeometriesNotInBBox}
)

func newError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}
