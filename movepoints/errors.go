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

package movepoints

import "errors"

var (
	// ErrInvalidDurationsLength is returned when source points and duration
	// measurements have different lengths.
	ErrInvalidDurationsLength = errors.New("movepoints: source points and duration measurements must have the same length")
	// ErrNoReferencePoint is returned when no duration of exactly 0 is
	// present to anchor the movement.
	ErrNoReferencePoint = errors.New("movepoints: no reference point found (no duration equal to 0)")
	// ErrDurationMatrixNotSquare is returned when a multipolar duration
	// matrix has a row whose length differs from the matrix dimension.
	ErrDurationMatrixNotSquare = errors.New("movepoints: duration matrix is not square")
	// ErrInvalidDurationsDimensions is returned when the duration matrix
	// dimension does not match the number of reference points.
	ErrInvalidDurationsDimensions = errors.New("movepoints: duration matrix dimensions must match the number of reference points")
)
