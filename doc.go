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

// Package cartogram implements Waldo Tobler's bidimensional regression to
// build distance cartograms.
//
// What:
//
//   - Given homologous source and image point sets, Grid fits a smooth,
//     continuous 2D deformation field on a relaxed quadrilateral lattice.
//   - GetInterpPoint evaluates the field at an arbitrary source-plane point.
//   - InterpolateLayer warps an entire geometry collection through the field.
//   - Mae, RMSEInterpImage, RMSEInterpSource, RSquared, and
//     DeformationStrength report fit quality.
//
// Why:
//
//   - Distance cartograms make travel-time or cost surfaces legible by
//     redrawing a background map so that distances between places match
//     perceived or measured distances rather than straight-line ones.
//
// Errors:
//
//   - ErrInvalidInputPointsLength: source and image slices differ in length,
//     or either is empty.
//   - ErrPointNotInBBox: a point-interpolation query falls outside the
//     grid's covered zone.
//   - ErrGeometriesNotInBBox: a geometry collection's bounding box is not
//     contained in the grid's covered zone.
//
// The package is single-threaded and deterministic during construction; a
// *Grid is immutable once built and safe for concurrent reads.
package cartogram
