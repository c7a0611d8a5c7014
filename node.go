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

// Node is one lattice point. (I, J) is its row/column index; I grows
// downward (north to south), J eastward. Source is fixed at construction;
// Interp is the unknown the solver iterates on, initialized to Source.
// Weight counts the source points whose containing cell has this node as
// a corner; zero means the node is free and only moved by smoothing.
type Node struct {
	I, J   int
	Source Coord
	Interp Coord
	Weight float64
}
