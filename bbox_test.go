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

import "testing"

func TestBBoxContains(t *testing.T) {
	b := BBox{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}
	tests := []struct {
		name string
		p    Coord
		want bool
	}{
		{"interior", Coord{X: 5, Y: 5}, true},
		{"on west edge", Coord{X: 0, Y: 5}, true},
		{"on corner", Coord{X: 10, Y: 10}, true},
		{"outside west", Coord{X: -1, Y: 5}, false},
		{"outside north", Coord{X: 5, Y: 11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBBoxContainsBBox(t *testing.T) {
	outer := BBox{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}
	inner := BBox{Xmin: 1, Ymin: 1, Xmax: 9, Ymax: 9}
	if !outer.ContainsBBox(inner) {
		t.Errorf("expected outer to contain inner")
	}
	if !outer.ContainsBBox(outer) {
		t.Errorf("expected a bbox to contain itself")
	}
	overlapping := BBox{Xmin: 5, Ymin: 5, Xmax: 15, Ymax: 15}
	if outer.ContainsBBox(overlapping) {
		t.Errorf("expected outer not to contain an overlapping-but-not-enclosed bbox")
	}
}

func TestBBoxFromGeometries(t *testing.T) {
	geoms := []Geometry{
		{Kind: KindPoint, Point: Coord{X: 0, Y: 0}},
		{Kind: KindLineString, LineString: []Coord{{X: 5, Y: -2}, {X: 8, Y: 4}}},
		{
			Kind: KindMultiPolygon,
			Multi: []Geometry{
				{Kind: KindPolygon, Polygon: Ring{Exterior: []Coord{{X: -3, Y: 1}, {X: -1, Y: 6}, {X: 2, Y: 2}}}},
			},
		},
	}
	got := BBoxFromGeometries(geoms)
	want := BBox{Xmin: -3, Ymin: -2, Xmax: 8, Ymax: 6}
	if got != want {
		t.Errorf("BBoxFromGeometries = %+v, want %+v", got, want)
	}
}
