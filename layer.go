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
	"runtime"
	"sync"
)

// InterpolateLayer warps every geometry in geoms through the converged
// deformation field, preserving variant structure (polygon ring lengths,
// multi-part membership, and so on). It fails with GeometriesNotInBBox if
// the combined bounding box of geoms is not contained in g.BBox().
func (g *Grid) InterpolateLayer(geoms []Geometry) ([]Geometry, error) {
	if !g.BBox().ContainsBBox(BBoxFromGeometries(geoms)) {
		return nil, newError(GeometriesNotInBBox, "")
	}
	out := make([]Geometry, len(geoms))
	for i, geom := range geoms {
		out[i] = geom.mapVertices(g.nodes.interpolatePoint)
	}
	return out, nil
}

// InterpolateLayerParallel is the same transform as InterpolateLayer,
// fanned out over GOMAXPROCS goroutines across the outer slice of
// geometries. It must and does produce results identical to
// InterpolateLayer: each geometry's transform is a pure function of g's
// read-only converged NodeSet.
func (g *Grid) InterpolateLayerParallel(geoms []Geometry) ([]Geometry, error) {
	if !g.BBox().ContainsBBox(BBoxFromGeometries(geoms)) {
		return nil, newError(GeometriesNotInBBox, "")
	}
	out := make([]Geometry, len(geoms))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(geoms) {
		workers = len(geoms)
	}
	if workers <= 1 {
		for i, geom := range geoms {
			out[i] = geom.mapVertices(g.nodes.interpolatePoint)
		}
		return out, nil
	}

	var wg sync.WaitGroup
	chunk := (len(geoms) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(geoms) {
			break
		}
		if end > len(geoms) {
			end = len(geoms)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = geoms[i].mapVertices(g.nodes.interpolatePoint)
			}
		}(start, end)
	}
	wg.Wait()
	return out, nil
}
