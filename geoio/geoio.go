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

// Package geoio reads and writes GeoJSON layers, converting between
// github.com/paulmach/orb's geometry types and this module's own closed
// Geometry tagged union at the I/O boundary.
package geoio

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tobler/bicart"
)

// ReadPoints parses a GeoJSON FeatureCollection whose features are all
// Point geometries, returning their coordinates in feature order.
func ReadPoints(data []byte) ([]cartogram.Coord, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geoio: parsing FeatureCollection: %w", err)
	}
	points := make([]cartogram.Coord, len(fc.Features))
	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("geoio: feature %d is a %T, not a Point", i, f.Geometry)
		}
		points[i] = cartogram.Coord{X: p.X(), Y: p.Y()}
	}
	return points, nil
}

// ReadLayer parses a GeoJSON FeatureCollection into this module's Geometry
// values, alongside each feature's properties in the same order.
func ReadLayer(data []byte) ([]cartogram.Geometry, []map[string]interface{}, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, nil, fmt.Errorf("geoio: parsing FeatureCollection: %w", err)
	}
	geoms := make([]cartogram.Geometry, len(fc.Features))
	props := make([]map[string]interface{}, len(fc.Features))
	for i, f := range fc.Features {
		g, err := fromOrb(f.Geometry)
		if err != nil {
			return nil, nil, fmt.Errorf("geoio: feature %d: %w", i, err)
		}
		geoms[i] = g
		props[i] = map[string]interface{}(f.Properties)
	}
	return geoms, props, nil
}

// WriteLayer encodes geoms (with optional per-feature properties; pass nil
// for none) as a GeoJSON FeatureCollection.
func WriteLayer(geoms []cartogram.Geometry, properties []map[string]interface{}) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for i, g := range geoms {
		og, err := toOrb(g)
		if err != nil {
			return nil, fmt.Errorf("geoio: geometry %d: %w", i, err)
		}
		f := geojson.NewFeature(og)
		if properties != nil && i < len(properties) {
			for k, v := range properties[i] {
				f.Properties[k] = v
			}
		}
		fc.Append(f)
	}
	return fc.MarshalJSON()
}

// fromOrb converts an orb.Geometry into our Geometry. orb has no first-class
// Triangle or Rect variant, so those can only arrive here as Polygon or
// LineString shapes and are kept as KindPolygon/KindLineString rather than
// invented back into KindTriangle/KindRect.
func fromOrb(g orb.Geometry) (cartogram.Geometry, error) {
	switch v := g.(type) {
	case orb.Point:
		return cartogram.Geometry{Kind: cartogram.KindPoint, Point: fromOrbPoint(v)}, nil
	case orb.MultiPoint:
		pts := make([]cartogram.Coord, len(v))
		for i, p := range v {
			pts[i] = fromOrbPoint(p)
		}
		return cartogram.Geometry{Kind: cartogram.KindMultiPoint, MultiPoint: pts}, nil
	case orb.LineString:
		return cartogram.Geometry{Kind: cartogram.KindLineString, LineString: fromOrbLineString(v)}, nil
	case orb.MultiLineString:
		subs := make([]cartogram.Geometry, len(v))
		for i, ls := range v {
			subs[i] = cartogram.Geometry{Kind: cartogram.KindLineString, LineString: fromOrbLineString(ls)}
		}
		return cartogram.Geometry{Kind: cartogram.KindMultiLineString, Multi: subs}, nil
	case orb.Polygon:
		return cartogram.Geometry{Kind: cartogram.KindPolygon, Polygon: fromOrbPolygon(v)}, nil
	case orb.MultiPolygon:
		subs := make([]cartogram.Geometry, len(v))
		for i, poly := range v {
			subs[i] = cartogram.Geometry{Kind: cartogram.KindPolygon, Polygon: fromOrbPolygon(poly)}
		}
		return cartogram.Geometry{Kind: cartogram.KindMultiPolygon, Multi: subs}, nil
	case orb.Collection:
		subs := make([]cartogram.Geometry, len(v))
		for i, sub := range v {
			converted, err := fromOrb(sub)
			if err != nil {
				return cartogram.Geometry{}, err
			}
			subs[i] = converted
		}
		return cartogram.Geometry{Kind: cartogram.KindGeometryCollection, Multi: subs}, nil
	default:
		return cartogram.Geometry{}, fmt.Errorf("unsupported orb geometry type %T", g)
	}
}

func fromOrbPoint(p orb.Point) cartogram.Coord {
	return cartogram.Coord{X: p.X(), Y: p.Y()}
}

func fromOrbLineString(ls orb.LineString) []cartogram.Coord {
	out := make([]cartogram.Coord, len(ls))
	for i, p := range ls {
		out[i] = fromOrbPoint(p)
	}
	return out
}

func fromOrbPolygon(poly orb.Polygon) cartogram.Ring {
	if len(poly) == 0 {
		return cartogram.Ring{}
	}
	ring := cartogram.Ring{Exterior: fromOrbRing(poly[0])}
	if len(poly) > 1 {
		ring.Interiors = make([][]cartogram.Coord, len(poly)-1)
		for i, hole := range poly[1:] {
			ring.Interiors[i] = fromOrbRing(hole)
		}
	}
	return ring
}

func fromOrbRing(r orb.Ring) []cartogram.Coord {
	out := fromOrbLineString(orb.LineString(r))
	// orb closes rings (first point repeated at the end); our Ring is open.
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// toOrb converts our Geometry into an orb.Geometry. Triangle and Rect are
// lossily encoded as Polygon, since orb has no equivalent variants; they
// do not round-trip back to KindTriangle/KindRect via fromOrb.
func toOrb(g cartogram.Geometry) (orb.Geometry, error) {
	switch g.Kind {
	case cartogram.KindPoint:
		return toOrbPoint(g.Point), nil
	case cartogram.KindMultiPoint:
		out := make(orb.MultiPoint, len(g.MultiPoint))
		for i, p := range g.MultiPoint {
			out[i] = toOrbPoint(p)
		}
		return out, nil
	case cartogram.KindLine:
		return orb.LineString{toOrbPoint(g.Line[0]), toOrbPoint(g.Line[1])}, nil
	case cartogram.KindLineString:
		return toOrbLineString(g.LineString), nil
	case cartogram.KindPolygon:
		return toOrbPolygon(g.Polygon), nil
	case cartogram.KindMultiLineString:
		out := make(orb.MultiLineString, len(g.Multi))
		for i, sub := range g.Multi {
			out[i] = toOrbLineString(sub.LineString)
		}
		return out, nil
	case cartogram.KindMultiPolygon:
		out := make(orb.MultiPolygon, len(g.Multi))
		for i, sub := range g.Multi {
			out[i] = toOrbPolygon(sub.Polygon)
		}
		return out, nil
	case cartogram.KindTriangle:
		return toOrbPolygon(cartogram.Ring{Exterior: g.Triangle[:]}), nil
	case cartogram.KindRect:
		min, max := g.Rect[0], g.Rect[1]
		corners := []cartogram.Coord{
			min,
			{X: max.X, Y: min.Y},
			max,
			{X: min.X, Y: max.Y},
		}
		return toOrbPolygon(cartogram.Ring{Exterior: corners}), nil
	case cartogram.KindGeometryCollection:
		out := make(orb.Collection, len(g.Multi))
		var err error
		for i, sub := range g.Multi {
			out[i], err = toOrb(sub)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported Geometry kind %v", g.Kind)
	}
}

func toOrbPoint(c cartogram.Coord) orb.Point {
	return orb.Point{c.X, c.Y}
}

func toOrbLineString(coords []cartogram.Coord) orb.LineString {
	out := make(orb.LineString, len(coords))
	for i, c := range coords {
		out[i] = toOrbPoint(c)
	}
	return out
}

func toOrbRing(coords []cartogram.Coord) orb.Ring {
	ring := make(orb.Ring, 0, len(coords)+1)
	for _, c := range coords {
		ring = append(ring, toOrbPoint(c))
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

func toOrbPolygon(ring cartogram.Ring) orb.Polygon {
	poly := make(orb.Polygon, 0, len(ring.Interiors)+1)
	poly = append(poly, toOrbRing(ring.Exterior))
	for _, hole := range ring.Interiors {
		poly = append(poly, toOrbRing(hole))
	}
	return poly
}
