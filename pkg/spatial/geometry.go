/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package spatial

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// segment is one directed edge of a line string or ring.
type segment struct {
	a, b orb.Point
}

// Intersects reports whether two geometries share at least one point. The
// bounding boxes are compared first; the exact tests below only run on
// bbox-overlapping geometries.
func Intersects(a, b orb.Geometry) bool {
	if a == nil || b == nil {
		return false
	}
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}

	if p, ok := a.(orb.Point); ok {
		return containsPoint(b, p)
	}
	if p, ok := b.(orb.Point); ok {
		return containsPoint(a, p)
	}

	// Any edge crossing means intersection.
	sa := segmentsOf(a)
	sb := segmentsOf(b)
	for _, s := range sa {
		for _, t := range sb {
			if segmentsIntersect(s.a, s.b, t.a, t.b) {
				return true
			}
		}
	}

	// No edge crossing: one geometry may still sit entirely inside the
	// other's interior. A single vertex test suffices in that case.
	if p, ok := firstVertex(a); ok && interiorContains(b, p) {
		return true
	}
	if p, ok := firstVertex(b); ok && interiorContains(a, p) {
		return true
	}
	return false
}

// containsPoint reports whether the geometry contains the point, boundary
// included.
func containsPoint(g orb.Geometry, p orb.Point) bool {
	switch t := g.(type) {
	case orb.Point:
		return t.Equal(p)
	case orb.MultiPoint:
		for _, q := range t {
			if q.Equal(p) {
				return true
			}
		}
		return false
	case orb.LineString:
		return pointOnLine(t, p)
	case orb.MultiLineString:
		for _, ls := range t {
			if pointOnLine(ls, p) {
				return true
			}
		}
		return false
	case orb.Ring:
		return planar.RingContains(t, p)
	case orb.Polygon:
		if planar.PolygonContains(t, p) {
			return true
		}
		return pointOnBoundary(t, p)
	case orb.MultiPolygon:
		for _, poly := range t {
			if containsPoint(poly, p) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// interiorContains reports whether the point lies inside an areal geometry.
// Non-areal geometries have no interior a disjoint-edge geometry could hide
// in, so they report false.
func interiorContains(g orb.Geometry, p orb.Point) bool {
	switch t := g.(type) {
	case orb.Ring:
		return planar.RingContains(t, p)
	case orb.Polygon:
		return planar.PolygonContains(t, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(t, p)
	default:
		return false
	}
}

func pointOnLine(ls orb.LineString, p orb.Point) bool {
	for i := 1; i < len(ls); i++ {
		if onSegment(ls[i-1], ls[i], p) {
			return true
		}
	}
	return false
}

func pointOnBoundary(poly orb.Polygon, p orb.Point) bool {
	for _, ring := range poly {
		for i := 1; i < len(ring); i++ {
			if onSegment(ring[i-1], ring[i], p) {
				return true
			}
		}
	}
	return false
}

// firstVertex returns any vertex of the geometry, used for containment probes.
func firstVertex(g orb.Geometry) (orb.Point, bool) {
	switch t := g.(type) {
	case orb.Point:
		return t, true
	case orb.MultiPoint:
		if len(t) > 0 {
			return t[0], true
		}
	case orb.LineString:
		if len(t) > 0 {
			return t[0], true
		}
	case orb.MultiLineString:
		for _, ls := range t {
			if len(ls) > 0 {
				return ls[0], true
			}
		}
	case orb.Ring:
		if len(t) > 0 {
			return t[0], true
		}
	case orb.Polygon:
		for _, ring := range t {
			if len(ring) > 0 {
				return ring[0], true
			}
		}
	case orb.MultiPolygon:
		for _, poly := range t {
			if p, ok := firstVertex(poly); ok {
				return p, true
			}
		}
	}
	return orb.Point{}, false
}

// segmentsOf flattens a geometry into its edges. Points yield none.
func segmentsOf(g orb.Geometry) []segment {
	var segs []segment
	appendLine := func(pts []orb.Point) {
		for i := 1; i < len(pts); i++ {
			segs = append(segs, segment{a: pts[i-1], b: pts[i]})
		}
	}
	switch t := g.(type) {
	case orb.LineString:
		appendLine(t)
	case orb.MultiLineString:
		for _, ls := range t {
			appendLine(ls)
		}
	case orb.Ring:
		appendLine(t)
	case orb.Polygon:
		for _, ring := range t {
			appendLine(ring)
		}
	case orb.MultiPolygon:
		for _, poly := range t {
			for _, ring := range poly {
				appendLine(ring)
			}
		}
	}
	return segs
}

// cross returns the z-component of (q-p) x (r-p). Zero means collinear.
func cross(p, q, r orb.Point) float64 {
	return (q[0]-p[0])*(r[1]-p[1]) - (q[1]-p[1])*(r[0]-p[0])
}

// onSegment reports whether point r lies on the closed segment pq.
func onSegment(p, q, r orb.Point) bool {
	if cross(p, q, r) != 0 {
		return false
	}
	return min(p[0], q[0]) <= r[0] && r[0] <= max(p[0], q[0]) &&
		min(p[1], q[1]) <= r[1] && r[1] <= max(p[1], q[1])
}

// segmentsIntersect reports whether closed segments ab and cd share a point,
// including touching endpoints and collinear overlap.
func segmentsIntersect(a, b, c, d orb.Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear or endpoint-touching cases.
	if d1 == 0 && onSegment(c, d, a) {
		return true
	}
	if d2 == 0 && onSegment(c, d, b) {
		return true
	}
	if d3 == 0 && onSegment(a, b, c) {
		return true
	}
	if d4 == 0 && onSegment(a, b, d) {
		return true
	}
	return false
}
