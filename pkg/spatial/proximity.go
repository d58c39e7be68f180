/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package spatial

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Violation records a candidate point found closer than the tolerance to a
// reference point. Indices refer to positions in the slices given to Nearby.
type Violation struct {
	Candidate int
	Reference int
	Distance  float64
}

// Distance returns the planar Euclidean distance between two points.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Nearby reports, for each candidate, the first reference point strictly
// closer than tolerance. At most one violation is recorded per candidate even
// when several references violate it. The reference set is indexed once; each
// candidate queries with its bounding box padded by the tolerance so that
// near-but-not-overlapping references are not missed.
func Nearby(candidates, references []orb.Point, tolerance float64) []Violation {
	if len(candidates) == 0 || len(references) == 0 {
		return nil
	}

	geoms := make([]orb.Geometry, len(references))
	for i, p := range references {
		geoms[i] = p
	}
	idx := NewIndex(geoms)

	var violations []Violation
	for ci, c := range candidates {
		for _, ri := range idx.Search(pad(c.Bound(), tolerance)) {
			d := planar.Distance(c, references[ri])
			if d < tolerance {
				violations = append(violations, Violation{
					Candidate: ci,
					Reference: ri,
					Distance:  d,
				})
				break // first match wins
			}
		}
	}
	return violations
}
