/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package spatial

import "github.com/paulmach/orb"

// Pair identifies two distinct features in the same layer whose geometries
// intersect. A < B always holds, so each unordered pair appears once.
type Pair struct {
	A int
	B int
}

// Overlaps reports every intersecting pair among the given geometries. Nil
// geometries never participate. Pair indices refer to positions in geoms.
func Overlaps(geoms []orb.Geometry) []Pair {
	idx := NewIndex(geoms)

	var pairs []Pair
	for i, g := range geoms {
		if g == nil {
			continue
		}
		for _, j := range idx.Search(g.Bound()) {
			// Keep i < j: skips the self-hit and reports each
			// unordered pair from one side only.
			if j <= i {
				continue
			}
			if Intersects(g, geoms[j]) {
				pairs = append(pairs, Pair{A: i, B: j})
			}
		}
	}
	return pairs
}
