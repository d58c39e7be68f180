/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package spatial

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// Index is an in-memory R-tree over geometry bounding boxes, keyed by the
// geometry's position in the source slice. Queries are sub-linear in the
// number of indexed geometries.
type Index struct {
	tree rtree.RTreeG[int]
}

// NewIndex builds an index over the given geometries. Nil geometries are
// skipped but keep their positional key, so query results always refer back
// to positions in the original slice.
func NewIndex(geoms []orb.Geometry) *Index {
	x := &Index{}
	for i, g := range geoms {
		if g == nil {
			continue
		}
		x.insert(i, g.Bound())
	}
	return x
}

func (x *Index) insert(i int, b orb.Bound) {
	x.tree.Insert(
		[2]float64{b.Min[0], b.Min[1]},
		[2]float64{b.Max[0], b.Max[1]},
		i,
	)
}

// Search returns the positions of all indexed geometries whose bounding box
// intersects b. Hits are candidates only; callers confirm with an exact test.
func (x *Index) Search(b orb.Bound) []int {
	var hits []int
	x.tree.Search(
		[2]float64{b.Min[0], b.Min[1]},
		[2]float64{b.Max[0], b.Max[1]},
		func(_, _ [2]float64, i int) bool {
			hits = append(hits, i)
			return true
		},
	)
	return hits
}

// Len returns the number of indexed geometries.
func (x *Index) Len() int {
	return x.tree.Len()
}

// pad grows a bound by d in every direction.
func pad(b orb.Bound, d float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.Min[0] - d, b.Min[1] - d},
		Max: orb.Point{b.Max[0] + d, b.Max[1] + d},
	}
}
