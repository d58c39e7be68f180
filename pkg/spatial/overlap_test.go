/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package spatial

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapsReportsEachPairOnce(t *testing.T) {
	geoms := []orb.Geometry{
		rect(0, 0, 2, 2),
		rect(1, 1, 3, 3),
		rect(10, 10, 11, 11),
	}

	pairs := Overlaps(geoms)

	require.Len(t, pairs, 1)
	assert.Equal(t, Pair{A: 0, B: 1}, pairs[0])
}

func TestOverlapsOrdering(t *testing.T) {
	// Three mutually overlapping squares yield three ordered pairs.
	geoms := []orb.Geometry{
		rect(0, 0, 3, 3),
		rect(1, 1, 4, 4),
		rect(2, 2, 5, 5),
	}

	pairs := Overlaps(geoms)

	require.Len(t, pairs, 3)
	for _, p := range pairs {
		assert.Less(t, p.A, p.B)
	}
	assert.ElementsMatch(t, []Pair{{0, 1}, {0, 2}, {1, 2}}, pairs)
}

func TestOverlapsSkipsNilGeometries(t *testing.T) {
	geoms := []orb.Geometry{
		rect(0, 0, 2, 2),
		nil,
		rect(1, 1, 3, 3),
	}

	pairs := Overlaps(geoms)

	require.Len(t, pairs, 1)
	// Indices still refer to the original slice positions.
	assert.Equal(t, Pair{A: 0, B: 2}, pairs[0])
}

func TestOverlapsEmpty(t *testing.T) {
	assert.Empty(t, Overlaps(nil))
	assert.Empty(t, Overlaps([]orb.Geometry{rect(0, 0, 1, 1)}))
}

func TestIndexSearch(t *testing.T) {
	geoms := []orb.Geometry{
		rect(0, 0, 1, 1),
		rect(5, 5, 6, 6),
		nil,
	}
	idx := NewIndex(geoms)

	assert.Equal(t, 2, idx.Len())

	hits := idx.Search(rect(0.5, 0.5, 0.6, 0.6).Bound())
	assert.Equal(t, []int{0}, hits)

	hits = idx.Search(orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{10, 10}})
	assert.ElementsMatch(t, []int{0, 1}, hits)
}
