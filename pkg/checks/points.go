/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/fiberforge/fibercheck/pkg/spatial"
	"github.com/fiberforge/fibercheck/pkg/workspace"
)

// validatePointLocations enforces minimum separation between critical point
// features: the feeder point must not coincide with the primary distribution
// point, and no distribution point may sit within tolerance of any primary
// distribution point. Empty layers pass; a design without distribution
// points has nothing to violate. Missing layers are an error.
func validatePointLocations(_ context.Context, dir string, opts Options) Result {
	var (
		violations []Detail
		issues     []Issue
	)

	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	feeder, issue := loadLayer(dir, "FeederPoints")
	if issue != nil {
		issues = append(issues, *issue)
	}
	primary, issue := loadLayer(dir, "PrimDistributionPoints")
	if issue != nil {
		issues = append(issues, *issue)
	}
	distribution, issue := loadLayer(dir, "DistributionPoints")
	if issue != nil {
		issues = append(issues, *issue)
	}

	if feeder != nil && primary != nil && !feeder.Empty() && !primary.Empty() {
		fp, fok := feeder.Features[0].Point()
		pp, pok := primary.Features[0].Point()
		if fok && pok {
			if d := spatial.Distance(fp, pp); d < tolerance {
				violations = append(violations, Detail{
					"rule":      "feeder_primary_separation",
					"distance":  d,
					"tolerance": tolerance,
					"feeder":    coords(fp),
					"primary":   coords(pp),
				})
			}
		}
	}

	if distribution != nil && primary != nil && !distribution.Empty() && !primary.Empty() {
		candidates, candFeatures := layerPoints(distribution)
		references, refFeatures := layerPoints(primary)
		for _, v := range spatial.Nearby(candidates, references, tolerance) {
			violations = append(violations, Detail{
				"rule":         "distribution_primary_separation",
				"distance":     v.Distance,
				"tolerance":    tolerance,
				"distribution": pointID(candFeatures[v.Candidate]),
				"primary":      pointID(refFeatures[v.Reference]),
				"location":     coords(candidates[v.Candidate]),
			})
		}
	}

	failMsg := fmt.Sprintf("Found %s violating minimum point separation",
		noun(len(violations), "location", "locations"))
	return finish(CheckPointLocation, failMsg,
		"All critical points respect the minimum separation",
		violations, issues, opts.PreviewLimit)
}

// layerPoints extracts the point geometries of a layer, keeping the source
// features aligned by position for attribute lookup.
func layerPoints(layer *workspace.Layer) ([]orb.Point, []*workspace.Feature) {
	points := make([]orb.Point, 0, len(layer.Features))
	features := make([]*workspace.Feature, 0, len(layer.Features))
	for i := range layer.Features {
		if p, ok := layer.Features[i].Point(); ok {
			points = append(points, p)
			features = append(features, &layer.Features[i])
		}
	}
	return points, features
}

// pointID resolves the reported identity of a point feature.
func pointID(f *workspace.Feature) string {
	if id := f.Attr("ID"); id != "" {
		return id
	}
	return strconv.Itoa(f.Index)
}

// coords renders a point as a {x, y} pair for violation details.
func coords(p orb.Point) map[string]float64 {
	return map[string]float64{"x": p.X(), "y": p.Y()}
}
