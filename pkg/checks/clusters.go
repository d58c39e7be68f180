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

// checkClusterOverlaps finds geometrically overlapping polygons within each
// cluster layer. Clusters partition the service area, so any intersecting
// pair within one layer is a design defect.
func checkClusterOverlaps(ctx context.Context, dir string, opts Options) Result {
	var (
		violations []Detail
		issues     []Issue
	)

	for _, cl := range clusterLayers {
		if err := ctx.Err(); err != nil {
			issues = append(issues, processingIssue(err))
			break
		}

		layer, issue := loadLayer(dir, cl.Name)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}

		// Features without a readable geometry cannot overlap anything;
		// drop them but keep the originals for attribute lookup.
		var (
			geoms    []orb.Geometry
			features []*workspace.Feature
		)
		for i := range layer.Features {
			if g := layer.Features[i].Geometry; g != nil {
				geoms = append(geoms, g)
				features = append(features, &layer.Features[i])
			}
		}

		for _, pair := range spatial.Overlaps(geoms) {
			a := clusterID(features[pair.A], cl.IDField)
			b := clusterID(features[pair.B], cl.IDField)
			violations = append(violations, Detail{
				"layer":    cl.Name,
				"id_field": cl.IDField,
				"id_a":     a,
				"id_b":     b,
				"message":  fmt.Sprintf("%s: clusters %s and %s overlap", layerTitle(cl.Name), a, b),
			})
		}
	}

	failMsg := fmt.Sprintf("Found %s between clusters",
		noun(len(violations), "overlap", "overlaps"))
	return finish(CheckClusterOverlap, failMsg,
		"No overlapping clusters found",
		violations, issues, opts.PreviewLimit)
}

// clusterID resolves the reported identity of a cluster feature, falling back
// to the positional index when the layer lacks the configured ID attribute.
func clusterID(f *workspace.Feature, field string) string {
	if id := f.Attr(field); id != "" {
		return id
	}
	return strconv.Itoa(f.Index)
}
