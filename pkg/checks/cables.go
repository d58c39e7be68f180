/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"context"
	"fmt"
)

// invalidIDPreviewLimit bounds the unique invalid cable IDs listed per layer
// in reference validation details.
const invalidIDPreviewLimit = 10

// checkCableReferences verifies every cable piece references an existing
// cable. Each cable layer pairs with a piece layer; a piece whose CABLE_ID is
// absent from the cable layer's ID set is orphaned.
func checkCableReferences(_ context.Context, dir string, opts Options) Result {
	var (
		violations []Detail
		issues     []Issue
	)

	for _, prefix := range cableRefPrefixes {
		cables, issue := loadLayer(dir, prefix+"Cables")
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		pieces, issue := loadLayer(dir, prefix+"CablePieces")
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		if issue := requireColumns(cables, "CABLE_ID"); issue != nil {
			issues = append(issues, *issue)
			continue
		}
		if issue := requireColumns(pieces, "CABLE_ID"); issue != nil {
			issues = append(issues, *issue)
			continue
		}

		known := make(map[string]bool, len(cables.Features))
		for i := range cables.Features {
			known[cables.Features[i].Attr("CABLE_ID")] = true
		}

		orphaned := 0
		seen := make(map[string]bool)
		var invalid []string
		for i := range pieces.Features {
			id := pieces.Features[i].Attr("CABLE_ID")
			if known[id] {
				continue
			}
			orphaned++
			if !seen[id] {
				seen[id] = true
				invalid = append(invalid, id)
			}
		}
		if orphaned == 0 {
			continue
		}

		ids, total, truncated := preview(invalid, invalidIDPreviewLimit)
		violations = append(violations, Detail{
			"layer":            prefix + "Cables",
			"orphaned_pieces":  orphaned,
			"invalid_ids":      ids,
			"invalid_id_count": total,
			"truncated":        truncated,
		})
	}

	failMsg := fmt.Sprintf("Found %s with orphaned cable pieces",
		noun(len(violations), "cable layer", "cable layers"))
	return finish(CheckCableReferences, failMsg,
		"All cable pieces reference existing cables",
		violations, issues, opts.PreviewLimit)
}

// checkGranularityFields flags cables whose CABLEGRAN or BUNDLEGRAN carries
// the -1 placeholder left behind by incomplete design runs.
func checkGranularityFields(_ context.Context, dir string, opts Options) Result {
	var (
		violations []Detail
		issues     []Issue
	)

	for _, prefix := range granularityPrefixes {
		layerName := prefix + "Cables"
		layer, issue := loadLayer(dir, layerName)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		if issue := requireColumns(layer, "CABLEGRAN", "BUNDLEGRAN", "CABLE_ID"); issue != nil {
			issues = append(issues, *issue)
			continue
		}

		for i := range layer.Features {
			f := &layer.Features[i]
			cg, cgOK := f.AttrFloat("CABLEGRAN")
			bg, bgOK := f.AttrFloat("BUNDLEGRAN")
			if (cgOK && cg == -1) || (bgOK && bg == -1) {
				violations = append(violations, Detail{
					"layer":      layerName,
					"cable_id":   f.Attr("CABLE_ID"),
					"cablegran":  f.Attr("CABLEGRAN"),
					"bundlegran": f.Attr("BUNDLEGRAN"),
				})
			}
		}
	}

	failMsg := fmt.Sprintf("Found %s with unset granularity fields",
		noun(len(violations), "cable", "cables"))
	return finish(CheckCableGranularity, failMsg,
		"All cables have valid CABLEGRAN and BUNDLEGRAN values",
		violations, issues, opts.PreviewLimit)
}

// validateCableDiameters flags cables with a missing or zero DIAMETER, which
// makes duct occupancy calculations meaningless downstream.
func validateCableDiameters(_ context.Context, dir string, opts Options) Result {
	var (
		violations []Detail
		issues     []Issue
	)

	for _, layerName := range diameterLayers {
		layer, issue := loadLayer(dir, layerName)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		if issue := requireColumns(layer, "DIAMETER"); issue != nil {
			issues = append(issues, *issue)
			continue
		}

		for i := range layer.Features {
			f := &layer.Features[i]
			d, ok := f.AttrFloat("DIAMETER")
			if !f.AttrEmpty("DIAMETER") && (!ok || d != 0) {
				continue
			}
			id := f.Attr("CABLE_ID")
			if id == "" {
				id = fmt.Sprintf("index %d", f.Index)
			}
			violations = append(violations, Detail{
				"layer":    layerName,
				"cable_id": id,
				"diameter": f.Attr("DIAMETER"),
			})
		}
	}

	failMsg := fmt.Sprintf("Found %s with missing or zero diameter",
		noun(len(violations), "cable", "cables"))
	return finish(CheckCableDiameter, failMsg,
		"All cables have a non-zero diameter",
		violations, issues, opts.PreviewLimit)
}
