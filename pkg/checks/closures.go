/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"context"
	"fmt"
)

// checkOSCDuplicates flags duplicated ID values in the Closures layer, which
// represent optical street cabinets.
func checkOSCDuplicates(_ context.Context, dir string, opts Options) Result {
	closures, issue := loadLayer(dir, "Closures")
	if issue != nil {
		return errorResult(CheckOSCDuplicates, *issue)
	}
	if issue := requireColumns(closures, "ID", "IDENTIFIER"); issue != nil {
		return errorResult(CheckOSCDuplicates, *issue)
	}

	counts := make(map[string]int, len(closures.Features))
	order := make([]string, 0, len(closures.Features))
	for i := range closures.Features {
		id := closures.Features[i].Attr("ID")
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	var violations []Detail
	rows := 0
	for _, id := range order {
		if counts[id] < 2 {
			continue
		}
		rows += counts[id]
		detail := Detail{
			"osc_id":          id,
			"duplicate_count": counts[id],
		}
		// Identifiers of the affected closures help locate them in GIS.
		var identifiers []string
		for i := range closures.Features {
			if closures.Features[i].Attr("ID") == id {
				identifiers = append(identifiers, closures.Features[i].Attr("IDENTIFIER"))
			}
		}
		detail["identifiers"] = identifiers
		violations = append(violations, detail)
	}

	if len(violations) == 0 {
		return passedResult(CheckOSCDuplicates, "No duplicated OSC IDs found")
	}
	msg := fmt.Sprintf("Found %s duplicated across %s",
		noun(len(violations), "OSC ID", "OSC IDs"),
		noun(rows, "closure", "closures"))
	return failedResult(CheckOSCDuplicates, msg, violations, opts.PreviewLimit)
}

// validateNonVirtualClosures flags PrimDistribution, Distribution, and Drop
// closures incorrectly marked as virtual. These closure types are physical
// hardware and should never be virtual.
func validateNonVirtualClosures(_ context.Context, dir string, opts Options) Result {
	closures, issue := loadLayer(dir, "Closures")
	if issue != nil {
		return errorResult(CheckNonVirtualClosures, *issue)
	}
	if issue := requireColumns(closures, "LAYER", "VIRTUAL", "EQ_ID"); issue != nil {
		return errorResult(CheckNonVirtualClosures, *issue)
	}

	physical := map[string]bool{
		"PrimDistribution": true,
		"Distribution":     true,
		"Drop":             true,
	}

	var violations []Detail
	for i := range closures.Features {
		f := &closures.Features[i]
		if !physical[f.Attr("LAYER")] {
			continue
		}
		if v, ok := f.AttrFloat("VIRTUAL"); ok && v == 1 {
			violations = append(violations, Detail{
				"eq_id":   f.Attr("EQ_ID"),
				"layer":   f.Attr("LAYER"),
				"virtual": 1,
			})
		}
	}

	if len(violations) == 0 {
		return passedResult(CheckNonVirtualClosures,
			"All PrimDistribution, Distribution, and Drop closures are non-virtual as expected")
	}
	msg := fmt.Sprintf("Found %s incorrectly marked as virtual",
		noun(len(violations), "closure", "closures"))
	return failedResult(CheckNonVirtualClosures, msg, violations, opts.PreviewLimit)
}

// processShapefiles reports feeder cables with empty identifiers and
// non-virtual closures with empty identifiers. It reads only; nothing is
// repaired.
func processShapefiles(_ context.Context, dir string, opts Options) Result {
	var (
		violations []Detail
		issues     []Issue
	)

	feeder, issue := loadLayer(dir, "FeederCables")
	if issue != nil {
		issues = append(issues, *issue)
	} else if issue := requireColumns(feeder, "IDENTIFIER"); issue != nil {
		issues = append(issues, *issue)
	} else {
		for i := range feeder.Features {
			if feeder.Features[i].AttrEmpty("IDENTIFIER") {
				violations = append(violations, Detail{
					"layer":         "FeederCables",
					"feature_index": feeder.Features[i].Index,
					"problem":       "empty IDENTIFIER",
				})
			}
		}
	}

	closures, issue := loadLayer(dir, "Closures")
	if issue != nil {
		issues = append(issues, *issue)
	} else if issue := requireColumns(closures, "IDENTIFIER", "VIRTUAL"); issue != nil {
		issues = append(issues, *issue)
	} else {
		for i := range closures.Features {
			f := &closures.Features[i]
			v, ok := f.AttrFloat("VIRTUAL")
			if ok && v == 0 && f.AttrEmpty("IDENTIFIER") {
				violations = append(violations, Detail{
					"layer":         "Closures",
					"feature_index": f.Index,
					"problem":       "non-virtual closure with empty IDENTIFIER",
				})
			}
		}
	}

	failMsg := fmt.Sprintf("Found %s with empty IDENTIFIER values",
		noun(len(violations), "record", "records"))
	return finish(CheckShapefileProcessing, failMsg,
		"All feeder cables and non-virtual closures have populated IDENTIFIER values",
		violations, issues, opts.PreviewLimit)
}
