/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"context"
	"fmt"
)

// reportSpliceCounts compares the splice count of every closure against the
// hardware limit for its closure type. Splices join to closures by the
// closure ID; closure types without a registered limit are never flagged.
func reportSpliceCounts(_ context.Context, dir string, opts Options) Result {
	closures, issue := loadLayer(dir, "Closures")
	if issue != nil {
		return errorResult(CheckSpliceCount, *issue)
	}
	if issue := requireColumns(closures, "ID", "IDENTIFIER"); issue != nil {
		return errorResult(CheckSpliceCount, *issue)
	}
	splices, issue := loadLayer(dir, "Splices")
	if issue != nil {
		return errorResult(CheckSpliceCount, *issue)
	}
	if issue := requireColumns(splices, "ID"); issue != nil {
		return errorResult(CheckSpliceCount, *issue)
	}

	counts := make(map[string]int, len(closures.Features))
	for i := range splices.Features {
		counts[splices.Features[i].Attr("ID")]++
	}

	var violations []Detail
	for i := range closures.Features {
		f := &closures.Features[i]
		limit, ok := maxSpliceLimits[f.Attr("IDENTIFIER")]
		if !ok {
			continue
		}
		n := counts[f.Attr("ID")]
		if n > limit {
			violations = append(violations, Detail{
				"identifier":   f.Attr("IDENTIFIER"),
				"closure_id":   f.Attr("ID"),
				"splice_count": n,
				"max_limit":    limit,
			})
		}
	}

	if len(violations) == 0 {
		return passedResult(CheckSpliceCount,
			"All closures are within their splice limits")
	}
	msg := fmt.Sprintf("Found %s exceeding the splice limit",
		noun(len(violations), "closure", "closures"))
	return failedResult(CheckSpliceCount, msg, violations, opts.PreviewLimit)
}
