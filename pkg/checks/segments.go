/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"context"
	"fmt"
)

// checkGISToolID flags AERIAL and BURIED segments that carry a GISTOOL_ID.
// Those segment types are created by the designer, not imported from the GIS
// tool, so a populated GISTOOL_ID means the segment was mis-sourced.
func checkGISToolID(_ context.Context, dir string, opts Options) Result {
	segments, issue := loadLayer(dir, "UsedSegments")
	if issue != nil {
		return errorResult(CheckGISToolID, *issue)
	}
	if issue := requireColumns(segments, "TYPE", "GISTOOL_ID", "ID"); issue != nil {
		return errorResult(CheckGISToolID, *issue)
	}

	var violations []Detail
	for i := range segments.Features {
		f := &segments.Features[i]
		t := f.Attr("TYPE")
		if t != "AERIAL" && t != "BURIED" {
			continue
		}
		if f.AttrEmpty("GISTOOL_ID") {
			continue
		}
		violations = append(violations, Detail{
			"id":         f.Attr("ID"),
			"type":       t,
			"gistool_id": f.Attr("GISTOOL_ID"),
		})
	}

	if len(violations) == 0 {
		return passedResult(CheckGISToolID,
			"No AERIAL or BURIED segments carry a GISTOOL_ID")
	}
	msg := fmt.Sprintf("Found %s with an unexpected GISTOOL_ID",
		noun(len(violations), "segment", "segments"))
	return failedResult(CheckGISToolID, msg, violations, opts.PreviewLimit)
}
