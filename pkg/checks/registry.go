/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"context"
	"errors"

	"github.com/fiberforge/fibercheck/pkg/workspace"
)

// Display names of the supported checks. These are the dispatch keys the
// callers (CLI flags, API request payloads) select checks by.
const (
	CheckOSCDuplicates       = "OSC Duplicates Check"
	CheckClusterOverlap      = "Cluster Overlap Check"
	CheckCableGranularity    = "Cable Granularity Check"
	CheckNonVirtualClosures  = "Non-virtual Closure Validation"
	CheckPointLocation       = "Point Location Validation"
	CheckCableDiameter       = "Cable Diameter Validation"
	CheckCableReferences     = "Cable Reference Validation"
	CheckShapefileProcessing = "Shapefile Processing"
	CheckGISToolID           = "GISTOOL_ID Validation"
	CheckSpliceCount         = "Splice Count Report"
)

// Options carries the per-run parameters a check may consult. Values are
// compiled-in defaults; they are not configurable per request.
type Options struct {
	// Tolerance is the minimum allowed separation between critical point
	// features, in the layer CRS units.
	Tolerance float64

	// PreviewLimit bounds the violation entries kept in a failed result.
	PreviewLimit int
}

// CheckFunc is the uniform contract of every check: read what it needs from
// the workspace directory, never mutate it, and always return a Result.
type CheckFunc func(ctx context.Context, dir string, opts Options) Result

// registry maps display names to check functions.
var registry = map[string]CheckFunc{
	CheckOSCDuplicates:       checkOSCDuplicates,
	CheckClusterOverlap:      checkClusterOverlaps,
	CheckCableGranularity:    checkGranularityFields,
	CheckNonVirtualClosures:  validateNonVirtualClosures,
	CheckPointLocation:       validatePointLocations,
	CheckCableDiameter:       validateCableDiameters,
	CheckCableReferences:     checkCableReferences,
	CheckShapefileProcessing: processShapefiles,
	CheckGISToolID:           checkGISToolID,
	CheckSpliceCount:         reportSpliceCounts,
}

// DefaultChecks returns the full check list in its default execution order.
func DefaultChecks() []string {
	return []string{
		CheckOSCDuplicates,
		CheckClusterOverlap,
		CheckCableGranularity,
		CheckNonVirtualClosures,
		CheckPointLocation,
		CheckCableDiameter,
		CheckCableReferences,
		CheckShapefileProcessing,
		CheckGISToolID,
		CheckSpliceCount,
	}
}

// IsKnown reports whether a display name maps to a registered check.
func IsKnown(name string) bool {
	_, ok := registry[name]
	return ok
}

// loadLayer reads a layer and classifies failures as issues so checks can
// accumulate them instead of aborting.
func loadLayer(dir, name string) (*workspace.Layer, *Issue) {
	layer, err := workspace.Read(dir, name)
	if err != nil {
		var nf *workspace.LayerNotFoundError
		if errors.As(err, &nf) {
			issue := fileNotFoundIssue(nf)
			return nil, &issue
		}
		issue := processingIssue(err)
		return nil, &issue
	}
	return layer, nil
}

// requireColumns verifies a layer schema holds every named column, returning
// a missing-column issue otherwise.
func requireColumns(layer *workspace.Layer, cols ...string) *Issue {
	if missing := layer.MissingFields(cols...); len(missing) > 0 {
		issue := missingColumnIssue(layer, missing)
		return &issue
	}
	return nil
}
