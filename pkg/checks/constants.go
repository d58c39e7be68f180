/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

// DefaultTolerance is the minimum allowed separation between critical point
// features, in the layer's coordinate reference system units.
const DefaultTolerance = 0.01

// maxSpliceLimits maps closure type identifiers to the maximum splice count
// that closure hardware supports. Lookup is by exact IDENTIFIER match;
// closures with identifiers outside this table are never flagged, because an
// unknown closure type has no defined limit.
var maxSpliceLimits = map[string]int{
	"BE16":            840,
	"flat_dis":        288,
	"OFDC":            96,
	"Budi-S 9-48 HP":  48,
	"POC_UG_1-8HP":    8,
	"Budi-S 49-72 HP": 72,
}

// Cable layer name prefixes, each paired with an OUT_<prefix>Cables.shp and
// OUT_<prefix>CablePieces.shp file-set. The reference check visits all four.
var cableRefPrefixes = []string{"Feeder", "Drop", "PrimDistribution", "Distribution"}

// granularityPrefixes are the cable layers carrying CABLEGRAN/BUNDLEGRAN.
var granularityPrefixes = []string{"Feeder", "Drop", "Distribution", "PrimDistribution"}

// diameterLayers are the cable layers whose DIAMETER values must be non-zero.
var diameterLayers = []string{"DistributionCables", "FeederCables", "PrimDistributionCables"}

// clusterLayer registers one cluster layer together with the attribute used
// to identify its features in overlap reports. Registration is explicit per
// layer rather than inferred from the file name.
type clusterLayer struct {
	// Name is the logical layer name, e.g. "DropClusters".
	Name string

	// IDField is the identifying attribute reported for overlapping
	// features; the positional index is the fallback when absent.
	IDField string
}

// clusterLayers is the fixed set of cluster layers the overlap check scans.
// Cable cluster layers identify features by cable group, the rest by
// aggregation id.
var clusterLayers = []clusterLayer{
	{Name: "DropClusters", IDField: "AGG_ID"},
	{Name: "DistributionClusters", IDField: "AGG_ID"},
	{Name: "DistributionCableClusters", IDField: "CAB_GROUP"},
	{Name: "PrimDistributionClusters", IDField: "AGG_ID"},
	{Name: "PrimDistributionCableClusters", IDField: "CAB_GROUP"},
	{Name: "FeederClusters", IDField: "AGG_ID"},
	{Name: "FeederCableClusters", IDField: "CAB_GROUP"},
}
