// Package spatial provides the geometric routines behind the overlap and
// proximity checks: an R-tree index over feature bounding boxes, exact
// intersection tests, and tolerance-based nearest-point queries.
//
// # Overlap detection
//
//	pairs := spatial.Overlaps(geoms)
//
// Builds an index over the given geometries (nil entries are skipped), queries
// it with each geometry's bounding box, and confirms candidate hits with an
// exact intersection test. Each intersecting pair is reported exactly once as
// (i, j) with i < j; a feature never pairs with itself. Cost is O(n·k) where k
// is the average candidate count per query, which keeps large cluster layers
// tractable.
//
// # Proximity queries
//
//	violations := spatial.Nearby(candidates, references, tolerance)
//
// Indexes the reference points, then for each candidate queries the index with
// the candidate's bounding box padded by the tolerance and computes exact
// distances to the returned references. At most one violation is recorded per
// candidate: the first reference found strictly closer than the tolerance.
//
// All coordinates are planar and in the layer's coordinate reference system;
// distances are Euclidean in those units.
package spatial
