/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

const (
	// layerPrefix is the file name prefix the design tool gives every
	// exported layer.
	layerPrefix = "OUT_"

	// layerExt is the shapefile extension of the primary file in a file-set.
	layerExt = ".shp"
)

// LayerNotFoundError indicates the expected layer file-set is absent from the
// workspace directory.
type LayerNotFoundError struct {
	// Layer is the logical layer name that was requested.
	Layer string

	// Path is the file path that was probed.
	Path string
}

// Error implements the error interface.
func (e *LayerNotFoundError) Error() string {
	return fmt.Sprintf("layer %s not found: %s", e.Layer, filepath.Base(e.Path))
}

// LayerPath returns the conventional path of a layer file-set inside a
// workspace directory.
func LayerPath(dir, name string) string {
	return filepath.Join(dir, layerPrefix+name+layerExt)
}

// LayerFileName returns the conventional primary file name for a layer.
func LayerFileName(name string) string {
	return layerPrefix + name + layerExt
}

// Read loads the named layer from the workspace directory. It returns a
// *LayerNotFoundError when the file-set is absent. The attribute schema is
// loaded as-is; callers verify required columns themselves.
func Read(dir, name string) (*Layer, error) {
	path := LayerPath(dir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &LayerNotFoundError{Layer: name, Path: path}
		}
		return nil, fmt.Errorf("stat layer %s: %w", name, err)
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layer %s: %w", name, err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			slog.Warn("failed to close layer reader", "layer", name, "error", cerr)
		}
	}()

	fields := make([]string, 0, len(r.Fields()))
	for _, f := range r.Fields() {
		fields = append(fields, f.String())
	}

	layer := &Layer{
		Name:   name,
		Path:   path,
		Fields: fields,
	}

	for r.Next() {
		row, shape := r.Shape()
		attrs := make(map[string]string, len(fields))
		for i, f := range fields {
			attrs[f] = strings.TrimSpace(r.ReadAttribute(row, i))
		}
		layer.Features = append(layer.Features, Feature{
			Index:    row,
			Geometry: geometryOf(shape),
			attrs:    attrs,
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read layer %s: %w", name, err)
	}

	slog.Debug("layer loaded",
		"layer", name,
		"features", len(layer.Features),
		"fields", len(layer.Fields))

	return layer, nil
}

// geometryOf converts a shapefile shape to its planar geometry. Null and
// unsupported shapes map to nil.
func geometryOf(s shp.Shape) orb.Geometry {
	switch g := s.(type) {
	case *shp.Point:
		return orb.Point{g.X, g.Y}
	case *shp.PointM:
		return orb.Point{g.X, g.Y}
	case *shp.PointZ:
		return orb.Point{g.X, g.Y}
	case *shp.PolyLine:
		return lineGeometry(g.Points, g.Parts)
	case *shp.PolyLineM:
		return lineGeometry(g.Points, g.Parts)
	case *shp.PolyLineZ:
		return lineGeometry(g.Points, g.Parts)
	case *shp.Polygon:
		return polygonGeometry(g.Points, g.Parts)
	case *shp.PolygonM:
		return polygonGeometry(g.Points, g.Parts)
	case *shp.PolygonZ:
		return polygonGeometry(g.Points, g.Parts)
	default:
		return nil
	}
}

// lineGeometry builds a LineString (single part) or MultiLineString from the
// shapefile point array and part offsets.
func lineGeometry(points []shp.Point, parts []int32) orb.Geometry {
	split := splitParts(points, parts)
	if len(split) == 0 {
		return nil
	}
	if len(split) == 1 {
		return orb.LineString(split[0])
	}
	ml := make(orb.MultiLineString, 0, len(split))
	for _, part := range split {
		ml = append(ml, orb.LineString(part))
	}
	return ml
}

// polygonGeometry builds a Polygon from the shapefile point array and part
// offsets. Each part becomes one ring; shapefile rings arrive closed.
func polygonGeometry(points []shp.Point, parts []int32) orb.Geometry {
	split := splitParts(points, parts)
	if len(split) == 0 {
		return nil
	}
	poly := make(orb.Polygon, 0, len(split))
	for _, part := range split {
		poly = append(poly, orb.Ring(part))
	}
	return poly
}

func splitParts(points []shp.Point, parts []int32) [][]orb.Point {
	if len(points) == 0 {
		return nil
	}
	if len(parts) == 0 {
		parts = []int32{0}
	}
	out := make([][]orb.Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		// Part offsets in malformed files can point past the point array.
		if end > int32(len(points)) {
			end = int32(len(points))
		}
		if start < 0 || int(start) >= len(points) || end <= start {
			continue
		}
		part := make([]orb.Point, 0, end-start)
		for _, p := range points[start:end] {
			part = append(part, orb.Point{p.X, p.Y})
		}
		out = append(out, part)
	}
	return out
}
