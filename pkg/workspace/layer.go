/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package workspace

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Layer is an ordered collection of features read from one shapefile file-set.
// All features share the same attribute schema (the .dbf column list).
type Layer struct {
	// Name is the logical layer name, e.g. "Closures".
	Name string

	// Path is the resolved .shp file path the layer was read from.
	Path string

	// Fields holds the attribute column names in .dbf order.
	Fields []string

	// Features holds the records in file order.
	Features []Feature
}

// Feature is one geometry plus attribute record within a layer.
type Feature struct {
	// Index is the zero-based position of the feature in the layer.
	Index int

	// Geometry is the feature's planar geometry, or nil for null shapes.
	Geometry orb.Geometry

	attrs map[string]string
}

// HasField reports whether the layer schema contains the named column.
func (l *Layer) HasField(name string) bool {
	for _, f := range l.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// MissingFields returns the subset of names absent from the layer schema,
// preserving the requested order.
func (l *Layer) MissingFields(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !l.HasField(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Empty reports whether the layer contains no features.
func (l *Layer) Empty() bool {
	return len(l.Features) == 0
}

// Attr returns the trimmed attribute value for the named column.
// Absent columns and null values both return "".
func (f *Feature) Attr(name string) string {
	return f.attrs[name]
}

// AttrEmpty reports whether the named attribute is null or the empty string.
func (f *Feature) AttrEmpty(name string) bool {
	return f.attrs[name] == ""
}

// AttrFloat parses the named attribute as a float. The second return value is
// false when the attribute is empty, absent, or not numeric.
func (f *Feature) AttrFloat(name string) (float64, bool) {
	s := f.attrs[name]
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Point returns the feature geometry as a point. The second return value is
// false for null or non-point geometries.
func (f *Feature) Point() (orb.Point, bool) {
	p, ok := f.Geometry.(orb.Point)
	return p, ok
}
