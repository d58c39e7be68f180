/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package workspace

import (
	"errors"
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestLayer(t *testing.T, dir, name string, shapeType shp.ShapeType, fields []shp.Field, shapes []shp.Shape, attrs [][]any) {
	t.Helper()

	w, err := shp.Create(filepath.Join(dir, LayerFileName(name)), shapeType)
	require.NoError(t, err)
	w.SetFields(fields)
	for i, s := range shapes {
		row := w.Write(s)
		for j, v := range attrs[i] {
			require.NoError(t, w.WriteAttribute(int(row), j, v))
		}
	}
	w.Close()
}

func TestLayerPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/ws", "OUT_Closures.shp"), LayerPath("/ws", "Closures"))
	assert.Equal(t, "OUT_FeederCables.shp", LayerFileName("FeederCables"))
}

func TestReadMissingLayer(t *testing.T) {
	_, err := Read(t.TempDir(), "Closures")

	var nf *LayerNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Closures", nf.Layer)
	assert.Contains(t, nf.Error(), "OUT_Closures.shp")
}

func TestReadPointLayer(t *testing.T) {
	dir := t.TempDir()
	writeTestLayer(t, dir, "Closures", shp.POINT,
		[]shp.Field{shp.StringField("ID", 32), shp.NumberField("VIRTUAL", 4)},
		[]shp.Shape{&shp.Point{X: 1, Y: 2}, &shp.Point{X: 3, Y: 4}},
		[][]any{{"C1", 0}, {"C2", 1}})

	layer, err := Read(dir, "Closures")
	require.NoError(t, err)

	assert.Equal(t, "Closures", layer.Name)
	assert.False(t, layer.Empty())
	require.Len(t, layer.Features, 2)

	assert.True(t, layer.HasField("ID"))
	assert.True(t, layer.HasField("VIRTUAL"))
	assert.Equal(t, []string{"MISSING"}, layer.MissingFields("ID", "MISSING"))

	f := &layer.Features[0]
	assert.Equal(t, 0, f.Index)
	assert.Equal(t, "C1", f.Attr("ID"))
	p, ok := f.Point()
	require.True(t, ok)
	assert.Equal(t, orb.Point{1, 2}, p)

	v, ok := layer.Features[1].AttrFloat("VIRTUAL")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

// DBF pads string attributes with spaces; a padded blank must read as empty,
// matching a true null.
func TestReadTrimsAttributes(t *testing.T) {
	dir := t.TempDir()
	writeTestLayer(t, dir, "Closures", shp.POINT,
		[]shp.Field{shp.StringField("IDENTIFIER", 16)},
		[]shp.Shape{&shp.Point{X: 0, Y: 0}, &shp.Point{X: 1, Y: 1}},
		[][]any{{"  "}, {" BE16 "}})

	layer, err := Read(dir, "Closures")
	require.NoError(t, err)

	assert.True(t, layer.Features[0].AttrEmpty("IDENTIFIER"))
	assert.Equal(t, "", layer.Features[0].Attr("IDENTIFIER"))
	assert.Equal(t, "BE16", layer.Features[1].Attr("IDENTIFIER"))
}

func TestReadPolylineLayer(t *testing.T) {
	dir := t.TempDir()
	line := shp.NewPolyLine([][]shp.Point{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}})
	writeTestLayer(t, dir, "FeederCables", shp.POLYLINE,
		[]shp.Field{shp.StringField("CABLE_ID", 32)},
		[]shp.Shape{line},
		[][]any{{"F1"}})

	layer, err := Read(dir, "FeederCables")
	require.NoError(t, err)
	require.Len(t, layer.Features, 1)

	ls, ok := layer.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, ls, 3)
	assert.Equal(t, orb.Point{1, 1}, ls[2])
}

func TestReadPolygonLayer(t *testing.T) {
	dir := t.TempDir()
	ring := []shp.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0}}
	poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{ring}))
	writeTestLayer(t, dir, "DropClusters", shp.POLYGON,
		[]shp.Field{shp.StringField("AGG_ID", 32)},
		[]shp.Shape{&poly},
		[][]any{{"A1"}})

	layer, err := Read(dir, "DropClusters")
	require.NoError(t, err)
	require.Len(t, layer.Features, 1)

	pg, ok := layer.Features[0].Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, pg, 1)
	assert.Len(t, pg[0], 5)
}

func TestAttrFloatInvalid(t *testing.T) {
	f := Feature{attrs: map[string]string{"X": "abc", "Y": ""}}

	_, ok := f.AttrFloat("X")
	assert.False(t, ok)
	_, ok = f.AttrFloat("Y")
	assert.False(t, ok)
	_, ok = f.AttrFloat("ABSENT")
	assert.False(t, ok)
}

func TestLayerNotFoundErrorIs(t *testing.T) {
	err := error(&LayerNotFoundError{Layer: "Splices", Path: "/ws/OUT_Splices.shp"})
	wrapped := errors.Join(err)

	var nf *LayerNotFoundError
	assert.True(t, errors.As(wrapped, &nf))
}

func TestSplitPartsClampsOffsets(t *testing.T) {
	points := []shp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	// A part offset past the point array truncates the part.
	split := splitParts(points, []int32{0, 10})
	require.Len(t, split, 1)
	assert.Len(t, split[0], 3)

	// Negative offsets skip the part, later parts survive.
	split = splitParts(points, []int32{-2, 1})
	require.Len(t, split, 1)
	assert.Equal(t, orb.Point{1, 0}, split[0][0])

	assert.Nil(t, splitParts(nil, []int32{0}))
}
