/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/require"
)

// testOptions returns the compiled-in defaults checks run with.
func testOptions() Options {
	return Options{
		Tolerance:    DefaultTolerance,
		PreviewLimit: defaultPreviewLimit,
	}
}

// writeLayer writes an OUT_<name> shapefile file-set into dir. Shapes and
// attribute rows align by position; attribute values align with fields.
func writeLayer(t *testing.T, dir, name string, shapeType shp.ShapeType, fields []shp.Field, shapes []shp.Shape, attrs [][]any) {
	t.Helper()

	w, err := shp.Create(filepath.Join(dir, "OUT_"+name+".shp"), shapeType)
	require.NoError(t, err)
	w.SetFields(fields)
	for i, s := range shapes {
		row := w.Write(s)
		if i >= len(attrs) {
			continue
		}
		for j, v := range attrs[i] {
			require.NoError(t, w.WriteAttribute(int(row), j, v))
		}
	}
	w.Close()
}

// testPoints builds point shapes from coordinate pairs.
func testPoints(coords ...[2]float64) []shp.Shape {
	out := make([]shp.Shape, len(coords))
	for i, c := range coords {
		out[i] = &shp.Point{X: c[0], Y: c[1]}
	}
	return out
}

// testPolyLine builds a single-part polyline shape from its vertices.
func testPolyLine(coords ...[2]float64) shp.Shape {
	pts := make([]shp.Point, len(coords))
	for i, c := range coords {
		pts[i] = shp.Point{X: c[0], Y: c[1]}
	}
	return shp.NewPolyLine([][]shp.Point{pts})
}

// testPolygon builds a single-ring polygon shape from its closed outline.
func testPolygon(coords ...[2]float64) shp.Shape {
	pts := make([]shp.Point, len(coords))
	for i, c := range coords {
		pts[i] = shp.Point{X: c[0], Y: c[1]}
	}
	poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{pts}))
	return &poly
}

// square is a closed square outline with the given corners.
func square(minX, minY, maxX, maxY float64) shp.Shape {
	return testPolygon(
		[2]float64{minX, minY},
		[2]float64{minX, maxY},
		[2]float64{maxX, maxY},
		[2]float64{maxX, minY},
		[2]float64{minX, minY},
	)
}
