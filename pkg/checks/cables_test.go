/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"context"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func granularityFields() []shp.Field {
	return []shp.Field{
		shp.StringField("CABLE_ID", 32),
		shp.NumberField("CABLEGRAN", 8),
		shp.NumberField("BUNDLEGRAN", 8),
	}
}

func TestGranularityPlaceholderFlagged(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "FeederCables", shp.POLYLINE, granularityFields(),
		[]shp.Shape{
			testPolyLine([2]float64{0, 0}, [2]float64{1, 0}),
			testPolyLine([2]float64{0, 1}, [2]float64{1, 1}),
		},
		[][]any{
			{"F1", -1, 5}, // placeholder granularity
			{"F2", 12, 5},
		})

	res := checkGranularityFields(context.Background(), dir, testOptions())

	require.Equal(t, StatusFailed, res.Status)
	require.Equal(t, 1, res.Summary.Violations)
	require.Len(t, res.Details, 1)
	// Both field values are reported so the offending one is obvious.
	assert.Equal(t, "F1", res.Details[0]["cable_id"])
	assert.Equal(t, "-1", res.Details[0]["cablegran"])
	assert.Equal(t, "5", res.Details[0]["bundlegran"])
	// The three absent cable layers surface as issues alongside the failure.
	assert.Len(t, res.Errors, 3)
}

func TestGranularityAllMissing(t *testing.T) {
	res := checkGranularityFields(context.Background(), t.TempDir(), testOptions())

	require.Equal(t, StatusError, res.Status)
	require.Nil(t, res.HasIssues)
	assert.Len(t, res.Errors, 4)
}

func TestCableReferencesOrphans(t *testing.T) {
	dir := t.TempDir()
	cableFields := []shp.Field{shp.StringField("CABLE_ID", 32)}
	writeLayer(t, dir, "FeederCables", shp.POLYLINE, cableFields,
		[]shp.Shape{testPolyLine([2]float64{0, 0}, [2]float64{1, 0})},
		[][]any{{"F1"}})
	writeLayer(t, dir, "FeederCablePieces", shp.POLYLINE, cableFields,
		[]shp.Shape{
			testPolyLine([2]float64{0, 0}, [2]float64{0.5, 0}),
			testPolyLine([2]float64{0.5, 0}, [2]float64{1, 0}),
			testPolyLine([2]float64{1, 0}, [2]float64{2, 0}),
		},
		[][]any{
			{"F1"},
			{"FX"}, // references a cable that does not exist
			{"FX"},
		})

	res := checkCableReferences(context.Background(), dir, testOptions())

	require.Equal(t, StatusFailed, res.Status)
	require.Len(t, res.Details, 1)
	assert.Equal(t, "FeederCables", res.Details[0]["layer"])
	assert.Equal(t, 2, res.Details[0]["orphaned_pieces"])
	assert.Equal(t, []string{"FX"}, res.Details[0]["invalid_ids"])
	assert.Equal(t, 1, res.Details[0]["invalid_id_count"])
}

func TestCableReferencesClean(t *testing.T) {
	dir := t.TempDir()
	cableFields := []shp.Field{shp.StringField("CABLE_ID", 32)}
	for _, prefix := range cableRefPrefixes {
		writeLayer(t, dir, prefix+"Cables", shp.POLYLINE, cableFields,
			[]shp.Shape{testPolyLine([2]float64{0, 0}, [2]float64{1, 0})},
			[][]any{{"K1"}})
		writeLayer(t, dir, prefix+"CablePieces", shp.POLYLINE, cableFields,
			[]shp.Shape{testPolyLine([2]float64{0, 0}, [2]float64{1, 0})},
			[][]any{{"K1"}})
	}

	res := checkCableReferences(context.Background(), dir, testOptions())

	require.Equal(t, StatusPassed, res.Status)
	assert.Empty(t, res.Errors)
}

func TestCableDiameters(t *testing.T) {
	dir := t.TempDir()
	fields := []shp.Field{
		shp.StringField("CABLE_ID", 32),
		shp.FloatField("DIAMETER", 10, 2),
	}
	writeLayer(t, dir, "DistributionCables", shp.POLYLINE, fields,
		[]shp.Shape{
			testPolyLine([2]float64{0, 0}, [2]float64{1, 0}),
			testPolyLine([2]float64{0, 1}, [2]float64{1, 1}),
		},
		[][]any{
			{"D1", 0.0}, // zero diameter is as useless as a missing one
			{"D2", 7.5},
		})

	res := validateCableDiameters(context.Background(), dir, testOptions())

	require.Equal(t, StatusFailed, res.Status)
	require.Equal(t, 1, res.Summary.Violations)
	require.Len(t, res.Details, 1)
	assert.Equal(t, "DistributionCables", res.Details[0]["layer"])
	assert.Equal(t, "D1", res.Details[0]["cable_id"])
	// The two absent diameter layers surface as issues alongside the failure.
	assert.Len(t, res.Errors, 2)
}
