// Copyright (c) 2025, Fiberforge.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package checks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyIndicator(t *testing.T) {
	passed := passedResult("x", "ok")
	require.NotNil(t, passed.HasIssues)
	assert.False(t, *passed.HasIssues)

	failed := failedResult("x", "bad", []Detail{{"k": "v"}}, 5)
	require.NotNil(t, failed.HasIssues)
	assert.True(t, *failed.HasIssues)

	errored := errorResult("x", Issue{Type: IssueFileNotFound, Message: "gone"})
	assert.Nil(t, errored.HasIssues)
	assert.NotEmpty(t, errored.Errors)
}

func TestFailedResultPreview(t *testing.T) {
	violations := make([]Detail, 8)
	for i := range violations {
		violations[i] = Detail{"n": i}
	}

	res := failedResult("x", "bad", violations, 5)

	assert.Equal(t, 8, res.Summary.Violations)
	assert.Equal(t, 5, res.Summary.Shown)
	assert.True(t, res.Summary.Truncated)
	assert.Len(t, res.Details, 5)
}

func TestFinishPrecedence(t *testing.T) {
	issue := Issue{Type: IssueFileNotFound, Message: "gone"}

	// Violations win over issues; the issues stay visible.
	res := finish("x", "bad", "ok", []Detail{{"k": "v"}}, []Issue{issue}, 5)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Len(t, res.Errors, 1)

	res = finish("x", "bad", "ok", nil, []Issue{issue}, 5)
	assert.Equal(t, StatusError, res.Status)

	res = finish("x", "bad", "ok", nil, nil, 5)
	assert.Equal(t, StatusPassed, res.Status)
	assert.Equal(t, "ok", res.Summary.Message)
}

func TestNoun(t *testing.T) {
	assert.Equal(t, "1 closure", noun(1, "closure", "closures"))
	assert.Equal(t, "4 closures", noun(4, "closure", "closures"))
	assert.Equal(t, "0 closures", noun(0, "closure", "closures"))
}

func TestLayerTitle(t *testing.T) {
	assert.Equal(t, "Prim Distribution Cables", layerTitle("PrimDistributionCables"))
	assert.Equal(t, "Closures", layerTitle("Closures"))
}

func TestNewReportSummary(t *testing.T) {
	results := []Result{
		passedResult("a", "ok"),
		failedResult("b", "bad", []Detail{{"k": 1}, {"k": 2}}, 5),
		errorResult("c", Issue{Type: IssueFileNotFound, Message: "gone"}),
	}

	report := NewReport("/tmp/ws", results, 1500*time.Millisecond, "v1.2.3")

	assert.Equal(t, RunFailed, report.Summary.Status)
	assert.Equal(t, 1, report.Summary.Passed)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 1, report.Summary.Errors)
	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.Violations)
	assert.Equal(t, "1.5s", report.Summary.Duration)
	assert.Equal(t, "ValidationReport", report.Kind.String())
	assert.Equal(t, APIVersion, report.APIVersion)
	assert.NotEmpty(t, report.Metadata["run_id"])
	assert.Equal(t, "v1.2.3", report.Metadata["version"])
}

func TestNewReportPartial(t *testing.T) {
	results := []Result{
		passedResult("a", "ok"),
		errorResult("c", Issue{Type: IssueFileNotFound, Message: "gone"}),
	}

	report := NewReport("/tmp/ws", results, time.Second, "")

	assert.Equal(t, RunPartial, report.Summary.Status)
}
