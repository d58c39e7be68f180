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
	"time"

	"github.com/google/uuid"

	"github.com/fiberforge/fibercheck/pkg/header"
)

// APIVersion is the versioned schema of the validation report resource.
const APIVersion = "fiberforge.io/v1alpha1"

// Run outcome values for the report summary.
const (
	RunPassed  = "pass"
	RunFailed  = "fail"
	RunPartial = "partial"
)

// RunSummary aggregates the per-check outcomes of one validation pass.
type RunSummary struct {
	// Status is pass when every check passed, fail when any check failed,
	// and partial when no check failed but at least one errored.
	Status string `json:"status" yaml:"status"`

	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
	Errors int `json:"errors" yaml:"errors"`
	Total  int `json:"total" yaml:"total"`

	// Violations is the total violation count across all failed checks.
	Violations int `json:"violations" yaml:"violations"`

	// Duration is the wall-clock time of the pass.
	Duration string `json:"duration" yaml:"duration"`
}

// Report is the validation report resource returned by the CLI and the API.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Workspace is the directory the checks were evaluated against.
	Workspace string `json:"workspace" yaml:"workspace"`

	Summary RunSummary `json:"summary" yaml:"summary"`
	Results []Result   `json:"results" yaml:"results"`
}

// NewReport assembles a report resource from check results, stamping the
// header with a unique run id and the tool version.
func NewReport(workspace string, results []Result, elapsed time.Duration, version string) *Report {
	r := &Report{
		Workspace: workspace,
		Results:   results,
	}
	r.Header.Init(header.KindValidationReport, APIVersion, version)
	r.Header.Metadata["run_id"] = uuid.NewString()

	for _, res := range results {
		r.Summary.Total++
		switch res.Status {
		case StatusPassed:
			r.Summary.Passed++
		case StatusFailed:
			r.Summary.Failed++
			r.Summary.Violations += res.Summary.Violations
		case StatusError:
			r.Summary.Errors++
		}
	}

	switch {
	case r.Summary.Failed > 0:
		r.Summary.Status = RunFailed
	case r.Summary.Errors > 0:
		r.Summary.Status = RunPartial
	default:
		r.Summary.Status = RunPassed
	}
	r.Summary.Duration = elapsed.Round(time.Millisecond).String()
	return r
}
