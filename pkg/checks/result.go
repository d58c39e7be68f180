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
	"fmt"

	"github.com/fiberforge/fibercheck/pkg/workspace"
)

// Status is the outcome of evaluating a single check.
type Status string

const (
	// StatusPassed indicates the check evaluated the data and found no
	// violation.
	StatusPassed Status = "passed"

	// StatusFailed indicates the check evaluated the data and found a
	// genuine rule violation.
	StatusFailed Status = "failed"

	// StatusError indicates the check could not evaluate the data, e.g. a
	// missing layer or column. Never conflated with StatusFailed.
	StatusError Status = "error"
)

// Issue classification types carried by error-state results.
const (
	IssueFileNotFound    = "file_not_found"
	IssueMissingColumn   = "missing_column"
	IssueEmptyLayer      = "empty_layer"
	IssueProcessingError = "processing_error"
)

// Issue describes one reason a check could not evaluate its data.
type Issue struct {
	// Type is one of the Issue* classification constants.
	Type string `json:"type" yaml:"type"`

	// Message is the human-readable cause.
	Message string `json:"message" yaml:"message"`

	// Path is the file the issue refers to, when applicable.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Detail is one violation entry in a failed result. Shapes differ per check;
// every detail is JSON- and YAML-serializable.
type Detail map[string]any

// Summary contains aggregate information about one check evaluation.
type Summary struct {
	// Message is the one-line human-readable outcome.
	Message string `json:"message" yaml:"message"`

	// Violations is the true violation count, even when Details below is a
	// truncated preview.
	Violations int `json:"violations" yaml:"violations"`

	// Shown is the number of violations included in Details.
	Shown int `json:"shown,omitempty" yaml:"shown,omitempty"`

	// Truncated indicates Details holds fewer entries than Violations.
	Truncated bool `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// Result is the uniform output of every check. The Status tag determines the
// required payload: error results carry non-empty Errors, failed results carry
// a violation preview in Details, passed results carry only the summary.
type Result struct {
	// CheckName is the display name the check was requested under.
	CheckName string `json:"check_name" yaml:"check_name"`

	// Status is the tri-state outcome.
	Status Status `json:"status" yaml:"status"`

	// Summary holds the one-line outcome plus violation counts.
	Summary Summary `json:"summary" yaml:"summary"`

	// Details holds a bounded preview of the violations (failed results).
	Details []Detail `json:"details,omitempty" yaml:"details,omitempty"`

	// Errors holds the causes that made evaluation impossible (error results).
	Errors []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`

	// HasIssues is the legacy tri-state indicator kept for reporting
	// collaborators that predate the tagged status: true=failed,
	// false=passed, null=error.
	HasIssues *bool `json:"has_issues" yaml:"has_issues"`
}

// finalize stamps the legacy indicator from the tagged status.
func (r Result) finalize() Result {
	switch r.Status {
	case StatusPassed:
		v := false
		r.HasIssues = &v
	case StatusFailed:
		v := true
		r.HasIssues = &v
	case StatusError:
		r.HasIssues = nil
	}
	return r
}

// passedResult builds a passed result carrying only a confirmation message.
func passedResult(name, message string) Result {
	return Result{
		CheckName: name,
		Status:    StatusPassed,
		Summary:   Summary{Message: message},
	}.finalize()
}

// errorResult builds an error result from one or more causes. At least one
// issue is required; results with an empty cause list must never exist.
func errorResult(name string, issues ...Issue) Result {
	msg := "check could not evaluate the data"
	if len(issues) > 0 {
		msg = issues[0].Message
	}
	return Result{
		CheckName: name,
		Status:    StatusError,
		Summary:   Summary{Message: msg},
		Errors:    issues,
	}.finalize()
}

// failedResult builds a failed result from the full violation list, keeping a
// bounded preview in Details and the true count in the summary.
func failedResult(name, message string, violations []Detail, limit int) Result {
	head, total, truncated := preview(violations, limit)
	return Result{
		CheckName: name,
		Status:    StatusFailed,
		Summary: Summary{
			Message:    message,
			Violations: total,
			Shown:      len(head),
			Truncated:  truncated,
		},
		Details: head,
	}.finalize()
}

// finish derives the result for checks that scan several file-sets and
// accumulate violations and issues independently: violations win over issues,
// issues alone mean the check could not fully evaluate, neither means a pass.
func finish(name, failMsg, passMsg string, violations []Detail, issues []Issue, limit int) Result {
	if len(violations) > 0 {
		r := failedResult(name, failMsg, violations, limit)
		r.Errors = issues
		return r
	}
	if len(issues) > 0 {
		return errorResult(name, issues...)
	}
	return passedResult(name, passMsg)
}

// fileNotFoundIssue classifies a missing layer file-set.
func fileNotFoundIssue(err *workspace.LayerNotFoundError) Issue {
	return Issue{
		Type:    IssueFileNotFound,
		Message: workspace.LayerFileName(err.Layer) + " not found",
		Path:    err.Path,
	}
}

// missingColumnIssue classifies absent required columns in a layer.
func missingColumnIssue(layer *workspace.Layer, missing []string) Issue {
	return Issue{
		Type:    IssueMissingColumn,
		Message: fmt.Sprintf("missing required columns in %s: %s", workspace.LayerFileName(layer.Name), join(missing)),
		Path:    layer.Path,
	}
}

// processingIssue classifies an unexpected failure during evaluation.
func processingIssue(err error) Issue {
	return Issue{
		Type:    IssueProcessingError,
		Message: err.Error(),
	}
}
