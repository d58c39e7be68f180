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
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithTolerance overrides the minimum point separation used by proximity
// checks.
func WithTolerance(t float64) Option {
	return func(r *Runner) {
		if t > 0 {
			r.opts.Tolerance = t
		}
	}
}

// WithPreviewLimit overrides the number of violation entries kept in failed
// results.
func WithPreviewLimit(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.opts.PreviewLimit = n
		}
	}
}

// Runner dispatches validation checks by display name and collects their
// results. A zero-configured Runner from New is ready to use.
type Runner struct {
	opts Options
}

// New creates a Runner with the provided functional options.
func New(opts ...Option) *Runner {
	r := &Runner{
		opts: Options{
			Tolerance:    DefaultTolerance,
			PreviewLimit: defaultPreviewLimit,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the named checks against the workspace directory and returns
// one result per requested name, in request order. An empty name list runs
// the full default check set. A name with no registered check yields an
// error result in its slot; Run itself never fails.
func (r *Runner) Run(ctx context.Context, dir string, names []string) []Result {
	if len(names) == 0 {
		names = DefaultChecks()
	}

	start := time.Now()
	results := make([]Result, 0, len(names))
	violations := 0

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			// Keep the one-result-per-request invariant on cancellation.
			for _, remaining := range names[i:] {
				results = append(results, errorResult(remaining, Issue{
					Type:    IssueProcessingError,
					Message: fmt.Sprintf("run canceled: %v", err),
				}))
			}
			break
		}

		res := r.runOne(ctx, dir, name)
		violations += res.Summary.Violations
		results = append(results, res)
	}

	validationRunDuration.Observe(time.Since(start).Seconds())
	validationViolations.Set(float64(violations))
	return results
}

// runOne dispatches a single check, converting unknown names and panics into
// error results.
func (r *Runner) runOne(ctx context.Context, dir, name string) (res Result) {
	fn, ok := registry[name]
	if !ok {
		slog.Warn("unknown check requested", "check", name)
		res = errorResult(name, Issue{
			Type:    IssueProcessingError,
			Message: "check function not found",
		})
		checkRunTotal.WithLabelValues(name, string(res.Status)).Inc()
		return res
	}

	defer func() {
		if p := recover(); p != nil {
			slog.Error("check panicked", "check", name, "panic", p)
			res = errorResult(name, Issue{
				Type:    IssueProcessingError,
				Message: fmt.Sprintf("check panicked: %v", p),
			})
			checkRunTotal.WithLabelValues(name, string(res.Status)).Inc()
		}
	}()

	start := time.Now()
	res = fn(ctx, dir, r.opts)
	elapsed := time.Since(start)

	checkRunDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	checkRunTotal.WithLabelValues(name, string(res.Status)).Inc()
	slog.Debug("check completed",
		"check", name,
		"status", res.Status,
		"violations", res.Summary.Violations,
		"duration", elapsed)
	return res
}
