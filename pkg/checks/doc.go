/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

// Package checks implements the fiber network design validation rules and the
// runner that dispatches them by display name.
//
// Every check shares the same contract: it reads the layers it needs from a
// workspace directory, never mutates anything on disk, and returns a Result
// tagged with one of three statuses. "failed" means the rule found genuine
// violations in the data; "error" means the check could not evaluate the data
// at all, e.g. a required layer file or column is missing. The two are never
// conflated: a workspace that cannot be evaluated is not a workspace that
// passed.
//
// Failed results carry a bounded preview of the violations in Details while
// the summary always states the true count. Error results carry the causes in
// Errors, classified by issue type.
//
// Checks are selected by display name, the same names the HTTP API and the
// CLI accept:
//
//	runner := checks.New(checks.WithTolerance(0.01))
//	results := runner.Run(ctx, dir, []string{checks.CheckOSCDuplicates})
//
// An empty name list runs the full default set in a fixed order. The runner
// always returns exactly one result per requested name; unknown names and
// panicking checks produce error results in their slot rather than aborting
// the pass.
package checks
