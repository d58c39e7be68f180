/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/fiberforge/fibercheck/pkg/checks"
	"github.com/fiberforge/fibercheck/pkg/defaults"
	"github.com/fiberforge/fibercheck/pkg/serializer"
	"github.com/fiberforge/fibercheck/pkg/workspace"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a workspace of exported shapefile layers",
		Description: `Validate a fiber network design export against the design rule checks.

The workspace holds the exported layers as OUT_<LayerName>.shp file-sets.
It can be given as a directory, a zip archive, or an HTTP(S) URL pointing
at a zip archive. Archives are extracted to a scratch directory and the
layer directory is located automatically (MRO_* export directories and
output/ subdirectories are preferred).

Each requested check produces exactly one result. A check that finds rule
violations is reported as failed; a check that could not evaluate its data
(missing layer, missing column) is reported as an error, never conflated
with a failure.

# Examples

Run every check against a directory:
  fibercheck validate -w ./export/output

Run selected checks against a zipped export:
  fibercheck validate -w export.zip -c "OSC Duplicates Check" -c "Splice Count Report"

Validate a remote export and write the report to a file:
  fibercheck validate -w https://builds.example.com/export.zip -o report.yaml

Fail the command if any check finds violations (useful for CI/CD):
  fibercheck validate -w export.zip --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "workspace",
				Aliases:  []string{"w"},
				Required: true,
				Usage: `Path/URI of the workspace to validate.
	Supports: directories, zip archives, or HTTP/HTTPS URLs of zip archives.`,
			},
			&cli.StringSliceFlag{
				Name:    "check",
				Aliases: []string{"c"},
				Usage:   "Check name to run (can be repeated, default: all checks)",
			},
			&cli.FloatFlag{
				Name:  "tolerance",
				Value: checks.DefaultTolerance,
				Usage: "Minimum point separation in layer units",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIValidateTimeout,
				Usage: "Overall validation deadline",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any check finds violations",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			names := cmd.StringSlice("check")
			for _, n := range names {
				if !checks.IsKnown(n) {
					return fmt.Errorf("unknown check: %q (see 'fibercheck checks')", n)
				}
			}

			tolerance := cmd.Float("tolerance")
			if tolerance <= 0 {
				return fmt.Errorf("tolerance must be positive, got %v", tolerance)
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			source := cmd.String("workspace")
			slog.Info("resolving workspace", "workspace", source)

			dir, cleanup, err := resolveWorkspace(ctx, source)
			if cleanup != nil {
				defer cleanup()
			}
			if err != nil {
				return fmt.Errorf("failed to resolve workspace %q: %w", source, err)
			}

			slog.Info("running checks",
				"dir", dir,
				"checks", len(names),
				"tolerance", tolerance)

			start := time.Now()
			results := checks.New(checks.WithTolerance(tolerance)).Run(ctx, dir, names)
			report := checks.NewReport(source, results, time.Since(start), version)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to serialize validation report: %w", err)
			}

			slog.Info("validation completed",
				"status", report.Summary.Status,
				"passed", report.Summary.Passed,
				"failed", report.Summary.Failed,
				"errors", report.Summary.Errors,
				"violations", report.Summary.Violations,
				"duration", report.Summary.Duration)

			// Check if we should fail on rule violations
			if cmd.Bool("fail-on-error") && report.Summary.Status == checks.RunFailed {
				return fmt.Errorf("validation failed: %d check(s) found violations", report.Summary.Failed)
			}

			return nil
		},
	}
}

// resolveWorkspace turns the workspace argument into a local layer directory.
// URLs are downloaded, archives are extracted, and the layer directory is
// discovered inside the result. The cleanup removes any scratch directory
// and is non-nil whenever one was created, even on error.
func resolveWorkspace(ctx context.Context, source string) (string, func(), error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		tmp, cleanup, err := scratchDir()
		if err != nil {
			return "", cleanup, err
		}
		archive := filepath.Join(tmp, "workspace.zip")
		if err := serializer.NewHttpReader().DownloadWithContext(ctx, source, archive); err != nil {
			return "", cleanup, fmt.Errorf("download failed: %w", err)
		}
		dir, err := extractAndDiscover(archive, tmp)
		return dir, cleanup, err
	}

	info, err := os.Stat(source)
	if err != nil {
		return "", nil, err
	}

	if info.IsDir() {
		dir, err := workspace.Discover(source)
		return dir, nil, err
	}

	if strings.EqualFold(filepath.Ext(source), ".zip") {
		tmp, cleanup, err := scratchDir()
		if err != nil {
			return "", cleanup, err
		}
		dir, err := extractAndDiscover(source, tmp)
		return dir, cleanup, err
	}

	return "", nil, fmt.Errorf("workspace must be a directory, zip archive, or URL")
}

func scratchDir() (string, func(), error) {
	tmp, err := os.MkdirTemp("", "fibercheck-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	cleanup := func() {
		if rerr := os.RemoveAll(tmp); rerr != nil {
			slog.Warn("failed to remove scratch directory", "dir", tmp, "error", rerr)
		}
	}
	return tmp, cleanup, nil
}

func extractAndDiscover(archive, scratch string) (string, error) {
	dest := filepath.Join(scratch, "workspace")
	if err := os.MkdirAll(dest, 0750); err != nil {
		return "", fmt.Errorf("failed to create extraction directory: %w", err)
	}
	if err := workspace.Extract(archive, dest); err != nil {
		return "", fmt.Errorf("extraction failed: %w", err)
	}
	return workspace.Discover(dest)
}
