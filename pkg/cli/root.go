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
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/fiberforge/fibercheck/pkg/logging"
	"github.com/fiberforge/fibercheck/pkg/serializer"
)

const (
	name           = "fibercheck"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared by commands that emit a report.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "Output format: yaml, json, table",
		Sources: cli.EnvVars("FIBERCHECK_FORMAT"),
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: version,
		Usage:   "Fiber network design validation",
		Description: fmt.Sprintf(`fibercheck - Fiber network design validation

Version: %s
Commit:  %s
Built:   %s

Runs design rule checks against exported shapefile workspaces: duplicate
closure identifiers, splice capacity, cluster overlaps, cable references,
and point placement.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			checksCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	// Handle SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", cmd.String("format"))
	}
	return f, nil
}
