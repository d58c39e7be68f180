/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/fiberforge/fibercheck/pkg/checks"
	"github.com/fiberforge/fibercheck/pkg/serializer"
)

// checkList is the resource emitted by the checks command.
type checkList struct {
	Checks []string `json:"checks" yaml:"checks"`
}

func checksCmd() *cli.Command {
	return &cli.Command{
		Name:                  "checks",
		EnableShellCompletion: true,
		Usage:                 "List available design rule checks",
		Description: `List the check names the validate command accepts, in default
execution order. Pass these to 'fibercheck validate --check'.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, checkList{Checks: checks.DefaultChecks()}); err != nil {
				return fmt.Errorf("failed to serialize check list: %w", err)
			}
			return nil
		},
	}
}
