/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/fiberforge/fibercheck/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the validation HTTP API",
		Description: `Start the Fibercheck HTTP API and block until shutdown.

The server accepts zipped workspace uploads on POST /v1/validate and
returns the validation report. See the fibercheckd binary for the
standalone daemon form of the same service.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "HTTP listen port",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version
			cfg.Port = int(cmd.Int("port"))

			return server.RunWithConfig(cfg)
		},
	}
}
