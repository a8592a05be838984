/*
Copyright © 2025 Kamil Kobak
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/kamilkobak/kkdash/pkg/assembler"
	"github.com/kamilkobak/kkdash/pkg/config"
	"github.com/kamilkobak/kkdash/pkg/defaults"
	"github.com/kamilkobak/kkdash/pkg/publisher"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Capture a single snapshot",
		Description: `Capture one snapshot of the configured sources and write it out,
then exit. Useful for inspecting what the daemon would publish and
for piping the document into other tools.

The snapshot can be output in JSON, YAML, or table format. With no
--output the document goes to stdout.

# Examples

Print a snapshot to stdout:

  kkdashd collect

Write a YAML snapshot to a file, probing only what a config enables:

  kkdashd collect --config /etc/kkdash/config.yaml --format yaml --output snap.yaml`,
		Flags: []cli.Flag{
			configFlag,
			outputFlag,
			formatFlag,
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd.String("log-level"))

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			asm := &assembler.Assembler{
				Factory: cfg.Factory(),
				Timeout: cfg.ProbeTimeout(),
				Enabled: cfg.EnabledProbes(),
			}

			// One shot, bounded even if every probe runs to its own limit.
			cctx, cancel := context.WithTimeout(ctx, defaults.CollectCommandTimeout)
			defer cancel()

			snap := asm.Assemble(cctx)

			w := publisher.NewFileOrStdoutWriter(outFormat, cmd.String("output"))
			defer func() { _ = w.Close() }()
			return w.Serialize(cctx, snap)
		},
	}
}
