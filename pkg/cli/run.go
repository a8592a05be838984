/*
Copyright © 2025 Kamil Kobak
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/kamilkobak/kkdash/pkg/assembler"
	"github.com/kamilkobak/kkdash/pkg/config"
	apperrors "github.com/kamilkobak/kkdash/pkg/errors"
	"github.com/kamilkobak/kkdash/pkg/publisher"
	"github.com/kamilkobak/kkdash/pkg/scheduler"
	"github.com/kamilkobak/kkdash/pkg/telemetry"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:                  "run",
		EnableShellCompletion: true,
		Usage:                 "Run the collector daemon",
		Description: `Run the collector daemon. Every interval the daemon probes the
configured sources in parallel, assembles a snapshot document, and
atomically replaces the output file. A probe failure degrades its own
section; a publish failure keeps the previous document in place. The
daemon stops cleanly on SIGINT or SIGTERM, finishing any in-flight
cycle first.

Configuration comes from a YAML file (see --config); every field has
a default, so the daemon also runs with no file at all. The --output
and --telemetry-addr flags override their config file counterparts.

# Examples

Run with defaults:

  kkdashd run

Run with a config file and operational endpoints:

  kkdashd run --config /etc/kkdash/config.yaml --telemetry-addr :9090`,
		Flags: []cli.Flag{
			configFlag,
			outputFlag,
			telemetryFlag,
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd.String("log-level"))

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			if v := cmd.String("output"); v != "" {
				cfg.Output = v
			}
			if v := cmd.String("telemetry-addr"); v != "" {
				cfg.Telemetry.Addr = v
			}
			// Flag overrides bypass Load, so check the result again.
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runDaemon(ctx, cfg)
		},
	}
}

// runDaemon wires the collection pipeline and blocks until ctx is
// cancelled or a component fails fatally.
func runDaemon(ctx context.Context, cfg *config.Config) error {
	// The publisher assumes the destination directory exists; create it
	// once here so the first cycle does not fail on a fresh host.
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return apperrors.Wrap(apperrors.ErrCodePublish, "failed to create output directory", err)
	}

	asm := &assembler.Assembler{
		Factory: cfg.Factory(),
		Timeout: cfg.ProbeTimeout(),
		Enabled: cfg.EnabledProbes(),
	}

	sched := &scheduler.Scheduler{
		Interval:  cfg.Interval(),
		Assembler: asm,
		Publisher: publisher.NewAtomicFile(cfg.Output),
	}

	var srv *telemetry.Server
	if cfg.Telemetry.Addr != "" {
		tcfg := telemetry.NewConfig()
		tcfg.Name = name
		tcfg.Version = version
		tcfg.Addr = cfg.Telemetry.Addr
		srv = telemetry.NewServer(tcfg)

		// The readiness probe passes once the output file has been
		// written at least once.
		sched.OnCycle = func(stats scheduler.CycleStats) {
			if stats.PublishErr == nil {
				srv.SetReady(true)
			}
		}
	}

	slog.Info("collector starting",
		"interval", cfg.Interval().String(),
		"output", cfg.Output,
		"telemetryAddr", cfg.Telemetry.Addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(gctx)
	})
	if srv != nil {
		g.Go(func() error {
			return srv.Start(gctx)
		})
	}
	return g.Wait()
}
