/*
Copyright © 2025 Kamil Kobak
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/kamilkobak/kkdash/pkg/logging"
	"github.com/kamilkobak/kkdash/pkg/publisher"
)

const (
	name           = "kkdashd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags used by more than one command.
var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the YAML configuration file",
		Sources: cli.EnvVars("KKDASH_CONFIG"),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output path (overrides the configured destination)",
		Sources: cli.EnvVars("KKDASH_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name: "format",
		Usage: fmt.Sprintf("Output format (supported values: %v)",
			publisher.SupportedFormats()),
		Value: string(publisher.FormatJSON),
	}

	telemetryFlag = &cli.StringFlag{
		Name:    "telemetry-addr",
		Usage:   "Listen address for the operational HTTP endpoints (empty disables them)",
		Sources: cli.EnvVars("KKDASH_TELEMETRY_ADDR"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars("KKDASH_LOG_LEVEL"),
	}
)

// Root builds the kkdashd command tree. This is called by main.main().
func Root() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Periodic system metrics collector",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `kkdashd periodically collects system metrics (CPU, memory,
filesystems, logged-in users, uptime, service states, containers,
firewall activity) and publishes them as a single JSON document,
typically consumed by a local dashboard.

run     - runs the collector daemon on a fixed interval
collect - captures one snapshot and writes it to stdout or a file`,
		Commands: []*cli.Command{
			runCmd(),
			collectCmd(),
		},
	}
}

// initLogger configures slog before any command logic runs so the
// --log-level flag takes effect everywhere.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}
