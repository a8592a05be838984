// Package cli implements the command-line interface for the kkdash collector daemon.
//
// # Overview
//
// The kkdashd CLI runs the periodic system metrics collector, either as a
// long-lived daemon refreshing a JSON document on disk or as a one-shot
// capture for inspection and scripting.
//
// # Commands
//
// run - Run the collector daemon:
//
//	kkdashd run [--config FILE] [--output FILE] [--telemetry-addr ADDR]
//
// Collects the configured sources every interval and atomically replaces the
// output document. Stops cleanly on SIGINT/SIGTERM, finishing any in-flight
// cycle. With --telemetry-addr set, also serves /healthz, /readyz, and
// /metrics endpoints.
//
// collect - Capture a single snapshot:
//
//	kkdashd collect [--config FILE] [--output FILE] [--format json|yaml|table]
//
// Captures one snapshot and writes it to stdout or a file, then exits.
//
// # Global Flags
//
//	--config, -c   Path to the YAML configuration file
//	--output, -o   Output path (default depends on the command)
//	--log-level    Logging verbosity: debug, info, warn, error
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// JSON (default):
//   - Matches the published document byte for byte
//   - Suitable for programmatic consumption
//
// YAML:
//   - Human-readable, preserves structure
//
// Table:
//   - Flattened key/value representation
//   - Suitable for terminal viewing
//
// # Environment Variables
//
//	KKDASH_CONFIG          Path to the YAML configuration file
//	KKDASH_OUTPUT          Output path override
//	KKDASH_TELEMETRY_ADDR  Listen address for operational endpoints
//	KKDASH_LOG_LEVEL       Logging verbosity
//
// Flags take precedence over environment variables, which take precedence
// over the configuration file.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/config - Configuration loading and validation
//   - pkg/assembler - Parallel probe fan-out and snapshot assembly
//   - pkg/publisher - Atomic file publishing and output formatting
//   - pkg/scheduler - Fixed-interval collection loop
//   - pkg/telemetry - Operational HTTP endpoints
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/kamilkobak/kkdash/pkg/cli.version=1.0.0'"
package cli
