// Copyright (c) 2025, Kamil Kobak. All rights reserved.
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

// Package config loads and validates the daemon configuration.
//
// Configuration is a single YAML file decoded strictly: unknown keys
// are rejected so typos fail at startup instead of silently keeping a
// default. Fields absent from the file keep their defaults from
// pkg/defaults. Any validation failure aborts startup before the first
// collection cycle.
//
// Example file:
//
//	interval: 5
//	probe_timeout: 3
//	output: /opt/kkdash/www/data.json
//	services: [docker, libvirtd, smbd]
//	probes:
//	  users: false
//	docker:
//	  socket: /var/run/docker.sock
//	firewall:
//	  config: /etc/ufw/ufw.conf
//	  log: /var/log/ufw.log
//	  max_lines: 1000
//	  top: 10
//	telemetry:
//	  addr: ":9090"
package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/kamilkobak/kkdash/pkg/defaults"
	apperrors "github.com/kamilkobak/kkdash/pkg/errors"
	"github.com/kamilkobak/kkdash/pkg/probe"

	"gopkg.in/yaml.v3"
)

// Config is the daemon's runtime configuration.
type Config struct {
	// IntervalSeconds is the time between collection cycle starts.
	IntervalSeconds int `yaml:"interval"`

	// ProbeTimeoutSeconds bounds each probe's collection. It must be
	// shorter than the interval.
	ProbeTimeoutSeconds int `yaml:"probe_timeout"`

	// Output is the published snapshot file path.
	Output string `yaml:"output"`

	// Services lists the systemd units reported in the services
	// section, in this order. An empty list publishes an empty section.
	Services []string `yaml:"services"`

	// Probes toggles individual probes by name. Probes not named here
	// stay enabled.
	Probes map[string]bool `yaml:"probes"`

	Docker    DockerConfig    `yaml:"docker"`
	Firewall  FirewallConfig  `yaml:"firewall"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// DockerConfig locates the container runtime.
type DockerConfig struct {
	// Socket is the runtime socket whose existence enables the
	// containers section.
	Socket string `yaml:"socket"`
}

// FirewallConfig locates ufw state and bounds the log scan.
type FirewallConfig struct {
	// Config is the ufw configuration file holding the ENABLED flag.
	Config string `yaml:"config"`

	// Log is the kernel log file scanned for block entries.
	Log string `yaml:"log"`

	// MaxLines caps how many recent log lines one cycle parses.
	MaxLines int `yaml:"max_lines"`

	// Top is how many top sources and ports the summary keeps.
	Top int `yaml:"top"`
}

// TelemetryConfig controls the operational HTTP listener.
type TelemetryConfig struct {
	// Addr is the listen address (host:port). Empty disables the
	// listener.
	Addr string `yaml:"addr"`
}

// Default returns a configuration populated from pkg/defaults.
func Default() *Config {
	return &Config{
		IntervalSeconds:     int(defaults.CollectionInterval / time.Second),
		ProbeTimeoutSeconds: int(defaults.ProbeTimeout / time.Second),
		Output:              defaults.OutputPath,
		Services:            append([]string(nil), defaults.ServiceUnits...),
		Docker: DockerConfig{
			Socket: defaults.DockerSocket,
		},
		Firewall: FirewallConfig{
			Config:   defaults.UFWConfigPath,
			Log:      defaults.UFWLogPath,
			MaxLines: defaults.UFWMaxLines,
			Top:      defaults.UFWTopN,
		},
	}
}

// Load reads the configuration file at path, overlays it on the
// defaults, and validates the result. An empty path returns the
// defaults. Unknown YAML keys are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to open config file %s", path), err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty file keeps every default.
		if errors.Is(err, io.EOF) {
			return cfg, cfg.Validate()
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and returns an INVALID_CONFIG error
// naming the first offending one.
func (c *Config) Validate() error {
	if c.IntervalSeconds <= 0 {
		return invalidField("interval",
			fmt.Sprintf("interval must be a positive number of seconds, got %d", c.IntervalSeconds))
	}
	if c.ProbeTimeoutSeconds <= 0 {
		return invalidField("probe_timeout",
			fmt.Sprintf("probe_timeout must be a positive number of seconds, got %d", c.ProbeTimeoutSeconds))
	}
	if c.ProbeTimeoutSeconds >= c.IntervalSeconds {
		return invalidField("probe_timeout",
			fmt.Sprintf("probe_timeout (%ds) must be shorter than interval (%ds)",
				c.ProbeTimeoutSeconds, c.IntervalSeconds))
	}
	if strings.TrimSpace(c.Output) == "" {
		return invalidField("output", "output path cannot be empty")
	}
	for i, unit := range c.Services {
		if strings.TrimSpace(unit) == "" {
			return invalidField("services", fmt.Sprintf("services[%d] is blank", i))
		}
	}
	for name := range c.Probes {
		if _, ok := probe.ParseName(name); !ok {
			return invalidField("probes",
				fmt.Sprintf("unknown probe name %q, valid names: %s", name, strings.Join(probeNames(), ", ")))
		}
	}
	if strings.TrimSpace(c.Docker.Socket) == "" {
		return invalidField("docker.socket", "docker.socket cannot be empty")
	}
	if strings.TrimSpace(c.Firewall.Config) == "" {
		return invalidField("firewall.config", "firewall.config cannot be empty")
	}
	if strings.TrimSpace(c.Firewall.Log) == "" {
		return invalidField("firewall.log", "firewall.log cannot be empty")
	}
	if c.Firewall.MaxLines <= 0 {
		return invalidField("firewall.max_lines",
			fmt.Sprintf("firewall.max_lines must be positive, got %d", c.Firewall.MaxLines))
	}
	if c.Firewall.Top <= 0 {
		return invalidField("firewall.top",
			fmt.Sprintf("firewall.top must be positive, got %d", c.Firewall.Top))
	}
	if c.Telemetry.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Telemetry.Addr); err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
				fmt.Sprintf("telemetry.addr %q must be a host:port address", c.Telemetry.Addr),
				err, map[string]any{"field": "telemetry.addr"})
		}
	}
	return nil
}

// Interval returns the collection interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// ProbeTimeout returns the per-probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}

// EnabledProbes converts the probe toggles into the assembler's form.
// It returns nil when no toggles are configured.
func (c *Config) EnabledProbes() map[probe.Name]bool {
	if len(c.Probes) == 0 {
		return nil
	}
	out := make(map[probe.Name]bool, len(c.Probes))
	for name, enabled := range c.Probes {
		if parsed, ok := probe.ParseName(name); ok {
			out[parsed] = enabled
		}
	}
	return out
}

// Factory builds the probe factory described by this configuration.
func (c *Config) Factory() *probe.DefaultFactory {
	return &probe.DefaultFactory{
		ServiceUnits: c.Services,
		DockerSocket: c.Docker.Socket,
		UFWConfig:    c.Firewall.Config,
		UFWLog:       c.Firewall.Log,
		UFWMaxLines:  c.Firewall.MaxLines,
		UFWTopN:      c.Firewall.Top,
	}
}

func invalidField(field, message string) error {
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig, message,
		map[string]any{"field": field})
}

func probeNames() []string {
	names := make([]string, 0, len(probe.Names))
	for _, n := range probe.Names {
		names = append(names, n.String())
	}
	return names
}
