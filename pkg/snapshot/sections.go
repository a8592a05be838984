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

package snapshot

import "time"

// HostInfo identifies the machine the snapshot was taken on.
type HostInfo struct {
	Hostname string `json:"hostname" yaml:"hostname"`
	// OS is the distribution pretty name, e.g. "Ubuntu 24.04.1 LTS".
	OS     string `json:"os" yaml:"os"`
	Kernel string `json:"kernel" yaml:"kernel"`
	Arch   string `json:"arch" yaml:"arch"`
	// UptimeSeconds is the time since boot.
	UptimeSeconds uint64 `json:"uptime_seconds" yaml:"uptime_seconds"`
}

// CPUInfo describes the processor and its aggregate utilization.
type CPUInfo struct {
	Model string `json:"model" yaml:"model"`
	Cores int    `json:"cores" yaml:"cores"`
	// UsagePercent is the utilization since the previous cycle,
	// clamped to [0,100]. The first cycle reports 0 because no delta
	// base exists yet.
	UsagePercent float64 `json:"usage_percent" yaml:"usage_percent"`
}

// MemoryInfo reports physical memory usage in bytes.
type MemoryInfo struct {
	TotalBytes     uint64  `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes" yaml:"used_bytes"`
	FreeBytes      uint64  `json:"free_bytes" yaml:"free_bytes"`
	AvailableBytes uint64  `json:"available_bytes" yaml:"available_bytes"`
	UsedPercent    float64 `json:"used_percent" yaml:"used_percent"`
}

// Filesystem reports usage of one mounted filesystem.
type Filesystem struct {
	MountPoint     string  `json:"mount_point" yaml:"mount_point"`
	Device         string  `json:"device" yaml:"device"`
	FSType         string  `json:"fstype" yaml:"fstype"`
	TotalBytes     uint64  `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes" yaml:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes" yaml:"available_bytes"`
	UsedPercent    float64 `json:"used_percent" yaml:"used_percent"`
}

// ServiceStatus reports one watched systemd unit. Entries keep the
// order the units were configured in. A unit the service manager has
// no record of reports Running=false with State "inactive".
type ServiceStatus struct {
	Name    string `json:"name" yaml:"name"`
	Running bool   `json:"running" yaml:"running"`
	// State is the manager's active state, e.g. "active", "inactive",
	// "failed".
	State string `json:"state" yaml:"state"`
}

// User is one interactive login session.
type User struct {
	Username string `json:"username" yaml:"username"`
	// Origin is the remote host for network sessions, otherwise the
	// local terminal.
	Origin    string    `json:"origin,omitempty" yaml:"origin,omitempty"`
	LoginTime time.Time `json:"login_time" yaml:"login_time"`
}

// Container is one container known to the local runtime, running or
// not. Entries are ordered by name.
type Container struct {
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
	// State is the runtime state, e.g. "running", "exited".
	State   string `json:"state" yaml:"state"`
	Running bool   `json:"running" yaml:"running"`
}

// FirewallSummary aggregates recent firewall block entries.
type FirewallSummary struct {
	// BlockedTotal counts the block entries seen in the scanned log
	// window.
	BlockedTotal int `json:"blocked_total" yaml:"blocked_total"`
	// TopSources ranks offending source addresses by count descending,
	// ties broken by ascending address.
	TopSources []AddressCount `json:"top_sources" yaml:"top_sources"`
	// TopPorts ranks targeted destination ports by count descending,
	// ties broken by ascending port.
	TopPorts []PortCount `json:"top_ports" yaml:"top_ports"`
}

// AddressCount pairs a source address with its block count.
type AddressCount struct {
	Address string `json:"address" yaml:"address"`
	Count   int    `json:"count" yaml:"count"`
}

// PortCount pairs a destination port with its block count.
type PortCount struct {
	Port  int `json:"port" yaml:"port"`
	Count int `json:"count" yaml:"count"`
}
