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

// Package probe provides interfaces and implementations for gathering host state.
//
// # Overview
//
// This package defines a unified interface for reading one slice of host state
// per probe: hardware utilization, mounted filesystems, logged-in users, systemd
// service health, container inventory, and firewall activity. Probes run
// concurrently under per-probe deadlines and feed typed sections of a snapshot.
// A probe failure marks its own section unavailable and never aborts the cycle.
//
// # Core Interface
//
// The Probe interface defines a single method for gathering data:
//
//	type Probe[T any] interface {
//	    Collect(ctx context.Context) (T, error)
//	}
//
// All probes support context-based cancellation for graceful shutdown and
// timeout handling. Probes whose backing subsystem may be missing entirely
// implement OptionalProbe, which adds a cheap per-cycle existence check:
//
//	type OptionalProbe[T any] interface {
//	    Probe[T]
//	    Detect(ctx context.Context) bool
//	}
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by abstracting
// probe creation:
//
//	type Factory interface {
//	    CreateHostProbe() Probe[snapshot.HostInfo]
//	    CreateCPUProbe() Probe[snapshot.CPUInfo]
//	    CreateServiceProbe() Probe[[]snapshot.ServiceStatus]
//	    // ...
//	}
//
// The DefaultFactory provides production implementations with configurable
// fields:
//
//	factory := probe.NewDefaultFactory()
//	factory.ServiceUnits = []string{"docker", "libvirtd", "smbd"}
//
// # Deadline Enforcement
//
// Run executes a collect function under a deadline and classifies the result:
//
//	data, outcome, err := probe.Run(ctx, 3*time.Second, p.Collect)
//
// The outcome is one of ok, unavailable, timeout, or skipped. On timeout the
// in-flight collect call is abandoned rather than awaited, so one stuck data
// source cannot stall the snapshot cycle.
//
// # Available Probes
//
// System (system): Reads local host state:
//   - Host identity (hostname, OS release, kernel, architecture, uptime)
//   - CPU model, core count, and utilization since the previous cycle
//   - Memory totals and usage
//   - Mounted filesystem capacity
//   - Logged-in user sessions
//
// SystemD (systemd): Reports watched service units in configured order with
// their active state.
//
// Docker (docker): Lists containers with image and run state when a container
// runtime socket is present on the host.
//
// UFW (ufw): Summarizes blocked connection attempts from the firewall log when
// the firewall is enabled.
//
// # Usage Example
//
// Using the default factory:
//
//	factory := probe.NewDefaultFactory()
//	cpuProbe := factory.CreateCPUProbe()
//
//	info, outcome, err := probe.Run(ctx, 3*time.Second, cpuProbe.Collect)
//	if outcome != probe.OutcomeOK {
//	    log.Printf("cpu probe %s: %v", outcome, err)
//	}
//
// # Subpackages
//
// The probe package is organized into subpackages by data source:
//   - probe/system - local host probes built on gopsutil
//   - probe/systemd - service probes built on the systemd D-Bus API
//   - probe/docker - container probes built on the Docker client
//   - probe/ufw - firewall log probes
//   - probe/file - line-oriented file parsing shared by probes
//
// # Error Handling
//
// Probes return errors when:
//   - Required resources are unavailable (e.g., no D-Bus connection)
//   - Permissions are insufficient
//   - Context is canceled or times out
//   - Data parsing fails
//
// Callers treat these errors as per-section unavailability, not as fatal
// conditions.
package probe
