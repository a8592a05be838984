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

// Package systemd reports the state of watched systemd service units.
//
// The probe connects to the systemd manager over D-Bus and resolves
// all watched units in a single ListUnitsByNames round-trip per cycle.
//
// # Reported Data
//
// For each configured unit the probe captures:
//   - The unit name as configured
//   - Whether the unit is currently running (ActiveState == "active")
//   - The raw active state (active, inactive, failed, activating, ...)
//
// Output preserves the configured unit order. A unit name without a
// dot gets the implicit ".service" suffix, so "docker" and
// "docker.service" refer to the same unit while "docker.socket" stays
// a socket unit.
//
// # Usage
//
// Create with the units to watch:
//
//	p := &systemd.Probe{
//	    Units: []string{"docker", "libvirtd", "smbd"},
//	}
//
//	services, err := p.Collect(ctx)
//	if err != nil {
//	    // D-Bus unreachable; the whole section is unavailable.
//	}
//
// # Unknown Units
//
// A unit the manager has no record of (never installed, or removed)
// is reported with Running=false and State="inactive", mirroring what
// systemctl prints for it. Only a failure to reach the manager itself
// makes the probe return an error.
package systemd
