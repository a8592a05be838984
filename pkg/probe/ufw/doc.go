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

// Package ufw summarizes blocked connection attempts from the UFW log.
//
// The probe is optional: Detect parses /etc/ufw/ufw.conf each cycle
// and reports the firewall active only when ENABLED=yes. Hosts
// without UFW, or with it disabled, get no firewall section.
//
// # Reported Data
//
// Collect reads a bounded tail of /var/log/ufw.log, filters for
// "[UFW BLOCK]" entries, and reports:
//   - BlockedTotal: block entries seen in the scanned window
//   - TopSources: source addresses ranked by count descending, ties
//     broken by numeric address order
//   - TopPorts: destination ports ranked by count descending, ties
//     broken by port number
//
// Both the line count and the byte window of a scan are capped, so a
// busy firewall cannot make the probe read an unbounded log.
//
// # Missing vs Unreadable
//
// A missing log file reports zero counts: UFW logs through the kernel
// only when something is blocked, so absence is a clean signal. A log
// that exists but cannot be read marks the section unavailable.
package ufw
