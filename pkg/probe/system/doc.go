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

// Package system provides probes for local host state.
//
// The probes in this package read hardware and session data through
// gopsutil: host identity and uptime, CPU utilization, memory usage,
// mounted filesystem capacity, and logged-in users. Each probe is a
// stateless struct satisfying the probe Collect contract; gopsutil
// keeps the only cross-cycle state (the CPU busy-time baseline used
// for delta utilization).
//
// The OS release name is read from /etc/os-release with the
// /usr/lib/os-release fallback defined by freedesktop.org. When
// neither file is readable the probe reports gopsutil's platform
// string instead.
package system
