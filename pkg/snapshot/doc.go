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

// Package snapshot defines the point-in-time host health document that
// kkdash assembles and publishes.
//
// # Core Types
//
// The package defines a flat document with tagged-variant sections:
//   - Snapshot: schema version, assembly timestamp, and one field per
//     section
//   - Section[T]: a generic tagged variant carrying a Status, an
//     optional Error reason, and an optional payload
//   - Status: "ok" or "unavailable"
//
// # Section States
//
// Every section is in exactly one of three states:
//
//   - absent: the field is nil and the key does not appear in the
//     serialized document. A probe disabled by configuration and an
//     optional subsystem (container runtime, firewall) missing from
//     the host both produce absence.
//   - ok: the payload is present. An empty collection is still
//     present; "zero containers" and "no container runtime" serialize
//     differently.
//   - unavailable: the probe failed or timed out; Error says why.
//
// # Creating Sections
//
//	snap := snapshot.New()
//	snap.Memory = snapshot.OK(snapshot.MemoryInfo{TotalBytes: 8 << 30})
//	snap.Users = snapshot.Unavailable[[]snapshot.User]("utmp unreadable")
//
// # Serialized Form
//
// Snapshots serialize to JSON with snake_case keys:
//
//	{
//	  "schema_version": "v1",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "memory": {
//	    "status": "ok",
//	    "data": {"total_bytes": 8589934592, "used_bytes": 2147483648, ...}
//	  },
//	  "users": {"status": "unavailable", "error": "utmp unreadable"},
//	  "containers": {"status": "ok", "data": []}
//	}
//
// Marshal and unmarshal round-trip: decoding a serialized snapshot
// reconstructs an equal value, and absent sections stay absent.
//
// # Units
//
// Payload fields use semantic units: bytes for sizes, seconds for
// durations, counts for tallies. No field carries a preformatted
// display string; rendering belongs to the dashboard.
package snapshot
