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

// Package defaults provides centralized configuration constants for kkdash.
//
// This package defines timing values, filesystem locations, and scan limits
// used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - Collection timing: snapshot interval and per-probe timeout
//   - Server timeouts: telemetry HTTP listener configuration
//   - Paths: output file, runtime socket, firewall config and log
//   - Limits: firewall log scan bounds and top-N sizes
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/kamilkobak/kkdash/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
//	defer cancel()
//
// # Timing Guidelines
//
// When choosing values:
//
//   - ProbeTimeout must be shorter than CollectionInterval; probes run
//     concurrently, so a cycle's duration tracks the slowest probe
//   - Server shutdown: 30s for graceful drain
package defaults
