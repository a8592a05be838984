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

// Package scheduler drives the collection loop: assemble a snapshot,
// publish it, wait for the next tick.
//
// # Timing Semantics
//
// The first cycle runs immediately on Run. After that, a time.Ticker
// paces cycle starts at the configured interval. Cycles run
// sequentially on the Run goroutine:
//
//   - Cycles never overlap. A cycle that outlives the interval delays
//     the next one rather than running beside it.
//   - No backlog accumulates. The ticker holds at most one pending
//     tick, so after a slow cycle the loop proceeds directly to the
//     next cycle instead of bursting through missed ones.
//   - A cycle that outlives the interval is reported once per
//     occurrence as a drift warning.
//
// # Failure Handling
//
// A failed publish is logged exactly once per attempt and counted in
// kkdash_cycles_total{result="publish_error"}. The loop continues; the
// previously published file remains in place for readers.
//
// # Shutdown
//
// Run returns nil when ctx is canceled. An in-flight cycle always
// finishes first, so shutdown never leaves a half-written document.
//
// # Observability
//
//   - kkdash_cycles_total{result}: Cycles by result (ok, publish_error)
//   - kkdash_cycle_drift_total: Cycles that overran the interval
//   - kkdash_last_publish_timestamp_seconds: Unix time of the last
//     successful publish
//
// The OnCycle hook receives a CycleStats per cycle and feeds the
// readiness endpoint and tests.
package scheduler
