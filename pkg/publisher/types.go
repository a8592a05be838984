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

// Package publisher writes assembled snapshots to their destinations.
//
// The package has two halves:
//
//   - AtomicFile: the daemon's publisher. It replaces the output file
//     atomically on every cycle so readers always see either the
//     previous complete document or the new one, never a partial
//     write. A failed publish leaves the previous file byte-for-byte
//     intact.
//   - Writer: a format-aware serializer (JSON, YAML, table) for
//     one-shot output to stdout or a file.
//
// Usage:
//
//	pub := publisher.NewAtomicFile("/opt/kkdash/www/data.json")
//	if err := pub.Publish(ctx, snap); err != nil {
//		// previous file is untouched; log and continue
//	}
//
// For HTTP responses:
//
//	publisher.RespondJSON(w, http.StatusOK, data)
//
// AtomicFile does not log its own failures. The caller owns the error
// and decides how loudly to report it.
package publisher

import (
	"context"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

// Publisher delivers one snapshot to its destination.
//
// Implementations must be safe to call repeatedly from a single
// goroutine; the scheduler invokes Publish once per cycle.
type Publisher interface {
	Publish(ctx context.Context, snap *snapshot.Snapshot) error
}

// Closer is an optional interface that Publishers and Writers can
// implement if they need to release resources.
type Closer interface {
	Close() error
}
