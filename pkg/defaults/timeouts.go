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

package defaults

import "time"

// Collection timing for the snapshot loop.
const (
	// CollectionInterval is the delay between snapshot cycles.
	CollectionInterval = 5 * time.Second

	// ProbeTimeout is the per-probe collection timeout. It must stay
	// below CollectionInterval so a stuck probe cannot push a cycle
	// past its slot.
	ProbeTimeout = 3 * time.Second
)

// Server timeouts for the telemetry HTTP listener.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for one-shot commands.
const (
	// CollectCommandTimeout bounds a one-shot collect invocation.
	CollectCommandTimeout = 30 * time.Second
)
