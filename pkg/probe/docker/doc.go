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

// Package docker lists containers through the local Docker daemon.
//
// The probe is optional: Detect checks for the runtime socket with a
// single stat call each cycle, and hosts without a runtime never get a
// containers section at all. A socket that exists but whose daemon is
// unreachable marks the section unavailable instead.
//
// # Reported Data
//
// For each container, running or stopped:
//   - Name (primary daemon name without the leading slash)
//   - Image in the familiar form docker ps prints, normalized through
//     distribution/reference
//   - Raw state string and a running flag
//
// Output is sorted by container name for stable snapshots.
//
// # Usage
//
//	p := &docker.Probe{SocketPath: "/var/run/docker.sock"}
//	if p.Detect(ctx) {
//	    containers, err := p.Collect(ctx)
//	    // ...
//	}
//
// The client honors DOCKER_HOST and related environment overrides and
// negotiates the API version with the daemon.
package docker
