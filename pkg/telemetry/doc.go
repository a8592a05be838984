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

// Package telemetry implements the optional operational HTTP listener
// for the collector daemon.
//
// The listener surfaces the daemon's own health, not the collected
// system data. The snapshot document is published to a file by the
// publisher; this package only reports whether that pipeline is alive.
//
// # Architecture
//
// A single http.Server with the following components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking via the X-Request-Id header (github.com/google/uuid)
//   - Panic recovery for resilience
//   - Prometheus metrics for requests, latency, rejects, and recoveries
//   - Graceful shutdown handling
//
// # Usage
//
//	config := telemetry.NewConfig()
//	config.Addr = ":9090"
//	config.Version = "v1.0.0"
//
//	srv := telemetry.NewServer(config)
//	if err := srv.Start(ctx); err != nil {
//	    // bind or serve failure, treat as fatal
//	}
//
// The daemon calls srv.SetReady(true) after the first successful
// snapshot publish.
//
// # Endpoints
//
// GET /healthz - Liveness probe
//
//	Always returns 200 OK while the process can serve requests.
//
// GET /readyz - Readiness probe
//
//	Returns 503 until the first snapshot has been published, then 200.
//
// GET /metrics - Prometheus metrics
//
//	Exposes collector and HTTP metrics in Prometheus text format.
//
// All endpoints are read-only; any other method receives 405 with a
// structured error body.
//
// # Error Handling
//
// Rejected requests return a consistent JSON structure:
//
//	{
//	  "code": "METHOD_NOT_ALLOWED",
//	  "message": "method POST is not allowed, use GET",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-06-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes used by this listener:
//   - NOT_FOUND: No resource at the requested path (404)
//   - METHOD_NOT_ALLOWED: Non-GET request (405)
//   - RATE_LIMIT_EXCEEDED: Too many requests (429)
//   - INTERNAL: Recovered panic or listener failure (500)
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package telemetry
