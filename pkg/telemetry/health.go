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

package telemetry

import (
	"net/http"
	"time"

	"github.com/kamilkobak/kkdash/pkg/publisher"
)

// HealthResponse is the body returned by the liveness and readiness
// endpoints.
type HealthResponse struct {
	Status        string    `json:"status"`
	Version       string    `json:"version,omitempty"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Timestamp     time.Time `json:"timestamp"`
	Reason        string    `json:"reason,omitempty"`
}

// handleHealth answers the liveness probe. It returns 200 for as long
// as the process is able to serve requests at all.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeMethodNotAllowed(w, r)
		return
	}

	publisher.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Version:       s.config.Version,
		UptimeSeconds: s.uptimeSeconds(),
		Timestamp:     time.Now().UTC(),
	})
}

// handleReady answers the readiness probe. The daemon flips the state
// to ready after the first successful snapshot publish, so a 200 here
// means the output file exists and is being refreshed.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeMethodNotAllowed(w, r)
		return
	}

	if !s.Ready() {
		publisher.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:        "not_ready",
			Version:       s.config.Version,
			UptimeSeconds: s.uptimeSeconds(),
			Timestamp:     time.Now().UTC(),
			Reason:        "no snapshot published yet",
		})
		return
	}

	publisher.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:        "ready",
		Version:       s.config.Version,
		UptimeSeconds: s.uptimeSeconds(),
		Timestamp:     time.Now().UTC(),
	})
}
