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

package assembler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Snapshot assembly metrics
	snapshotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kkdash_snapshot_duration_seconds",
			Help:    "Time taken to assemble a complete snapshot",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	assembliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kkdash_snapshot_assemblies_total",
			Help: "Total number of snapshot assemblies",
		},
		[]string{"result"}, // complete or degraded
	)

	probeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kkdash_probe_duration_seconds",
			Help:    "Time taken by individual probes",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"probe"}, // host, cpu, memory, filesystems, services, users, containers, firewall
	)

	probeOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kkdash_probe_outcomes_total",
			Help: "Probe executions by outcome",
		},
		[]string{"probe", "outcome"}, // outcome: ok, unavailable, timeout, skipped
	)

	snapshotSections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kkdash_snapshot_sections",
			Help: "Number of sections present in the last assembled snapshot",
		},
	)
)
