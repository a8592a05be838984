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

package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Collection cycle metrics
	cyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kkdash_cycles_total",
			Help: "Total number of collection cycles",
		},
		[]string{"result"}, // ok or publish_error
	)

	cycleDriftTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kkdash_cycle_drift_total",
			Help: "Cycles that ran longer than the collection interval",
		},
	)

	lastPublishTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kkdash_last_publish_timestamp_seconds",
			Help: "Unix time of the last successful snapshot publish",
		},
	)
)
