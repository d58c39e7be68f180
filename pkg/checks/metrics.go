// Copyright (c) 2025, Fiberforge.  All rights reserved.
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

package checks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Check execution metrics
	checkRunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibercheck_check_runs_total",
			Help: "Total number of check executions",
		},
		[]string{"check", "status"}, // status: passed, failed, or error
	)

	checkRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fibercheck_check_duration_seconds",
			Help:    "Time taken by individual checks",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"check"},
	)

	validationRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fibercheck_validation_duration_seconds",
			Help:    "Time taken to run a complete validation pass",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	validationViolations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fibercheck_validation_violations",
			Help: "Number of violations in the last validation pass",
		},
	)
)
