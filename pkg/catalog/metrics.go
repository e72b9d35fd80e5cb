// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess  = "success"
	statusError    = "error"
	statusTimeout  = "timeout"
	statusCanceled = "canceled"
)

var (
	exampleRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patterns_example_runs_total",
			Help: "Total number of example runs",
		},
		[]string{"example", "status"}, // success, error or timeout
	)

	exampleRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "patterns_example_run_duration_seconds",
			Help:    "Time taken by individual example runs",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 5},
		},
		[]string{"example"},
	)
)
