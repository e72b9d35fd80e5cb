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

package singleton

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	constructionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patterns_singleton_constructions_total",
			Help: "Total number of singleton factory invocations",
		},
		[]string{"holder", "status"}, // success or error
	)

	constructionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "patterns_singleton_construction_duration_seconds",
			Help:    "Time spent inside singleton factories",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 5},
		},
		[]string{"holder"},
	)

	resetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patterns_singleton_resets_total",
			Help: "Total number of singleton resets that dropped an instance",
		},
		[]string{"holder"},
	)
)
