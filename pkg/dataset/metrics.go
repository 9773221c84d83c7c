// Copyright (c) 2026, The mcdata Authors.  All rights reserved.
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

package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datasetBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcdata_dataset_builds_total",
			Help: "Total number of dataset builds, by status",
		},
		[]string{"status"},
	)

	datasetBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mcdata_dataset_build_duration_seconds",
			Help:    "Time to load and normalize a dataset",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		},
		[]string{"platform"},
	)

	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mcdata_dataset_cache_hits_total",
			Help: "Total number of dataset cache hits",
		},
	)

	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mcdata_dataset_cache_misses_total",
			Help: "Total number of dataset cache misses",
		},
	)
)
