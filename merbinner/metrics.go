/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package merbinner

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "merbinner"
const subSystem = "tree"

var (
	CommitTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "commit_total",
			Help:      "Number of commit operations.",
		},
	)
	CommitErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "commit_errors_total",
			Help:      "Number of commit operations rejected on invalid input.",
		},
	)
	CommittedItemsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "committed_items_total",
			Help:      "Number of items hashed into commitments.",
		},
	)
	CommitDurationSeconds = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "commit_duration_seconds",
			Help:      "Duration of the commit operation.",
		},
	)

	metricsList = []prometheus.Collector{
		CommitTotal,
		CommitErrorsTotal,
		CommittedItemsTotal,
		CommitDurationSeconds,
	}

	registerMetrics sync.Once
)

// RegisterMetrics registers all tree metrics in the given registry.
func RegisterMetrics(r *prometheus.Registry) {
	registerMetrics.Do(
		func() {
			for _, metric := range metricsList {
				r.MustRegister(metric)
			}
		},
	)
}
