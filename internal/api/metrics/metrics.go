// Package metrics defines the custom Prometheus metrics for the movie
// catalog API. It is the single source of truth for metric names, labels,
// and help strings; metrics register themselves with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success", "conflict", or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// MoviesCreatedTotal counts movies added to the catalog.
// Label:
//   - source: "api" (direct creation) or "sync" (external catalog sync)
var MoviesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_created_total",
		Help:      "Total number of movies added to the catalog, by source.",
	},
	[]string{"source"},
)

// SyncRunsTotal counts catalog sync runs.
// Label:
//   - result: "success", "conflict" (already running), or "failure"
var SyncRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Total number of catalog sync runs, by result.",
	},
	[]string{"result"},
)

// SyncDuration measures how long a full sync run takes, fetch included.
var SyncDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of catalog sync runs.",
		Buckets:   prometheus.DefBuckets,
	},
)
