// Package metrics defines the Prometheus metrics for postcode lookups and
// distance requests. Metrics are registered on the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "postdist"

// LookupsTotal counts postcode lookups against the geocoding service.
// Label:
//   - result: "resolved" or "unresolved"
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of postcode lookups, by result.",
	},
	[]string{"result"},
)

// LookupDuration measures the round trip of a single lookup.
var LookupDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Duration of a single postcode lookup, including failures.",
		Buckets:   prometheus.DefBuckets,
	},
)

// DistanceRequestsTotal counts distance calculations.
// Label:
//   - result: "success" or "failure"
var DistanceRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "distance_requests_total",
		Help:      "Total number of postcode distance calculations, by result.",
	},
	[]string{"result"},
)

// OperationDuration measures internal operations timed with obs.Time.
// Labels:
//   - op: operation name (e.g. "postcodes.lookup", "records.sql.Record")
//   - result: "ok" or "error"
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of internal operations, by name and result.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op", "result"},
)
