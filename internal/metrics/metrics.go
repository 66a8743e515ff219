package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_search_requests_total",
			Help: "Total number of search requests by outcome",
		},
		[]string{"outcome"},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "nlp_search_duration_seconds",
			Help: "End-to-end search request duration in seconds",
		},
	)

	InterpreterFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_interpreter_fallbacks_total",
			Help: "Times the query interpreter fell back to the default filter",
		},
		[]string{"reason"},
	)

	CatalogFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nlp_catalog_fetch_failures_total",
			Help: "Failed product catalog fetches",
		},
	)
)
