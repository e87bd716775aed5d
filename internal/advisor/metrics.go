package advisor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netadvisor_queries_total",
		Help: "Total recommendation queries served.",
	})

	emptyResultsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netadvisor_empty_results_total",
		Help: "Queries that produced no matching catalog record.",
	})

	augmenterFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netadvisor_augmenter_failures_total",
		Help: "Real-time search augmenter failures by reason.",
	}, []string{"reason"})
)
