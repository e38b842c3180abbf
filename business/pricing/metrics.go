package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_decisions_total",
			Help: "Count of pricing decisions by strategy and anchor outcome.",
		},
		[]string{"strategy", "outcome"},
	)

	FetchFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_fetch_failures_total",
			Help: "Count of competitor offer fetch failures by channel.",
		},
		[]string{"channel"},
	)
)

func init() {
	prometheus.MustRegister(DecisionsTotal, FetchFailuresTotal)
}
