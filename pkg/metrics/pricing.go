package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the pricing decide HTTP handler
	PricingDecideLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_decide_latency_seconds",
		Help:    "Latency of the pricing decide handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of pricing decide requests served
	PricingDecideRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_decide_requests_total",
		Help: "Total number of pricing decide requests",
	})
)

func Init() {
	prometheus.MustRegister(
		PricingDecideLatency,
		PricingDecideRequests,
	)
}
