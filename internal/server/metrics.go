package server

import "github.com/prometheus/client_golang/prometheus"

var (
	docstringsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstr_docstrings_generated_total",
			Help: "Total number of docstrings rendered successfully",
		},
		[]string{"style"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docstr_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstr_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(docstringsGenerated)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
}
