package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "np_upstream_requests_total",
			Help: "Total number of outbound requests by upstream service and outcome",
		},
		[]string{"service", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "np_upstream_request_duration_seconds",
			Help:    "Duration of outbound requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	HttpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "np_http_requests_total",
			Help: "Total number of inbound HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "np_http_request_duration_seconds",
			Help:    "Duration of inbound HTTP requests in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"route"},
	)

	PlacesReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "np_places_returned",
			Help:    "Number of places kept by the near filter per category",
			Buckets: []float64{0, 1, 2, 5, 10},
		},
		[]string{"category"},
	)
)

const (
	OUTCOME_SUCCESS = "success"
	OUTCOME_ERROR   = "error"
)
