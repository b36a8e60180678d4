package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var backendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_backend_requests_total",
		Help: "Total requests to the catalog backend by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

func observeRequest(operation, outcome string) {
	backendRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
