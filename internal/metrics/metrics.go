// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "providerapi",
		Name:      "http_requests_total",
		Help:      "HTTP responses by route pattern and status code.",
	}, []string{"route", "status"})

	storageQuery = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "providerapi",
		Name:      "storage_query_seconds",
		Help:      "Latency of storage reads by operation and outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "outcome"})
)

func init() {
	Registry.MustRegister(
		httpRequests,
		storageQuery,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveRequest(route string, status int) {
	httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// ObserveQuery records one storage read started at start.
func ObserveQuery(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	storageQuery.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())
}
