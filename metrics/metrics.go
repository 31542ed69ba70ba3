// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "content_api"

// Recorder holds the service metrics in its own registry, separate from
// prometheus.DefaultRegisterer.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by endpoint, method and status code.",
		}, []string{"endpoint", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by endpoint and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
	}

	r.registry.MustRegister(
		r.httpRequests,
		r.httpRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// RegisterDBStats exports connection pool statistics for conn under the
// db_name label.
func (r *Recorder) RegisterDBStats(conn *sql.DB, name string) error {
	if err := r.registry.Register(collectors.NewDBStatsCollector(conn, name)); err != nil {
		return fmt.Errorf("register db stats: %w", err)
	}
	return nil
}

// ObserveRequest records one finished HTTP request.
func (r *Recorder) ObserveRequest(endpoint, method string, status int, duration time.Duration) {
	r.httpRequests.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RequestCounter returns the request counter for one label combination.
func (r *Recorder) RequestCounter(endpoint, method string, status int) prometheus.Counter {
	return r.httpRequests.WithLabelValues(endpoint, method, strconv.Itoa(status))
}
