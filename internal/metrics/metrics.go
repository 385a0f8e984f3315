// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus HTTP and domain metrics.
//
// All recording methods are safe to call on a nil *Metrics, so services can be
// constructed without metrics in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Claim request outcomes used as label values.
const (
	OutcomeCreated      = "created"
	OutcomeMismatch     = "mismatch"
	OutcomeNotStored    = "not_stored"
	OutcomeRateLimited  = "rate_limited"
	OutcomeUnknownItem  = "unknown_item"
	OutcomeFailed       = "failed"
	unmatchedRouteLabel = "unmatched"
)

// Metrics owns a private registry and every collector of the server.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	itemsReported  prometheus.Counter
	photosUploaded *prometheus.CounterVec
	claimRequests  *prometheus.CounterVec
	claimReviews   *prometheus.CounterVec
	buildInfo      *prometheus.GaugeVec
}

// New creates and registers every collector, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		itemsReported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campus_found_items_reported_total",
			Help: "Found items reported.",
		}),
		photosUploaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_found_photos_uploaded_total",
				Help: "Photos stored, by kind.",
			},
			[]string{"kind"},
		),
		claimRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_found_claim_requests_total",
				Help: "Claim requests, by outcome.",
			},
			[]string{"outcome"},
		),
		claimReviews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_found_claim_reviews_total",
				Help: "Claim reviews recorded by staff, by result.",
			},
			[]string{"result"},
		),
		buildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "campus_found_build_info",
				Help: "Build information.",
			},
			[]string{"version", "commit"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.itemsReported,
		m.photosUploaded,
		m.claimRequests,
		m.claimReviews,
		m.buildInfo,
	)

	return m
}

// Registry returns the registry backing the metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetBuildInfo publishes build_info{version, commit} 1.
func (m *Metrics) SetBuildInfo(version, commit string) {
	if m == nil {
		return
	}
	m.buildInfo.WithLabelValues(version, commit).Set(1)
}

func (m *Metrics) ItemReported() {
	if m == nil {
		return
	}
	m.itemsReported.Inc()
}

// PhotoUploaded counts a stored photo; kind is "item" or "pickup".
func (m *Metrics) PhotoUploaded(kind string) {
	if m == nil {
		return
	}
	m.photosUploaded.WithLabelValues(kind).Inc()
}

func (m *Metrics) ClaimRequested(outcome string) {
	if m == nil {
		return
	}
	m.claimRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ClaimReviewed(result string) {
	if m == nil {
		return
	}
	m.claimReviews.WithLabelValues(result).Inc()
}

// Instrument records in-flight requests, totals and latency per chi route
// pattern. Unmatched paths share one label to keep cardinality bounded.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := unmatchedRouteLabel
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := strconv.Itoa(sw.code)

		m.httpRequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
