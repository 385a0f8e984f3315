// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_UsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/items/1", "/items/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.httpInFlight))
}

func TestDomainCounters(t *testing.T) {
	m := New()

	m.ItemReported()
	m.ItemReported()
	m.PhotoUploaded("item")
	m.ClaimRequested(OutcomeMismatch)
	m.ClaimReviewed("verified")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.itemsReported))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.photosUploaded.WithLabelValues("item")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.claimRequests.WithLabelValues(OutcomeMismatch)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.claimReviews.WithLabelValues("verified")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ItemReported()
		m.PhotoUploaded("pickup")
		m.ClaimRequested(OutcomeCreated)
		m.ClaimReviewed("rejected")
		m.SetBuildInfo("v1", "abc")
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, m.Instrument(next))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.SetBuildInfo("1.2.3", "deadbeef")
	m.ItemReported()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `campus_found_build_info{commit="deadbeef",version="1.2.3"} 1`)
	assert.Contains(t, string(body), "campus_found_items_reported_total 1")
}
