// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal router shaped like the API: plain routes,
// parameterised routes and a mounted sub-router.
func buildRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Get("/", ok)
	router.Route("/items", func(r chi.Router) {
		r.Get("/", ok)
		r.Get("/{id}", ok)
		r.Put("/{id}/confirm_drop", ok)
		r.Post("/report", ok)
	})
	router.Get("/claims", ok)
	router.Post("/claims", ok)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered route passes through", method: http.MethodGet, path: "/items/3", wantStatus: http.StatusOK},
		{name: "sub-router root", method: http.MethodGet, path: "/items", wantStatus: http.StatusOK},
		{name: "param route wrong method", method: http.MethodDelete, path: "/items/3", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
		{name: "nested param route", method: http.MethodGet, path: "/items/3/confirm_drop", wantStatus: http.StatusMethodNotAllowed, wantAllow: "PUT"},
		{name: "static route in sub-router", method: http.MethodPost, path: "/items/report", wantStatus: http.StatusOK},
		{name: "param route with another method", method: http.MethodPost, path: "/items/3", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
		{name: "multi method route", method: http.MethodPatch, path: "/claims", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
		{name: "unknown path", method: http.MethodGet, path: "/nowhere", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
		})
	}
}

func TestCheckHTTPMethod_JSONBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/items/7", nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		}()
	}
	wg.Wait()
}
