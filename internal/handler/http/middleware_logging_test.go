// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeLoggedRequest attaches a buffer-backed logger the way withTraceID does.
func makeLoggedRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "list items",
			method: http.MethodGet,
			target: "/items?status=stored",
			status: http.StatusOK,
			body:   "[]",
			wantContains: []string{
				`"level":"info"`, `"method":"GET"`, `"uri":"/items?status=stored"`, `"status":200`, `"size":2`, `"duration":`,
			},
		},
		{
			name:         "claim conflict",
			method:       http.MethodPost,
			target:       "/claims/request",
			status:       http.StatusConflict,
			body:         `{"detail":"Item already claimed"}`,
			wantContains: []string{`"level":"info"`, `"status":409`},
		},
		{
			name:         "server error is logged as error",
			method:       http.MethodGet,
			target:       "/admin/stats",
			status:       http.StatusInternalServerError,
			body:         `{"detail":"internal server error"}`,
			wantContains: []string{`"level":"error"`, `"status":500`},
		},
		{
			name:         "no content",
			method:       http.MethodPut,
			target:       "/items/1/confirm_drop",
			status:       http.StatusNoContent,
			wantContains: []string{`"method":"PUT"`, `"status":204`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			(&Handler{}).withLogging(next).ServeHTTP(rr, makeLoggedRequest(tt.method, tt.target, &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer

	t.Run("write without header", func(t *testing.T) {
		buf.Reset()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
		})
		(&Handler{}).withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/map/generate", &buf))
		assert.Contains(t, buf.String(), `"status":200`)
		assert.Contains(t, buf.String(), `"size":1024`)
	})

	t.Run("handler writes nothing", func(t *testing.T) {
		buf.Reset()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		(&Handler{}).withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/", &buf))
		assert.Contains(t, buf.String(), `"status":200`)
	})
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		(&Handler{}).withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/", &buf))
	})
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/buildings", nil)
	req = req.WithContext(logger.Nop().Logger.WithContext(req.Context()))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		(&Handler{}).withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
