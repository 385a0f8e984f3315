// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name  string
		codes []int
		want  int
	}{
		{name: "single", codes: []int{http.StatusConflict}, want: http.StatusConflict},
		{name: "second call ignored", codes: []int{http.StatusNotFound, http.StatusOK}, want: http.StatusNotFound},
		{name: "too many requests", codes: []int{http.StatusTooManyRequests}, want: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.codes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.want, w.statusCode())
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n1, err := w.Write([]byte(`{"id":`))
	assert.NoError(t, err)
	n2, err := w.Write([]byte(`1}`))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status, "first Write implies 200")
	assert.Equal(t, n1+n2, w.size)
	assert.Equal(t, `{"id":1}`, rr.Body.String())
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.Equal(t, http.StatusOK, w.statusCode())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())

	w.Header().Set("X-Trace-ID", "abc")
	assert.Equal(t, "abc", rr.Header().Get("X-Trace-ID"))
}
