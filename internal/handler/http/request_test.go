// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt64(t *testing.T) {
	tests := []struct {
		query   string
		want    int64
		wantErr bool
	}{
		{query: "", want: 0},
		{query: "building_id=", want: 0},
		{query: "building_id=7", want: 7},
		{query: "building_id=x", wantErr: true},
		{query: "building_id=-3", wantErr: true},
		{query: "building_id=1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items?"+tt.query, nil)
			got, err := queryInt64(req, "building_id")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQueryParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredQueryInt64(t *testing.T) {
	_, err := requiredQueryInt64(httptest.NewRequest(http.MethodPost, "/claims/upload-pickup-photo", nil), "claim_id")
	assert.ErrorIs(t, err, ErrInvalidQueryParam)

	got, err := requiredQueryInt64(httptest.NewRequest(http.MethodPost, "/claims/upload-pickup-photo?claim_id=4", nil), "claim_id")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

func TestPathID(t *testing.T) {
	router := chi.NewRouter()
	var (
		got int64
		err error
	)
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, err = pathID(r, "id")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/12", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)

	for _, bad := range []string{"0", "-1", "abc"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+bad, nil))
		assert.ErrorIs(t, err, ErrInvalidPathParam, bad)
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/items/report", strings.NewReader(`{"title":"Umbrella"}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), req, &dst))
	assert.Equal(t, "Umbrella", dst.Title)

	req = httptest.NewRequest(http.MethodPost, "/items/report", strings.NewReader(`{"title":`))
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &dst), ErrInvalidJSON)

	huge := `{"title":"` + strings.Repeat("a", maxJSONBodyBytes) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/items/report", strings.NewReader(huge))
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &dst), ErrInvalidJSON)
}

func TestNonNil(t *testing.T) {
	var items []int
	assert.NotNil(t, nonNil(items))
	assert.Empty(t, nonNil(items))
	assert.Equal(t, []int{1}, nonNil([]int{1}))
}
