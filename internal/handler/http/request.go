// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/campus-found/models"
	"github.com/go-chi/chi/v5"
)

// maxJSONBodyBytes caps JSON request bodies.
const maxJSONBodyBytes = 1 << 20

// multipartOverhead is allowed on top of the photo size for form framing.
const multipartOverhead = 64 << 10

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// queryInt64 parses an optional integer query parameter; absent or empty
// values yield zero.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidQueryParam, name)
	}
	return value, nil
}

// requiredQueryInt64 is queryInt64 for mandatory positive ids.
func requiredQueryInt64(r *http.Request, name string) (int64, error) {
	value, err := queryInt64(r, name)
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidQueryParam, name)
	}
	return value, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidPathParam, name)
	}
	return value, nil
}

// readPhoto reads the multipart field "file". Bodies larger than maxBytes
// plus framing are cut off; the exact size check happens in the service.
func readPhoto(w http.ResponseWriter, r *http.Request, maxBytes int64) (models.Photo, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.Photo{}, fmt.Errorf("%w: upload exceeds %d bytes", ErrMissingFile, maxBytes)
		}
		return models.Photo{}, fmt.Errorf("%w: %w", ErrMissingFile, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrMissingFile, err)
	}

	return models.Photo{FileName: header.Filename, Data: data}, nil
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
