// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/go-chi/chi/v5"
)

// servePhoto streams a stored photo from the configured photo storage.
func (h *Handler) servePhoto(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	photo, contentType, err := h.services.PhotoService.OpenPhoto(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer photo.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, photo); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("name", name).Msg("photo download interrupted")
	}
}
