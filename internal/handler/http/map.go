// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// generateMap renders into a buffer first so a failed render still gets a
// JSON error response.
func (h *Handler) generateMap(w http.ResponseWriter, r *http.Request) {
	var page bytes.Buffer
	if err := h.services.MapService.GenerateMap(r.Context(), &page); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}
