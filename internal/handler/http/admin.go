// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/campus-found/internal/utils"
)

func (h *Handler) adminItems(w http.ResponseWriter, r *http.Request) {
	securityPointID, err := queryInt64(r, "security_point_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.AdminService.ListItems(r.Context(), securityPointID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(items), http.StatusOK)
}

func (h *Handler) adminClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.services.AdminService.ListClaims(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(claims), http.StatusOK)
}

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.AdminService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}
