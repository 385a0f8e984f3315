// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/campus-found/internal/utils"
)

func (h *Handler) listBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.services.LocationService.ListBuildings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(buildings), http.StatusOK)
}

// listSecurityPoints serves all points, or only those of ?building_id=.
func (h *Handler) listSecurityPoints(w http.ResponseWriter, r *http.Request) {
	buildingID, err := queryInt64(r, "building_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	points, err := h.services.LocationService.ListSecurityPoints(r.Context(), buildingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(points), http.StatusOK)
}
