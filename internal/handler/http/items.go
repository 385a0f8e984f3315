// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/campus-found/internal/app"
	"github.com/MKhiriev/campus-found/internal/utils"
	"github.com/MKhiriev/campus-found/models"
)

// reportItem records a found item. The caller, when authenticated, becomes
// the reporter. Only this response carries hidden_detail.
func (h *Handler) reportItem(w http.ResponseWriter, r *http.Request) {
	var req models.ReportItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ReportedBy = utils.GetUserIDFromContext(r.Context())

	reported, err := h.services.ItemService.Report(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, reported, http.StatusOK)
}

func (h *Handler) uploadItemPhoto(w http.ResponseWriter, r *http.Request) {
	itemID, err := requiredQueryInt64(r, "item_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	photo, err := readPhoto(w, r, h.maxPhotoBytes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.UploadPhoto(r.Context(), itemID, photo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var path string
	if item.ImagePath != nil {
		path = *item.ImagePath
	}
	utils.WriteJSON(w, models.UploadResponse{Message: app.MsgPhotoUploaded, Path: path}, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	buildingID, err := queryInt64(r, "building_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	securityPointID, err := queryInt64(r, "security_point_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	items, err := h.services.ItemService.List(r.Context(), models.ItemFilter{
		Category:        strings.TrimSpace(query.Get("category")),
		BuildingID:      buildingID,
		SecurityPointID: securityPointID,
		Status:          models.ItemStatus(strings.TrimSpace(query.Get("status"))),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(items), http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.Get(r.Context(), itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) confirmDrop(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.ConfirmDrop(r.Context(), itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.ItemActionResponse{Message: app.MsgDropConfirmed, Item: item}, http.StatusOK)
}
