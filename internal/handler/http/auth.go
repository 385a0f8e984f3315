// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/campus-found/internal/app"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/utils"
	"github.com/MKhiriev/campus-found/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Bool("is_admin", user.IsAdmin).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusOK)
}

// login returns the token in the body and in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+resp.AccessToken)
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w, app.MsgNotAuthenticated)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}
