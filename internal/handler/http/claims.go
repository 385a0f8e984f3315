// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/campus-found/internal/app"
	"github.com/MKhiriev/campus-found/internal/utils"
	"github.com/MKhiriev/campus-found/models"
)

func (h *Handler) requestClaim(w http.ResponseWriter, r *http.Request) {
	var req models.ClaimRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ClaimedBy = utils.GetUserIDFromContext(r.Context())
	req.ClientKey = utils.GetClientIPFromContext(r.Context())

	claim, err := h.services.ClaimService.RequestClaim(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, claim, http.StatusOK)
}

// verifyClaim records the reviewing officer from the bearer token.
func (h *Handler) verifyClaim(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyClaimRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.OfficerID = utils.GetUserIDFromContext(r.Context())

	claim, err := h.services.ClaimService.VerifyClaim(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := app.MsgClaimRejected
	if req.VerificationResult == models.VerificationVerified {
		message = app.MsgClaimVerified
	}
	utils.WriteJSON(w, models.ClaimActionResponse{Message: message, Claim: claim}, http.StatusOK)
}

func (h *Handler) uploadPickupPhoto(w http.ResponseWriter, r *http.Request) {
	claimID, err := requiredQueryInt64(r, "claim_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	photo, err := readPhoto(w, r, h.maxPhotoBytes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	claim, err := h.services.ClaimService.UploadPickupPhoto(r.Context(), claimID, photo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var path string
	if claim.PickupPhotoPath != nil {
		path = *claim.PickupPhotoPath
	}
	utils.WriteJSON(w, models.UploadResponse{Message: app.MsgPickupPhotoUploaded, Path: path}, http.StatusOK)
}

func (h *Handler) listClaims(w http.ResponseWriter, r *http.Request) {
	itemID, err := queryInt64(r, "item_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	claims, err := h.services.ClaimService.List(r.Context(), itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(claims), http.StatusOK)
}
