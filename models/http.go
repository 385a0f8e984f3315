// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// UploadResponse acknowledges a stored photo.
type UploadResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// ItemActionResponse wraps an item after a state change.
type ItemActionResponse struct {
	Message string `json:"message"`
	Item    Item   `json:"item"`
}

// ClaimActionResponse wraps a claim after a review.
type ClaimActionResponse struct {
	Message string `json:"message"`
	Claim   Claim  `json:"claim"`
}

// Photo is an uploaded image ready to be processed and stored.
type Photo struct {
	// FileName is the client-side name; only its extension is used.
	FileName string
	Data     []byte
}
