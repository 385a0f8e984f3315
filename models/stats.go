// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Stats is the admin dashboard summary.
type Stats struct {
	TotalItems    int64 `json:"total_items"`
	StoredItems   int64 `json:"stored_items"`
	ClaimedItems  int64 `json:"claimed_items"`
	PendingClaims int64 `json:"pending_claims"`
}
