// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VerificationResult is the staff decision on a claim.
type VerificationResult string

const (
	// VerificationVerified approves the claim and hands the item over.
	VerificationVerified VerificationResult = "verified"

	// VerificationRejected declines the claim; the item stays stored.
	VerificationRejected VerificationResult = "rejected"
)

// Valid reports whether r is a decision staff may submit.
func (r VerificationResult) Valid() bool {
	return r == VerificationVerified || r == VerificationRejected
}

// Claim is one claimant's attempt to recover an item.
// VerificationResult is nil while the claim is pending.
type Claim struct {
	ID                  int64               `json:"id"`
	ItemID              int64               `json:"item_id"`
	ClaimedBy           *int64              `json:"claimed_by"`
	RegistrationNumber  string              `json:"registration_number"`
	CollegeDetails      string              `json:"college_details"`
	ClaimTime           time.Time           `json:"claim_time"`
	HiddenDetailEntered string              `json:"-"`
	VerificationResult  *VerificationResult `json:"verification_result"`
	PickupPhotoPath     *string             `json:"pickup_photo_path"`
	SecurityOfficerID   *int64              `json:"security_officer_id"`
}

// TableName returns the name of the database table
// associated with the Claim model.
func (c Claim) TableName() string {
	return "claims"
}

// IsPending reports whether staff has not reviewed the claim yet.
func (c Claim) IsPending() bool {
	return c.VerificationResult == nil
}

// ClaimRequest is the body of POST /claims/request.
type ClaimRequest struct {
	ItemID              int64  `json:"item_id"`
	RegistrationNumber  string `json:"registration_number"`
	CollegeDetails      string `json:"college_details"`
	HiddenDetailEntered string `json:"hidden_detail_entered"`

	// ClaimedBy and ClientKey are filled by the transport layer.
	ClaimedBy *int64 `json:"-"`
	ClientKey string `json:"-"`
}

// VerifyClaimRequest is the body of POST /claims/verify.
type VerifyClaimRequest struct {
	ClaimID            int64              `json:"claim_id"`
	VerificationResult VerificationResult `json:"verification_result"`

	// OfficerID is the reviewing staff member taken from the bearer token.
	OfficerID *int64 `json:"-"`
}
