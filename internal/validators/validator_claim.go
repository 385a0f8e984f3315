// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/campus-found/models"
)

// Field names accepted by [ClaimValidator].
const (
	FieldItemID              = "item_id"
	FieldClaimID             = "claim_id"
	FieldRegistrationNumber  = "registration_number"
	FieldCollegeDetails      = "college_details"
	FieldHiddenDetailEntered = "hidden_detail_entered"
	FieldVerificationResult  = "verification_result"
)

type ClaimValidator struct {
}

func NewClaimValidator() Validator {
	return &ClaimValidator{}
}

func (v *ClaimValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ClaimRequest:
		return v.validateClaimRequest(value, fields...)
	case *models.ClaimRequest:
		return v.validateClaimRequest(*value, fields...)

	case models.VerifyClaimRequest:
		return v.validateVerifyRequest(value, fields...)
	case *models.VerifyClaimRequest:
		return v.validateVerifyRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClaimValidator) validateClaimRequest(req models.ClaimRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldRegistrationNumber, FieldCollegeDetails, FieldHiddenDetailEntered}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if req.ItemID <= 0 {
				return ErrInvalidItemID
			}
		case FieldRegistrationNumber:
			if strings.TrimSpace(req.RegistrationNumber) == "" {
				return ErrEmptyRegistrationNumber
			}
		case FieldCollegeDetails:
			if strings.TrimSpace(req.CollegeDetails) == "" {
				return ErrEmptyCollegeDetails
			}
		case FieldHiddenDetailEntered:
			if req.HiddenDetailEntered == "" {
				return ErrEmptyHiddenDetailEntered
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClaimValidator) validateVerifyRequest(req models.VerifyClaimRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClaimID, FieldVerificationResult}
	}

	for _, f := range fields {
		switch f {
		case FieldClaimID:
			if req.ClaimID <= 0 {
				return ErrInvalidClaimID
			}
		case FieldVerificationResult:
			if !req.VerificationResult.Valid() {
				return ErrInvalidVerificationResult
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
