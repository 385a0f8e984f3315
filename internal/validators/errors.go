// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyName       = errors.New("name is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	ErrInvalidEmail    = errors.New("a valid email is required")

	ErrEmptyTitle           = errors.New("title is required")
	ErrEmptyCategory        = errors.New("category is required")
	ErrEmptyHiddenDetail    = errors.New("hidden_detail is required")
	ErrEmptyFoundAt         = errors.New("found_at is required")
	ErrInvalidBuilding      = errors.New("building_id must be positive")
	ErrInvalidSecurityPoint = errors.New("security_point_id must be positive")
	ErrInvalidLatitude      = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude     = errors.New("longitude must be between -180 and 180")
	ErrInvalidStatus        = errors.New("status must be 'stored' or 'claimed'")

	ErrInvalidItemID             = errors.New("item_id must be positive")
	ErrInvalidClaimID            = errors.New("claim_id must be positive")
	ErrEmptyRegistrationNumber   = errors.New("registration_number is required")
	ErrEmptyCollegeDetails       = errors.New("college_details is required")
	ErrEmptyHiddenDetailEntered  = errors.New("hidden_detail_entered is required")
	ErrInvalidVerificationResult = errors.New("verification_result must be 'verified' or 'rejected'")
)
