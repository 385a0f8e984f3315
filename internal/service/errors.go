// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by a service wraps exactly one of them,
// and the transport layer maps the class to a status code.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("invalid data provided")
	ErrPermission      = errors.New("permission denied")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrTooManyRequests = errors.New("too many requests")
)

var (
	ErrItemNotFound          = fmt.Errorf("item %w", ErrNotFound)
	ErrClaimNotFound         = fmt.Errorf("claim %w", ErrNotFound)
	ErrPhotoNotFound         = fmt.Errorf("photo %w", ErrNotFound)
	ErrSecurityPointNotFound = fmt.Errorf("security point %w", ErrNotFound)

	ErrUsernameTaken        = fmt.Errorf("%w: username already registered", ErrConflict)
	ErrEmailTaken           = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrItemAlreadyClaimed   = fmt.Errorf("%w: item already claimed", ErrConflict)
	ErrClaimAlreadyReviewed = fmt.Errorf("%w: claim already reviewed", ErrConflict)

	ErrVerificationMismatch   = fmt.Errorf("%w: verification detail does not match", ErrValidation)
	ErrPickupPhotoNotRequired = fmt.Errorf("%w: photo only required for high-value items", ErrValidation)
	ErrInvalidFoundAt         = fmt.Errorf("%w: found_at must be an ISO-8601 timestamp with a time zone", ErrValidation)
	ErrUnknownSecurityPoint   = fmt.Errorf("%w: unknown security point", ErrValidation)
	ErrInvalidPhoto           = fmt.Errorf("%w: invalid photo", ErrValidation)

	// ErrSecurityPointOutsideBuilding rejects reports whose security point
	// belongs to another building.
	ErrSecurityPointOutsideBuilding = fmt.Errorf("%w: security point does not belong to the building", ErrValidation)

	ErrEmailDomainNotAllowed = fmt.Errorf("%w: email domain is not allowed", ErrPermission)
	ErrStaffOnly             = fmt.Errorf("%w: security staff access required", ErrPermission)

	ErrInvalidCredentials      = fmt.Errorf("%w: incorrect username or password", ErrUnauthenticated)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: could not validate credentials", ErrUnauthenticated)

	ErrTooManyClaimAttempts = fmt.Errorf("%w: too many claim attempts", ErrTooManyRequests)
)

// Construction errors.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrItemCodeExhausted     = errors.New("could not generate a unique item code")
)

// validationError puts a validator error under the validation class.
func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
