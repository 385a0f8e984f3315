// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// campus-found server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgAPIBanner is returned by GET /.
	MsgAPIBanner = "Campus FOUND System API"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a query parameter has the wrong type.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotAuthenticated is returned when a protected route is called
	// without a bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "Could not validate credentials"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "Incorrect username or password"

	// MsgStaffOnly is returned when a non-admin user calls a staff route.
	MsgStaffOnly = "Security staff access required"

	// MsgUsernameTaken and MsgEmailTaken are returned on registration conflicts.
	MsgUsernameTaken = "Username already registered"
	MsgEmailTaken    = "Email already registered"

	// MsgItemNotFound is returned when an item id does not exist.
	MsgItemNotFound = "Item not found"

	// MsgClaimNotFound is returned when a claim id does not exist.
	MsgClaimNotFound = "Claim not found"

	// MsgItemAlreadyClaimed is returned when a claim targets an item that has
	// already been handed over, or a drop is confirmed for such an item.
	MsgItemAlreadyClaimed = "Item already claimed"

	// MsgClaimAlreadyReviewed is returned when staff try to review a claim a
	// second time.
	MsgClaimAlreadyReviewed = "Claim already reviewed"

	// MsgVerificationMismatch is returned when the hidden detail answer does
	// not match the stored one.
	MsgVerificationMismatch = "Verification detail does not match"

	// MsgPickupPhotoNotRequired is returned when a pickup photo is uploaded
	// for an item that is not high-value.
	MsgPickupPhotoNotRequired = "Photo only required for high-value items"

	// MsgTooManyClaimAttempts is returned when the claim attempt limiter
	// rejects a request.
	MsgTooManyClaimAttempts = "Too many claim attempts, try again later"

	// MsgTooManyRequests is returned by the per-IP rate limiter.
	MsgTooManyRequests = "Too many requests"

	// MsgPhotoNotFound is returned when a stored photo cannot be opened.
	MsgPhotoNotFound = "Photo not found"

	// Success messages.
	MsgPhotoUploaded       = "Photo uploaded"
	MsgPickupPhotoUploaded = "Pickup photo uploaded"
	MsgClaimVerified       = "Claim verified"
	MsgClaimRejected       = "Claim rejected"
	MsgDropConfirmed       = "Drop confirmed"
)
