// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is present
	// but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request decoding errors.
var (
	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
	ErrInvalidPathParam  = errors.New("invalid path parameter")
	ErrMissingFile       = errors.New("multipart field `file` is required")
)
