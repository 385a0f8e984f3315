// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors for non-2xx API responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError carries the status and the server's detail message. It unwraps to
// one of the sentinel errors above.
type APIError struct {
	Status int
	Detail string

	kind error
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.Detail
}

func (e *APIError) Unwrap() error {
	return e.kind
}
