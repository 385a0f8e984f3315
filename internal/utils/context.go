// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, password hashing,
// JWT token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/campus-found/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserCtxKey stores the authenticated *models.User.
	UserCtxKey = contextKey("user")

	// ClientIPCtxKey stores the caller's IP address as resolved by the
	// rate limit middleware.
	ClientIPCtxKey = contextKey("clientIP")
)

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns ok == false when the request is anonymous.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// GetUserIDFromContext returns a pointer to the authenticated user's id, or
// nil for anonymous requests. Handy for nullable "reported_by" style columns.
func GetUserIDFromContext(ctx context.Context) *int64 {
	user, ok := GetUserFromContext(ctx)
	if !ok {
		return nil
	}
	id := user.UserID
	return &id
}

// WithClientIP returns a copy of ctx carrying the caller's IP.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPCtxKey, ip)
}

// GetClientIPFromContext returns the caller's IP or an empty string.
func GetClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ClientIPCtxKey).(string)
	return ip
}
