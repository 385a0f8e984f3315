// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/campus-found/internal/app"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/service"
	"github.com/MKhiriev/campus-found/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves the user
// via [service.AuthService.CurrentUser] and stores it in the request context
// with [utils.WithUser] before delegating to the next handler.
//
// Requests without a header are rejected with 401 "Not authenticated";
// malformed headers and invalid, expired or orphaned tokens with 401
// "Could not validate credentials".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.FromRequest(r).Debug().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}

		h.authenticate(w, r, authHeader, next)
	})
}

// optionalAuth lets anonymous requests through untouched, but a request that
// does present a token must present a valid one.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.authenticate(w, r, authHeader, next)
	})
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, authHeader string, next http.Handler) {
	log := logger.FromRequest(r)

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
		unauthorized(w, app.MsgTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), tokenString)
	if err != nil {
		status, detail := statusFromError(err)
		if status == http.StatusUnauthorized {
			log.Debug().Err(err).Msg("token rejected")
			unauthorized(w, detail)
			return
		}
		writeError(w, r, err)
		return
	}

	next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), &user)))
}

// staffOnly must run after auth. It rejects users that are not security
// staff with 403.
func (h *Handler) staffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}
		if !user.IsAdmin {
			logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("staff route refused")
			writeError(w, r, service.ErrStaffOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, detail, http.StatusUnauthorized)
}
