// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/campus-found/internal/app"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/service"
	"github.com/MKhiriev/campus-found/internal/utils"
)

type errorMapping struct {
	target error
	status int
	// detail is the response message; empty means the error text without its
	// class prefix.
	detail string
}

// errorStatusTable is checked in order, so specific errors come before the
// class they wrap.
var errorStatusTable = []errorMapping{
	{target: service.ErrItemNotFound, status: http.StatusNotFound, detail: app.MsgItemNotFound},
	{target: service.ErrClaimNotFound, status: http.StatusNotFound, detail: app.MsgClaimNotFound},
	{target: service.ErrPhotoNotFound, status: http.StatusNotFound, detail: app.MsgPhotoNotFound},

	{target: service.ErrUsernameTaken, status: http.StatusConflict, detail: app.MsgUsernameTaken},
	{target: service.ErrEmailTaken, status: http.StatusConflict, detail: app.MsgEmailTaken},
	{target: service.ErrItemAlreadyClaimed, status: http.StatusConflict, detail: app.MsgItemAlreadyClaimed},
	{target: service.ErrClaimAlreadyReviewed, status: http.StatusConflict, detail: app.MsgClaimAlreadyReviewed},

	{target: service.ErrVerificationMismatch, status: http.StatusBadRequest, detail: app.MsgVerificationMismatch},
	{target: service.ErrPickupPhotoNotRequired, status: http.StatusBadRequest, detail: app.MsgPickupPhotoNotRequired},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, detail: app.MsgInvalidLoginPassword},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, detail: app.MsgTokenIsExpiredOrInvalid},
	{target: service.ErrStaffOnly, status: http.StatusForbidden, detail: app.MsgStaffOnly},
	{target: service.ErrTooManyClaimAttempts, status: http.StatusTooManyRequests, detail: app.MsgTooManyClaimAttempts},

	{target: ErrInvalidJSON, status: http.StatusBadRequest, detail: app.MsgInvalidDataProvided},
	{target: ErrInvalidQueryParam, status: http.StatusBadRequest},
	{target: ErrInvalidPathParam, status: http.StatusBadRequest},
	{target: ErrMissingFile, status: http.StatusBadRequest},

	{target: service.ErrNotFound, status: http.StatusNotFound},
	{target: service.ErrConflict, status: http.StatusConflict},
	{target: service.ErrValidation, status: http.StatusBadRequest},
	{target: service.ErrPermission, status: http.StatusForbidden},
	{target: service.ErrUnauthenticated, status: http.StatusUnauthorized},
	{target: service.ErrTooManyRequests, status: http.StatusTooManyRequests},
}

// statusFromError returns the response status and detail for err. Unknown
// errors become 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, m := range errorStatusTable {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.detail != "" {
			return m.status, m.detail
		}
		return m.status, classlessMessage(err)
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// classlessMessage drops a leading "<class>: " from the error text.
func classlessMessage(err error) string {
	msg := err.Error()
	for _, class := range []error{
		service.ErrNotFound, service.ErrConflict, service.ErrValidation,
		service.ErrPermission, service.ErrUnauthenticated, service.ErrTooManyRequests,
	} {
		if rest, ok := strings.CutPrefix(msg, class.Error()+": "); ok {
			return rest
		}
	}
	return msg
}

// writeError logs server-side failures and writes {"detail": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	utils.WriteError(w, detail, status)
}
