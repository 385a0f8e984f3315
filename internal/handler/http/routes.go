// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.Instrument)
	router.Use(h.withCORS())
	router.Use(h.withRateLimit)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// already compressed or self-negotiating responses
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}
	router.Get("/uploads/{name}", h.servePhoto)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/", h.banner)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/buildings", func(r chi.Router) {
			r.Get("/", h.listBuildings)
			r.Get("/security-points", h.listSecurityPoints)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Get("/{id}", h.getItem)
			r.With(h.optionalAuth).Post("/report", h.reportItem)
			r.Post("/report/upload-photo", h.uploadItemPhoto)
			r.With(h.auth, h.staffOnly).Put("/{id}/confirm_drop", h.confirmDrop)
		})

		r.Route("/claims", func(r chi.Router) {
			r.Get("/", h.listClaims)
			r.With(h.optionalAuth).Post("/request", h.requestClaim)

			r.Group(func(r chi.Router) {
				r.Use(h.auth, h.staffOnly)
				r.Post("/verify", h.verifyClaim)
				r.Post("/upload-pickup-photo", h.uploadPickupPhoto)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth, h.staffOnly)
			r.Get("/items", h.adminItems)
			r.Get("/claims", h.adminClaims)
			r.Get("/stats", h.adminStats)
		})

		r.Get("/map/generate", h.generateMap)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
