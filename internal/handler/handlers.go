// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers served by the campus-found
// server.
package handler

import (
	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/handler/http"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/metrics"
	"github.com/MKhiriev/campus-found/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler when an HTTP address is configured.
// m may be nil.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, m, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
