// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/metrics"
	"github.com/MKhiriev/campus-found/internal/service"
)

// defaultMaxPhotoBytes applies when the configuration leaves the upload cap
// unset.
const defaultMaxPhotoBytes = 5 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	allowedOrigins []string
	requestTimeout time.Duration
	maxPhotoBytes  int64
	ipLimiter      *ipRateLimiter

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil, in which case requests
// are not instrumented and /metrics is not served.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	maxPhotoBytes := cfg.Storage.Files.MaxPhotoBytes
	if maxPhotoBytes <= 0 {
		maxPhotoBytes = defaultMaxPhotoBytes
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		allowedOrigins: cfg.AllowedOrigins(),
		requestTimeout: cfg.Server.RequestTimeout,
		maxPhotoBytes:  maxPhotoBytes,
		ipLimiter:      newIPRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
		logger:         logger,
	}
}
