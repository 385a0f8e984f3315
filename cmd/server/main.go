// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/handler"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/metrics"
	"github.com/MKhiriev/campus-found/internal/ratelimit"
	"github.com/MKhiriev/campus-found/internal/server"
	"github.com/MKhiriev/campus-found/internal/service"
	"github.com/MKhiriev/campus-found/internal/store"
	"github.com/MKhiriev/campus-found/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// claimLimiter is the attempt limiter together with its release hook.
type claimLimiter interface {
	service.ClaimAttemptLimiter
	Close() error
}

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("campus-found-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Str("files_backend", cfg.Storage.Files.Backend).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeWithLog(log, "storages", storages.Close)

	limiter, err := newClaimLimiter(cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating claim attempt limiter")
	}
	defer closeWithLog(log, "claim attempt limiter", limiter.Close)

	m := metrics.New()
	m.SetBuildInfo(buildInfo.BuildVersion(), buildInfo.BuildCommit())

	services, err := service.NewServices(storages, limiter, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newClaimLimiter returns the Redis limiter when an address is configured and
// a no-op limiter otherwise.
func newClaimLimiter(cfg config.Redis, log *logger.Logger) (claimLimiter, error) {
	if cfg.Addr == "" {
		log.Info().Msg("redis address is empty, claim attempts are not limited")
		return ratelimit.Unlimited{}, nil
	}

	limiter, err := ratelimit.NewClaimAttemptLimiter(cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("addr", cfg.Addr).Msg("claim attempt limiter connected")
	return limiter, nil
}

func closeWithLog(log *logger.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Err(err).Str("resource", name).Msg("error closing resource")
	}
}
