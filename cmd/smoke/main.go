// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/campus-found/internal/adapter"
	"github.com/MKhiriev/campus-found/internal/client"
	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
)

func main() {
	log := logger.NewConsoleLogger("campus-found-smoke", os.Stderr)

	cfg, err := config.GetSmokeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPCampusAPI(cfg.APIAddress, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var run client.Client = client.NewSmokeRun(api, cfg, log)
	if err = run.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Str("api", cfg.APIAddress).Msg("smoke run failed")
	}
}
