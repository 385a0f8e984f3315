// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/metrics"
	"github.com/MKhiriev/campus-found/internal/store"
)

type Services struct {
	AuthService     AuthService
	LocationService LocationService
	ItemService     ItemService
	ClaimService    ClaimService
	AdminService    AdminService
	MapService      MapService
	PhotoService    PhotoService
	AppInfoService  AppInfoService
}

// NewServices wires every service to the storages. limiter may be nil, which
// disables claim attempt limiting; m may be nil as well.
func NewServices(storages *store.Storages, limiter ClaimAttemptLimiter, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	maxPhotoBytes := cfg.Storage.Files.MaxPhotoBytes

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.Auth, logger),
		LocationService: NewLocationService(storages.LocationRepository, logger),
		ItemService:     NewItemService(storages.ItemRepository, storages.LocationRepository, storages.PhotoStorage, maxPhotoBytes, m, logger),
		ClaimService:    NewClaimService(storages.ClaimRepository, storages.ItemRepository, storages.PhotoStorage, limiter, maxPhotoBytes, m, logger),
		AdminService:    NewAdminService(storages.StatsRepository, storages.ItemRepository, storages.ClaimRepository, logger),
		MapService:      NewMapService(storages.ItemRepository, cfg.App.Map, logger),
		PhotoService:    NewPhotoService(storages.PhotoStorage, logger),
		AppInfoService:  appInfoService,
	}, nil
}
