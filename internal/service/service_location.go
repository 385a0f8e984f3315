// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/store"
	"github.com/MKhiriev/campus-found/models"
)

type locationService struct {
	locationRepository store.LocationRepository
	logger             *logger.Logger
}

func NewLocationService(locationRepository store.LocationRepository, logger *logger.Logger) LocationService {
	return &locationService{
		locationRepository: locationRepository,
		logger:             logger,
	}
}

func (s *locationService) ListBuildings(ctx context.Context) ([]models.Building, error) {
	buildings, err := s.locationRepository.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing buildings: %w", err)
	}
	return buildings, nil
}

// ListSecurityPoints returns the points of buildingID, or all points when it
// is zero.
func (s *locationService) ListSecurityPoints(ctx context.Context, buildingID int64) ([]models.SecurityPoint, error) {
	points, err := s.locationRepository.ListSecurityPoints(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("error listing security points: %w", err)
	}
	return points, nil
}
