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

// adminService serves the read-only staff dashboard.
type adminService struct {
	statsRepository store.StatsRepository
	itemRepository  store.ItemRepository
	claimRepository store.ClaimRepository

	logger *logger.Logger
}

func NewAdminService(statsRepository store.StatsRepository, itemRepository store.ItemRepository, claimRepository store.ClaimRepository, logger *logger.Logger) AdminService {
	return &adminService{
		statsRepository: statsRepository,
		itemRepository:  itemRepository,
		claimRepository: claimRepository,
		logger:          logger,
	}
}

func (s *adminService) Stats(ctx context.Context) (models.Stats, error) {
	stats, err := s.statsRepository.GetStats(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adminService.Stats").Msg("error collecting stats")
		return models.Stats{}, fmt.Errorf("error collecting stats: %w", err)
	}
	return stats, nil
}

// ListItems returns the items kept at securityPointID, or every item when it
// is zero.
func (s *adminService) ListItems(ctx context.Context, securityPointID int64) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx, models.ItemFilter{SecurityPointID: securityPointID})
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return items, nil
}

func (s *adminService) ListClaims(ctx context.Context) ([]models.Claim, error) {
	claims, err := s.claimRepository.ListClaims(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("error listing claims: %w", err)
	}
	return claims, nil
}
