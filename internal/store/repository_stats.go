// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/models"
)

type statsRepository struct {
	*DB
	logger *logger.Logger
}

// NewStatsRepository constructs a [StatsRepository] backed by db.
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	return &statsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *statsRepository) GetStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := s.DB.QueryRowContext(ctx, getStats).Scan(
		&stats.TotalItems,
		&stats.StoredItems,
		&stats.ClaimedItems,
		&stats.PendingClaims,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "statsRepository.GetStats").Msg("failed to get stats")
		return models.Stats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}
