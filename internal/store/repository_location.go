// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/models"
)

type locationRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocationRepository constructs a [LocationRepository] over buildings and
// security points.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	return &locationRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *locationRepository) ListBuildings(ctx context.Context) ([]models.Building, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listBuildings)
	if err != nil {
		log.Err(err).Str("func", "locationRepository.ListBuildings").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	buildings := make([]models.Building, 0, 8)
	for rows.Next() {
		var building models.Building
		if scanErr := rows.Scan(&building.ID, &building.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "locationRepository.ListBuildings").Msg("failed to scan building row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		buildings = append(buildings, building)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "locationRepository.ListBuildings").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return buildings, nil
}

func (l *locationRepository) ListSecurityPoints(ctx context.Context, buildingID int64) ([]models.SecurityPoint, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSecurityPointsQuery(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.ListSecurityPoints").
			Int64("building_id", buildingID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	points := make([]models.SecurityPoint, 0, 8)
	for rows.Next() {
		var point models.SecurityPoint
		if scanErr := rows.Scan(&point.ID, &point.BuildingID, &point.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "locationRepository.ListSecurityPoints").Msg("failed to scan security point row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		points = append(points, point)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "locationRepository.ListSecurityPoints").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return points, nil
}

func (l *locationRepository) GetSecurityPoint(ctx context.Context, securityPointID int64) (models.SecurityPoint, error) {
	log := logger.FromContext(ctx)

	var point models.SecurityPoint
	err := l.DB.QueryRowContext(ctx, getSecurityPoint, securityPointID).Scan(&point.ID, &point.BuildingID, &point.Name)
	if err != nil {
		if isNoRows(err) {
			return models.SecurityPoint{}, ErrSecurityPointNotFound
		}
		log.Err(err).
			Str("func", "locationRepository.GetSecurityPoint").
			Int64("security_point_id", securityPointID).
			Msg("failed to get security point")
		return models.SecurityPoint{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return point, nil
}
