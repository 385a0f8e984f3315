// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-found/internal/logger"
)

// sampleLocations lists the campus buildings and the security points inside
// each of them, in insertion order.
var sampleLocations = []struct {
	building       string
	securityPoints []string
}{
	{building: "Main Building", securityPoints: []string{"Main Entrance", "Reception Desk"}},
	{building: "Science Block", securityPoints: []string{"Lab Security", "Science Block Reception"}},
	{building: "Library", securityPoints: []string{"Library Front Desk"}},
	{building: "Engineering Block", securityPoints: []string{"Engineering Reception"}},
	{building: "Administration Building", securityPoints: []string{"Admin Reception"}},
}

// Seed inserts the sample buildings and security points when the buildings
// table is empty. It returns true if anything was inserted.
func (db *DB) Seed(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := db.QueryRowContext(ctx, countBuildings).Scan(&count); err != nil {
		log.Err(err).Str("func", "DB.Seed").Msg("failed to count buildings")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count > 0 {
		log.Debug().Str("func", "DB.Seed").Int64("buildings", count).Msg("locations already present, skipping seed")
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, location := range sampleLocations {
		var buildingID int64
		if err = tx.QueryRowContext(ctx, insertBuilding, location.building).Scan(&buildingID); err != nil {
			log.Err(err).Str("func", "DB.Seed").Str("building", location.building).Msg("failed to insert building")
			return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, point := range location.securityPoints {
			if _, err = tx.ExecContext(ctx, insertSecurityPoint, buildingID, point); err != nil {
				log.Err(err).Str("func", "DB.Seed").Str("security_point", point).Msg("failed to insert security point")
				return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Str("func", "DB.Seed").Int("buildings", len(sampleLocations)).Msg("sample locations seeded")
	return true, nil
}
