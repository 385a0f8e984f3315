// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/models"
)

// claimRepository is the SQL implementation of [ClaimRepository]. Writes that
// depend on the item's status run inside a transaction that first matches the
// item row with a status guard, so concurrent requests cannot both succeed.
type claimRepository struct {
	*DB
	logger *logger.Logger
}

// NewClaimRepository constructs a [ClaimRepository] backed by db.
func NewClaimRepository(db *DB, logger *logger.Logger) ClaimRepository {
	return &claimRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateClaim inserts claim while its item is still stored.
//
// Returns [ErrItemNotFound] for an unknown item and [ErrItemNotStored] when the
// item has already been claimed.
func (c *claimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	var created models.Claim
	err := c.withRetry(ctx, func() error {
		var txErr error
		created, txErr = c.createClaimTx(ctx, claim)
		return txErr
	})
	if err != nil {
		return models.Claim{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "claimRepository.CreateClaim").
		Int64("claim_id", created.ID).
		Int64("item_id", created.ItemID).
		Msg("claim created")

	return created, nil
}

func (c *claimRepository) createClaimTx(ctx context.Context, claim models.Claim) (models.Claim, error) {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "claimRepository.CreateClaim").Msg("failed to begin transaction")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = requireStoredItem(ctx, tx, claim.ItemID); err != nil {
		return models.Claim{}, err
	}

	var created models.Claim
	row := tx.QueryRowContext(ctx, createClaim,
		claim.ItemID,
		claim.ClaimedBy,
		claim.RegistrationNumber,
		claim.CollegeDetails,
		claim.ClaimTime,
		claim.HiddenDetailEntered,
	)
	if err = scanClaim(row, &created); err != nil {
		log.Err(err).
			Str("func", "claimRepository.CreateClaim").
			Int64("item_id", claim.ItemID).
			Msg("failed to insert claim")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "claimRepository.CreateClaim").Msg("failed to commit transaction")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return created, nil
}

// requireStoredItem locks the item row when it is stored. Otherwise it tells
// a missing item apart from a claimed one.
func requireStoredItem(ctx context.Context, tx *sql.Tx, itemID int64) error {
	log := logger.FromContext(ctx)

	result, err := tx.ExecContext(ctx, lockStoredItem, itemID)
	if err != nil {
		log.Err(err).Str("func", "requireStoredItem").Int64("item_id", itemID).Msg("failed to lock item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	var count int64
	if err = tx.QueryRowContext(ctx, itemExists, itemID).Scan(&count); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count == 0 {
		return ErrItemNotFound
	}

	return ErrItemNotStored
}

func (c *claimRepository) GetClaim(ctx context.Context, claimID int64) (models.Claim, error) {
	log := logger.FromContext(ctx)

	var claim models.Claim
	if err := scanClaim(c.DB.QueryRowContext(ctx, getClaim, claimID), &claim); err != nil {
		if isNoRows(err) {
			return models.Claim{}, ErrClaimNotFound
		}
		log.Err(err).Str("func", "claimRepository.GetClaim").Int64("claim_id", claimID).Msg("failed to get claim")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return claim, nil
}

func (c *claimRepository) ListClaims(ctx context.Context, itemID int64) ([]models.Claim, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListClaimsQuery(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "claimRepository.ListClaims").Int64("item_id", itemID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	claims := make([]models.Claim, 0, 20)
	for rows.Next() {
		var claim models.Claim
		if scanErr := scanClaim(rows, &claim); scanErr != nil {
			log.Err(scanErr).Str("func", "claimRepository.ListClaims").Msg("failed to scan claim row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		claims = append(claims, claim)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "claimRepository.ListClaims").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return claims, nil
}

// VerifyClaim records result on a pending claim.
//
// For [models.VerificationVerified] the item moves from stored to claimed in
// the same transaction; if the item is no longer stored nothing is written
// and [ErrItemNotStored] is returned. A claim that already has a result yields
// [ErrClaimAlreadyReviewed].
func (c *claimRepository) VerifyClaim(ctx context.Context, claimID int64, result models.VerificationResult, officerID *int64) (models.Claim, error) {
	var reviewed models.Claim
	err := c.withRetry(ctx, func() error {
		var txErr error
		reviewed, txErr = c.verifyClaimTx(ctx, claimID, result, officerID)
		return txErr
	})
	if err != nil {
		return models.Claim{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "claimRepository.VerifyClaim").
		Int64("claim_id", reviewed.ID).
		Int64("item_id", reviewed.ItemID).
		Str("result", string(result)).
		Msg("claim reviewed")

	return reviewed, nil
}

func (c *claimRepository) verifyClaimTx(ctx context.Context, claimID int64, result models.VerificationResult, officerID *int64) (models.Claim, error) {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "claimRepository.VerifyClaim").Msg("failed to begin transaction")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var reviewed models.Claim
	err = scanClaim(tx.QueryRowContext(ctx, reviewClaim, string(result), officerID, claimID), &reviewed)
	if err != nil {
		if !isNoRows(err) {
			log.Err(err).Str("func", "claimRepository.VerifyClaim").Int64("claim_id", claimID).Msg("failed to review claim")
			return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		var count int64
		if err = tx.QueryRowContext(ctx, claimExists, claimID).Scan(&count); err != nil {
			return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if count == 0 {
			return models.Claim{}, ErrClaimNotFound
		}

		log.Warn().Str("func", "claimRepository.VerifyClaim").Int64("claim_id", claimID).Msg("claim already reviewed")
		return models.Claim{}, ErrClaimAlreadyReviewed
	}

	if result == models.VerificationVerified {
		res, execErr := tx.ExecContext(ctx, markItemClaimed, reviewed.ItemID)
		if execErr != nil {
			log.Err(execErr).Str("func", "claimRepository.VerifyClaim").Int64("item_id", reviewed.ItemID).Msg("failed to mark item claimed")
			return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		if affected == 0 {
			log.Warn().
				Str("func", "claimRepository.VerifyClaim").
				Int64("claim_id", claimID).
				Int64("item_id", reviewed.ItemID).
				Msg("item is no longer stored, rolling back review")
			return models.Claim{}, ErrItemNotStored
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "claimRepository.VerifyClaim").Msg("failed to commit transaction")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return reviewed, nil
}

func (c *claimRepository) SetPickupPhotoPath(ctx context.Context, claimID int64, path string) (models.Claim, error) {
	log := logger.FromContext(ctx)

	var claim models.Claim
	if err := scanClaim(c.DB.QueryRowContext(ctx, setPickupPhotoPath, path, claimID), &claim); err != nil {
		if isNoRows(err) {
			return models.Claim{}, ErrClaimNotFound
		}
		log.Err(err).Str("func", "claimRepository.SetPickupPhotoPath").Int64("claim_id", claimID).Msg("failed to set pickup photo path")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return claim, nil
}
