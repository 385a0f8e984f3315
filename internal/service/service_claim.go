// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/campus-found/internal/imaging"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/metrics"
	"github.com/MKhiriev/campus-found/internal/store"
	"github.com/MKhiriev/campus-found/internal/validators"
	"github.com/MKhiriev/campus-found/models"
)

type claimService struct {
	claimRepository store.ClaimRepository
	itemRepository  store.ItemRepository
	photoStorage    store.PhotoStorage
	limiter         ClaimAttemptLimiter
	validator       validators.Validator

	maxPhotoBytes int64
	now           func() time.Time

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewClaimService builds a ClaimService. A nil limiter disables attempt
// limiting.
func NewClaimService(
	claimRepository store.ClaimRepository,
	itemRepository store.ItemRepository,
	photoStorage store.PhotoStorage,
	limiter ClaimAttemptLimiter,
	maxPhotoBytes int64,
	m *metrics.Metrics,
	logger *logger.Logger,
) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		itemRepository:  itemRepository,
		photoStorage:    photoStorage,
		limiter:         limiter,
		validator:       validators.NewClaimValidator(),
		maxPhotoBytes:   maxPhotoBytes,
		now:             time.Now,
		metrics:         m,
		logger:          logger,
	}
}

// RequestClaim records a pending claim when the answer matches the item's
// hidden detail.
//
// Returns the created claim or:
//   - ErrTooManyClaimAttempts when the attempt limiter rejects the caller.
//   - ErrItemNotFound for unknown items.
//   - ErrItemAlreadyClaimed when the item is no longer stored.
//   - ErrVerificationMismatch when the answer is wrong.
func (s *claimService) RequestClaim(ctx context.Context, req models.ClaimRequest) (models.Claim, error) {
	log := logger.FromContext(ctx).With().Str("func", "claimService.RequestClaim").Int64("item_id", req.ItemID).Logger()

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Claim{}, validationError(err)
	}

	if !s.allowAttempt(ctx, req) {
		log.Info().Str("client", req.ClientKey).Msg("claim attempts exhausted")
		s.metrics.ClaimRequested(metrics.OutcomeRateLimited)
		return models.Claim{}, ErrTooManyClaimAttempts
	}

	item, err := s.itemRepository.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			s.metrics.ClaimRequested(metrics.OutcomeUnknownItem)
		} else {
			s.metrics.ClaimRequested(metrics.OutcomeFailed)
		}
		return models.Claim{}, mapItemError(err)
	}

	if item.Status == models.ItemStatusClaimed {
		s.metrics.ClaimRequested(metrics.OutcomeNotStored)
		return models.Claim{}, ErrItemAlreadyClaimed
	}

	if subtle.ConstantTimeCompare([]byte(req.HiddenDetailEntered), []byte(item.HiddenDetail)) != 1 {
		log.Info().Msg("hidden detail mismatch")
		s.metrics.ClaimRequested(metrics.OutcomeMismatch)
		return models.Claim{}, ErrVerificationMismatch
	}

	claim, err := s.claimRepository.CreateClaim(ctx, models.Claim{
		ItemID:              req.ItemID,
		ClaimedBy:           req.ClaimedBy,
		RegistrationNumber:  strings.TrimSpace(req.RegistrationNumber),
		CollegeDetails:      strings.TrimSpace(req.CollegeDetails),
		ClaimTime:           s.now().UTC(),
		HiddenDetailEntered: req.HiddenDetailEntered,
	})
	if err != nil {
		if errors.Is(err, store.ErrItemNotStored) {
			s.metrics.ClaimRequested(metrics.OutcomeNotStored)
		} else {
			s.metrics.ClaimRequested(metrics.OutcomeFailed)
			log.Err(err).Msg("error creating claim")
		}
		return models.Claim{}, mapItemError(err)
	}

	s.metrics.ClaimRequested(metrics.OutcomeCreated)
	log.Info().Int64("claim_id", claim.ID).Msg("claim requested")
	return claim, nil
}

// allowAttempt consults the limiter. Limiter failures let the attempt
// through.
func (s *claimService) allowAttempt(ctx context.Context, req models.ClaimRequest) bool {
	if s.limiter == nil {
		return true
	}

	key := strconv.FormatInt(req.ItemID, 10) + ":" + req.ClientKey
	allowed, err := s.limiter.Allow(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "claimService.allowAttempt").Msg("claim attempt limiter unavailable")
		return true
	}
	return allowed
}

// VerifyClaim records the staff decision on a pending claim. A verified
// claim moves its item to claimed in the same transaction.
func (s *claimService) VerifyClaim(ctx context.Context, req models.VerifyClaimRequest) (models.Claim, error) {
	log := logger.FromContext(ctx).With().Str("func", "claimService.VerifyClaim").Int64("claim_id", req.ClaimID).Logger()

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Claim{}, validationError(err)
	}

	claim, err := s.claimRepository.VerifyClaim(ctx, req.ClaimID, req.VerificationResult, req.OfficerID)
	switch {
	case errors.Is(err, store.ErrClaimNotFound):
		return models.Claim{}, ErrClaimNotFound
	case errors.Is(err, store.ErrClaimAlreadyReviewed):
		return models.Claim{}, ErrClaimAlreadyReviewed
	case errors.Is(err, store.ErrItemNotStored):
		log.Info().Msg("item was claimed by another claim")
		return models.Claim{}, ErrItemAlreadyClaimed
	case err != nil:
		log.Err(err).Msg("error verifying claim")
		return models.Claim{}, fmt.Errorf("error verifying claim: %w", err)
	}

	s.metrics.ClaimReviewed(string(req.VerificationResult))
	log.Info().Str("result", string(req.VerificationResult)).Msg("claim reviewed")
	return claim, nil
}

// UploadPickupPhoto stores the photo taken at hand-over as
// pickup_{claim_id}{ext}. Only high-value items need one.
func (s *claimService) UploadPickupPhoto(ctx context.Context, claimID int64, photo models.Photo) (models.Claim, error) {
	log := logger.FromContext(ctx).With().Str("func", "claimService.UploadPickupPhoto").Int64("claim_id", claimID).Logger()

	claim, err := s.claimRepository.GetClaim(ctx, claimID)
	if errors.Is(err, store.ErrClaimNotFound) {
		return models.Claim{}, ErrClaimNotFound
	}
	if err != nil {
		return models.Claim{}, fmt.Errorf("error loading claim: %w", err)
	}

	item, err := s.itemRepository.GetItem(ctx, claim.ItemID)
	if err != nil {
		return models.Claim{}, mapItemError(err)
	}
	if !item.IsHighValue {
		return models.Claim{}, ErrPickupPhotoNotRequired
	}

	processed, err := imaging.Process(photo.Data, photo.FileName, s.maxPhotoBytes)
	if err != nil {
		log.Debug().Err(err).Msg("pickup photo rejected")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrInvalidPhoto, err)
	}

	name := fmt.Sprintf("pickup_%d%s", claimID, processed.Ext)
	path, err := s.photoStorage.SavePhoto(ctx, name, processed.Data, processed.MIME)
	if err != nil {
		log.Err(err).Msg("error saving pickup photo")
		return models.Claim{}, fmt.Errorf("error saving pickup photo: %w", err)
	}

	updated, err := s.claimRepository.SetPickupPhotoPath(ctx, claimID, path)
	if errors.Is(err, store.ErrClaimNotFound) {
		return models.Claim{}, ErrClaimNotFound
	}
	if err != nil {
		return models.Claim{}, fmt.Errorf("error saving pickup photo path: %w", err)
	}

	s.metrics.PhotoUploaded(photoKindPickup)
	return updated, nil
}

// List returns the claims of itemID, or all claims when itemID is zero,
// newest first.
func (s *claimService) List(ctx context.Context, itemID int64) ([]models.Claim, error) {
	claims, err := s.claimRepository.ListClaims(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "claimService.List").Msg("error listing claims")
		return nil, fmt.Errorf("error listing claims: %w", err)
	}
	return claims, nil
}
