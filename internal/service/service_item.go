// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/campus-found/internal/imaging"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/metrics"
	"github.com/MKhiriev/campus-found/internal/store"
	"github.com/MKhiriev/campus-found/internal/validators"
	"github.com/MKhiriev/campus-found/models"
)

// itemCodeAttempts bounds retries after an item code collision.
const itemCodeAttempts = 3

// Photo kinds used as metric labels.
const (
	photoKindItem   = "item"
	photoKindPickup = "pickup"
)

// foundAtLayouts are the accepted found_at formats. All of them require a
// zone offset.
var foundAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04Z07:00",
}

type itemService struct {
	itemRepository     store.ItemRepository
	locationRepository store.LocationRepository
	photoStorage       store.PhotoStorage
	validator          validators.Validator

	maxPhotoBytes int64
	newItemCode   func() (string, error)

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewItemService(
	itemRepository store.ItemRepository,
	locationRepository store.LocationRepository,
	photoStorage store.PhotoStorage,
	maxPhotoBytes int64,
	m *metrics.Metrics,
	logger *logger.Logger,
) ItemService {
	return &itemService{
		itemRepository:     itemRepository,
		locationRepository: locationRepository,
		photoStorage:       photoStorage,
		validator:          validators.NewItemValidator(),
		maxPhotoBytes:      maxPhotoBytes,
		newItemCode:        generateItemCode,
		metrics:            m,
		logger:             logger,
	}
}

// Report validates req, checks that the security point belongs to the
// building and stores the item with a fresh code in the stored state.
func (s *itemService) Report(ctx context.Context, req models.ReportItemRequest) (models.ReportedItem, error) {
	log := logger.FromContext(ctx).With().Str("func", "itemService.Report").Logger()

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid item report")
		return models.ReportedItem{}, validationError(err)
	}

	foundAt, err := ParseFoundAt(req.FoundAt)
	if err != nil {
		return models.ReportedItem{}, err
	}

	point, err := s.locationRepository.GetSecurityPoint(ctx, req.SecurityPointID)
	if errors.Is(err, store.ErrSecurityPointNotFound) {
		return models.ReportedItem{}, ErrUnknownSecurityPoint
	}
	if err != nil {
		log.Err(err).Int64("security_point_id", req.SecurityPointID).Msg("error loading security point")
		return models.ReportedItem{}, fmt.Errorf("error loading security point: %w", err)
	}
	if point.BuildingID != req.BuildingID {
		return models.ReportedItem{}, ErrSecurityPointOutsideBuilding
	}

	item := models.Item{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Category:        strings.TrimSpace(req.Category),
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		BuildingID:      req.BuildingID,
		SecurityPointID: req.SecurityPointID,
		PlaceDetails:    req.PlaceDetails,
		FoundAt:         foundAt,
		ReportedBy:      req.ReportedBy,
		HiddenDetail:    req.HiddenDetail,
		Status:          models.ItemStatusStored,
		IsHighValue:     req.IsHighValue,
	}

	for attempt := 1; attempt <= itemCodeAttempts; attempt++ {
		if item.ItemCode, err = s.newItemCode(); err != nil {
			return models.ReportedItem{}, fmt.Errorf("error generating item code: %w", err)
		}

		created, createErr := s.itemRepository.CreateItem(ctx, item)
		if errors.Is(createErr, store.ErrItemCodeConflict) {
			log.Warn().Str("item_code", item.ItemCode).Int("attempt", attempt).Msg("item code collision")
			continue
		}
		if createErr != nil {
			log.Err(createErr).Msg("error creating item")
			return models.ReportedItem{}, fmt.Errorf("error creating item: %w", createErr)
		}

		s.metrics.ItemReported()
		log.Info().Int64("item_id", created.ID).Str("item_code", created.ItemCode).Msg("item reported")
		return models.ReportedItem{Item: created, HiddenDetail: created.HiddenDetail}, nil
	}

	return models.ReportedItem{}, ErrItemCodeExhausted
}

// UploadPhoto stores the item photo as {item_code}{ext}, replacing any
// previous one.
func (s *itemService) UploadPhoto(ctx context.Context, itemID int64, photo models.Photo) (models.Item, error) {
	log := logger.FromContext(ctx).With().Str("func", "itemService.UploadPhoto").Int64("item_id", itemID).Logger()

	item, err := s.Get(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}

	processed, err := imaging.Process(photo.Data, photo.FileName, s.maxPhotoBytes)
	if err != nil {
		log.Debug().Err(err).Msg("photo rejected")
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidPhoto, err)
	}

	path, err := s.photoStorage.SavePhoto(ctx, item.ItemCode+processed.Ext, processed.Data, processed.MIME)
	if err != nil {
		log.Err(err).Msg("error saving photo")
		return models.Item{}, fmt.Errorf("error saving photo: %w", err)
	}

	updated, err := s.itemRepository.SetImagePath(ctx, itemID, path)
	if err != nil {
		return models.Item{}, mapItemError(err)
	}

	s.metrics.PhotoUploaded(photoKindItem)
	return updated, nil
}

func (s *itemService) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, validationError(err)
	}

	items, err := s.itemRepository.ListItems(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemService.List").Msg("error listing items")
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return items, nil
}

func (s *itemService) Get(ctx context.Context, itemID int64) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, mapItemError(err)
	}
	return item, nil
}

// ConfirmDrop acknowledges that the item was handed in. Claimed items cannot
// be moved back to stored.
func (s *itemService) ConfirmDrop(ctx context.Context, itemID int64) (models.Item, error) {
	item, err := s.itemRepository.ConfirmDrop(ctx, itemID)
	if err != nil {
		return models.Item{}, mapItemError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "itemService.ConfirmDrop").Int64("item_id", itemID).Msg("drop confirmed")
	return item, nil
}

// ParseFoundAt parses an ISO-8601 timestamp with a zone offset and returns it
// in UTC. A trailing "Z" is read as "+00:00".
func ParseFoundAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "Z") || strings.HasSuffix(value, "z") {
		value = value[:len(value)-1] + "+00:00"
	}

	for _, layout := range foundAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidFoundAt
}

// generateItemCode returns "FOUND-" followed by 8 uppercase hex digits.
func generateItemCode() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return models.ItemCodePrefix + strings.ToUpper(hex.EncodeToString(b[:])), nil
}

func mapItemError(err error) error {
	switch {
	case errors.Is(err, store.ErrItemNotFound):
		return ErrItemNotFound
	case errors.Is(err, store.ErrItemNotStored):
		return ErrItemAlreadyClaimed
	default:
		return fmt.Errorf("item storage error: %w", err)
	}
}
