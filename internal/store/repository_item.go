// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/models"
)

// itemRepository is the SQL implementation of [ItemRepository] over the
// "items" table.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem inserts item and returns the stored row. A clash on item_code is
// reported as [ErrItemCodeConflict] so the caller can retry with a new code.
func (i *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := i.DB.QueryRowContext(ctx, createItem,
		item.ItemCode,
		item.Title,
		item.Description,
		item.Category,
		item.Latitude,
		item.Longitude,
		item.BuildingID,
		item.SecurityPointID,
		item.PlaceDetails,
		item.FoundAt,
		item.ReportedBy,
		item.HiddenDetail,
		item.ImagePath,
		string(item.Status),
		item.IsHighValue,
	)

	var created models.Item
	if err := scanItem(row, &created); err != nil {
		if _, ok := uniqueViolation(err); ok {
			log.Warn().
				Str("func", "itemRepository.CreateItem").
				Str("item_code", item.ItemCode).
				Msg("item code collision")
			return models.Item{}, ErrItemCodeConflict
		}

		log.Err(err).
			Str("func", "itemRepository.CreateItem").
			Str("item_code", item.ItemCode).
			Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "itemRepository.CreateItem").
		Int64("item_id", created.ID).
		Str("item_code", created.ItemCode).
		Msg("item reported")

	return created, nil
}

func (i *itemRepository) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	if err := scanItem(i.DB.QueryRowContext(ctx, getItem, itemID), &item); err != nil {
		if isNoRows(err) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "itemRepository.GetItem").Int64("item_id", itemID).Msg("failed to get item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// ListItems returns the items matching every non-zero field of filter, newest
// first.
func (i *itemRepository) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := i.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListItems").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 50)
	for rows.Next() {
		var item models.Item
		if scanErr := scanItem(rows, &item); scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.ListItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "itemRepository.ListItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (i *itemRepository) SetImagePath(ctx context.Context, itemID int64, path string) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	if err := scanItem(i.DB.QueryRowContext(ctx, setItemImagePath, path, itemID), &item); err != nil {
		if isNoRows(err) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "itemRepository.SetImagePath").Int64("item_id", itemID).Msg("failed to set image path")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// ConfirmDrop re-asserts the stored status. An item that is already claimed
// is left untouched and reported as [ErrItemNotStored].
func (i *itemRepository) ConfirmDrop(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	err := scanItem(i.DB.QueryRowContext(ctx, confirmDrop, itemID), &item)
	if err == nil {
		return item, nil
	}
	if !isNoRows(err) {
		log.Err(err).Str("func", "itemRepository.ConfirmDrop").Int64("item_id", itemID).Msg("failed to confirm drop")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// nothing updated: either the item is missing or it is already claimed
	if _, getErr := i.GetItem(ctx, itemID); getErr != nil {
		return models.Item{}, getErr
	}

	log.Warn().Str("func", "itemRepository.ConfirmDrop").Int64("item_id", itemID).Msg("item is already claimed")
	return models.Item{}, ErrItemNotStored
}

func (i *itemRepository) ListMapMarkers(ctx context.Context) ([]models.MapMarker, error) {
	log := logger.FromContext(ctx)

	rows, err := i.DB.QueryContext(ctx, listMapMarkers)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListMapMarkers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	markers := make([]models.MapMarker, 0, 50)
	for rows.Next() {
		var m models.MapMarker
		scanErr := rows.Scan(
			&m.ItemCode,
			&m.Title,
			&m.Category,
			&m.Status,
			&m.Latitude,
			&m.Longitude,
			&m.BuildingName,
			&m.SecurityPointName,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.ListMapMarkers").Msg("failed to scan marker row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		markers = append(markers, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "itemRepository.ListMapMarkers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return markers, nil
}
