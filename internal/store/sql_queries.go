// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, username, email, name, password_hash, is_admin, created_at`

	createUser = `INSERT INTO users (username, email, name, password_hash, is_admin)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listBuildings = `SELECT id, name
		FROM buildings
		ORDER BY id;`

	getSecurityPoint = `SELECT id, building_id, name
		FROM security_points
		WHERE id = $1;`

	itemColumns = `id, item_code, title, description, category, latitude, longitude, building_id,
		security_point_id, place_details, found_at, reported_by, hidden_detail, image_path, status,
		is_high_value, created_at`

	createItem = `INSERT INTO items (
			item_code,
			title,
			description,
			category,
			latitude,
			longitude,
			building_id,
			security_point_id,
			place_details,
			found_at,
			reported_by,
			hidden_detail,
			image_path,
			status,
			is_high_value
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + itemColumns + `;`

	getItem = `SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1;`

	setItemImagePath = `UPDATE items
		SET image_path = $1
		WHERE id = $2
		RETURNING ` + itemColumns + `;`

	// confirmDrop only matches stored items, so a claimed item can never be
	// moved back through this statement.
	confirmDrop = `UPDATE items
		SET status = 'stored'
		WHERE id = $1 AND status = 'stored'
		RETURNING ` + itemColumns + `;`

	listMapMarkers = `SELECT i.item_code, i.title, i.category, i.status, i.latitude, i.longitude,
			COALESCE(b.name, ''), COALESCE(sp.name, '')
		FROM items i
		LEFT JOIN security_points sp ON sp.id = i.security_point_id
		LEFT JOIN buildings b ON b.id = sp.building_id
		ORDER BY i.id;`

	claimColumns = `id, item_id, claimed_by, registration_number, college_details, claim_time,
		hidden_detail_entered, verification_result, pickup_photo_path, security_officer_id`

	// lockStoredItem is a no-op update that succeeds only for stored items and
	// holds the row lock until the surrounding transaction ends.
	lockStoredItem = `UPDATE items
		SET status = status
		WHERE id = $1 AND status = 'stored';`

	itemExists = `SELECT COUNT(*)
		FROM items
		WHERE id = $1;`

	createClaim = `INSERT INTO claims (item_id, claimed_by, registration_number, college_details, claim_time, hidden_detail_entered)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + claimColumns + `;`

	getClaim = `SELECT ` + claimColumns + `
		FROM claims
		WHERE id = $1;`

	claimExists = `SELECT COUNT(*)
		FROM claims
		WHERE id = $1;`

	reviewClaim = `UPDATE claims
		SET verification_result = $1, security_officer_id = $2
		WHERE id = $3 AND verification_result IS NULL
		RETURNING ` + claimColumns + `;`

	markItemClaimed = `UPDATE items
		SET status = 'claimed'
		WHERE id = $1 AND status = 'stored';`

	setPickupPhotoPath = `UPDATE claims
		SET pickup_photo_path = $1
		WHERE id = $2
		RETURNING ` + claimColumns + `;`

	getStats = `SELECT
			(SELECT COUNT(*) FROM items),
			(SELECT COUNT(*) FROM items WHERE status = 'stored'),
			(SELECT COUNT(*) FROM items WHERE status = 'claimed'),
			(SELECT COUNT(*) FROM claims WHERE verification_result IS NULL);`

	countBuildings = `SELECT COUNT(*) FROM buildings;`

	insertBuilding = `INSERT INTO buildings (name)
		VALUES ($1)
		RETURNING id;`

	insertSecurityPoint = `INSERT INTO security_points (building_id, name)
		VALUES ($1, $2);`
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)
}

func scanItem(row rowScanner, item *models.Item) error {
	return row.Scan(
		&item.ID,
		&item.ItemCode,
		&item.Title,
		&item.Description,
		&item.Category,
		&item.Latitude,
		&item.Longitude,
		&item.BuildingID,
		&item.SecurityPointID,
		&item.PlaceDetails,
		&item.FoundAt,
		&item.ReportedBy,
		&item.HiddenDetail,
		&item.ImagePath,
		&item.Status,
		&item.IsHighValue,
		&item.CreatedAt,
	)
}

func scanClaim(row rowScanner, claim *models.Claim) error {
	return row.Scan(
		&claim.ID,
		&claim.ItemID,
		&claim.ClaimedBy,
		&claim.RegistrationNumber,
		&claim.CollegeDetails,
		&claim.ClaimTime,
		&claim.HiddenDetailEntered,
		&claim.VerificationResult,
		&claim.PickupPhotoPath,
		&claim.SecurityOfficerID,
	)
}

// buildListItemsQuery builds the item listing query. Zero-valued filter
// fields are left out of the WHERE clause.
func buildListItemsQuery(ctx context.Context, filter models.ItemFilter) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(itemColumns).
		From("items").
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.BuildingID > 0 {
		builder = builder.Where(sq.Eq{"building_id": filter.BuildingID})
	}
	if filter.SecurityPointID > 0 {
		builder = builder.Where(sq.Eq{"security_point_id": filter.SecurityPointID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildListItemsQuery").Msg("failed to build query")
		return "", nil, err
	}

	return query, args, nil
}

// buildListClaimsQuery lists claims newest first, optionally for one item.
func buildListClaimsQuery(ctx context.Context, itemID int64) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(claimColumns).
		From("claims").
		OrderBy("claim_time DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if itemID > 0 {
		builder = builder.Where(sq.Eq{"item_id": itemID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildListClaimsQuery").Int64("item_id", itemID).Msg("failed to build query")
		return "", nil, err
	}

	return query, args, nil
}

func buildListSecurityPointsQuery(ctx context.Context, buildingID int64) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "building_id", "name").
		From("security_points").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if buildingID > 0 {
		builder = builder.Where(sq.Eq{"building_id": buildingID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildListSecurityPointsQuery").Int64("building_id", buildingID).Msg("failed to build query")
		return "", nil, err
	}

	return query, args, nil
}
