// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/campus-found/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// LocationRepository reads buildings and their security points.
type LocationRepository interface {
	ListBuildings(ctx context.Context) ([]models.Building, error)
	// ListSecurityPoints returns every point when buildingID is zero.
	ListSecurityPoints(ctx context.Context, buildingID int64) ([]models.SecurityPoint, error)
	GetSecurityPoint(ctx context.Context, securityPointID int64) (models.SecurityPoint, error)
}

// ItemRepository persists found item reports.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, itemID int64) (models.Item, error)
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	SetImagePath(ctx context.Context, itemID int64, path string) (models.Item, error)
	// ConfirmDrop keeps a stored item stored. It fails with ErrItemNotStored
	// for claimed items and ErrItemNotFound for unknown ids.
	ConfirmDrop(ctx context.Context, itemID int64) (models.Item, error)
	ListMapMarkers(ctx context.Context) ([]models.MapMarker, error)
}

// ClaimRepository persists claims and performs the stored → claimed
// transition.
type ClaimRepository interface {
	// CreateClaim inserts the claim only while its item is stored; otherwise
	// it returns ErrItemNotStored.
	CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error)
	GetClaim(ctx context.Context, claimID int64) (models.Claim, error)
	// ListClaims returns every claim when itemID is zero.
	ListClaims(ctx context.Context, itemID int64) ([]models.Claim, error)
	// VerifyClaim records the review of a pending claim. A verified result
	// atomically moves the item from stored to claimed.
	VerifyClaim(ctx context.Context, claimID int64, result models.VerificationResult, officerID *int64) (models.Claim, error)
	SetPickupPhotoPath(ctx context.Context, claimID int64, path string) (models.Claim, error)
}

// StatsRepository aggregates dashboard counters.
type StatsRepository interface {
	GetStats(ctx context.Context) (models.Stats, error)
}

// PhotoStorage keeps uploaded photo bytes.
type PhotoStorage interface {
	// SavePhoto stores data under name, replacing any previous photo with the
	// same name, and returns the path recorded in the database.
	SavePhoto(ctx context.Context, name string, data []byte, contentType string) (string, error)
	// OpenPhoto returns the photo content and its content type.
	OpenPhoto(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
