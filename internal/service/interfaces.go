// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/campus-found/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	// ParseToken validates signature, algorithm, issuer and expiry.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// CurrentUser resolves the account a valid token was issued to.
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)
}

type LocationService interface {
	ListBuildings(ctx context.Context) ([]models.Building, error)
	ListSecurityPoints(ctx context.Context, buildingID int64) ([]models.SecurityPoint, error)
}

type ItemService interface {
	// Report stores a new found item. The result is the only response that
	// carries the hidden detail.
	Report(ctx context.Context, req models.ReportItemRequest) (models.ReportedItem, error)
	UploadPhoto(ctx context.Context, itemID int64, photo models.Photo) (models.Item, error)
	List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	Get(ctx context.Context, itemID int64) (models.Item, error)
	ConfirmDrop(ctx context.Context, itemID int64) (models.Item, error)
}

type ClaimService interface {
	RequestClaim(ctx context.Context, req models.ClaimRequest) (models.Claim, error)
	VerifyClaim(ctx context.Context, req models.VerifyClaimRequest) (models.Claim, error)
	UploadPickupPhoto(ctx context.Context, claimID int64, photo models.Photo) (models.Claim, error)
	List(ctx context.Context, itemID int64) ([]models.Claim, error)
}

type AdminService interface {
	Stats(ctx context.Context) (models.Stats, error)
	ListItems(ctx context.Context, securityPointID int64) ([]models.Item, error)
	ListClaims(ctx context.Context) ([]models.Claim, error)
}

type MapService interface {
	// GenerateMap writes the HTML map of every item to w.
	GenerateMap(ctx context.Context, w io.Writer) error
}

type PhotoService interface {
	OpenPhoto(ctx context.Context, name string) (io.ReadCloser, string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClaimAttemptLimiter counts claim attempts per key within a window.
type ClaimAttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
