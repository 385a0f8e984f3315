// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the campus-found REST API.
//
// [CampusAPI] hides the transport from callers such as cmd/smoke. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors in errors.go,
// so callers use [errors.Is] (e.g. [ErrConflict] for 409) and can read the
// server's detail message from [APIError].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/campus-found/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/campus_api_mock.go -package=mock

// CampusAPI is the client side of the campus-found HTTP API.
type CampusAPI interface {
	// SetToken stores the bearer token attached to later requests.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	Me(ctx context.Context) (models.User, error)

	ListBuildings(ctx context.Context) ([]models.Building, error)
	ListSecurityPoints(ctx context.Context, buildingID int64) ([]models.SecurityPoint, error)

	// ReportItem returns the created item together with its hidden detail.
	ReportItem(ctx context.Context, req models.ReportItemRequest) (models.ReportedItem, error)
	UploadItemPhoto(ctx context.Context, itemID int64, fileName string, photo io.Reader) (models.UploadResponse, error)
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	GetItem(ctx context.Context, itemID int64) (models.Item, error)
	ConfirmDrop(ctx context.Context, itemID int64) (models.ItemActionResponse, error)

	RequestClaim(ctx context.Context, req models.ClaimRequest) (models.Claim, error)
	VerifyClaim(ctx context.Context, req models.VerifyClaimRequest) (models.ClaimActionResponse, error)
	UploadPickupPhoto(ctx context.Context, claimID int64, fileName string, photo io.Reader) (models.UploadResponse, error)
	ListClaims(ctx context.Context, itemID int64) ([]models.Claim, error)

	Stats(ctx context.Context) (models.Stats, error)
	AdminItems(ctx context.Context, securityPointID int64) ([]models.Item, error)
	AdminClaims(ctx context.Context) ([]models.Claim, error)

	// GenerateMap returns the HTML map page.
	GenerateMap(ctx context.Context) ([]byte, error)

	Version(ctx context.Context) (string, error)
}
