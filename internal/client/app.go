// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/campus-found/internal/adapter"
	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/models"
	"github.com/google/uuid"
)

// ErrSmokeFailed marks a run where the server answered but not as expected.
var ErrSmokeFailed = errors.New("smoke check failed")

// SmokeRun is a [Client] that plays one student and one staff member.
type SmokeRun struct {
	api adapter.CampusAPI
	cfg config.Smoke

	suffix string
	now    func() time.Time

	logger *logger.Logger
}

func NewSmokeRun(api adapter.CampusAPI, cfg config.Smoke, logger *logger.Logger) *SmokeRun {
	return &SmokeRun{
		api:    api,
		cfg:    cfg,
		suffix: strings.ReplaceAll(uuid.NewString(), "-", "")[:10],
		now:    time.Now,
		logger: logger,
	}
}

// Run executes the scenario and stops at the first failing step.
func (s *SmokeRun) Run(ctx context.Context) error {
	version, err := s.api.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}
	s.logger.Info().Str("version", version).Msg("server reachable")

	point, err := s.pickSecurityPoint(ctx)
	if err != nil {
		return err
	}

	student, err := s.loginStudent(ctx)
	if err != nil {
		return err
	}

	hiddenDetail := "sticker " + s.suffix
	reported, err := s.reportItem(ctx, point, hiddenDetail)
	if err != nil {
		return err
	}
	if reported.ReportedBy == nil || *reported.ReportedBy != student.UserID {
		return fmt.Errorf("%w: item %d is not attributed to the reporter", ErrSmokeFailed, reported.ID)
	}

	claim, err := s.claimItem(ctx, reported.ID, hiddenDetail)
	if err != nil {
		return err
	}

	if err = s.loginStaff(ctx); err != nil {
		return err
	}

	return s.review(ctx, reported.Item, claim, hiddenDetail)
}

func (s *SmokeRun) pickSecurityPoint(ctx context.Context) (models.SecurityPoint, error) {
	buildings, err := s.api.ListBuildings(ctx)
	if err != nil {
		return models.SecurityPoint{}, fmt.Errorf("list buildings: %w", err)
	}

	for _, building := range buildings {
		points, err := s.api.ListSecurityPoints(ctx, building.ID)
		if err != nil {
			return models.SecurityPoint{}, fmt.Errorf("list security points: %w", err)
		}
		if len(points) > 0 {
			s.logger.Info().Str("building", building.Name).Str("security_point", points[0].Name).Msg("location picked")
			return points[0], nil
		}
	}

	return models.SecurityPoint{}, fmt.Errorf("%w: no building has a security point, start the server with -seed", ErrSmokeFailed)
}

func (s *SmokeRun) loginStudent(ctx context.Context) (models.User, error) {
	username := "smoke-" + s.suffix
	_, err := s.api.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    username + s.cfg.EmailDomain,
		Name:     "Smoke Student",
		Password: s.cfg.Password,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("register student: %w", err)
	}

	if _, err = s.api.Login(ctx, models.LoginRequest{Username: username, Password: s.cfg.Password}); err != nil {
		return models.User{}, fmt.Errorf("login student: %w", err)
	}

	me, err := s.api.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("me: %w", err)
	}
	if me.IsAdmin {
		return models.User{}, fmt.Errorf("%w: student %q was registered as staff", ErrSmokeFailed, username)
	}

	s.logger.Info().Int64("user_id", me.UserID).Msg("student logged in")
	return me, nil
}

// loginStaff registers the staff account on first use. A conflict means an
// earlier run already created it.
func (s *SmokeRun) loginStaff(ctx context.Context) error {
	_, err := s.api.Register(ctx, models.RegisterRequest{
		Username: s.cfg.StaffUsername,
		Email:    s.cfg.StaffEmail,
		Name:     "Smoke Staff",
		Password: s.cfg.Password,
	})
	if err != nil && !errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("register staff: %w", err)
	}

	if _, err = s.api.Login(ctx, models.LoginRequest{Username: s.cfg.StaffUsername, Password: s.cfg.Password}); err != nil {
		return fmt.Errorf("login staff: %w", err)
	}

	me, err := s.api.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}
	if !me.IsAdmin {
		return fmt.Errorf("%w: %q is not staff, add %s to AUTH_ADMIN_EMAILS", ErrSmokeFailed, s.cfg.StaffUsername, s.cfg.StaffEmail)
	}

	s.logger.Info().Int64("user_id", me.UserID).Msg("staff logged in")
	return nil
}

func (s *SmokeRun) reportItem(ctx context.Context, point models.SecurityPoint, hiddenDetail string) (models.ReportedItem, error) {
	reported, err := s.api.ReportItem(ctx, models.ReportItemRequest{
		Title:           "Smoke test wallet",
		Description:     "Brown leather wallet",
		Category:        "wallet",
		BuildingID:      point.BuildingID,
		SecurityPointID: point.ID,
		PlaceDetails:    "left on a bench",
		FoundAt:         s.now().UTC().Format(time.RFC3339),
		HiddenDetail:    hiddenDetail,
		IsHighValue:     true,
	})
	if err != nil {
		return models.ReportedItem{}, fmt.Errorf("report item: %w", err)
	}
	if reported.Status != models.ItemStatusStored || reported.HiddenDetail != hiddenDetail {
		return models.ReportedItem{}, fmt.Errorf("%w: reported item %d came back as %q", ErrSmokeFailed, reported.ID, reported.Status)
	}

	photo, err := samplePhoto()
	if err != nil {
		return models.ReportedItem{}, err
	}
	if _, err = s.api.UploadItemPhoto(ctx, reported.ID, "wallet.png", bytes.NewReader(photo)); err != nil {
		return models.ReportedItem{}, fmt.Errorf("upload item photo: %w", err)
	}

	items, err := s.api.ListItems(ctx, models.ItemFilter{BuildingID: point.BuildingID, Status: models.ItemStatusStored})
	if err != nil {
		return models.ReportedItem{}, fmt.Errorf("list items: %w", err)
	}
	if !slices.ContainsFunc(items, func(item models.Item) bool { return item.ID == reported.ID }) {
		return models.ReportedItem{}, fmt.Errorf("%w: item %d missing from the listing", ErrSmokeFailed, reported.ID)
	}

	s.logger.Info().Int64("item_id", reported.ID).Str("item_code", reported.ItemCode).Msg("item reported")
	return reported, nil
}

func (s *SmokeRun) claimItem(ctx context.Context, itemID int64, hiddenDetail string) (models.Claim, error) {
	req := models.ClaimRequest{
		ItemID:              itemID,
		RegistrationNumber:  "SMOKE" + strings.ToUpper(s.suffix[:4]),
		CollegeDetails:      "Smoke test",
		HiddenDetailEntered: "wrong " + hiddenDetail,
	}

	_, err := s.api.RequestClaim(ctx, req)
	if !errors.Is(err, adapter.ErrBadRequest) {
		return models.Claim{}, fmt.Errorf("%w: wrong hidden detail was not rejected: %v", ErrSmokeFailed, err)
	}

	req.HiddenDetailEntered = hiddenDetail
	claim, err := s.api.RequestClaim(ctx, req)
	if err != nil {
		return models.Claim{}, fmt.Errorf("request claim: %w", err)
	}
	if !claim.IsPending() {
		return models.Claim{}, fmt.Errorf("%w: new claim %d is not pending", ErrSmokeFailed, claim.ID)
	}

	s.logger.Info().Int64("claim_id", claim.ID).Msg("claim requested")
	return claim, nil
}

func (s *SmokeRun) review(ctx context.Context, item models.Item, claim models.Claim, hiddenDetail string) error {
	if _, err := s.api.ConfirmDrop(ctx, item.ID); err != nil {
		return fmt.Errorf("confirm drop: %w", err)
	}

	verified, err := s.api.VerifyClaim(ctx, models.VerifyClaimRequest{
		ClaimID:            claim.ID,
		VerificationResult: models.VerificationVerified,
	})
	if err != nil {
		return fmt.Errorf("verify claim: %w", err)
	}
	s.logger.Info().Str("message", verified.Message).Msg("claim reviewed")

	photo, err := samplePhoto()
	if err != nil {
		return err
	}
	if _, err = s.api.UploadPickupPhoto(ctx, claim.ID, "pickup.png", bytes.NewReader(photo)); err != nil {
		return fmt.Errorf("upload pickup photo: %w", err)
	}

	current, err := s.api.GetItem(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if current.Status != models.ItemStatusClaimed {
		return fmt.Errorf("%w: item %d is %q after verification", ErrSmokeFailed, item.ID, current.Status)
	}

	_, err = s.api.RequestClaim(ctx, models.ClaimRequest{
		ItemID:              item.ID,
		RegistrationNumber:  "SMOKE0000",
		CollegeDetails:      "Smoke test",
		HiddenDetailEntered: hiddenDetail,
	})
	if !errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("%w: claim on a claimed item was not rejected: %v", ErrSmokeFailed, err)
	}

	stats, err := s.api.Stats(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if stats.ClaimedItems < 1 {
		return fmt.Errorf("%w: stats report no claimed items", ErrSmokeFailed)
	}

	page, err := s.api.GenerateMap(ctx)
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}
	if len(page) == 0 {
		return fmt.Errorf("%w: empty map page", ErrSmokeFailed)
	}

	s.logger.Info().
		Int64("total_items", stats.TotalItems).
		Int64("claimed_items", stats.ClaimedItems).
		Int64("pending_claims", stats.PendingClaims).
		Msg("smoke run passed")
	return nil
}

// samplePhoto returns a small PNG accepted by the photo endpoints.
func samplePhoto() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := range 16 {
		for y := range 16 {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode sample photo: %w", err)
	}
	return buf.Bytes(), nil
}
