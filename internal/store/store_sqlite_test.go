// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) (*Storages, *DB) {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.DB{DSN: "file::memory:?_foreign_keys=on"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	seeded, err := db.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	photos, err := NewLocalPhotoStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	return NewStoragesWithDB(db, photos, logger.Nop()), db
}

func reportTestItem(t *testing.T, s *Storages, code string, highValue bool) models.Item {
	t.Helper()

	ctx := context.Background()
	buildings, err := s.LocationRepository.ListBuildings(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, buildings)

	points, err := s.LocationRepository.ListSecurityPoints(ctx, buildings[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, points)

	item, err := s.ItemRepository.CreateItem(ctx, models.Item{
		ItemCode:        code,
		Title:           "Black wallet",
		Category:        "Accessories",
		Latitude:        12.9716,
		Longitude:       77.5946,
		BuildingID:      buildings[0].ID,
		SecurityPointID: points[0].ID,
		FoundAt:         time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		HiddenDetail:    "blue sticker",
		Status:          models.ItemStatusStored,
		IsHighValue:     highValue,
	})
	require.NoError(t, err)

	return item
}

func TestSQLite_SeedIsIdempotent(t *testing.T) {
	s, db := newSQLiteStorages(t)
	ctx := context.Background()

	seeded, err := db.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	buildings, err := s.LocationRepository.ListBuildings(ctx)
	require.NoError(t, err)
	require.Len(t, buildings, 5)
	assert.Equal(t, "Main Building", buildings[0].Name)

	points, err := s.LocationRepository.ListSecurityPoints(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	mainPoints, err := s.LocationRepository.ListSecurityPoints(ctx, buildings[0].ID)
	require.NoError(t, err)
	assert.Len(t, mainPoints, 2)

	_, err = s.LocationRepository.GetSecurityPoint(ctx, 999)
	assert.ErrorIs(t, err, ErrSecurityPointNotFound)
}

func TestSQLite_UserConflicts(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.User{
		Username: "alice", Email: "alice@campus.edu", Name: "Alice", PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = s.UserRepository.CreateUser(ctx, models.User{
		Username: "alice", Email: "other@campus.edu", Name: "Alice", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = s.UserRepository.CreateUser(ctx, models.User{
		Username: "alice2", Email: "alice@campus.edu", Name: "Alice", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := s.UserRepository.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
}

func TestSQLite_ClaimLifecycle(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	item := reportTestItem(t, s, "FOUND-0A1B2C3D", false)
	assert.Equal(t, models.ItemStatusStored, item.Status)
	assert.True(t, item.FoundAt.Equal(time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)))
	assert.Nil(t, item.ImagePath)

	_, err := s.ItemRepository.CreateItem(ctx, models.Item{
		ItemCode: item.ItemCode, Title: "dup", Category: "x", BuildingID: 1,
		SecurityPointID: item.SecurityPointID, FoundAt: time.Now().UTC(), HiddenDetail: "x",
		Status: models.ItemStatusStored,
	})
	require.ErrorIs(t, err, ErrItemCodeConflict)

	claim, err := s.ClaimRepository.CreateClaim(ctx, models.Claim{
		ItemID:              item.ID,
		RegistrationNumber:  "REG-1",
		CollegeDetails:      "CS",
		ClaimTime:           time.Now().UTC(),
		HiddenDetailEntered: "blue sticker",
	})
	require.NoError(t, err)
	assert.True(t, claim.IsPending())

	stats, err := s.StatsRepository.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Stats{TotalItems: 1, StoredItems: 1, ClaimedItems: 0, PendingClaims: 1}, stats)

	verified, err := s.ClaimRepository.VerifyClaim(ctx, claim.ID, models.VerificationVerified, nil)
	require.NoError(t, err)
	require.NotNil(t, verified.VerificationResult)
	assert.Equal(t, models.VerificationVerified, *verified.VerificationResult)

	got, err := s.ItemRepository.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusClaimed, got.Status)

	_, err = s.ClaimRepository.VerifyClaim(ctx, claim.ID, models.VerificationRejected, nil)
	assert.ErrorIs(t, err, ErrClaimAlreadyReviewed)

	_, err = s.ClaimRepository.CreateClaim(ctx, models.Claim{
		ItemID: item.ID, RegistrationNumber: "REG-2", CollegeDetails: "EE",
		ClaimTime: time.Now().UTC(), HiddenDetailEntered: "blue sticker",
	})
	assert.ErrorIs(t, err, ErrItemNotStored)

	_, err = s.ItemRepository.ConfirmDrop(ctx, item.ID)
	assert.ErrorIs(t, err, ErrItemNotStored)

	_, err = s.ItemRepository.ConfirmDrop(ctx, 12345)
	assert.ErrorIs(t, err, ErrItemNotFound)

	stats, err = s.StatsRepository.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Stats{TotalItems: 1, StoredItems: 0, ClaimedItems: 1, PendingClaims: 0}, stats)

	claimed, err := s.ItemRepository.ListItems(ctx, models.ItemFilter{Status: models.ItemStatusClaimed})
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	stored, err := s.ItemRepository.ListItems(ctx, models.ItemFilter{Status: models.ItemStatusStored})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSQLite_ConcurrentVerificationClaimsItemOnce(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	item := reportTestItem(t, s, "FOUND-11112222", false)
	assertSingleVerificationWins(t, s, item, 4)

	stats, err := s.StatsRepository.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.PendingClaims)
	assert.Equal(t, int64(1), stats.ClaimedItems)
}

// assertSingleVerificationWins files claimants claims against item, verifies
// all of them in parallel and checks that exactly one review committed.
func assertSingleVerificationWins(t *testing.T, s *Storages, item models.Item, claimants int) {
	t.Helper()
	ctx := context.Background()

	claimIDs := make([]int64, 0, claimants)
	for i := 0; i < claimants; i++ {
		claim, err := s.ClaimRepository.CreateClaim(ctx, models.Claim{
			ItemID: item.ID, RegistrationNumber: "REG", CollegeDetails: "CS",
			ClaimTime: time.Now().UTC(), HiddenDetailEntered: "blue sticker",
		})
		require.NoError(t, err)
		claimIDs = append(claimIDs, claim.ID)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	start := make(chan struct{})
	for _, id := range claimIDs {
		wg.Add(1)
		go func(claimID int64) {
			defer wg.Done()
			<-start
			_, err := s.ClaimRepository.VerifyClaim(ctx, claimID, models.VerificationVerified, nil)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrItemNotStored):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, claimants-1, conflicts)

	got, err := s.ItemRepository.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusClaimed, got.Status)

	// losing reviews were rolled back and stay pending
	claims, err := s.ClaimRepository.ListClaims(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, claims, claimants)
	pending := 0
	for _, c := range claims {
		if c.VerificationResult == nil {
			pending++
		}
	}
	assert.Equal(t, claimants-1, pending)
}

func TestSQLite_ListItemsFiltersAndOrder(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	first := reportTestItem(t, s, "FOUND-AAAAAAAA", false)
	second := reportTestItem(t, s, "FOUND-BBBBBBBB", true)

	items, err := s.ItemRepository.ListItems(ctx, models.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)

	items, err = s.ItemRepository.ListItems(ctx, models.ItemFilter{Category: "Accessories", BuildingID: 2})
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = s.ItemRepository.ListItems(ctx, models.ItemFilter{SecurityPointID: first.SecurityPointID})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	updated, err := s.ItemRepository.SetImagePath(ctx, first.ID, "uploads/FOUND-AAAAAAAA.jpg")
	require.NoError(t, err)
	require.NotNil(t, updated.ImagePath)
	assert.Equal(t, "uploads/FOUND-AAAAAAAA.jpg", *updated.ImagePath)

	dropped, err := s.ItemRepository.ConfirmDrop(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusStored, dropped.Status)

	markers, err := s.ItemRepository.ListMapMarkers(ctx)
	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, "Main Building", markers[0].BuildingName)
	assert.Equal(t, "Main Entrance", markers[0].SecurityPointName)
}
