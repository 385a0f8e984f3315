// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
)

// Storages groups every repository and the photo storage used by the
// services.
type Storages struct {
	UserRepository     UserRepository
	LocationRepository LocationRepository
	ItemRepository     ItemRepository
	ClaimRepository    ClaimRepository
	StatsRepository    StatsRepository
	PhotoStorage       PhotoStorage

	db *DB
}

// NewStorages connects to the configured database, applies migrations, seeds
// sample locations when enabled and opens the photo backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("migrations applied")

	if cfg.DB.Seed {
		if _, err = db.Seed(log.WithContext(ctx)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error seeding database: %w", err)
		}
	}

	photos, err := newPhotoStorage(ctx, cfg, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewStoragesWithDB(db, photos, log), nil
}

// NewStoragesWithDB builds the repositories over an already migrated db.
func NewStoragesWithDB(db *DB, photos PhotoStorage, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		LocationRepository: NewLocationRepository(db, log),
		ItemRepository:     NewItemRepository(db, log),
		ClaimRepository:    NewClaimRepository(db, log),
		StatsRepository:    NewStatsRepository(db, log),
		PhotoStorage:       photos,
		db:                 db,
	}
}

func newPhotoStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (PhotoStorage, error) {
	switch cfg.Files.Backend {
	case config.FilesBackendMinio:
		photos, err := NewMinioPhotoStorage(ctx, cfg.Minio, log)
		if err != nil {
			return nil, fmt.Errorf("error creating minio photo storage: %w", err)
		}
		return photos, nil
	default:
		photos, err := NewLocalPhotoStorage(cfg.Files.UploadDir, log)
		if err != nil {
			return nil, fmt.Errorf("error creating local photo storage: %w", err)
		}
		return photos, nil
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
