// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/store"
)

type photoService struct {
	photoStorage store.PhotoStorage
	logger       *logger.Logger
}

func NewPhotoService(photoStorage store.PhotoStorage, logger *logger.Logger) PhotoService {
	return &photoService{
		photoStorage: photoStorage,
		logger:       logger,
	}
}

// OpenPhoto returns the stored photo and its content type. The caller closes
// the reader.
func (s *photoService) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, string, error) {
	body, contentType, err := s.photoStorage.OpenPhoto(ctx, name)
	switch {
	case errors.Is(err, store.ErrPhotoNotFound), errors.Is(err, store.ErrInvalidPhotoName):
		return nil, "", ErrPhotoNotFound
	case err != nil:
		return nil, "", fmt.Errorf("error opening photo: %w", err)
	}
	return body, contentType, nil
}
