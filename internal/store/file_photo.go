// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/campus-found/internal/logger"
)

// PhotoURLPrefix is prepended to stored photo names to form the path kept in
// the database and served by the HTTP layer.
const PhotoURLPrefix = "uploads"

// ErrInvalidPhotoName is returned for names that are empty or contain a path
// separator.
var ErrInvalidPhotoName = errors.New("invalid photo name")

// localPhotoStorage keeps photos as files in one directory.
type localPhotoStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalPhotoStorage creates dir if needed and returns a [PhotoStorage]
// writing into it.
func NewLocalPhotoStorage(dir string, logger *logger.Logger) (PhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewLocalPhotoStorage").Str("dir", dir).Msg("failed to create upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	return &localPhotoStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SavePhoto writes data to dir/name, truncating an existing file. A failed
// write may leave a partial file behind.
func (l *localPhotoStorage) SavePhoto(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	if err := checkPhotoName(name); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		log.Err(err).Str("func", "localPhotoStorage.SavePhoto").Str("name", name).Msg("failed to write photo")
		return "", fmt.Errorf("error writing photo: %w", err)
	}

	log.Debug().
		Str("func", "localPhotoStorage.SavePhoto").
		Str("name", name).
		Int("size", len(data)).
		Str("content_type", contentType).
		Msg("photo saved")

	return path.Join(PhotoURLPrefix, name), nil
}

func (l *localPhotoStorage) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if err := checkPhotoName(name); err != nil {
		return nil, "", err
	}

	file, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", ErrPhotoNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "localPhotoStorage.OpenPhoto").Str("name", name).Msg("failed to open photo")
		return nil, "", fmt.Errorf("error opening photo: %w", err)
	}

	return file, contentTypeByName(name), nil
}

func checkPhotoName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ErrInvalidPhotoName
	}
	return nil
}

func contentTypeByName(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
