// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioPhotoStorage keeps photos as objects in a MinIO or S3 compatible
// bucket. Object keys are the bare photo names.
type minioPhotoStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinioPhotoStorage connects to MinIO and ensures the bucket exists.
func NewMinioPhotoStorage(ctx context.Context, cfg config.Minio, logger *logger.Logger) (PhotoStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		logger.Err(err).Str("func", "NewMinioPhotoStorage").Str("bucket", cfg.Bucket).Msg("failed to check bucket")
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		logger.Info().Str("func", "NewMinioPhotoStorage").Str("bucket", cfg.Bucket).Msg("bucket created")
	}

	return &minioPhotoStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

func (m *minioPhotoStorage) SavePhoto(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := checkPhotoName(name); err != nil {
		return "", err
	}

	_, err := m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "minioPhotoStorage.SavePhoto").Str("name", name).Msg("failed to put object")
		return "", fmt.Errorf("put object: %w", err)
	}

	return path.Join(PhotoURLPrefix, name), nil
}

func (m *minioPhotoStorage) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if err := checkPhotoName(name); err != nil {
		return nil, "", err
	}

	object, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("get object: %w", err)
	}

	info, err := object.Stat()
	if err != nil {
		_ = object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", ErrPhotoNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "minioPhotoStorage.OpenPhoto").Str("name", name).Msg("failed to stat object")
		return nil, "", fmt.Errorf("stat object: %w", err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = contentTypeByName(name)
	}

	return object, contentType, nil
}
