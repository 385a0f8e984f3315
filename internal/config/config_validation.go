// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}

	switch cfg.Auth.TokenAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("%w: unsupported token algorithm %q", ErrInvalidAuthConfigs, cfg.Auth.TokenAlgorithm)
	}

	if cfg.Auth.TokenExpireMinutes <= 0 {
		return fmt.Errorf("%w: token expire minutes must be positive", ErrInvalidAuthConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Files.Backend {
	case FilesBackendLocal:
		if cfg.Storage.Files.UploadDir == "" {
			return fmt.Errorf("%w: empty upload dir", ErrInvalidStorageConfigs)
		}
	case FilesBackendMinio:
		if cfg.Storage.Minio.Endpoint == "" || cfg.Storage.Minio.Bucket == "" {
			return fmt.Errorf("%w: minio endpoint and bucket are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown files backend %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Backend)
	}

	if cfg.Storage.Files.MaxPhotoBytes <= 0 {
		return fmt.Errorf("%w: max photo bytes must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Redis.Addr != "" && (cfg.Storage.Redis.ClaimAttempts <= 0 || cfg.Storage.Redis.ClaimWindow <= 0) {
		return fmt.Errorf("%w: claim attempt quota must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	return nil
}
