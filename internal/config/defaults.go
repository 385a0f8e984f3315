// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, applied with the lowest priority.
const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultDSN                = "file:campus_found.db?_foreign_keys=on"
	DefaultUploadDir          = "uploads"
	DefaultMaxPhotoBytes      = 5 << 20
	DefaultTokenAlgorithm     = "HS256"
	DefaultTokenIssuer        = "campus-found"
	DefaultTokenExpireMinutes = 30
	DefaultRateLimitRPS       = 20
	DefaultRateLimitBurst     = 40
	DefaultRedisPrefix        = "campus-found:claims"
	DefaultClaimAttempts      = 5
	DefaultClaimWindow        = 15 * time.Minute
	DefaultMapCenterLat       = 12.9716
	DefaultMapCenterLon       = 77.5946
	DefaultMapZoom            = 15
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
			Map: Map{
				CenterLat: DefaultMapCenterLat,
				CenterLon: DefaultMapCenterLon,
				Zoom:      DefaultMapZoom,
			},
		},
		Auth: Auth{
			TokenAlgorithm:     DefaultTokenAlgorithm,
			TokenIssuer:        DefaultTokenIssuer,
			TokenExpireMinutes: DefaultTokenExpireMinutes,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
			Files: Files{
				Backend:       FilesBackendLocal,
				UploadDir:     DefaultUploadDir,
				MaxPhotoBytes: DefaultMaxPhotoBytes,
			},
			Redis: Redis{
				Prefix:        DefaultRedisPrefix,
				ClaimAttempts: DefaultClaimAttempts,
				ClaimWindow:   DefaultClaimWindow,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			CORSOrigins:    []string{"http://localhost:3000", "http://127.0.0.1:3000"},
			RateLimitRPS:   DefaultRateLimitRPS,
			RateLimitBurst: DefaultRateLimitBurst,
		},
	}
}
