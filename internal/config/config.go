// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// campus-found server. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation settings and the application version.
	App App `envPrefix:"APP_"`

	// Auth holds token and registration policy settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the database, photo storage and the
	// Redis instance backing the claim attempt limiter.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, CORS and rate limit settings.
	Server Server `envPrefix:"SERVER_"`

	// FrontendURL is an extra CORS origin, usually the deployed web client.
	// Env: FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Map configures the generated item map.
	Map Map `envPrefix:"MAP_"`
}

// Map holds the initial view of the campus map.
type Map struct {
	CenterLat float64 `env:"CENTER_LAT"`
	CenterLon float64 `env:"CENTER_LON"`
	Zoom      int     `env:"ZOOM"`
}

// Auth holds token and registration settings.
type Auth struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenAlgorithm is an HMAC JWT algorithm name: HS256, HS384 or HS512.
	// Env: AUTH_TOKEN_ALGORITHM
	TokenAlgorithm string `env:"TOKEN_ALGORITHM"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenExpireMinutes is the lifetime of an issued token.
	// Env: AUTH_TOKEN_EXPIRE_MINUTES
	TokenExpireMinutes int `env:"TOKEN_EXPIRE_MINUTES"`

	// AllowedEmailDomain restricts registration to emails ending with it
	// (e.g. "@campus.edu"). Empty allows any email.
	// Env: AUTH_ALLOWED_EMAIL_DOMAIN
	AllowedEmailDomain string `env:"ALLOWED_EMAIL_DOMAIN"`

	// AdminEmails is a comma separated list of staff emails.
	// Env: AUTH_ADMIN_EMAILS
	AdminEmails string `env:"ADMIN_EMAILS"`
}

// TokenDuration converts TokenExpireMinutes to a [time.Duration].
func (a Auth) TokenDuration() time.Duration {
	return time.Duration(a.TokenExpireMinutes) * time.Minute
}

// AdminEmailList splits AdminEmails, trimming blanks.
func (a Auth) AdminEmailList() []string {
	if a.AdminEmails == "" {
		return nil
	}

	emails := make([]string, 0, 4)
	for _, e := range strings.Split(a.AdminEmails, ",") {
		if e = strings.TrimSpace(e); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists allowed browser origins.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// RateLimitRPS and RateLimitBurst configure the per-IP token bucket.
	// Env: SERVER_RATE_LIMIT_RPS, SERVER_RATE_LIMIT_BURST
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	Minio Minio `envPrefix:"MINIO_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite DSN
	// ("file:campus_found.db?_foreign_keys=on").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// Seed inserts sample buildings and security points into an empty database.
	// Env: STORAGE_DB_SEED
	Seed bool `env:"SEED"`
}

// Photo storage backends.
const (
	FilesBackendLocal = "local"
	FilesBackendMinio = "minio"
)

// Files holds photo upload settings.
type Files struct {
	// Backend is "local" or "minio".
	// Env: STORAGE_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// UploadDir is the directory photos are written to by the local backend.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// MaxPhotoBytes caps the size of a single upload.
	// Env: STORAGE_FILES_MAX_PHOTO_BYTES
	MaxPhotoBytes int64 `env:"MAX_PHOTO_BYTES"`
}

// Minio holds S3-compatible object storage settings.
type Minio struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	UseSSL    bool   `env:"USE_SSL"`
}

// Redis holds the claim attempt limiter settings. The limiter is disabled
// when Addr is empty.
type Redis struct {
	Addr          string        `env:"ADDR"`
	Password      string        `env:"PASSWORD"`
	Prefix        string        `env:"PREFIX"`
	ClaimAttempts int           `env:"CLAIM_ATTEMPTS"`
	ClaimWindow   time.Duration `env:"CLAIM_WINDOW"`
}

// AllowedOrigins returns the configured CORS origins plus FrontendURL.
func (cfg *StructuredConfig) AllowedOrigins() []string {
	origins := make([]string, 0, len(cfg.Server.CORSOrigins)+1)
	origins = append(origins, cfg.Server.CORSOrigins...)
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	return origins
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
