// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// signedDefaults returns a builder holding only a sign key and the defaults,
// which is the smallest config that passes validation.
func signedDefaults() *configBuilder {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{TokenSignKey: "secret"}})
	return b.withDefaults()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without a sign key is rejected.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsApplied verifies that defaults fill every unset field.
func TestBuild_DefaultsApplied(t *testing.T) {
	cfg, err := signedDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, FilesBackendLocal, cfg.Storage.Files.Backend)
	assert.Equal(t, DefaultUploadDir, cfg.Storage.Files.UploadDir)
	assert.EqualValues(t, DefaultMaxPhotoBytes, cfg.Storage.Files.MaxPhotoBytes)
	assert.Equal(t, "HS256", cfg.Auth.TokenAlgorithm)
	assert.Equal(t, 30, cfg.Auth.TokenExpireMinutes)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Empty(t, cfg.Auth.AllowedEmailDomain)
	assert.Equal(t, DefaultClaimAttempts, cfg.Storage.Redis.ClaimAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Storage.Redis.ClaimWindow)
	assert.Equal(t, Map{CenterLat: 12.9716, CenterLon: 77.5946, Zoom: 15}, cfg.App.Map)
}

// TestBuild_EarlierSourceWins verifies that the first non-zero value wins.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9001"}, Auth: Auth{TokenSignKey: "secret"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "unsupported algorithm",
			cfg:     StructuredConfig{Auth: Auth{TokenSignKey: "s", TokenAlgorithm: "RS256"}},
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "unknown files backend",
			cfg:     StructuredConfig{Auth: Auth{TokenSignKey: "s"}, Storage: Storage{Files: Files{Backend: "ftp"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "minio without endpoint",
			cfg:     StructuredConfig{Auth: Auth{TokenSignKey: "s"}, Storage: Storage{Files: Files{Backend: FilesBackendMinio}}},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)
			b.withDefaults()

			got, err := b.build()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":       "env-version",
		"AUTH_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlagArgs_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlagArgs([]string{"-d", "file:test.db"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "file:test.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlagArgs_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlagArgs([]string{"-a", "nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Auth.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].Auth.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_FirstPathWins verifies that the env path beats the flag path.
func TestWithJSON_FirstPathWins(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.Version)
}

// ── AllowedOrigins / AdminEmailList ───────────────────────────────────────────

func TestAllowedOrigins_AppendsFrontendURL(t *testing.T) {
	cfg := &StructuredConfig{
		Server:      Server{CORSOrigins: []string{"http://localhost:3000"}},
		FrontendURL: "https://found.campus.edu",
	}
	assert.Equal(t, []string{"http://localhost:3000", "https://found.campus.edu"}, cfg.AllowedOrigins())
}

func TestAdminEmailList(t *testing.T) {
	assert.Nil(t, Auth{}.AdminEmailList())
	assert.Equal(t, []string{"a@x.edu", "b@x.edu"}, Auth{AdminEmails: " a@x.edu , ,b@x.edu"}.AdminEmailList())
}
