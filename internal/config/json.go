// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		Map     struct {
			CenterLat float64 `json:"center_lat"`
			CenterLon float64 `json:"center_lon"`
			Zoom      int     `json:"zoom"`
		} `json:"map,omitempty"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey       string `json:"token_sign_key"`
		TokenAlgorithm     string `json:"token_algorithm"`
		TokenIssuer        string `json:"token_issuer"`
		TokenExpireMinutes int    `json:"token_expire_minutes"`
		AllowedEmailDomain string `json:"allowed_email_domain"`
		AdminEmails        string `json:"admin_emails"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN  string `json:"dsn"`
			Seed bool   `json:"seed"`
		} `json:"db,omitempty"`

		Files struct {
			Backend       string `json:"backend"`
			UploadDir     string `json:"upload_dir"`
			MaxPhotoBytes int64  `json:"max_photo_bytes"`
		} `json:"files,omitempty"`

		Minio struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseSSL    bool   `json:"use_ssl"`
		} `json:"minio,omitempty"`

		Redis struct {
			Addr          string   `json:"addr"`
			Password      string   `json:"password"`
			Prefix        string   `json:"prefix"`
			ClaimAttempts int      `json:"claim_attempts"`
			ClaimWindow   Duration `json:"claim_window"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
		RateLimitRPS   float64  `json:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst"`
	} `json:"server,omitempty"`

	FrontendURL string `json:"frontend_url"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			Map: Map{
				CenterLat: jsonCfg.App.Map.CenterLat,
				CenterLon: jsonCfg.App.Map.CenterLon,
				Zoom:      jsonCfg.App.Map.Zoom,
			},
		},
		Auth: Auth{
			TokenSignKey:       jsonCfg.Auth.TokenSignKey,
			TokenAlgorithm:     jsonCfg.Auth.TokenAlgorithm,
			TokenIssuer:        jsonCfg.Auth.TokenIssuer,
			TokenExpireMinutes: jsonCfg.Auth.TokenExpireMinutes,
			AllowedEmailDomain: jsonCfg.Auth.AllowedEmailDomain,
			AdminEmails:        jsonCfg.Auth.AdminEmails,
		},
		Storage: Storage{
			DB: DB{
				DSN:  jsonCfg.Storage.DB.DSN,
				Seed: jsonCfg.Storage.DB.Seed,
			},
			Files: Files{
				Backend:       jsonCfg.Storage.Files.Backend,
				UploadDir:     jsonCfg.Storage.Files.UploadDir,
				MaxPhotoBytes: jsonCfg.Storage.Files.MaxPhotoBytes,
			},
			Minio: Minio{
				Endpoint:  jsonCfg.Storage.Minio.Endpoint,
				AccessKey: jsonCfg.Storage.Minio.AccessKey,
				SecretKey: jsonCfg.Storage.Minio.SecretKey,
				Bucket:    jsonCfg.Storage.Minio.Bucket,
				UseSSL:    jsonCfg.Storage.Minio.UseSSL,
			},
			Redis: Redis{
				Addr:          jsonCfg.Storage.Redis.Addr,
				Password:      jsonCfg.Storage.Redis.Password,
				Prefix:        jsonCfg.Storage.Redis.Prefix,
				ClaimAttempts: jsonCfg.Storage.Redis.ClaimAttempts,
				ClaimWindow:   time.Duration(jsonCfg.Storage.Redis.ClaimWindow),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
			RateLimitRPS:   jsonCfg.Server.RateLimitRPS,
			RateLimitBurst: jsonCfg.Server.RateLimitBurst,
		},
		FrontendURL: jsonCfg.FrontendURL,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
