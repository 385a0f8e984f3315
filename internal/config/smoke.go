// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"time"
)

// Smoke configures the end-to-end smoke run against a live server.
type Smoke struct {
	// APIAddress is the server address, with or without scheme.
	// Env: SMOKE_API_ADDRESS
	APIAddress string `env:"API_ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout bounds every API call.
	// Env: SMOKE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// EmailDomain is appended to the generated student address and must
	// satisfy the server's AUTH_ALLOWED_EMAIL_DOMAIN.
	// Env: SMOKE_EMAIL_DOMAIN
	EmailDomain string `env:"EMAIL_DOMAIN" envDefault:"@campus.edu"`

	// StaffUsername and StaffEmail identify the staff account. StaffEmail
	// must be listed in the server's AUTH_ADMIN_EMAILS.
	// Env: SMOKE_STAFF_USERNAME, SMOKE_STAFF_EMAIL
	StaffUsername string `env:"STAFF_USERNAME" envDefault:"security"`
	StaffEmail    string `env:"STAFF_EMAIL" envDefault:"security@campus.edu"`

	// Password is used for both accounts.
	// Env: SMOKE_PASSWORD
	Password string `env:"PASSWORD" envDefault:"smoke-test-password"`
}

type smokeEnv struct {
	Smoke Smoke `envPrefix:"SMOKE_"`
}

// GetSmokeConfig reads the smoke settings from SMOKE_* environment variables.
func GetSmokeConfig() (Smoke, error) {
	var cfg smokeEnv
	if err := parseEnv(&cfg); err != nil {
		return Smoke{}, err
	}
	if cfg.Smoke.APIAddress == "" {
		return Smoke{}, errors.New("smoke api address is empty")
	}
	return cfg.Smoke, nil
}
