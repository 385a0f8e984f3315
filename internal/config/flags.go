// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres URL or sqlite DSN)
//	-f photo upload directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-algorithm token signing algorithm (HS256, HS384, HS512)
//	-token-issuer token issuer name
//	-token-expire-minutes token lifetime in minutes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-email-domain registration email domain
//	-admin-emails comma separated staff emails
//	-seed seed sample buildings and security points
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var uploadDir string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenAlgorithm string
	var tokenIssuer string
	var tokenExpireMinutes int
	var requestTimeout time.Duration
	var allowedEmailDomain string
	var adminEmails string
	var seed bool

	fs := flag.NewFlagSet("campus-found", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&uploadDir, "f", "", "Photo upload directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenAlgorithm, "token-algorithm", "", "Token signing algorithm")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.IntVar(&tokenExpireMinutes, "token-expire-minutes", 0, "Token lifetime in minutes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&allowedEmailDomain, "allowed-email-domain", "", "Allowed registration email domain")
	fs.StringVar(&adminEmails, "admin-emails", "", "Comma separated staff emails")
	fs.BoolVar(&seed, "seed", false, "Seed sample buildings and security points")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:       tokenSignKey,
			TokenAlgorithm:     tokenAlgorithm,
			TokenIssuer:        tokenIssuer,
			TokenExpireMinutes: tokenExpireMinutes,
			AllowedEmailDomain: allowedEmailDomain,
			AdminEmails:        adminEmails,
		},
		Storage: Storage{
			DB: DB{
				DSN:  databaseDSN,
				Seed: seed,
			},
			Files: Files{
				UploadDir: uploadDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
