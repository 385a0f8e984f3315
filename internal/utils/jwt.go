// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/campus-found/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnsupportedSigningAlgorithm is returned for algorithm names other than
// the HMAC family.
var ErrUnsupportedSigningAlgorithm = errors.New("unsupported signing algorithm")

// JWTParams groups the settings shared by token generation and validation.
type JWTParams struct {
	Issuer    string
	Algorithm string
	SignKey   string
	Duration  time.Duration
}

func (p JWTParams) signingMethod() (jwt.SigningMethod, error) {
	method := jwt.GetSigningMethod(p.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSigningAlgorithm, p.Algorithm)
	}
	return method, nil
}

// GenerateJWTToken creates a signed HMAC JWT token for userID.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus params.Duration
//
// Issuer, Duration and SignKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.JWTParams{
//	    Issuer: "campus-found", Algorithm: "HS256", SignKey: "secret", Duration: 30 * time.Minute,
//	}, 42)
func GenerateJWTToken(params JWTParams, userID int64) (models.Token, error) {
	if params.Issuer == "" || params.Duration == 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := params.signingMethod()
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with params.SignKey, accepting only params.Algorithm
//   - Issuer (iss) claim check against params.Issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, params)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString string, params JWTParams) (models.Token, error) {
	method, err := params.signingMethod()
	if err != nil {
		return models.Token{}, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, jwt.WithIssuer(params.Issuer), jwt.WithValidMethods([]string{method.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
