// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/store"
	"github.com/MKhiriev/campus-found/internal/utils"
	"github.com/MKhiriev/campus-found/internal/validators"
	"github.com/MKhiriev/campus-found/models"
)

// TokenTypeBearer is the token_type returned on login.
const TokenTypeBearer = "bearer"

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT lifecycle
// using a UserRepository for persistence and bcrypt for password hashes.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// jwtParams is shared by token generation and validation.
	jwtParams utils.JWTParams

	// allowedEmailDomain restricts registration when not empty.
	allowedEmailDomain string

	// adminEmails become staff accounts on registration.
	adminEmails []string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the auth section of the
// configuration. The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		jwtParams: utils.JWTParams{
			Issuer:    cfg.TokenIssuer,
			Algorithm: cfg.TokenAlgorithm,
			SignKey:   cfg.TokenSignKey,
			Duration:  cfg.TokenDuration(),
		},
		allowedEmailDomain: strings.ToLower(strings.TrimSpace(cfg.AllowedEmailDomain)),
		adminEmails:        cfg.AdminEmailList(),
		logger:             logger,
	}
}

// Register creates a new account.
//
// Returns the persisted user or:
//   - ErrValidation if a field is missing, the email is malformed or the
//     password is longer than bcrypt accepts.
//   - ErrEmailDomainNotAllowed if the email is outside the allowed domain.
//   - ErrUsernameTaken / ErrEmailTaken on unique conflicts.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Register").Logger()

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data")
		return models.User{}, validationError(err)
	}

	email := strings.TrimSpace(req.Email)
	if a.allowedEmailDomain != "" && !strings.HasSuffix(strings.ToLower(email), a.allowedEmailDomain) {
		log.Info().Str("email", email).Msg("registration outside allowed email domain")
		return models.User{}, fmt.Errorf("%w: email must be from %s domain", ErrEmailDomainNotAllowed, a.allowedEmailDomain)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: passwordHash,
		IsAdmin:      a.isAdminEmail(email),
	})
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.User{}, ErrUsernameTaken
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailTaken
	case err != nil:
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Bool("is_admin", user.IsAdmin).Msg("user registered")
	return user, nil
}

// Login checks the credentials and issues a bearer token.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Login").Logger()

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResponse{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", req.Username).Msg("login for unknown user")
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.LoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.jwtParams, user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error creating token")
		return models.LoginResponse{}, fmt.Errorf("error creating token: %w", err)
	}

	return models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   TokenTypeBearer,
		User:        user,
	}, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.jwtParams)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}

// CurrentUser validates tokenString and loads its user. A token whose user no
// longer exists is treated as invalid.
func (a *authService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error loading token user: %w", err)
	}
	return user, nil
}

func (a *authService) isAdminEmail(email string) bool {
	for _, admin := range a.adminEmails {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}
