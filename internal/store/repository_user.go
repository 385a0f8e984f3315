// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (UserID, CreatedAt) filled in.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.Name, user.PasswordHash, user.IsAdmin)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		if detail, ok := uniqueViolation(err); ok {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("detail", detail).Msg("user already exists")
			if strings.Contains(strings.ToLower(detail), "email") {
				return models.User{}, ErrEmailAlreadyExists
			}
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername returns [ErrNoUserWasFound] when no account has the
// given username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID returns [ErrNoUserWasFound] when no account has the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, arg), &foundUser); err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
