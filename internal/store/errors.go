// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists and ErrEmailAlreadyExists are returned when a
	// user insert hits the corresponding unique constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrItemNotFound is returned when no item has the requested id.
	ErrItemNotFound = errors.New("item was not found")

	// ErrItemCodeConflict is returned when a generated item code collides
	// with an existing one.
	ErrItemCodeConflict = errors.New("item code already exists")

	// ErrItemNotStored is returned by conditional writes that require the
	// item to still be in the "stored" state.
	ErrItemNotStored = errors.New("item is not in stored state")

	// ErrClaimNotFound is returned when no claim has the requested id.
	ErrClaimNotFound = errors.New("claim was not found")

	// ErrClaimAlreadyReviewed is returned when a verification targets a claim
	// that already has a result.
	ErrClaimAlreadyReviewed = errors.New("claim was already reviewed")

	// ErrSecurityPointNotFound is returned when no security point has the
	// requested id.
	ErrSecurityPointNotFound = errors.New("security point was not found")

	// ErrPhotoNotFound is returned by photo storages for unknown names.
	ErrPhotoNotFound = errors.New("photo was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
