/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrDatabaseURLNotSet indicates no connection string was provided.
	ErrDatabaseURLNotSet = errors.New("database URL is not set")

	// ErrDatabaseNameNotSpecified indicates the connection string has no
	// database name to bootstrap.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in connection string")

	// ErrNotInitialized indicates Init has not been called.
	ErrNotInitialized = errors.New("database connection not initialized")

	// ErrUserNotFound indicates no account matches the given identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidDimension indicates a non-positive print dimension.
	ErrInvalidDimension = errors.New("print dimensions must be positive millimetre values")

	// ErrInvalidOrientation indicates an unknown label orientation.
	ErrInvalidOrientation = errors.New("orientation must be landscape or portrait")
)

// isNoRows reports whether err is pgx.ErrNoRows, matching through
// wrapped errors.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
