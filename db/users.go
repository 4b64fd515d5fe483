/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CreateUserInput defines data for creating an operator account.
type CreateUserInput struct {
	Username string
	Fullname string
	Password string
	IsAdmin  bool
}

// CountUsers returns the number of accounts.
func CountUsers(ctx context.Context) (int, error) {
	if pool == nil {
		return 0, ErrNotInitialized
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CreateUser creates an operator account with a bcrypt-hashed password.
func CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if pool == nil {
		return nil, ErrNotInitialized
	}
	if input.Username == "" || input.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user User
	query := `
		INSERT INTO users (username, fullname, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, fullname, is_admin, created_at, updated_at
	`

	if err := pool.QueryRow(ctx, query, input.Username, input.Fullname, string(hash), input.IsAdmin).Scan(
		&user.ID,
		&user.Username,
		&user.Fullname,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByID returns an account by ID.
func GetUserByID(ctx context.Context, id string) (*User, error) {
	if pool == nil {
		return nil, ErrNotInitialized
	}

	var user User
	query := `
		SELECT id, username, fullname, is_admin, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	if err := pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Fullname,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Authenticate checks a username/password pair and returns the account
// on success. Failures are indistinguishable between unknown username
// and wrong password.
func Authenticate(ctx context.Context, username, password string) (*User, error) {
	if pool == nil {
		return nil, ErrNotInitialized
	}

	var user User
	var hash string
	query := `
		SELECT id, username, fullname, is_admin, created_at, updated_at, password_hash
		FROM users
		WHERE username = $1
	`
	if err := pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Fullname,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
		&hash,
	); err != nil {
		if isNoRows(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// ListUsers returns all accounts.
func ListUsers(ctx context.Context) ([]User, error) {
	if pool == nil {
		return nil, ErrNotInitialized
	}

	query := `
		SELECT id, username, fullname, is_admin, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Fullname,
			&user.IsAdmin,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// DeleteUser removes an account by ID.
func DeleteUser(ctx context.Context, userID string) error {
	if pool == nil {
		return ErrNotInitialized
	}

	command, err := pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if command.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
