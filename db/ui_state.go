/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"
)

// Fixed keys for per-user UI state.
const (
	UIStateLastViewedPatient = "last_viewed_patient"
)

// GetUIState returns a per-user state value, or empty string when the
// key has never been set.
func GetUIState(ctx context.Context, userID, key string) (string, error) {
	if pool == nil {
		return "", ErrNotInitialized
	}

	var value string
	query := `SELECT value FROM ui_state WHERE user_id = $1 AND key = $2`
	if err := pool.QueryRow(ctx, query, userID, key).Scan(&value); err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get UI state: %w", err)
	}
	return value, nil
}

// SetUIState stores a per-user state value, replacing any previous one.
func SetUIState(ctx context.Context, userID, key, value string) error {
	if pool == nil {
		return ErrNotInitialized
	}

	query := `
		INSERT INTO ui_state (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`
	if _, err := pool.Exec(ctx, query, userID, key, value); err != nil {
		return fmt.Errorf("failed to set UI state: %w", err)
	}
	return nil
}
