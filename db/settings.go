/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"
)

// GetSettings returns the stored print settings, or the defaults when
// nothing has been saved yet.
func GetSettings(ctx context.Context) (Settings, error) {
	if pool == nil {
		return Settings{}, ErrNotInitialized
	}

	var s Settings
	query := `
		SELECT barcode_page_width, barcode_page_height, barcode_width,
		       barcode_height, orientation, company_name, company_address
		FROM settings
		WHERE id = 1
	`
	if err := pool.QueryRow(ctx, query).Scan(
		&s.BarcodePageWidth,
		&s.BarcodePageHeight,
		&s.BarcodeWidth,
		&s.BarcodeHeight,
		&s.Orientation,
		&s.CompanyName,
		&s.CompanyAddress,
	); err != nil {
		if isNoRows(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// SaveSettings validates and stores the print settings.
func SaveSettings(ctx context.Context, s Settings) error {
	if pool == nil {
		return ErrNotInitialized
	}
	if err := s.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO settings (id, barcode_page_width, barcode_page_height,
		                      barcode_width, barcode_height, orientation,
		                      company_name, company_address, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			barcode_page_width = EXCLUDED.barcode_page_width,
			barcode_page_height = EXCLUDED.barcode_page_height,
			barcode_width = EXCLUDED.barcode_width,
			barcode_height = EXCLUDED.barcode_height,
			orientation = EXCLUDED.orientation,
			company_name = EXCLUDED.company_name,
			company_address = EXCLUDED.company_address,
			updated_at = NOW()
	`
	if _, err := pool.Exec(ctx, query,
		s.BarcodePageWidth,
		s.BarcodePageHeight,
		s.BarcodeWidth,
		s.BarcodeHeight,
		s.Orientation,
		s.CompanyName,
		s.CompanyAddress,
	); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
