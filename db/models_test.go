// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.BarcodePageWidth != 50 || s.BarcodePageHeight != 20 {
		t.Fatalf("unexpected default page size %+v", s)
	}
	if s.BarcodeWidth != 1.5 || s.BarcodeHeight != 50 {
		t.Fatalf("unexpected default barcode size %+v", s)
	}
	if s.Orientation != OrientationLandscape {
		t.Fatalf("unexpected default orientation %q", s.Orientation)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Settings)
		wantErr error
	}{
		{"zero page width", func(s *Settings) { s.BarcodePageWidth = 0 }, ErrInvalidDimension},
		{"negative height", func(s *Settings) { s.BarcodeHeight = -1 }, ErrInvalidDimension},
		{"bad orientation", func(s *Settings) { s.Orientation = "diagonal" }, ErrInvalidOrientation},
		{"portrait ok", func(s *Settings) { s.Orientation = OrientationPortrait }, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			if err := s.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestIsNoRows(t *testing.T) {
	if !isNoRows(pgx.ErrNoRows) {
		t.Fatal("bare ErrNoRows must match")
	}
	if !isNoRows(fmt.Errorf("failed to scan row: %w", pgx.ErrNoRows)) {
		t.Fatal("wrapped ErrNoRows must match")
	}
	if isNoRows(errors.New("connection refused")) {
		t.Fatal("unrelated error must not match")
	}
}
