/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "time"

// User is a console operator account.
type User struct {
	ID        string
	Username  string
	Fullname  string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Orientation values accepted for barcode label printing.
const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
)

// Settings holds the user-facing print configuration. Dimensions are
// in millimetres.
type Settings struct {
	BarcodePageWidth  float64
	BarcodePageHeight float64
	BarcodeWidth      float64
	BarcodeHeight     float64
	Orientation       string
	CompanyName       string
	CompanyAddress    string
}

// DefaultSettings returns the settings used before an operator saves
// their own.
func DefaultSettings() Settings {
	return Settings{
		BarcodePageWidth:  50,
		BarcodePageHeight: 20,
		BarcodeWidth:      1.5,
		BarcodeHeight:     50,
		Orientation:       OrientationLandscape,
	}
}

// Validate checks the numeric dimensions and orientation.
func (s Settings) Validate() error {
	if s.BarcodePageWidth <= 0 || s.BarcodePageHeight <= 0 {
		return ErrInvalidDimension
	}
	if s.BarcodeWidth <= 0 || s.BarcodeHeight <= 0 {
		return ErrInvalidDimension
	}
	if s.Orientation != OrientationLandscape && s.Orientation != OrientationPortrait {
		return ErrInvalidOrientation
	}
	return nil
}
