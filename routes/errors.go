/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingID        = errors.New("missing ID")
	errInvalidID        = errors.New("invalid ID")
	errMissingDate      = errors.New("missing date")
	errInvalidDate      = errors.New("invalid date")
	errMissingDimension = errors.New("missing dimension")
	errInvalidDimension = errors.New("dimension must be a positive number")
)
