/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
)

// BreadcrumbItem is one entry of the page breadcrumb trail.
type BreadcrumbItem struct {
	Name      string
	URL       string
	IsCurrent bool
}

func parseIDParam(c flamego.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, errMissingID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// parseDateField parses a yyyy-mm-dd form value.
func parseDateField(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errMissingDate
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// parseMillimetreField parses a positive decimal millimetre value.
func parseMillimetreField(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errMissingDimension
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return 0, errInvalidDimension
	}
	return f, nil
}

// NotFound renders the not-found panel instead of a bare 404.
func NotFound(t template.Template, data template.Data) {
	data["PageTitle"] = "Not Found"
	t.HTML(http.StatusNotFound, "notfound")
}

func formatPatientName(first, last string) string {
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return "Unknown patient"
	}
	return name
}
