/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/labwave/db"
)

// SettingsForm renders the print settings page.
func SettingsForm(c flamego.Context, t template.Template, data template.Data) {
	settings, err := db.GetSettings(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load settings", "error", err)
		settings = db.DefaultSettings()
		data["Error"] = "Stored settings could not be loaded; showing defaults"
	}

	data["PageTitle"] = "Settings"
	data["Settings"] = settings
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Settings", IsCurrent: true},
	}
	t.HTML(http.StatusOK, "settings")
}

// settingsFromForm validates the submitted settings. Dimension fields
// are millimetre values and must be positive numbers.
func settingsFromForm(get func(string) string) (db.Settings, string) {
	var s db.Settings
	var err error

	fields := []struct {
		name  string
		label string
		dst   *float64
	}{
		{"barcode_page_width", "Page width", &s.BarcodePageWidth},
		{"barcode_page_height", "Page height", &s.BarcodePageHeight},
		{"barcode_width", "Barcode width", &s.BarcodeWidth},
		{"barcode_height", "Barcode height", &s.BarcodeHeight},
	}
	for _, f := range fields {
		if *f.dst, err = parseMillimetreField(get(f.name)); err != nil {
			return s, f.label + " must be a positive number of millimetres"
		}
	}

	s.Orientation = strings.TrimSpace(get("orientation"))
	if s.Orientation != db.OrientationLandscape && s.Orientation != db.OrientationPortrait {
		return s, "Orientation must be landscape or portrait"
	}

	s.CompanyName = strings.TrimSpace(get("company_name"))
	s.CompanyAddress = strings.TrimSpace(get("company_address"))

	return s, ""
}

// SaveSettings validates and stores the print settings.
func SaveSettings(c flamego.Context, s session.Session) {
	settings, msg := settingsFromForm(c.Request().FormValue)
	if msg != "" {
		SetErrorFlash(s, msg)
		c.Redirect("/settings", http.StatusSeeOther)
		return
	}

	if err := db.SaveSettings(c.Request().Context(), settings); err != nil {
		logger.Error("Failed to save settings", "error", err)
		SetErrorFlash(s, "Failed to save settings")
		c.Redirect("/settings", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Settings saved")
	c.Redirect("/settings", http.StatusSeeOther)
}
