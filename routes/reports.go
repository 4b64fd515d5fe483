/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/labwave/db"
	"github.com/humaidq/labwave/lis"
	"github.com/humaidq/labwave/report"
)

// loadReportData fetches the work order and results a report needs.
func loadReportData(c flamego.Context, client *lis.Client) (*lis.WorkOrder, []lis.RawTestResult, error) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return nil, nil, lis.ErrNotFound
	}

	order, err := client.WorkOrder(c.Request().Context(), id)
	if err != nil {
		return nil, nil, err
	}

	results, err := client.WorkOrderResults(c.Request().Context(), id)
	if err != nil {
		return nil, nil, err
	}

	return order, results, nil
}

func renderReportError(err error, t template.Template, data template.Data, page string) {
	if errors.Is(err, lis.ErrNotFound) {
		NotFound(t, data)
		return
	}
	logger.Error("Failed to load report data", "error", err)
	data["Error"] = "Failed to load report data from the backend"
	t.HTML(http.StatusBadGateway, page)
}

// StandardReport renders the standard printable report layout:
// category sections with WBC listed first within its section.
func StandardReport(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	order, results, err := loadReportData(c, client)
	if err != nil {
		renderReportError(err, t, data, "report_standard")
		return
	}

	settings, err := db.GetSettings(c.Request().Context())
	if err != nil {
		logger.Warn("Failed to load settings for report", "error", err)
		settings = db.DefaultSettings()
	}

	lines := report.BuildLines(results)

	data["PageTitle"] = "Report " + order.Barcode
	data["WorkOrder"] = order
	data["Sections"] = report.StandardSections(lines)
	data["Settings"] = settings
	t.HTML(http.StatusOK, "report_standard")
}

// SelayarReport renders the Selayar printable layout with its method
// and reference-range overrides.
func SelayarReport(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	order, results, err := loadReportData(c, client)
	if err != nil {
		renderReportError(err, t, data, "report_selayar")
		return
	}

	settings, err := db.GetSettings(c.Request().Context())
	if err != nil {
		logger.Warn("Failed to load settings for report", "error", err)
		settings = db.DefaultSettings()
	}

	data["PageTitle"] = "Report " + order.Barcode
	data["WorkOrder"] = order
	data["Lines"] = report.BuildSelayarLines(results)
	data["Settings"] = settings
	t.HTML(http.StatusOK, "report_selayar")
}
