/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/labwave/lis"
)

// ListQCEntries displays recorded quality-control entries.
func ListQCEntries(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	entries, err := client.QCEntries(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list QC entries", "error", err)
		data["Error"] = "Failed to load quality-control entries from the backend"
		t.HTML(http.StatusBadGateway, "qc")
		return
	}

	data["PageTitle"] = "Quality Control"
	data["Entries"] = entries
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Quality Control", IsCurrent: true},
	}
	t.HTML(http.StatusOK, "qc")
}

// NewQCEntryForm renders the manual QC entry form.
func NewQCEntryForm(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	testTypes, err := client.TestTypes(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load test types", "error", err)
		data["Error"] = "Failed to load test parameters from the backend"
	}

	data["PageTitle"] = "New QC Entry"
	data["TestTypes"] = testTypes
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Quality Control", URL: "/quality-control"},
		{Name: "New Entry", IsCurrent: true},
	}
	t.HTML(http.StatusOK, "qc_new")
}

// qcEntriesForTestType filters entries down to one test parameter,
// preserving the backend's order.
func qcEntriesForTestType(entries []lis.QCEntry, testTypeID int64) []lis.QCEntry {
	var filtered []lis.QCEntry
	for _, e := range entries {
		if e.TestTypeID == testTypeID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// renderQCEntryChart plots each recorded entry's target mean against
// its reference band.
func renderQCEntryChart(title string, entries []lis.QCEntry) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	xAxis := make([]string, 0, len(entries))
	mean := make([]opts.LineData, 0, len(entries))
	refMin := make([]opts.LineData, 0, len(entries))
	refMax := make([]opts.LineData, 0, len(entries))
	for _, e := range entries {
		xAxis = append(xAxis, fmt.Sprintf("%s (%s)", e.CreatedAt.Format("2006-01-02"), e.LotNumber))
		mean = append(mean, opts.LineData{Value: e.TargetMean})
		refMin = append(refMin, opts.LineData{Value: e.RefMin})
		refMax = append(refMax, opts.LineData{Value: e.RefMax})
	}

	line.SetXAxis(xAxis).
		AddSeries("Target Mean", mean).
		AddSeries("Ref Min", refMin).
		AddSeries("Ref Max", refMax).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(true),
		}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// QCEntryDetail shows the entries recorded for one test parameter with
// a chart of target means against their reference bands.
func QCEntryDetail(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	testTypeID, err := parseIDParam(c, "id")
	if err != nil {
		NotFound(t, data)
		return
	}

	ctx := c.Request().Context()
	entries, err := client.QCEntries(ctx)
	if err != nil {
		logger.Error("Failed to list QC entries", "error", err)
		data["Error"] = "Failed to load quality-control entries from the backend"
		t.HTML(http.StatusBadGateway, "qc_detail")
		return
	}

	entries = qcEntriesForTestType(entries, testTypeID)

	title := fmt.Sprintf("Test Parameter #%d", testTypeID)
	if testTypes, err := client.TestTypes(ctx); err == nil {
		for _, tt := range testTypes {
			if tt.ID == testTypeID {
				title = tt.Name
				if tt.Code != "" {
					title = tt.Code + " - " + tt.Name
				}
				break
			}
		}
	} else {
		logger.Error("Failed to load test types", "error", err)
	}

	if len(entries) > 0 {
		html, err := renderQCEntryChart(title, entries)
		if err != nil {
			logger.Error("Failed to render QC chart", "test_type_id", testTypeID, "error", err)
		} else {
			data["Chart"] = htmltemplate.HTML(html)
		}
	}

	data["PageTitle"] = "QC: " + title
	data["Title"] = title
	data["Entries"] = entries
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Quality Control", URL: "/quality-control"},
		{Name: title, IsCurrent: true},
	}
	t.HTML(http.StatusOK, "qc_detail")
}

// qcEntryFromForm validates the submitted QC form into the creation
// payload. The first validation failure is returned as a user-facing
// message.
func qcEntryFromForm(form map[string][]string, createdBy string) (lis.QCEntryInput, string) {
	get := func(name string) string {
		if values, ok := form[name]; ok && len(values) > 0 {
			return strings.TrimSpace(values[0])
		}
		return ""
	}

	parseID := func(name, label string) (int64, string) {
		id, err := strconv.ParseInt(get(name), 10, 64)
		if err != nil || id <= 0 {
			return 0, label + " is required"
		}
		return id, ""
	}
	parseFloat := func(name, label string) (float64, string) {
		f, err := strconv.ParseFloat(get(name), 64)
		if err != nil {
			return 0, label + " must be a number"
		}
		return f, ""
	}

	var input lis.QCEntryInput
	var msg string

	if input.DeviceID, msg = parseID("device_id", "Device"); msg != "" {
		return input, msg
	}
	if input.TestTypeID, msg = parseID("test_type_id", "Test parameter"); msg != "" {
		return input, msg
	}

	input.QCLevel = get("qc_level")
	if input.QCLevel == "" {
		return input, "QC level is required"
	}
	input.LotNumber = get("lot_number")
	if input.LotNumber == "" {
		return input, "Lot number is required"
	}

	if input.TargetMean, msg = parseFloat("target_mean", "Target mean"); msg != "" {
		return input, msg
	}
	if input.TargetSD, msg = parseFloat("target_sd", "Target SD"); msg != "" {
		return input, msg
	}
	if input.TargetSD < 0 {
		return input, "Target SD must not be negative"
	}
	if input.RefMin, msg = parseFloat("ref_min", "Reference minimum"); msg != "" {
		return input, msg
	}
	if input.RefMax, msg = parseFloat("ref_max", "Reference maximum"); msg != "" {
		return input, msg
	}
	if input.RefMax < input.RefMin {
		return input, "Reference maximum must not be below the minimum"
	}

	input.CreatedBy = createdBy
	return input, ""
}

// CreateQCEntry validates and submits a manual QC entry.
func CreateQCEntry(c flamego.Context, s session.Session, client *lis.Client) {
	if err := c.Request().ParseForm(); err != nil {
		SetErrorFlash(s, "Invalid form submission")
		c.Redirect("/quality-control/new", http.StatusSeeOther)
		return
	}

	createdBy, _ := s.Get("user_fullname").(string)
	input, msg := qcEntryFromForm(c.Request().Form, createdBy)
	if msg != "" {
		SetErrorFlash(s, msg)
		c.Redirect("/quality-control/new", http.StatusSeeOther)
		return
	}

	if err := client.CreateQCEntry(c.Request().Context(), input); err != nil {
		logger.Error("Failed to create QC entry", "error", err)
		SetErrorFlash(s, "Failed to record the QC entry")
		c.Redirect("/quality-control/new", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "QC entry recorded")
	c.Redirect("/quality-control", http.StatusSeeOther)
}
