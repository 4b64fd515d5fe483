/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/template"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/labwave/bridge"
	"github.com/humaidq/labwave/feed"
	"github.com/humaidq/labwave/lis"
)

// SummaryCard is one dashboard counter tile.
type SummaryCard struct {
	Label string
	Value int
}

func summaryCards(s lis.SummarySnapshot) []SummaryCard {
	return []SummaryCard{
		{Label: "Work Orders", Value: s.TotalWorkOrders},
		{Label: "Completed", Value: s.CompletedWorkOrders},
		{Label: "Pending", Value: s.PendingWorkOrders},
		{Label: "Incomplete", Value: s.IncompleteWorkOrders},
		{Label: "Tests", Value: s.TotalTests},
		{Label: "Devices Connected", Value: s.DevicesConnected},
		{Label: "Patients", Value: s.TotalPatients},
		{Label: "Test Parameters", Value: s.TotalTestParameters},
	}
}

// Dashboard renders the summary cards and analytics charts from the
// latest feed snapshots.
func Dashboard(t template.Template, data template.Data, feedClient *feed.Client, poller *bridge.StatusPoller) {
	summary := feedClient.Summary()
	analytics := feedClient.Analytics()

	data["PageTitle"] = "Dashboard"
	data["Cards"] = summaryCards(summary)
	data["FeedState"] = feedClient.State()
	data["BridgeStatus"] = poller.Status()

	builders := map[string]struct {
		build func() (string, error)
		key   string
	}{
		"WorkOrderTrendChart":       {func() (string, error) { return renderLineChart("Work Order Trend", analytics.WorkOrderTrend) }, "work_order_trend"},
		"AbnormalSummaryChart":      {func() (string, error) { return renderPieChart("Abnormal Results", analytics.AbnormalSummary) }, "abnormal_summary"},
		"GenderSummaryChart":        {func() (string, error) { return renderPieChart("Patients by Gender", analytics.GenderSummary) }, "gender_summary"},
		"AgeGroupChart":             {func() (string, error) { return renderBarChart("Patients by Age Group", analytics.AgeGroup) }, "age_group"},
		"TopTestOrderedChart":       {func() (string, error) { return renderBarChart("Top Ordered Tests", analytics.TopTestOrdered) }, "top_test_ordered"},
		"TestTypeDistributionChart": {func() (string, error) { return renderPieChart("Test Type Distribution", analytics.TestTypeDistribution) }, "test_type_distribution"},
	}

	for name, chart := range builders {
		html, err := chart.build()
		if err != nil {
			logger.Error("Failed to render dashboard chart", "chart", chart.key, "error", err)
			continue
		}
		data[name] = htmltemplate.HTML(html)
	}

	t.HTML(http.StatusOK, "dashboard")
}

func renderLineChart(title string, points []lis.SummaryPoint) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	xAxis := make([]string, 0, len(points))
	yData := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		xAxis = append(xAxis, p.Name)
		yData = append(yData, opts.LineData{Value: p.Total})
	}

	line.SetXAxis(xAxis).
		AddSeries(title, yData).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(true),
		}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderBarChart(title string, points []lis.SummaryPoint) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	xAxis := make([]string, 0, len(points))
	yData := make([]opts.BarData, 0, len(points))
	for _, p := range points {
		xAxis = append(xAxis, p.Name)
		yData = append(yData, opts.BarData{Value: p.Total})
	}

	bar.SetXAxis(xAxis).AddSeries(title, yData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderPieChart(title string, points []lis.SummaryPoint) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	items := make([]opts.PieData, 0, len(points))
	for _, p := range points {
		items = append(items, opts.PieData{Name: p.Name, Value: p.Total})
	}

	pie.AddSeries(title, items)

	var buf bytes.Buffer
	if err := pie.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
