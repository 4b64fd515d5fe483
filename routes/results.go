/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/labwave/lis"
)

// ListResults displays recent test results for verification.
func ListResults(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	results, err := client.Results(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list results", "error", err)
		data["Error"] = "Failed to load results from the backend"
		t.HTML(http.StatusBadGateway, "results")
		return
	}

	data["PageTitle"] = "Results"
	data["Results"] = results
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Results", IsCurrent: true},
	}
	t.HTML(http.StatusOK, "results")
}

func resultRedirect(c flamego.Context) string {
	if next := c.Request().URL.Query().Get("next"); next != "" && strings.HasPrefix(next, "/") {
		return next
	}
	return "/results"
}

// ApproveResult marks a result as approved for release.
func ApproveResult(c flamego.Context, s session.Session, client *lis.Client) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		SetErrorFlash(s, "Invalid result")
		c.Redirect("/results", http.StatusSeeOther)
		return
	}

	if err := client.ApproveResult(c.Request().Context(), id); err != nil {
		logger.Error("Failed to approve result", "id", id, "error", err)
		SetErrorFlash(s, "Failed to approve the result")
	} else {
		SetSuccessFlash(s, "Result approved")
	}
	c.Redirect(resultRedirect(c), http.StatusSeeOther)
}

// RejectResult marks a result as rejected.
func RejectResult(c flamego.Context, s session.Session, client *lis.Client) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		SetErrorFlash(s, "Invalid result")
		c.Redirect("/results", http.StatusSeeOther)
		return
	}

	if err := client.RejectResult(c.Request().Context(), id); err != nil {
		logger.Error("Failed to reject result", "id", id, "error", err)
		SetErrorFlash(s, "Failed to reject the result")
	} else {
		SetSuccessFlash(s, "Result rejected")
	}
	c.Redirect(resultRedirect(c), http.StatusSeeOther)
}

// PickTestResult selects one of several candidate results for a test
// on a work order.
func PickTestResult(c flamego.Context, s session.Session, client *lis.Client) {
	workOrderID, err := parseIDParam(c, "id")
	if err != nil {
		SetErrorFlash(s, "Invalid work order")
		c.Redirect("/work-orders", http.StatusSeeOther)
		return
	}
	testResultID, err := parseIDParam(c, "testResultId")
	if err != nil {
		SetErrorFlash(s, "Invalid test result")
		c.Redirect("/work-orders/"+c.Param("id"), http.StatusSeeOther)
		return
	}

	if err := client.PickTestResult(c.Request().Context(), workOrderID, testResultID); err != nil {
		logger.Error("Failed to pick test result", "work_order_id", workOrderID, "test_result_id", testResultID, "error", err)
		SetErrorFlash(s, "Failed to pick the test result")
	} else {
		SetSuccessFlash(s, "Test result picked")
	}
	c.Redirect("/work-orders/"+c.Param("id"), http.StatusSeeOther)
}

// UpdateSpecimenTests replaces the ordered tests on a specimen from
// the submitted multi-select.
func UpdateSpecimenTests(c flamego.Context, s session.Session, client *lis.Client) {
	specimenID, err := parseIDParam(c, "id")
	if err != nil {
		SetErrorFlash(s, "Invalid specimen")
		c.Redirect("/results", http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		SetErrorFlash(s, "Invalid form submission")
		c.Redirect(resultRedirect(c), http.StatusSeeOther)
		return
	}

	var testTypeIDs []int64
	for _, raw := range c.Request().Form["test_type_id"] {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || id <= 0 {
			SetErrorFlash(s, "Invalid test selection")
			c.Redirect(resultRedirect(c), http.StatusSeeOther)
			return
		}
		testTypeIDs = append(testTypeIDs, id)
	}
	if len(testTypeIDs) == 0 {
		SetErrorFlash(s, "Select at least one test")
		c.Redirect(resultRedirect(c), http.StatusSeeOther)
		return
	}

	if err := client.UpdateSpecimenTests(c.Request().Context(), specimenID, testTypeIDs); err != nil {
		logger.Error("Failed to update specimen tests", "specimen_id", specimenID, "error", err)
		SetErrorFlash(s, "Failed to update the ordered tests")
	} else {
		SetSuccessFlash(s, "Ordered tests updated")
	}
	c.Redirect(resultRedirect(c), http.StatusSeeOther)
}
