/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"sort"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/labwave/lis"
)

// sortTestTypesByIDDesc orders test parameters newest-first, the
// order the catalogue grid displays them in.
func sortTestTypesByIDDesc(testTypes []lis.TestType) {
	sort.Slice(testTypes, func(i, j int) bool {
		return testTypes[i].ID > testTypes[j].ID
	})
}

// ListTestTypes displays the test parameter catalogue.
func ListTestTypes(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	testTypes, err := client.TestTypes(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list test types", "error", err)
		data["Error"] = "Failed to load test parameters from the backend"
		t.HTML(http.StatusBadGateway, "testtypes")
		return
	}
	sortTestTypesByIDDesc(testTypes)

	data["PageTitle"] = "Test Parameters"
	data["TestTypes"] = testTypes
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Test Parameters", IsCurrent: true},
	}
	t.HTML(http.StatusOK, "testtypes")
}
