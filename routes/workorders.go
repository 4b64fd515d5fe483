/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/skip2/go-qrcode"

	"github.com/humaidq/labwave/bridge"
	"github.com/humaidq/labwave/lis"
)

// ListWorkOrders displays the work order grid.
func ListWorkOrders(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	orders, err := client.WorkOrders(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list work orders", "error", err)
		data["Error"] = "Failed to load work orders from the backend"
		t.HTML(http.StatusBadGateway, "workorders")
		return
	}

	data["PageTitle"] = "Work Orders"
	data["WorkOrders"] = orders
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Work Orders", IsCurrent: true},
	}
	t.HTML(http.StatusOK, "workorders")
}

// ViewWorkOrder displays one work order with its test results.
func ViewWorkOrder(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		NotFound(t, data)
		return
	}

	order, err := client.WorkOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, lis.ErrNotFound) {
			NotFound(t, data)
			return
		}
		logger.Error("Failed to load work order", "id", id, "error", err)
		data["Error"] = "Failed to load the work order from the backend"
		t.HTML(http.StatusBadGateway, "workorder")
		return
	}

	results, err := client.WorkOrderResults(c.Request().Context(), id)
	if err != nil {
		logger.Error("Failed to load work order results", "id", id, "error", err)
		data["Error"] = "Failed to load results from the backend"
		t.HTML(http.StatusBadGateway, "workorder")
		return
	}

	data["PageTitle"] = "Work Order " + order.Barcode
	data["WorkOrder"] = order
	data["Results"] = results
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Work Orders", URL: "/work-orders"},
		{Name: order.Barcode, IsCurrent: true},
	}
	t.HTML(http.StatusOK, "workorder")
}

// UpdateReleaseDate sets the result release date on a work order.
func UpdateReleaseDate(c flamego.Context, s session.Session, client *lis.Client) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		SetErrorFlash(s, "Invalid work order")
		c.Redirect("/work-orders", http.StatusSeeOther)
		return
	}
	redirect := c.Request().URL.Query().Get("next")
	if redirect == "" {
		redirect = "/work-orders/" + c.Param("id")
	}

	releaseDate, err := parseDateField(c.Request().FormValue("release_date"))
	if err != nil {
		SetErrorFlash(s, "Release date must be a valid date")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	if err := client.UpdateReleaseDate(c.Request().Context(), id, releaseDate); err != nil {
		logger.Error("Failed to update release date", "id", id, "error", err)
		SetErrorFlash(s, "Failed to update the release date")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Release date updated")
	c.Redirect(redirect, http.StatusSeeOther)
}

// ShareWorkOrder asks the integration service for a public result link
// and renders it with a QR code.
func ShareWorkOrder(c flamego.Context, s session.Session, t template.Template, data template.Data, client *lis.Client, bridgeClient *bridge.Client) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		NotFound(t, data)
		return
	}

	order, err := client.WorkOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, lis.ErrNotFound) {
			NotFound(t, data)
			return
		}
		logger.Error("Failed to load work order for sharing", "id", id, "error", err)
		SetErrorFlash(s, "Failed to load the work order")
		c.Redirect("/work-orders", http.StatusSeeOther)
		return
	}

	link, err := bridgeClient.GeneratePublicLink(c.Request().Context(), order.Barcode)
	if err != nil {
		logger.Error("Failed to generate public link", "barcode", order.Barcode, "error", err)
		SetErrorFlash(s, "The integration service could not generate a share link")
		c.Redirect("/work-orders/"+c.Param("id"), http.StatusSeeOther)
		return
	}

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		logger.Error("Failed to generate QR code", "error", err)
	} else {
		data["QRCode"] = base64.StdEncoding.EncodeToString(png)
	}

	data["PageTitle"] = "Share Results"
	data["WorkOrder"] = order
	data["PublicLink"] = link
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Work Orders", URL: "/work-orders"},
		{Name: order.Barcode, URL: "/work-orders/" + c.Param("id")},
		{Name: "Share", IsCurrent: true},
	}
	t.HTML(http.StatusOK, "workorder_share")
}
