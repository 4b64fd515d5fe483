/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/labwave/bridge"
	"github.com/humaidq/labwave/feed"
)

// ServiceStatusResponse is the JSON body of the status endpoint polled
// by the page header indicator.
type ServiceStatusResponse struct {
	Bridge bridge.Status `json:"bridge"`
	Feed   feed.State    `json:"feed"`
}

// ServiceStatus reports integration service reachability and feed
// connection state.
func ServiceStatus(c flamego.Context, poller *bridge.StatusPoller, feedClient *feed.Client) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(http.StatusOK)

	resp := ServiceStatusResponse{
		Bridge: poller.Status(),
		Feed:   feedClient.State(),
	}
	if err := json.NewEncoder(c.ResponseWriter()).Encode(resp); err != nil {
		logger.Error("Failed to encode service status", "error", err)
	}
}
