/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bridge talks to the instrument integration service, a
// separate local process that bridges lab analyzers to the backend. It
// exposes a health probe and public result-link generation.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/humaidq/labwave/logging"
)

var logger = logging.Logger(logging.SourceBridge)

// DefaultBaseURL is where the integration service listens when running
// on the same host.
const DefaultBaseURL = "http://localhost:8214"

// Client calls the integration service HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the integration service at baseURL.
// Pass an empty string to use DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 4 * time.Second},
	}
}

// Ping probes the service health endpoint. The service is considered
// reachable when the response is successful and the body contains
// "pong", or when the status is plain 200.
func (c *Client) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode == http.StatusOK {
		return true
	}
	return resp.StatusCode < 300 && strings.Contains(strings.ToLower(string(body)), "pong")
}

// GeneratePublicLink asks the service for a shareable public URL for a
// work order barcode. The response body is the URL as plain text.
func (c *Client) GeneratePublicLink(ctx context.Context, barcode string) (string, error) {
	payload, err := json.Marshal(map[string]string{"barcode": barcode})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate_result_public", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("integration service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("integration service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	link := strings.TrimSpace(string(body))
	if link == "" {
		return "", fmt.Errorf("integration service returned an empty link")
	}
	return link, nil
}
