/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package lis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/humaidq/labwave/logging"
)

var logger = logging.Logger(logging.SourceLIS)

// ErrNotFound indicates the backend has no record for the requested ID.
var ErrNotFound = errors.New("record not found")

// APIError is a non-success response from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// Client is a typed client for the LIS backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warn("Backend request failed", "method", method, "path", path, "status", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// PatientResultHistory fetches all results for a patient since startDate.
func (c *Client) PatientResultHistory(ctx context.Context, patientID int64, startDate time.Time) (*PatientResultHistory, error) {
	path := fmt.Sprintf("patient/%d/result/history?start_date=%s", patientID, startDate.UTC().Format(time.RFC3339))

	var history PatientResultHistory
	if err := c.do(ctx, http.MethodGet, path, nil, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// ApproveResult marks a result as approved for release.
func (c *Client) ApproveResult(ctx context.Context, resultID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("result/%d/approve", resultID), nil, nil)
}

// RejectResult marks a result as rejected.
func (c *Client) RejectResult(ctx context.Context, resultID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("result/%d/reject", resultID), nil, nil)
}

// UpdateSpecimenTests replaces the ordered tests on a specimen.
func (c *Client) UpdateSpecimenTests(ctx context.Context, specimenID int64, testTypeIDs []int64) error {
	body := map[string][]int64{"test_type_ids": testTypeIDs}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("result/%d/test", specimenID), body, nil)
}

// PickTestResult selects one of several candidate results for a test on
// a work order.
func (c *Client) PickTestResult(ctx context.Context, workOrderID, testResultID int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("result/%d/test/%d/pick", workOrderID, testResultID), nil, nil)
}

// UpdateReleaseDate sets the result release date on a work order.
func (c *Client) UpdateReleaseDate(ctx context.Context, workOrderID int64, releaseDate time.Time) error {
	body := map[string]string{"release_date": releaseDate.UTC().Format(time.RFC3339)}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("work-order/%d/release-date", workOrderID), body, nil)
}

// CreateQCEntry records a manual quality-control entry.
func (c *Client) CreateQCEntry(ctx context.Context, input QCEntryInput) error {
	return c.do(ctx, http.MethodPost, "quality-control/entries", input, nil)
}

// QCEntries lists recorded quality-control entries.
func (c *Client) QCEntries(ctx context.Context) ([]QCEntry, error) {
	var entries []QCEntry
	if err := c.do(ctx, http.MethodGet, "quality-control/entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// WorkOrders lists all work orders.
func (c *Client) WorkOrders(ctx context.Context) ([]WorkOrder, error) {
	var orders []WorkOrder
	if err := c.do(ctx, http.MethodGet, "work-order", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// WorkOrder fetches one work order by ID.
func (c *Client) WorkOrder(ctx context.Context, id int64) (*WorkOrder, error) {
	var order WorkOrder
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("work-order/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// WorkOrderResults lists the test results attached to a work order.
func (c *Client) WorkOrderResults(ctx context.Context, id int64) ([]RawTestResult, error) {
	var results []RawTestResult
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("work-order/%d/result", id), nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Patients lists all registered patients.
func (c *Client) Patients(ctx context.Context) ([]Patient, error) {
	var patients []Patient
	if err := c.do(ctx, http.MethodGet, "patient", nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// Patient fetches one patient by ID.
func (c *Client) Patient(ctx context.Context, id int64) (*Patient, error) {
	var patient Patient
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("patient/%d", id), nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// Results lists recent test results.
func (c *Client) Results(ctx context.Context) ([]RawTestResult, error) {
	var results []RawTestResult
	if err := c.do(ctx, http.MethodGet, "result", nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// TestTypes lists all configured test parameters.
func (c *Client) TestTypes(ctx context.Context) ([]TestType, error) {
	var types []TestType
	if err := c.do(ctx, http.MethodGet, "test-type", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// Summary fetches the current dashboard counters over REST. The live
// feed replaces these once connected; this seeds the first render.
func (c *Client) Summary(ctx context.Context) (*SummarySnapshot, error) {
	var snapshot SummarySnapshot
	if err := c.do(ctx, http.MethodGet, "summary/", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// SummaryAnalytics fetches the current chart series over REST.
func (c *Client) SummaryAnalytics(ctx context.Context) (*AnalyticsSnapshot, error) {
	var snapshot AnalyticsSnapshot
	if err := c.do(ctx, http.MethodGet, "summary/analytics", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
