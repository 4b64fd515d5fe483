// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package lis

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return ts
}

func TestDateKeyUsesUTCDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-08-22T09:27:10+07:00", "2025-08-22"},
		{"2025-08-22T01:30:00+07:00", "2025-08-21"}, // crosses midnight in UTC
		{"2025-08-22T23:59:59Z", "2025-08-22"},
	}

	for _, tc := range cases {
		if got := DateKey(mustParse(t, tc.in)); got != tc.want {
			t.Fatalf("DateKey(%s): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestColorForAbnormal(t *testing.T) {
	cases := []struct {
		flag int
		want AbnormalColor
	}{
		{AbnormalNormal, ColorDefault},
		{AbnormalHigh, ColorError},
		{AbnormalLow, ColorSecondary},
		{AbnormalCritical, ColorDefault},
		{4, ColorSuccess},
		{-1, ColorSuccess},
		{99, ColorSuccess},
	}

	for _, tc := range cases {
		if got := ColorForAbnormal(tc.flag); got != tc.want {
			t.Fatalf("flag %d: expected %q, got %q", tc.flag, tc.want, got)
		}
	}
}

func TestBuildHistoryMatrixSingleResult(t *testing.T) {
	results := []RawTestResult{
		{
			Test:           "HGB",
			Category:       "Hematology",
			CreatedAt:      mustParse(t, "2025-08-22T09:27:10+07:00"),
			Result:         float64(2),
			Abnormal:       AbnormalNormal,
			ReferenceRange: "14 - 18",
			Unit:           "g/dL",
		},
	}

	matrix := BuildHistoryMatrix(results)

	if !reflect.DeepEqual(matrix.Dates, []string{"2025-08-22"}) {
		t.Fatalf("expected dates [2025-08-22], got %v", matrix.Dates)
	}
	if len(matrix.Rows) != 2 {
		t.Fatalf("expected header + test row, got %d rows", len(matrix.Rows))
	}

	header := matrix.Rows[0]
	if !header.IsCategory || header.Test != "Hematology" {
		t.Fatalf("expected Hematology header row, got %+v", header)
	}
	if header.ReferenceRange != "" || header.Unit != "" {
		t.Fatalf("header row must have blank value fields, got %+v", header)
	}

	row := matrix.Rows[1]
	if row.Test != "HGB" || row.ReferenceRange != "14 - 18" || row.Unit != "g/dL" {
		t.Fatalf("unexpected test row %+v", row)
	}
	cell, ok := row.Cell("2025-08-22")
	if !ok {
		t.Fatal("expected a cell for 2025-08-22")
	}
	if cell.Result != float64(2) || cell.Color != ColorDefault {
		t.Fatalf("unexpected cell %+v", cell)
	}
}

func TestBuildHistoryMatrixFirstResultWinsPerDate(t *testing.T) {
	results := []RawTestResult{
		{Test: "GLU", Category: "Chemistry", CreatedAt: mustParse(t, "2025-08-22T08:00:00Z"), Result: float64(100), Abnormal: AbnormalNormal},
		{Test: "GLU", Category: "Chemistry", CreatedAt: mustParse(t, "2025-08-22T12:00:00Z"), Result: float64(250), Abnormal: AbnormalHigh},
	}

	matrix := BuildHistoryMatrix(results)
	row := matrix.Rows[1]
	cell, ok := row.Cell("2025-08-22")
	if !ok {
		t.Fatal("expected a cell for 2025-08-22")
	}
	if cell.Result != float64(100) {
		t.Fatalf("expected first result to win, got %v", cell.Result)
	}
	if cell.Color != ColorDefault {
		t.Fatalf("expected color from first result, got %q", cell.Color)
	}
}

func TestBuildHistoryMatrixCategoryAndTestOrder(t *testing.T) {
	results := []RawTestResult{
		{Test: "UREA", Category: "Chemistry", CreatedAt: mustParse(t, "2025-08-20T08:00:00Z")},
		{Test: "HGB", Category: "Hematology", CreatedAt: mustParse(t, "2025-08-20T08:05:00Z")},
		{Test: "GLU", Category: "Chemistry", CreatedAt: mustParse(t, "2025-08-20T08:10:00Z")},
		{Test: "WBC", Category: "Hematology", CreatedAt: mustParse(t, "2025-08-21T08:00:00Z")},
	}

	matrix := BuildHistoryMatrix(results)

	var got []string
	for _, row := range matrix.Rows {
		name := row.Test
		if row.IsCategory {
			name = "[" + name + "]"
		}
		got = append(got, name)
	}

	// Categories alphabetical, tests in first-seen order within each.
	want := []string{"[Chemistry]", "UREA", "GLU", "[Hematology]", "HGB", "WBC"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected row order %v, got %v", want, got)
	}

	// Column order follows first appearance in the input.
	wantDates := []string{"2025-08-20", "2025-08-21"}
	if !reflect.DeepEqual(matrix.Dates, wantDates) {
		t.Fatalf("expected dates %v, got %v", wantDates, matrix.Dates)
	}
}

func TestBuildHistoryMatrixCarriesEGFR(t *testing.T) {
	egfr := &EGFRCalculation{Value: 85, Formula: "CKD-EPI", Unit: "mL/min/1.73m²", Category: "eGFR"}
	results := []RawTestResult{
		{Test: "CREA", Category: "Chemistry", CreatedAt: mustParse(t, "2025-08-22T08:00:00Z"), Result: float64(1.1), EGFR: egfr},
	}

	matrix := BuildHistoryMatrix(results)
	cell, ok := matrix.Rows[1].Cell("2025-08-22")
	if !ok {
		t.Fatal("expected a cell")
	}
	if cell.EGFR == nil || cell.EGFR.Value != 85 || cell.EGFR.Formula != "CKD-EPI" {
		t.Fatalf("expected eGFR payload, got %+v", cell.EGFR)
	}
}

func TestBuildHistoryMatrixIdempotent(t *testing.T) {
	results := []RawTestResult{
		{Test: "HGB", Category: "Hematology", CreatedAt: mustParse(t, "2025-08-22T09:27:10+07:00"), Result: float64(2), Abnormal: AbnormalNormal},
		{Test: "GLU", Category: "Chemistry", CreatedAt: mustParse(t, "2025-08-21T09:00:00Z"), Result: float64(99), Abnormal: AbnormalLow},
		{Test: "HGB", Category: "Hematology", CreatedAt: mustParse(t, "2025-08-23T10:00:00Z"), Result: "negative", Abnormal: 7},
	}

	first, err := json.Marshal(BuildHistoryMatrix(results).Rows)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	second, err := json.Marshal(BuildHistoryMatrix(results).Rows)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("expected byte-identical output for repeated runs")
	}
}

func TestHistoryRowMarshalFlatKeys(t *testing.T) {
	results := []RawTestResult{
		{Test: "HGB", Category: "Hematology", CreatedAt: mustParse(t, "2025-08-22T09:27:10+07:00"), Result: float64(2), Abnormal: AbnormalNormal, ReferenceRange: "14 - 18", Unit: "g/dL"},
	}

	matrix := BuildHistoryMatrix(results)
	data, err := json.Marshal(matrix.Rows[1])
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if flat["2025-08-22_result"] != float64(2) {
		t.Fatalf("expected flat result key, got %v", flat)
	}
	if flat["2025-08-22_color"] != "default" {
		t.Fatalf("expected flat color key, got %v", flat)
	}
	if _, ok := flat["2025-08-22_egfr"]; ok {
		t.Fatal("expected no egfr key when payload absent")
	}
	if _, ok := flat["isCategory"]; ok {
		t.Fatal("test rows must not carry the isCategory flag")
	}

	header, err := json.Marshal(matrix.Rows[0])
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var flatHeader map[string]any
	if err := json.Unmarshal(header, &flatHeader); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if flatHeader["isCategory"] != true {
		t.Fatalf("expected isCategory on header row, got %v", flatHeader)
	}
}

func TestBuildHistoryMatrixEveryResultRepresented(t *testing.T) {
	results := []RawTestResult{
		{Test: "A", Category: "X", CreatedAt: mustParse(t, "2025-08-20T08:00:00Z")},
		{Test: "B", Category: "X", CreatedAt: mustParse(t, "2025-08-21T08:00:00Z")},
		{Test: "C", Category: "Y", CreatedAt: mustParse(t, "2025-08-20T08:00:00Z")},
		{Test: "A", Category: "X", CreatedAt: mustParse(t, "2025-08-22T08:00:00Z")},
	}

	matrix := BuildHistoryMatrix(results)

	cells := 0
	for _, row := range matrix.Rows {
		cells += len(row.Cells)
	}
	// No duplicate test+date pairs in the input, so every result has a cell.
	if cells != len(results) {
		t.Fatalf("expected %d cells, got %d", len(results), cells)
	}
}
