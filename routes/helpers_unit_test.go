// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"testing"

	"github.com/humaidq/labwave/db"
	"github.com/humaidq/labwave/lis"
)

func TestParseDateField(t *testing.T) {
	if _, err := parseDateField(""); err == nil {
		t.Fatal("expected error for empty date")
	}
	if _, err := parseDateField("22-08-2025"); err == nil {
		t.Fatal("expected error for wrong format")
	}
	parsed, err := parseDateField(" 2025-08-22 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Format("2006-01-02") != "2025-08-22" {
		t.Fatalf("unexpected date %v", parsed)
	}
}

func TestParseMillimetreField(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"50", 50, false},
		{"1.5", 1.5, false},
		{" 20 ", 20, false},
		{"", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
		{"wide", 0, true},
	}
	for _, tc := range cases {
		got, err := parseMillimetreField(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%q: expected %v, got %v (err %v)", tc.in, tc.want, got, err)
		}
	}
}

func TestSettingsFromForm(t *testing.T) {
	form := map[string]string{
		"barcode_page_width":  "50",
		"barcode_page_height": "20",
		"barcode_width":       "1.5",
		"barcode_height":      "50",
		"orientation":         "landscape",
		"company_name":        "RSUD Lab",
		"company_address":     "Jl. Kesehatan 1",
	}
	get := func(name string) string { return form[name] }

	settings, msg := settingsFromForm(get)
	if msg != "" {
		t.Fatalf("unexpected validation message %q", msg)
	}
	if settings.BarcodePageWidth != 50 || settings.Orientation != db.OrientationLandscape {
		t.Fatalf("unexpected settings %+v", settings)
	}
	if settings.CompanyName != "RSUD Lab" {
		t.Fatalf("unexpected company name %q", settings.CompanyName)
	}

	form["barcode_width"] = "-1"
	if _, msg := settingsFromForm(get); msg == "" {
		t.Fatal("expected validation message for negative width")
	}
	form["barcode_width"] = "1.5"

	form["orientation"] = "diagonal"
	if _, msg := settingsFromForm(get); msg == "" {
		t.Fatal("expected validation message for bad orientation")
	}
}

func TestQCEntryFromForm(t *testing.T) {
	form := map[string][]string{
		"device_id":    {"3"},
		"test_type_id": {"7"},
		"qc_level":     {"L2"},
		"lot_number":   {"LOT-881"},
		"target_mean":  {"5.5"},
		"target_sd":    {"0.2"},
		"ref_min":      {"5.1"},
		"ref_max":      {"5.9"},
	}

	input, msg := qcEntryFromForm(form, "analyst")
	if msg != "" {
		t.Fatalf("unexpected validation message %q", msg)
	}
	if input.DeviceID != 3 || input.TestTypeID != 7 || input.CreatedBy != "analyst" {
		t.Fatalf("unexpected input %+v", input)
	}

	form["ref_max"] = []string{"4.0"}
	if _, msg := qcEntryFromForm(form, "analyst"); msg == "" {
		t.Fatal("expected validation message for max below min")
	}
	form["ref_max"] = []string{"5.9"}

	delete(form, "lot_number")
	if _, msg := qcEntryFromForm(form, "analyst"); msg == "" {
		t.Fatal("expected validation message for missing lot number")
	}
}

func TestSummaryCards(t *testing.T) {
	cards := summaryCards(lis.SummarySnapshot{
		TotalWorkOrders:     12,
		CompletedWorkOrders: 7,
		DevicesConnected:    3,
	})

	if len(cards) != 8 {
		t.Fatalf("expected 8 cards, got %d", len(cards))
	}
	if cards[0].Label != "Work Orders" || cards[0].Value != 12 {
		t.Fatalf("unexpected first card %+v", cards[0])
	}
	if cards[5].Label != "Devices Connected" || cards[5].Value != 3 {
		t.Fatalf("unexpected devices card %+v", cards[5])
	}
}

func TestQCEntriesForTestType(t *testing.T) {
	entries := []lis.QCEntry{
		{ID: 1, QCEntryInput: lis.QCEntryInput{TestTypeID: 7, LotNumber: "A1"}},
		{ID: 2, QCEntryInput: lis.QCEntryInput{TestTypeID: 3, LotNumber: "B1"}},
		{ID: 3, QCEntryInput: lis.QCEntryInput{TestTypeID: 7, LotNumber: "A2"}},
	}

	filtered := qcEntriesForTestType(entries, 7)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(filtered))
	}
	if filtered[0].LotNumber != "A1" || filtered[1].LotNumber != "A2" {
		t.Fatalf("backend order not preserved: %+v", filtered)
	}

	if got := qcEntriesForTestType(entries, 99); len(got) != 0 {
		t.Fatalf("expected no entries for unknown parameter, got %d", len(got))
	}
}

func TestSortTestTypesByIDDesc(t *testing.T) {
	testTypes := []lis.TestType{
		{ID: 2, Code: "GLU"},
		{ID: 9, Code: "HGB"},
		{ID: 5, Code: "WBC"},
	}
	sortTestTypesByIDDesc(testTypes)
	if testTypes[0].ID != 9 || testTypes[1].ID != 5 || testTypes[2].ID != 2 {
		t.Fatalf("unexpected order: %+v", testTypes)
	}
}
