// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"testing"

	"github.com/humaidq/labwave/lis"
)

func TestAbnormalityLabel(t *testing.T) {
	cases := []struct {
		flag int
		want Abnormality
	}{
		{0, AbnormalityNormal},
		{1, AbnormalityHigh},
		{2, AbnormalityLow},
		{3, AbnormalityNoData},
		{4, AbnormalityPositive},
		{5, AbnormalityNegative},
		{6, AbnormalityNormal},
		{-1, AbnormalityNormal},
	}
	for _, tc := range cases {
		if got := AbnormalityLabel(tc.flag); got != tc.want {
			t.Fatalf("flag %d: expected %q, got %q", tc.flag, tc.want, got)
		}
	}
}

func TestBuildLinePrefersTestTypeName(t *testing.T) {
	line := BuildLine(lis.RawTestResult{
		Test:     "GLU",
		Category: "Chemistry",
		Result:   float64(98),
		Abnormal: lis.AbnormalNormal,
		TestType: &lis.TestType{Name: "Glukosa Puasa", Code: "GLU", SubCategory: "Diabetes"},
	})

	if line.Parameter != "Glukosa Puasa" {
		t.Fatalf("expected test-type display name, got %q", line.Parameter)
	}
	if line.AliasCode != "GLU" || line.SubCategory != "Diabetes" {
		t.Fatalf("unexpected line %+v", line)
	}
}

func TestBuildLineFallsBackToRawCode(t *testing.T) {
	line := BuildLine(lis.RawTestResult{Test: "HGB", Result: float64(14.2)})
	if line.Parameter != "HGB" {
		t.Fatalf("expected raw code fallback, got %q", line.Parameter)
	}
}

func TestBuildLineResultPreference(t *testing.T) {
	cases := []struct {
		name   string
		result lis.RawTestResult
		want   string
	}{
		{"formatted wins", lis.RawTestResult{FormattedResult: "14.20", Result: float64(14.2)}, "14.20"},
		{"raw numeric fallback", lis.RawTestResult{Result: float64(14.2)}, "14.2"},
		{"qualitative string", lis.RawTestResult{Result: "negative"}, "negative"},
		{"missing result", lis.RawTestResult{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildLine(tc.result).Result; got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestStandardSectionsWBCFirst(t *testing.T) {
	lines := []ReportLine{
		{Category: "Hematology", Parameter: "HGB"},
		{Category: "Hematology", Parameter: "White Blood Cells", AliasCode: "wbc"},
		{Category: "Hematology", Parameter: "PLT"},
		{Category: "Chemistry", Parameter: "GLU"},
	}

	sections := StandardSections(lines)
	if len(sections) != 2 {
		t.Fatalf("expected two sections, got %d", len(sections))
	}
	if sections[0].Category != "Hematology" || sections[1].Category != "Chemistry" {
		t.Fatalf("expected first-seen category order, got %+v", sections)
	}

	hema := sections[0].Lines
	if hema[0].AliasCode != "wbc" {
		t.Fatalf("expected WBC sorted first, got %q", hema[0].Parameter)
	}
	if hema[1].Parameter != "HGB" || hema[2].Parameter != "PLT" {
		t.Fatalf("expected remaining lines to keep input order, got %+v", hema)
	}
}

func TestSelayarMethod(t *testing.T) {
	cases := []struct {
		parameter string
		addedBy   string
		want      string
	}{
		{"Gula Darah Puasa", "System", "Spektrofotometer"},
		{"Gula Darah Puasa", "user", "ICT"},
		{"Glucose 2 Jam", "", "ICT"},
		{"Glukosa Sewaktu", "user", "ICT"},
		{"SGOT", "user", "Spektrofotometer"},
		{"", "user", "Spektrofotometer"},
	}
	for _, tc := range cases {
		if got := SelayarMethod(tc.parameter, tc.addedBy); got != tc.want {
			t.Fatalf("SelayarMethod(%q, %q): expected %q, got %q", tc.parameter, tc.addedBy, tc.want, got)
		}
	}
}

func TestSelayarReference(t *testing.T) {
	cases := []struct {
		parameter string
		fromDB    string
		want      string
	}{
		{"Gula Darah Puasa", "", "<126 mg/dl"},
		{"Glukosa Puasa", "", "<126 mg/dl"},
		{"Gula Darah 2 Jam PP", "", "<200 mg/dl"},
		{"Asam Urat", "", "L=3.4-7.0 mg/dl; P=2.4-5.7 mg/dl"},
		{"SGOT (AST)", "", "L<=42 U/L; P<=37 U/L"},
		{"SGPT (ALT)", "", "L<=42 U/L; P<=32 U/L"},
		{"Ureum", "", "10-50 mg/dl"},
		{"Kreatinin", "", "L<=1.1 mg/dl; P<=0.9 mg/dl"},
		{"Trigliserida", "", "<200 mg/dl"},
		{"Kolesterol HDL", "", "L>=55 mg/dl; P>=65 mg/dl"},
		{"Kolesterol LDL", "", "<130 mg/dl"},
		{"Kolesterol Total", "", "<200 mg/dl"},
		{"Albumin", "", "3.8-5.1 g/dl"},
		{"Bilirubin Total", "", "<1.1 mg/dl"},
		// The bare bilirubin rule shadows the direct variant.
		{"Bilirubin Direct", "", "<1.1 mg/dl"},
		{"Protein Total", "", "6.6-8.7 g/dl"},
		// The table beats the backend-supplied range.
		{"Ureum", "5-40 mg/dl", "10-50 mg/dl"},
		// No rule: backend range, then placeholder.
		{"HGB", "14 - 18", "14 - 18"},
		{"HGB", "", "-"},
		{"", "12 - 16", "12 - 16"},
		{"", "", "-"},
	}
	for _, tc := range cases {
		if got := SelayarReference(tc.parameter, tc.fromDB); got != tc.want {
			t.Fatalf("SelayarReference(%q, %q): expected %q, got %q", tc.parameter, tc.fromDB, tc.want, got)
		}
	}
}

func TestBuildSelayarLinesAppliesOverrides(t *testing.T) {
	results := []lis.RawTestResult{
		{
			Test:           "GDP",
			Category:       "Chemistry",
			Result:         float64(110),
			ReferenceRange: "70 - 100",
			AddedBy:        "System",
			TestType:       &lis.TestType{Name: "Gula Darah Puasa", Code: "GDP"},
		},
		{
			Test:           "HGB",
			Category:       "Hematology",
			Result:         float64(15),
			ReferenceRange: "14 - 18",
			AddedBy:        "user",
		},
	}

	lines := BuildSelayarLines(results)

	if lines[0].Method != "Spektrofotometer" || lines[0].Reference != "<126 mg/dl" {
		t.Fatalf("unexpected glucose line %+v", lines[0])
	}
	if lines[1].Method != "Spektrofotometer" {
		t.Fatalf("unexpected method %q", lines[1].Method)
	}
	if lines[1].Reference != "14 - 18" {
		t.Fatalf("expected backend range kept when no rule matches, got %q", lines[1].Reference)
	}
}
