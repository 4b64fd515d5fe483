/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"strings"

	"github.com/humaidq/labwave/lis"
)

// DefaultReference is printed when no reference range is known.
const DefaultReference = "-"

// SelayarMethod returns the measurement method printed for a parameter
// on the Selayar layout. Glucose-family tests are measured by ICT when
// entered manually and by spectrophotometer when submitted by an
// instrument; everything else is spectrophotometer.
func SelayarMethod(parameter, addedBy string) string {
	if parameter == "" {
		return "Spektrofotometer"
	}
	p := strings.ToLower(parameter)

	if strings.Contains(p, "gula") || strings.Contains(p, "glucose") || strings.Contains(p, "glukosa") {
		if addedBy == "System" {
			return "Spektrofotometer"
		}
		return "ICT"
	}

	return "Spektrofotometer"
}

// SelayarReference returns the reference range printed for a parameter
// on the Selayar layout. A fixed table keyed on lowercased substrings
// of the parameter name takes precedence over the backend-supplied
// range; the backend value (or the placeholder) is used only when no
// rule matches. Rule order is load-bearing and must not be re-sorted:
// the bare bilirubin rule intentionally shadows bilirubin direct.
func SelayarReference(parameter, referenceFromDB string) string {
	fallback := func() string {
		if referenceFromDB != "" {
			return referenceFromDB
		}
		return DefaultReference
	}

	if parameter == "" {
		return fallback()
	}
	p := strings.ToLower(parameter)

	switch {
	case strings.Contains(p, "gula darah puasa"), strings.Contains(p, "gula darah (puasa)"), strings.Contains(p, "glukosa puasa"):
		return "<126 mg/dl"
	case strings.Contains(p, "gula darah 2"), strings.Contains(p, "2 jam"):
		return "<200 mg/dl"
	case strings.Contains(p, "asam urat"):
		return "L=3.4-7.0 mg/dl; P=2.4-5.7 mg/dl"
	case strings.Contains(p, "sgot"), strings.Contains(p, "ast"):
		return "L<=42 U/L; P<=37 U/L"
	case strings.Contains(p, "sgpt"), strings.Contains(p, "alt"):
		return "L<=42 U/L; P<=32 U/L"
	case strings.Contains(p, "ureum"), strings.Contains(p, "urea"):
		return "10-50 mg/dl"
	case strings.Contains(p, "kreatinin"), strings.Contains(p, "creatinine"):
		return "L<=1.1 mg/dl; P<=0.9 mg/dl"
	case strings.Contains(p, "trigliserid"), strings.Contains(p, "triglyceride"):
		return "<200 mg/dl"
	case strings.Contains(p, "cholest"), strings.Contains(p, "kolesterol"):
		if strings.Contains(p, "hdl") {
			return "L>=55 mg/dl; P>=65 mg/dl"
		}
		if strings.Contains(p, "ldl") {
			return "<130 mg/dl"
		}
		return "<200 mg/dl"
	case strings.Contains(p, "albumin"):
		return "3.8-5.1 g/dl"
	case strings.Contains(p, "bilirubin"):
		return "<1.1 mg/dl"
	case strings.Contains(p, "direct"):
		return "<0.25 mg/dl"
	case strings.Contains(p, "protein total"), strings.Contains(p, "total protein"):
		return "6.6-8.7 g/dl"
	}

	return fallback()
}

// BuildSelayarLines maps results to report lines with the Selayar
// method and reference overrides applied.
func BuildSelayarLines(results []lis.RawTestResult) []ReportLine {
	lines := make([]ReportLine, 0, len(results))
	for _, r := range results {
		line := BuildLine(r)
		line.Method = SelayarMethod(line.Parameter, r.AddedBy)
		line.Reference = SelayarReference(line.Parameter, r.ReferenceRange)
		lines = append(lines, line)
	}
	return lines
}
