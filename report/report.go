/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package report maps raw lab results into the normalized line items
// used by the printable report layouts.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/humaidq/labwave/lis"
	"github.com/humaidq/labwave/utils"
)

// Abnormality is the human-readable label for a result's abnormal flag.
type Abnormality string

const (
	AbnormalityNormal   Abnormality = "Normal"
	AbnormalityHigh     Abnormality = "High"
	AbnormalityLow      Abnormality = "Low"
	AbnormalityNoData   Abnormality = "No Data"
	AbnormalityPositive Abnormality = "Positive"
	AbnormalityNegative Abnormality = "Negative"
)

// AbnormalityLabel maps a numeric abnormal flag to its label. Unknown
// codes fall back to Normal.
func AbnormalityLabel(flag int) Abnormality {
	switch flag {
	case lis.AbnormalNormal:
		return AbnormalityNormal
	case lis.AbnormalHigh:
		return AbnormalityHigh
	case lis.AbnormalLow:
		return AbnormalityLow
	case lis.AbnormalCritical:
		return AbnormalityNoData
	case lis.AbnormalPositive:
		return AbnormalityPositive
	case lis.AbnormalNegative:
		return AbnormalityNegative
	default:
		return AbnormalityNormal
	}
}

// ReportLine is one printable row of a lab report.
type ReportLine struct {
	Category    string
	SubCategory string
	Parameter   string
	AliasCode   string
	Result      string
	Reference   string
	Unit        string
	Method      string
	Abnormality Abnormality
}

// formatResult renders a raw result value for print. A pre-formatted
// decimal string is preferred; otherwise the raw value is used as-is,
// and a missing result becomes the empty string.
func formatResult(r lis.RawTestResult) string {
	if s, ok := r.FormattedResult.(string); ok && s != "" {
		return s
	}
	switch v := r.Result.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// BuildLine maps one raw result to a report line. The parameter name
// prefers the linked test-type display name over the raw test code;
// missing optional fields default to empty strings.
func BuildLine(r lis.RawTestResult) ReportLine {
	line := ReportLine{
		Category:    r.Category,
		Parameter:   r.Test,
		Result:      formatResult(r),
		Reference:   r.ReferenceRange,
		Unit:        r.Unit,
		Abnormality: AbnormalityLabel(r.Abnormal),
	}
	if r.TestType != nil {
		if r.TestType.Name != "" {
			line.Parameter = r.TestType.Name
		}
		line.SubCategory = r.TestType.SubCategory
		line.AliasCode = r.TestType.Code
		if line.Unit == "" {
			line.Unit = r.TestType.Unit
		}
	}
	return line
}

// BuildLines maps a result list to report lines in input order.
func BuildLines(results []lis.RawTestResult) []ReportLine {
	lines := make([]ReportLine, 0, len(results))
	for _, r := range results {
		lines = append(lines, BuildLine(r))
	}
	return lines
}

// Section is a category block of the standard report layout.
type Section struct {
	Category string
	Lines    []ReportLine
}

// StandardSections groups report lines by category for the standard
// layout. Categories keep their first-seen order; within a category,
// lines whose alias code (or parameter) is WBC sort first, with the
// rest keeping input order.
func StandardSections(lines []ReportLine) []Section {
	grouped := utils.GroupBy(lines, func(l ReportLine) string { return l.Category })

	sections := make([]Section, 0, len(grouped))
	for _, g := range grouped {
		items := make([]ReportLine, len(g.Items))
		copy(items, g.Items)
		sort.SliceStable(items, func(i, j int) bool {
			return isWBC(items[i]) && !isWBC(items[j])
		})
		sections = append(sections, Section{Category: g.Key, Lines: items})
	}
	return sections
}

func isWBC(l ReportLine) bool {
	name := l.AliasCode
	if name == "" {
		name = l.Parameter
	}
	return strings.ToUpper(name) == "WBC"
}
