/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package lis

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/humaidq/labwave/utils"
)

// AbnormalColor classifies how a result cell is displayed.
type AbnormalColor string

// Display colors for abnormal flags. Normal and Critical share "default"
// and unknown flags map to "success"; this table is frozen because
// downstream consumers match on the exact values.
const (
	ColorDefault   AbnormalColor = "default"
	ColorError     AbnormalColor = "error"
	ColorSecondary AbnormalColor = "secondary"
	ColorSuccess   AbnormalColor = "success"
)

// ColorForAbnormal maps an abnormal flag code to its display color.
func ColorForAbnormal(flag int) AbnormalColor {
	switch flag {
	case AbnormalNormal:
		return ColorDefault
	case AbnormalHigh:
		return ColorError
	case AbnormalLow:
		return ColorSecondary
	case AbnormalCritical:
		return ColorDefault
	default:
		return ColorSuccess
	}
}

// HistoryCell is one observation of a test on a given date.
type HistoryCell struct {
	Result any
	Color  AbnormalColor
	EGFR   *EGFRCalculation
}

// HistoryRow is one row of the result-history matrix: either a category
// header (IsCategory set, value fields blank) or a test row with a
// sparse map from date key to cell.
type HistoryRow struct {
	Test           string
	ReferenceRange string
	Unit           string
	Category       string
	IsCategory     bool
	Cells          map[string]HistoryCell
}

// HistoryMatrix is the pivoted result history: one column per distinct
// observation date, one row per test, with a header row per category.
type HistoryMatrix struct {
	Dates []string
	Rows  []HistoryRow
}

// DateKey truncates a result timestamp to its UTC calendar day. The key
// is derived from the timestamp itself, never from a display-localized
// clock, so it is stable across viewer timezones.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// BuildHistoryMatrix pivots a patient's flat result list into the
// row-per-test, column-per-date matrix used by the history grid.
//
// Categories are ordered alphabetically and each is preceded by a header
// row. Within a category, tests keep their first-seen order, and a test
// row carries reference range and unit from the first raw item seen for
// that test. When a test has multiple results on the same date, the
// first one encountered wins and later duplicates are dropped.
func BuildHistoryMatrix(results []RawTestResult) HistoryMatrix {
	keys := make([]string, 0, len(results))
	for _, r := range results {
		keys = append(keys, DateKey(r.CreatedAt))
	}

	matrix := HistoryMatrix{Dates: utils.UniqueStrings(keys)}

	byCategory := utils.GroupBy(results, func(r RawTestResult) string { return r.Category })
	sort.Slice(byCategory, func(i, j int) bool { return byCategory[i].Key < byCategory[j].Key })

	for _, category := range byCategory {
		matrix.Rows = append(matrix.Rows, HistoryRow{
			Test:       category.Key,
			Category:   category.Key,
			IsCategory: true,
		})

		byTest := utils.GroupBy(category.Items, func(r RawTestResult) string { return r.Test })
		for _, test := range byTest {
			first := test.Items[0]
			row := HistoryRow{
				Test:           first.Test,
				ReferenceRange: first.ReferenceRange,
				Unit:           first.Unit,
				Category:       first.Category,
				Cells:          make(map[string]HistoryCell),
			}

			byDate := utils.GroupBy(test.Items, func(r RawTestResult) string { return DateKey(r.CreatedAt) })
			for _, date := range byDate {
				item := date.Items[0]
				row.Cells[date.Key] = HistoryCell{
					Result: item.Result,
					Color:  ColorForAbnormal(item.Abnormal),
					EGFR:   item.EGFR,
				}
			}

			matrix.Rows = append(matrix.Rows, row)
		}
	}

	return matrix
}

// Cell returns the cell for a date key, if the row has one.
func (r HistoryRow) Cell(date string) (HistoryCell, bool) {
	c, ok := r.Cells[date]
	return c, ok
}

// MarshalJSON renders the row in the grid's flat wire shape: fixed
// fields plus dynamic "<date>_result", "<date>_color" and "<date>_egfr"
// keys. Date keys are emitted in ascending order so repeated runs
// produce identical bytes.
func (r HistoryRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := writeField("test", r.Test); err != nil {
		return nil, err
	}
	if err := writeField("reference_range", r.ReferenceRange); err != nil {
		return nil, err
	}
	if err := writeField("unit", r.Unit); err != nil {
		return nil, err
	}
	if err := writeField("category", r.Category); err != nil {
		return nil, err
	}
	if r.IsCategory {
		if err := writeField("isCategory", true); err != nil {
			return nil, err
		}
	}

	dates := make([]string, 0, len(r.Cells))
	for date := range r.Cells {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		cell := r.Cells[date]
		if err := writeField(date+"_result", cell.Result); err != nil {
			return nil, err
		}
		if err := writeField(date+"_color", cell.Color); err != nil {
			return nil, err
		}
		if cell.EGFR != nil {
			if err := writeField(date+"_egfr", cell.EGFR); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
