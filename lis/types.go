/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package lis

import "time"

// EGFRCalculation is a derived renal-function value attached to a
// creatinine result by the backend.
type EGFRCalculation struct {
	Value    float64 `json:"value"`
	Formula  string  `json:"formula"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// Abnormal flag codes as reported by the backend for test results.
const (
	AbnormalNormal   = 0
	AbnormalHigh     = 1
	AbnormalLow      = 2
	AbnormalCritical = 3
	AbnormalPositive = 4
	AbnormalNegative = 5
)

// RawTestResult is one lab measurement event as returned by the backend.
// Result may be numeric or qualitative ("negative", "1+"), so it is kept
// as the decoded JSON value.
type RawTestResult struct {
	ID              int64            `json:"id"`
	Test            string           `json:"test"`
	Category        string           `json:"category"`
	Result          any              `json:"result"`
	FormattedResult any              `json:"formatted_result"`
	Unit            string           `json:"unit"`
	ReferenceRange  string           `json:"reference_range"`
	Abnormal        int              `json:"abnormal"`
	CreatedAt       time.Time        `json:"created_at"`
	SpecimenID      int64            `json:"specimen_id"`
	TestTypeID      int64            `json:"test_type_id"`
	Picked          bool             `json:"picked"`
	AddedBy         string           `json:"added_by,omitempty"`
	TestType        *TestType        `json:"test_type,omitempty"`
	EGFR            *EGFRCalculation `json:"egfr,omitempty"`
}

// Patient identity as owned by the backend.
type Patient struct {
	ID                  int64  `json:"id"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Sex                 string `json:"sex"`
	Birthdate           string `json:"birthdate"`
	Address             string `json:"address"`
	MedicalRecordNumber string `json:"medical_record_number,omitempty"`
}

// Person is a referenced doctor or analyst on a work order.
type Person struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
}

// WorkOrder groups specimens and the tests ordered on them.
type WorkOrder struct {
	ID                     int64      `json:"id"`
	Barcode                string     `json:"barcode"`
	Status                 string     `json:"status"`
	PatientID              int64      `json:"patient_id"`
	VisitNumber            string     `json:"visit_number,omitempty"`
	MedicalRecordNumber    string     `json:"medical_record_number,omitempty"`
	Diagnosis              string     `json:"diagnosis,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	SpecimenCollectionDate *time.Time `json:"specimen_collection_date,omitempty"`
	ResultReleaseDate      *time.Time `json:"result_release_date,omitempty"`
	Doctors                []Person   `json:"doctors,omitempty"`
	Analyzers              []Person   `json:"analyzers,omitempty"`
}

// TestType describes one orderable lab parameter.
type TestType struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Unit         string  `json:"unit"`
	LowRefRange  float64 `json:"low_ref_range"`
	HighRefRange float64 `json:"high_ref_range"`
	Category     string  `json:"category"`
	SubCategory  string  `json:"sub_category"`
}

// QCEntryInput is the creation payload for a quality-control entry.
type QCEntryInput struct {
	DeviceID   int64   `json:"device_id"`
	TestTypeID int64   `json:"test_type_id"`
	QCLevel    string  `json:"qc_level"`
	LotNumber  string  `json:"lot_number"`
	TargetMean float64 `json:"target_mean"`
	TargetSD   float64 `json:"target_sd"`
	RefMin     float64 `json:"ref_min"`
	RefMax     float64 `json:"ref_max"`
	CreatedBy  string  `json:"created_by"`
}

// QCEntry is a stored quality-control entry.
type QCEntry struct {
	QCEntryInput
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// PatientResultHistory is the backend response for a patient's
// historical results.
type PatientResultHistory struct {
	Patient    Patient         `json:"patient"`
	TestResult []RawTestResult `json:"test_result"`
}

// SummaryPoint is one labelled counter in a chart-ready series.
type SummaryPoint struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// SummarySnapshot carries the dashboard counters. It is replaced
// wholesale on every feed message.
type SummarySnapshot struct {
	TotalWorkOrders      int `json:"total_work_orders"`
	CompletedWorkOrders  int `json:"completed_work_orders"`
	PendingWorkOrders    int `json:"pending_work_orders"`
	IncompleteWorkOrders int `json:"incomplete_work_orders"`
	TotalTests           int `json:"total_tests"`
	DevicesConnected     int `json:"devices_connected"`
	TotalPatients        int `json:"total_patients"`
	TotalTestParameters  int `json:"total_test_parameters"`
}

// AnalyticsSnapshot carries the dashboard chart series. It is replaced
// wholesale on every feed message.
type AnalyticsSnapshot struct {
	WorkOrderTrend       []SummaryPoint `json:"work_order_trend"`
	AbnormalSummary      []SummaryPoint `json:"abnormal_summary"`
	GenderSummary        []SummaryPoint `json:"gender_summary"`
	AgeGroup             []SummaryPoint `json:"age_group"`
	TopTestOrdered       []SummaryPoint `json:"top_test_ordered"`
	TestTypeDistribution []SummaryPoint `json:"test_type_distribution"`
}
