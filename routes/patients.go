/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/labwave/db"
	"github.com/humaidq/labwave/lis"
)

// historyWindow is how far back the result-history grid reaches.
const historyWindow = 365 * 24 * time.Hour

// ListPatients displays all registered patients.
func ListPatients(c flamego.Context, t template.Template, data template.Data, client *lis.Client) {
	patients, err := client.Patients(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list patients", "error", err)
		data["Error"] = "Failed to load patients from the backend"
		t.HTML(http.StatusBadGateway, "patients")
		return
	}

	data["PageTitle"] = "Patients"
	data["Patients"] = patients
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Patients", IsCurrent: true},
	}
	t.HTML(http.StatusOK, "patients")
}

// PatientHistory renders a patient's pivoted result-history grid and
// remembers the patient as last viewed.
func PatientHistory(c flamego.Context, s session.Session, t template.Template, data template.Data, client *lis.Client) {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		NotFound(t, data)
		return
	}

	startDate := time.Now().Add(-historyWindow)
	if raw := c.Query("start_date"); raw != "" {
		if parsed, err := parseDateField(raw); err == nil {
			startDate = parsed
		}
	}

	history, err := client.PatientResultHistory(c.Request().Context(), patientID, startDate)
	if err != nil {
		if errors.Is(err, lis.ErrNotFound) {
			NotFound(t, data)
			return
		}
		logger.Error("Failed to load patient history", "patient_id", patientID, "error", err)
		data["Error"] = "Failed to load result history from the backend"
		t.HTML(http.StatusBadGateway, "patient_history")
		return
	}

	if userID, ok := sessionUserID(s); ok {
		if err := db.SetUIState(c.Request().Context(), userID, db.UIStateLastViewedPatient, strconv.FormatInt(patientID, 10)); err != nil {
			logger.Warn("Failed to remember last viewed patient", "error", err)
		}
	}

	matrix := lis.BuildHistoryMatrix(history.TestResult)

	data["PageTitle"] = formatPatientName(history.Patient.FirstName, history.Patient.LastName)
	data["Patient"] = history.Patient
	data["Matrix"] = matrix
	data["StartDate"] = startDate.Format("2006-01-02")
	data["Breadcrumbs"] = []BreadcrumbItem{
		{Name: "Patients", URL: "/patients"},
		{Name: formatPatientName(history.Patient.FirstName, history.Patient.LastName), IsCurrent: true},
	}
	t.HTML(http.StatusOK, "patient_history")
}

// LastViewedPatient redirects to the result history of the most
// recently viewed patient, or the patient list when none is recorded.
func LastViewedPatient(c flamego.Context, s session.Session) {
	userID, ok := sessionUserID(s)
	if !ok {
		c.Redirect("/patients", http.StatusSeeOther)
		return
	}

	value, err := db.GetUIState(c.Request().Context(), userID, db.UIStateLastViewedPatient)
	if err != nil {
		logger.Warn("Failed to load last viewed patient", "error", err)
	}
	if value == "" {
		c.Redirect("/patients", http.StatusSeeOther)
		return
	}

	c.Redirect("/patients/"+value+"/history", http.StatusSeeOther)
}
