package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPDFResponse(t *testing.T, w *httptest.ResponseRecorder, filename string, want ...string) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="`+filename+`"`, w.Header().Get("Content-Disposition"))
	body := w.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	for _, s := range want {
		assert.True(t, bytes.Contains(body, []byte(s)), "pdf does not contain %q", s)
	}
}

func TestPatientReport(t *testing.T) {
	api := newTestAPI(t).serve()

	w := api.do(http.MethodGet, "/api/patients/1/report", nil)
	assertPDFResponse(t, w, "patient-report-John-Doe.pdf", "Name: John Doe", "Hypertension")

	w = api.do(http.MethodGet, "/api/patients/999/report", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportMedicalRecord(t *testing.T) {
	api := newTestAPI(t).serve()

	w := api.do(http.MethodPost, "/api/records/report", map[string]any{
		"id":        "7",
		"patientId": "3",
		"doctorId":  "99",
		"date":      "2024-01-23",
		"diagnosis": "Migraine",
	})
	assertPDFResponse(t, w, "medical-record-7-2024-01-23.pdf",
		"Patient: Michael Brown",
		"Doctor: 99",
		"Diagnosis: Migraine",
	)
}

func TestExportMedicalRecord_KeepsGivenNames(t *testing.T) {
	api := newTestAPI(t).serve()

	w := api.do(http.MethodPost, "/api/records/report", map[string]any{
		"id":          "8",
		"patientId":   "1",
		"doctorId":    "1",
		"date":        "2024-01-24",
		"patientName": "Johnny D",
	})
	assertPDFResponse(t, w, "medical-record-8-2024-01-24.pdf",
		"Patient: Johnny D",
		"Doctor: Dr. Emily Wilson",
	)
}

func TestExportInvoice(t *testing.T) {
	api := newTestAPI(t).serve()

	invoice := map[string]any{
		"id":          "INV-001",
		"patientId":   "1",
		"patientName": "John Doe",
		"date":        "2024-01-20",
		"amount":      200,
		"status":      "paid",
		"services":    []string{"Consultation", "Blood Test"},
	}
	w := api.do(http.MethodPost, "/api/billing/invoices/report", invoice)
	assertPDFResponse(t, w, "invoice-INV-001.pdf",
		"1. Consultation - $100.00",
		"Total Amount: $217.00",
		"Payment Status: PAID",
	)

	invoice["status"] = "refunded"
	w = api.do(http.MethodPost, "/api/billing/invoices/report", invoice)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportComprehensiveReport(t *testing.T) {
	api := newTestAPI(t).serve()

	w := api.do(http.MethodGet, "/api/reports/comprehensive", nil)
	assertPDFResponse(t, w, "comprehensive-hospital-report-2024-01-25.pdf",
		"- Total Patients: 3",
		"- Revenue: $150.00",
		"- Male Patients: 2",
	)
}
