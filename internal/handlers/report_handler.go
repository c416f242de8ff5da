package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/medicare-api/internal/apperrors"
	"github.com/harentsoaR/medicare-api/internal/export"
	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/stats"
)

// ExportMedicalRecord renders a medical record sent in the body. Patient and
// doctor names missing from the body are looked up; an unknown id is shown
// as is.
func (h *Handler) ExportMedicalRecord(c *gin.Context) {
	var record models.MedicalRecordView
	if err := c.ShouldBindJSON(&record); err != nil {
		invalidRequest(c, err)
		return
	}
	if err := h.resolveNames(c.Request.Context(), &record); err != nil {
		storageFailure(c, err)
		return
	}
	pdf, err := h.Reports.MedicalRecordReport(record)
	if err != nil {
		respondError(c, apperrors.NewInternalError("could not render report", err))
		return
	}
	sendPDF(c, export.MedicalRecordReportName(record), pdf)
}

func (h *Handler) resolveNames(ctx context.Context, r *models.MedicalRecordView) error {
	if r.PatientName == "" {
		p, found, err := h.Stores.Patients.Get(ctx, r.PatientID)
		if err != nil {
			return err
		}
		r.PatientName = r.PatientID
		if found {
			r.PatientName = p.FullName()
		}
	}
	if r.DoctorName == "" {
		d, found, err := h.Stores.Doctors.Get(ctx, r.DoctorID)
		if err != nil {
			return err
		}
		r.DoctorName = r.DoctorID
		if found {
			r.DoctorName = d.FullName()
		}
	}
	return nil
}

func (h *Handler) ExportInvoice(c *gin.Context) {
	var inv models.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		invalidRequest(c, err)
		return
	}
	pdf, err := h.Reports.Invoice(inv)
	if err != nil {
		respondError(c, apperrors.NewInternalError("could not render invoice", err))
		return
	}
	sendPDF(c, export.InvoiceName(inv), pdf)
}

// ExportComprehensiveReport renders the dashboard stats and the patient
// breakdown.
func (h *Handler) ExportComprehensiveReport(c *gin.Context) {
	patients, err := h.Stores.Patients.List(c.Request.Context())
	if err != nil {
		storageFailure(c, err)
		return
	}
	pdf, err := h.Reports.ComprehensiveReport(h.Stats.Stats(), stats.PatientBreakdown(patients, h.Now()))
	if err != nil {
		respondError(c, apperrors.NewInternalError("could not render report", err))
		return
	}
	sendPDF(c, h.Reports.ComprehensiveReportName(), pdf)
}
