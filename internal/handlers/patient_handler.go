package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/medicare-api/internal/apperrors"
	"github.com/harentsoaR/medicare-api/internal/export"
	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/stats"
)

// GetPatients lists patients, optionally narrowed by ?q=, ?gender=,
// ?insurance= and an inclusive ?minAge= / ?maxAge= range. Patients without
// a usable date of birth never match an age bound.
func (h *Handler) GetPatients(c *gin.Context) {
	term := c.Query("q")
	gender := models.Gender(c.Query("gender"))
	insurance := c.Query("insurance")
	minAge, err := ageParam(c, "minAge")
	if err != nil {
		invalidRequest(c, err)
		return
	}
	maxAge, err := ageParam(c, "maxAge")
	if err != nil {
		invalidRequest(c, err)
		return
	}
	now := h.Now()

	patients, err := h.Stores.Patients.Filter(c.Request.Context(), func(p models.Patient) bool {
		if gender != "" && p.Gender != gender {
			return false
		}
		if insurance != "" && !p.InsuredBy(insurance) {
			return false
		}
		if minAge >= 0 || maxAge >= 0 {
			age, ok := stats.AgeOn(p.DateOfBirth, now)
			if !ok || (minAge >= 0 && age < minAge) || (maxAge >= 0 && age > maxAge) {
				return false
			}
		}
		return term == "" || p.Matches(term)
	})
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// ageParam reads a non-negative age from the query; -1 means unset.
func ageParam(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return -1, nil
	}
	age, err := strconv.Atoi(raw)
	if err != nil || age < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return age, nil
}

// GetUpcomingBirthdays lists patients with a birthday in the next 30 days.
func (h *Handler) GetUpcomingBirthdays(c *gin.Context) {
	patients, err := h.Stores.Patients.List(c.Request.Context())
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, stats.UpcomingBirthdays(patients, h.Now(), stats.BirthdayWindowDays))
}

func (h *Handler) CreatePatient(c *gin.Context) {
	addEntity[models.Patient, models.PatientFields](c, h.Stores.Patients)
}

func (h *Handler) GetPatient(c *gin.Context) {
	if p, ok := getEntity(c, h.Stores.Patients, "patient"); ok {
		c.JSON(http.StatusOK, p)
	}
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	updateEntity[models.Patient, models.PatientFields](c, h.Stores.Patients)
}

func (h *Handler) PatchPatient(c *gin.Context) {
	updateEntity[models.Patient, models.PatientPatch](c, h.Stores.Patients)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	deleteEntity(c, h.Stores.Patients)
}

// GetPatientReport renders one patient as a PDF download.
func (h *Handler) GetPatientReport(c *gin.Context) {
	p, ok := getEntity(c, h.Stores.Patients, "patient")
	if !ok {
		return
	}
	pdf, err := h.Reports.PatientReport(p)
	if err != nil {
		respondError(c, apperrors.NewInternalError("could not render report", err))
		return
	}
	sendPDF(c, export.PatientReportName(p), pdf)
}

func (h *Handler) GetPatientStatistics(c *gin.Context) {
	patients, err := h.Stores.Patients.List(c.Request.Context())
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, stats.PatientBreakdown(patients, h.Now()))
}
