package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/models"
)

// --- CREATE APPOINTMENT (with booking SMS) ---
func (h *Handler) CreateAppointment(c *gin.Context) {
	apt, ok := addEntity[models.Appointment, models.AppointmentFields](c, h.Stores.Appointments)
	if !ok {
		return
	}
	h.notifyBooking(c.Request.Context(), apt)
}

// notifyBooking texts the patient about a new appointment. Dangling patient
// references are skipped; a dangling doctor only drops the doctor's name.
func (h *Handler) notifyBooking(ctx context.Context, apt models.Appointment) {
	if h.NotificationSvc == nil {
		return
	}
	patient, found, err := h.Stores.Patients.Get(ctx, apt.PatientID)
	if err != nil || !found {
		log.Warn().Err(err).Str("appointment_id", apt.ID).Str("patient_id", apt.PatientID).
			Msg("no patient to notify for appointment")
		return
	}
	var doctor *models.Doctor
	if d, found, err := h.Stores.Doctors.Get(ctx, apt.DoctorID); err == nil && found {
		doctor = &d
	}
	h.NotificationSvc.AppointmentBooked(patient, doctor, apt)
}

// --- GET APPOINTMENTS (with filtering) ---
func (h *Handler) GetAppointments(c *gin.Context) {
	term := c.Query("q")
	status := models.AppointmentStatus(c.Query("status"))
	date := c.Query("date")
	patientID := c.Query("patientId")
	doctorID := c.Query("doctorId")

	appointments, err := h.Stores.Appointments.Filter(c.Request.Context(), func(a models.Appointment) bool {
		switch {
		case status != "" && a.Status != status:
			return false
		case date != "" && a.Date != date:
			return false
		case patientID != "" && a.PatientID != patientID:
			return false
		case doctorID != "" && a.DoctorID != doctorID:
			return false
		}
		return term == "" || a.Matches(term)
	})
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	if a, ok := getEntity(c, h.Stores.Appointments, "appointment"); ok {
		c.JSON(http.StatusOK, a)
	}
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	updateEntity[models.Appointment, models.AppointmentFields](c, h.Stores.Appointments)
}

func (h *Handler) PatchAppointment(c *gin.Context) {
	updateEntity[models.Appointment, models.AppointmentPatch](c, h.Stores.Appointments)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	deleteEntity(c, h.Stores.Appointments)
}

// SetAppointmentStatus backs the complete, no-show and cancel actions.
func (h *Handler) SetAppointmentStatus(status models.AppointmentStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyPatch(c, h.Stores.Appointments, models.StatusPatch(status))
	}
}
