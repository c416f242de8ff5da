package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/medicare-api/internal/models"
)

const (
	recentAppointmentsShown = 5
	activeDoctorsShown      = 4
)

type DashboardOverview struct {
	Stats              models.DashboardStats `json:"stats"`
	RecentAppointments []models.Appointment  `json:"recentAppointments"`
	ActiveDoctors      []models.Doctor       `json:"activeDoctors"`
}

func (h *Handler) GetDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Stats.Stats())
}

// GetDashboardOverview returns the stats with the first few appointments and
// doctors in stored order.
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	ctx := c.Request.Context()
	appointments, err := h.Stores.Appointments.List(ctx)
	if err != nil {
		storageFailure(c, err)
		return
	}
	doctors, err := h.Stores.Doctors.List(ctx)
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, DashboardOverview{
		Stats:              h.Stats.Stats(),
		RecentAppointments: firstN(appointments, recentAppointmentsShown),
		ActiveDoctors:      firstN(doctors, activeDoctorsShown),
	})
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
