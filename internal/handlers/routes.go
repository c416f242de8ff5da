package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/medicare-api/internal/middleware"
	"github.com/harentsoaR/medicare-api/internal/models"
)

// RegisterRoutes mounts the API on r. /api is protected only when auth is
// enabled.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)

	apiRoutes := r.Group("/api")
	if h.Auth.Enabled {
		authRoutes := r.Group("/auth")
		authRoutes.POST("/login", h.Login)
		apiRoutes.Use(middleware.AuthMiddleware(h.Tokens))
	}

	patients := apiRoutes.Group("/patients")
	{
		patients.GET("", h.GetPatients)
		patients.POST("", h.CreatePatient)
		patients.GET("/statistics", h.GetPatientStatistics)
		patients.GET("/birthdays", h.GetUpcomingBirthdays)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.PATCH("/:id", h.PatchPatient)
		patients.DELETE("/:id", h.DeletePatient)
		patients.GET("/:id/report", h.GetPatientReport)
	}

	doctors := apiRoutes.Group("/doctors")
	{
		doctors.GET("", h.GetDoctors)
		doctors.POST("", h.CreateDoctor)
		doctors.GET("/:id", h.GetDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.PATCH("/:id", h.PatchDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}

	appointments := apiRoutes.Group("/appointments")
	{
		appointments.GET("", h.GetAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.PATCH("/:id", h.PatchAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
		appointments.PATCH("/:id/complete", h.SetAppointmentStatus(models.StatusCompleted))
		appointments.PATCH("/:id/no-show", h.SetAppointmentStatus(models.StatusNoShow))
		appointments.PATCH("/:id/cancel", h.SetAppointmentStatus(models.StatusCancelled))
	}

	apiRoutes.GET("/dashboard/stats", h.GetDashboardStats)
	apiRoutes.GET("/dashboard/overview", h.GetDashboardOverview)
	apiRoutes.POST("/records/report", h.ExportMedicalRecord)
	apiRoutes.POST("/billing/invoices/report", h.ExportInvoice)
	apiRoutes.GET("/reports/comprehensive", h.ExportComprehensiveReport)
}
