package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/medicare-api/internal/models"
)

// GetDoctors lists doctors, optionally narrowed by ?q= and ?department=.
func (h *Handler) GetDoctors(c *gin.Context) {
	term := c.Query("q")
	department := c.Query("department")

	doctors, err := h.Stores.Doctors.Filter(c.Request.Context(), func(d models.Doctor) bool {
		if department != "" && !strings.EqualFold(d.Department, department) {
			return false
		}
		return term == "" || d.Matches(term)
	})
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	addEntity[models.Doctor, models.DoctorFields](c, h.Stores.Doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	if d, ok := getEntity(c, h.Stores.Doctors, "doctor"); ok {
		c.JSON(http.StatusOK, d)
	}
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	updateEntity[models.Doctor, models.DoctorFields](c, h.Stores.Doctors)
}

func (h *Handler) PatchDoctor(c *gin.Context) {
	updateEntity[models.Doctor, models.DoctorPatch](c, h.Stores.Doctors)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	deleteEntity(c, h.Stores.Doctors)
}
