package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/apperrors"
	"github.com/harentsoaR/medicare-api/internal/utils"
)

const adminRole = "admin"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges the configured admin credentials for a token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if !strings.EqualFold(req.Email, h.Auth.AdminEmail) || !utils.CheckPasswordHash(req.Password, h.Auth.AdminPasswordHash) {
		log.Warn().Str("email", req.Email).Msg("rejected login")
		respondError(c, apperrors.NewUnauthorizedError("Invalid credentials"))
		return
	}

	token, err := h.Tokens.GenerateJWT(h.Auth.AdminEmail, adminRole)
	if err != nil {
		respondError(c, apperrors.NewInternalError("Failed to generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": adminRole})
}
