package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/apperrors"
	"github.com/harentsoaR/medicare-api/internal/config"
	"github.com/harentsoaR/medicare-api/internal/export"
	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/services"
	"github.com/harentsoaR/medicare-api/internal/stats"
	"github.com/harentsoaR/medicare-api/internal/store"
	"github.com/harentsoaR/medicare-api/internal/utils"
)

// Handler carries everything the HTTP layer needs.
type Handler struct {
	Stores          *store.Stores
	Stats           *stats.Aggregator
	Reports         *export.Generator
	NotificationSvc *services.NotificationService
	Auth            config.AuthConfig
	Tokens          *utils.TokenIssuer
	Now             func() time.Time
}

func NewHandler(stores *store.Stores, aggregator *stats.Aggregator, reports *export.Generator, notificationSvc *services.NotificationService) *Handler {
	return &Handler{
		Stores:          stores,
		Stats:           aggregator,
		Reports:         reports,
		NotificationSvc: notificationSvc,
		Now:             time.Now,
	}
}

// WithAuth enables the admin login and token checks.
func (h *Handler) WithAuth(cfg config.AuthConfig, tokens *utils.TokenIssuer) *Handler {
	h.Auth = cfg
	h.Tokens = tokens
	return h
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError writes err as {"error": ...}. Internal errors are logged and
// their cause is not exposed.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": apperrors.PublicMessage(err)})
}

func invalidRequest(c *gin.Context, err error) {
	respondError(c, apperrors.NewValidationError(err.Error(), err))
}

func storageFailure(c *gin.Context, err error) {
	respondError(c, apperrors.NewInternalError("storage failure", err))
}

// writeFailure answers a refused or failed write: 400 for a collection rule,
// 500 for anything else.
func writeFailure(c *gin.Context, err error) {
	var rule *store.RuleError
	if errors.As(err, &rule) {
		respondError(c, apperrors.NewValidationError(rule.Reason, err))
		return
	}
	storageFailure(c, err)
}

// addEntity binds F from the body, stores it and answers 201 with the new
// entity.
func addEntity[T models.Entity[T], F models.Patch[T]](c *gin.Context, coll *store.Collection[T]) (T, bool) {
	var fields F
	var zero T
	if err := c.ShouldBindJSON(&fields); err != nil {
		invalidRequest(c, err)
		return zero, false
	}
	created, err := coll.Add(c.Request.Context(), fields)
	if err != nil {
		writeFailure(c, err)
		return zero, false
	}
	c.JSON(http.StatusCreated, created)
	return created, true
}

func getEntity[T models.Entity[T]](c *gin.Context, coll *store.Collection[T], what string) (T, bool) {
	item, found, err := coll.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		storageFailure(c, err)
		return item, false
	}
	if !found {
		respondError(c, apperrors.NewNotFoundError(what+" not found"))
		return item, false
	}
	return item, true
}

// updateEntity binds P from the body and applies it to :id.
func updateEntity[T models.Entity[T], P models.Patch[T]](c *gin.Context, coll *store.Collection[T]) {
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c, err)
		return
	}
	applyPatch(c, coll, patch)
}

// applyPatch answers 200 with the updated entity, or 204 when :id does not
// exist. The collection is rewritten either way.
func applyPatch[T models.Entity[T]](c *gin.Context, coll *store.Collection[T], patch models.Patch[T]) {
	updated, found, err := coll.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeFailure(c, err)
		return
	}
	if !found {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func deleteEntity[T models.Entity[T]](c *gin.Context, coll *store.Collection[T]) {
	if _, err := coll.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storageFailure(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func sendPDF(c *gin.Context, filename string, pdf []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
