package handler

import (
	"net/http"

	"gigflow/backend/internal/api/middleware"
	"gigflow/backend/internal/apperrors"
	"gigflow/backend/internal/models"

	log "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"
)

type createGigRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

// CreateGig handles POST /api/gigs.
func (h *Handler) CreateGig(c *gin.Context) {
	var req createGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}

	gig := &models.Gig{
		OwnerID:     middleware.UserID(c),
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	}
	if err := h.Store.CreateGig(gig); err != nil {
		log.WithFields(log.Fields{"owner_id": gig.OwnerID, "error": err}).Error("gig: create failed")
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gig)
}

// ListGigs handles GET /api/gigs. Public feed of open gigs, optionally
// narrowed by a title substring search.
func (h *Handler) ListGigs(c *gin.Context) {
	gigs, err := h.Store.ListOpenGigs(c.Query("search"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if gigs == nil {
		gigs = []models.Gig{}
	}
	c.JSON(http.StatusOK, gigs)
}

// GetGig handles GET /api/gigs/:id.
func (h *Handler) GetGig(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		abortWithError(c, apperrors.ErrBadID)
		return
	}

	gig, err := h.Store.GetGigByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

// DeleteGig handles DELETE /api/gigs/:id. Owner only; the gig's bids go
// with it.
func (h *Handler) DeleteGig(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		abortWithError(c, apperrors.ErrBadID)
		return
	}

	gig, err := h.Store.GetGigByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if gig.OwnerID != middleware.UserID(c) {
		abortWithError(c, apperrors.ErrNotOwner)
		return
	}

	if err := h.Store.DeleteGig(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gig deleted"})
}
