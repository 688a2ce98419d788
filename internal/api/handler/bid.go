package handler

import (
	"net/http"

	"gigflow/backend/internal/api/middleware"
	"gigflow/backend/internal/apperrors"
	"gigflow/backend/internal/models"

	log "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"
)

type placeBidRequest struct {
	GigID   string  `json:"gigId" binding:"required"`
	Message string  `json:"message" binding:"required"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

// PlaceBid handles POST /api/bids. The gig must exist and still be open,
// and owners cannot bid on their own gigs. One bid per freelancer per gig;
// the unique index backs that check against concurrent submissions.
func (h *Handler) PlaceBid(c *gin.Context) {
	var req placeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}
	if !validID(req.GigID) {
		abortWithError(c, apperrors.ErrBadID)
		return
	}

	gig, err := h.Store.GetGigByID(req.GigID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !gig.IsOpen() {
		abortWithError(c, apperrors.ErrGigAssigned)
		return
	}

	userID := middleware.UserID(c)
	if gig.OwnerID == userID {
		abortWithError(c, apperrors.ErrOwnBidDenied)
		return
	}

	bid := &models.Bid{
		GigID:        gig.ID,
		FreelancerID: userID,
		Message:      req.Message,
		Price:        req.Price,
	}
	if err := h.Store.CreateBid(bid); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Bid placed successfully", "bid": bid})
}

// GetBidsForGig handles GET /api/bids/:gigId. Only the gig owner may see
// the bids; each comes with the freelancer's display fields, newest first.
func (h *Handler) GetBidsForGig(c *gin.Context) {
	gigID := c.Param("gigId")
	if !validID(gigID) {
		abortWithError(c, apperrors.ErrBadID)
		return
	}

	gig, err := h.Store.GetGigByID(gigID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if gig.OwnerID != middleware.UserID(c) {
		abortWithError(c, apperrors.ErrNotOwner)
		return
	}

	bids, err := h.Store.GetBidsForGig(gigID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	c.JSON(http.StatusOK, bids)
}

// HireBid handles PATCH /api/bids/:bidId/hire, the endpoint behind the
// whole hire transition. The coordinator does every check and write; a
// success here means the transaction committed.
func (h *Handler) HireBid(c *gin.Context) {
	bidID := c.Param("bidId")
	if !validID(bidID) {
		abortWithError(c, apperrors.ErrBadID)
		return
	}

	result, err := h.Hire.Hire(c.Request.Context(), bidID, middleware.UserID(c))
	if err != nil {
		log.WithFields(log.Fields{"bid_id": bidID, "error": err}).Warn("hire: request failed")
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Freelancer hired successfully",
		"gig":        result.Gig,
		"winningBid": result.WinningBid,
	})
}
