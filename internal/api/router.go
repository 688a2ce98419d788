// Package api wires the HTTP surface: routes, guards, and request logging.
package api

import (
	"net/http"

	"gigflow/backend/internal/api/handler"
	"gigflow/backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all routes. Public reads stay unguarded; every
// mutation goes through the access guard.
func SetupRouter(h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "GigFlow API is running...")
	})

	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/logout", h.Logout)
		authRoutes.GET("/me", middleware.RequireAuth(), h.Me)
	}

	gigs := r.Group("/api/gigs")
	{
		gigs.GET("", h.ListGigs)
		gigs.GET("/:id", h.GetGig)
		gigs.POST("", middleware.RequireAuth(), h.CreateGig)
		gigs.DELETE("/:id", middleware.RequireAuth(), h.DeleteGig)
	}

	bids := r.Group("/api/bids", middleware.RequireAuth())
	{
		bids.POST("", h.PlaceBid)
		bids.GET("/:gigId", h.GetBidsForGig)
		bids.PATCH("/:bidId/hire", h.HireBid)
	}

	r.GET("/ws", h.ServeWebSocket)

	return r
}
