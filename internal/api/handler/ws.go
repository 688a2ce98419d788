package handler

import (
	"net/http"

	"gigflow/backend/internal/api/middleware"
	"gigflow/backend/internal/auth"
	"gigflow/backend/internal/presence"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin browser clients are expected; tighten per deployment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket handles GET /ws. The handshake must carry a valid token
// (bearer header, cookie, or ?token= for browser WebSocket clients, which
// cannot set headers); without one no presence entry is created.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
		return
	}

	userID, err := auth.Parse(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written its own error response.
		return
	}

	client := presence.NewWebSocketClient(userID, conn, h.Hub)
	h.Hub.RegisterCh <- client
	client.Run()
}
