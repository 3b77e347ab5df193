package handler

import (
	"net/http"
	"strings"

	"unsent/backend/internal/models"
	"unsent/backend/internal/starhub"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any domain. Tighten for production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades an HTTP connection to a WebSocket and registers
// it with the hub. A token from /anonid may be supplied (query param or
// Bearer header) to label the client; the connection ID itself is always a
// fresh UUID, never reused after disconnect.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	anonID := ""
	if token := bearerToken(c); token != "" {
		id, err := validateAnonToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}
		anonID = id
	}
	if anonID == "" {
		anonID = uuid.New().String()
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &starhub.WebSocketClient{
		ConnID: uuid.New().String(),
		AnonID: anonID,
		Conn:   conn,
		Hub:    h.Hub,
		Send:   make(chan models.Event, 256),
	}

	h.Hub.Register(client)
	client.Run()
}

func bearerToken(c *gin.Context) string {
	if t := c.Query("token"); t != "" {
		return t
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
