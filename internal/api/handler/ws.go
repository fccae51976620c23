package handler

import (
	"log"
	"net/http"

	"pingo/backend/internal/auth"
	"pingo/backend/internal/chathub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the deployment's reverse proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS authenticates the handshake from the session cookie and upgrades
// the connection. Every failure rejects the attempt before the hub is
// touched.
func (h *Handler) ServeWS(c *gin.Context) {
	token, err := auth.TokenFromRequest(c.Request)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	userID, err := auth.VerifyToken(token, []byte(h.Cfg.JWTSecret))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := h.Storage.GetUserByID(userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		log.Printf("Websocket upgrade failed for user %d: %v", user.ID, err)
		return
	}

	client := chathub.NewWebSocketClient(h.Hub, user.ID, conn)
	h.Hub.Register(client)
	client.Run()

	log.Printf("Websocket connected for user %d (%s)", user.ID, user.FullName)
}
