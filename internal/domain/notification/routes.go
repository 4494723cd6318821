package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the WebSocket endpoint. Auth happens inside the
// handler via the token query parameter, so this sits outside the
// Bearer middleware.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/ws", h.Connect)
}
