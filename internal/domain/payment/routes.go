package payment

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers SUPER_ADMIN payment ledger access.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/admin/payments", h.Record)
	r.GET("/admin/payments", h.List)
}
