package subscription

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers SUPER_ADMIN subscription management.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	admin := r.Group("/admin/subscriptions")
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.POST("/sweep", h.Sweep)
		admin.POST("/:id/toggle", h.ToggleActive)
		admin.POST("/:id/delete", h.Delete)
	}
}

// RegisterOwnerRoutes registers routes that require role=GYM_OWNER.
func RegisterOwnerRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/owner/subscription", h.Status)
	r.POST("/owner/member-subscriptions", h.CreateMember)
}
