package plan

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes exposes the plan catalog (pricing page dropdown).
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/plans", h.List)
}

// RegisterAdminRoutes registers SUPER_ADMIN plan management. Mutations
// are POST-only.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	admin := r.Group("/admin/plans")
	{
		admin.POST("", h.Create)
		admin.POST("/:id/toggle", h.ToggleActive)
		admin.POST("/:id/delete", h.Delete)
	}
}
