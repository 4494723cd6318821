package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers routes that don't require authentication
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers routes behind the auth middleware
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/auth/me", h.Me)
}

// RegisterAdminRoutes registers SUPER_ADMIN account management
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/admin/users", h.RegisterWithRole)
	r.GET("/admin/owners", h.ListOwners)
}
