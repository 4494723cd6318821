package gym

import "github.com/gin-gonic/gin"

// RegisterOwnerRoutes registers resource CRUD for role=GYM_OWNER.
// SUPER_ADMIN passes the same role gate and additionally may reassign
// gyms between owners via the update endpoint.
func RegisterOwnerRoutes(r *gin.RouterGroup, h *Handler) {
	gyms := r.Group("/owner/gyms")
	{
		gyms.POST("", h.CreateGym)
		gyms.GET("", h.ListGyms)
		gyms.GET("/:id", h.GetGym)
		gyms.POST("/:id", h.UpdateGym)
		gyms.POST("/:id/delete", h.DeleteGym)
	}

	locations := r.Group("/owner/locations")
	{
		locations.POST("", h.CreateLocation)
		locations.GET("", h.ListLocations)
		locations.POST("/:id", h.UpdateLocation)
		locations.POST("/:id/delete", h.DeleteLocation)
	}

	equipment := r.Group("/owner/equipment")
	{
		equipment.POST("", h.CreateEquipment)
		equipment.GET("", h.ListEquipment)
		equipment.POST("/:id", h.UpdateEquipment)
		equipment.POST("/:id/delete", h.DeleteEquipment)
	}

	members := r.Group("/owner/members")
	{
		members.POST("", h.CreateMember)
		members.GET("", h.ListMembers)
		members.POST("/:id", h.UpdateMember)
		members.POST("/:id/delete", h.DeleteMember)
	}
}
