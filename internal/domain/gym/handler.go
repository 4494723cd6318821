package gym

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymhub/internal/middleware"
	"gymhub/internal/pkg/pagination"
	"gymhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		UserID: middleware.UserID(c),
		Admin:  middleware.Role(c) == middleware.RoleSuperAdmin,
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
		return 0, false
	}
	return id, true
}

func listResponse(c *gin.Context, items any, meta pagination.Meta) {
	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"total":      meta.Total,
		"page":       meta.Page,
		"page_count": meta.PageCount,
	})
}

// ---- Gyms ----

// CreateGym godoc
// @Summary Create a gym for the authenticated owner
// @Tags Gyms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateGymRequest true "Gym fields"
// @Success 201 {object} Gym
// @Router /owner/gyms [post]
func (h *Handler) CreateGym(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	g, err := h.service.CreateGym(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "gym created", g)
}

func (h *Handler) GetGym(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := h.service.GetGym(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) ListGyms(c *gin.Context) {
	gyms, meta, err := h.service.ListGyms(c.Request.Context(), middleware.UserID(c), pagination.FromQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	listResponse(c, gyms, meta)
}

// UpdateGym edits a gym; owner_id in the body is honored only when the
// caller is a SUPER_ADMIN.
func (h *Handler) UpdateGym(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	g, err := h.service.UpdateGym(c.Request.Context(), actorFrom(c), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "gym updated", g)
}

func (h *Handler) DeleteGym(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteGym(c.Request.Context(), actorFrom(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "gym deleted", nil)
}

// ---- Locations ----

// CreateLocation godoc
// @Summary Add a location to one of the owner's gyms
// @Tags Locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateLocationRequest true "Location fields"
// @Success 201 {object} Location
// @Router /owner/locations [post]
func (h *Handler) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	l, err := h.service.CreateLocation(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "location created", l)
}

func (h *Handler) ListLocations(c *gin.Context) {
	locations, meta, err := h.service.ListLocations(c.Request.Context(), middleware.UserID(c), pagination.FromQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	listResponse(c, locations, meta)
}

func (h *Handler) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	l, err := h.service.UpdateLocation(c.Request.Context(), actorFrom(c), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "location updated", l)
}

func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteLocation(c.Request.Context(), actorFrom(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "location deleted", nil)
}

// ---- Equipment ----

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	e, err := h.service.CreateEquipment(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "equipment created", e)
}

// ListEquipment supports an optional location_id filter.
func (h *Handler) ListEquipment(c *gin.Context) {
	var locationID *int64
	if v := c.Query("location_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_LOCATION_ID", "location_id must be an integer")
			return
		}
		locationID = &id
	}

	equipment, meta, err := h.service.ListEquipment(c.Request.Context(), middleware.UserID(c), locationID, pagination.FromQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	listResponse(c, equipment, meta)
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	e, err := h.service.UpdateEquipment(c.Request.Context(), actorFrom(c), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "equipment updated", e)
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEquipment(c.Request.Context(), actorFrom(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "equipment deleted", nil)
}

// ---- Members ----

// CreateMember godoc
// @Summary Register a member in one of the owner's gyms
// @Tags Members
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateMemberRequest true "Member fields"
// @Success 201 {object} Member
// @Router /owner/members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	m, err := h.service.CreateMember(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "member created", m)
}

// ListMembers supports an optional gym_id filter.
func (h *Handler) ListMembers(c *gin.Context) {
	var gymID *int64
	if v := c.Query("gym_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_GYM_ID", "gym_id must be an integer")
			return
		}
		gymID = &id
	}

	members, meta, err := h.service.ListMembers(c.Request.Context(), middleware.UserID(c), gymID, pagination.FromQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	listResponse(c, members, meta)
}

func (h *Handler) UpdateMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	m, err := h.service.UpdateMember(c.Request.Context(), actorFrom(c), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "member updated", m)
}

func (h *Handler) DeleteMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMember(c.Request.Context(), actorFrom(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "member deleted", nil)
}
