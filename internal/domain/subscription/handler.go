package subscription

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

// Create godoc
// @Summary Assign a plan to a gym owner
// @Tags Subscriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Owner, plan, billing model, optional payment"
// @Success 201 {object} OwnerSubscription
// @Router /admin/subscriptions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	sub, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "subscription created", sub)
}

// List godoc
// @Summary List owner subscriptions, optionally filtered by owner_id
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Router /admin/subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	var ownerID int64
	if v := c.Query("owner_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_OWNER_ID", "owner_id must be an integer")
			return
		}
		ownerID = id
	}

	params := pagination.FromQuery(c)
	subs, meta, err := h.service.List(c.Request.Context(), ownerID, params)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":      subs,
		"total":      meta.Total,
		"page":       meta.Page,
		"page_count": meta.PageCount,
	})
}

// ToggleActive activates/deactivates one subscription, keeping at most
// one active row per owner.
func (h *Handler) ToggleActive(c *gin.Context) {
	sub, err := h.service.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "subscription updated", sub)
}

// Delete soft-deletes a subscription.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "subscription deleted", nil)
}

// Sweep godoc
// @Summary Expire all overdue subscriptions
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SweepResult
// @Router /admin/subscriptions/sweep [post]
func (h *Handler) Sweep(c *gin.Context) {
	result, err := h.service.ExpireDue(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "sweep completed", result)
}

// Status returns the authenticated owner's derived subscription view.
func (h *Handler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, status)
}

// CreateMember starts a billing period for one of the owner's members.
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	sub, err := h.service.CreateMember(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "member subscription created", sub)
}
