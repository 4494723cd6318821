package plan

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymhub/internal/pkg/pagination"
	"gymhub/internal/pkg/response"
)

// Handler exposes the plan registry. All routes require SUPER_ADMIN
// except the public listing used by the pricing page.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary Create a billing plan
// @Tags Plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Plan definition"
// @Success 201 {object} Plan
// @Router /admin/plans [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "plan created", p)
}

// List godoc
// @Summary List plans (paginated/search, or full set in dropdown mode)
// @Tags Plans
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Name substring or exact price"
// @Success 200 {object} ListResponse
// @Router /plans [get]
func (h *Handler) List(c *gin.Context) {
	params := pagination.FromQuery(c)
	plans, meta, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ListResponse{
		Items: plans,
		Total: meta.Total,
		Page:  meta.Page,
		Pages: meta.PageCount,
	})
}

// ToggleActive flips is_active; 409 when live subscriptions exist.
func (h *Handler) ToggleActive(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}

	p, err := h.service.ToggleActive(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "plan updated", p)
}

// Delete soft-deletes the plan; 409 when live subscriptions exist.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "plan deleted", nil)
}

func planID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid plan id")
		return 0, false
	}
	return id, true
}
