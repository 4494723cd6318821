package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymhub/internal/pkg/pagination"
	"gymhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Record godoc
// @Summary Record a payment against a subscription
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body RecordRequest true "Payment details"
// @Success 201 {object} Payment
// @Router /admin/payments [post]
func (h *Handler) Record(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	p, err := h.service.Record(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "payment recorded", p)
}

// List godoc
// @Summary List payments filtered by subscription type and id
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param subscription_type query string false "OWNER or MEMBER"
// @Param subscription_id query string false "Subscription id"
// @Router /admin/payments [get]
func (h *Handler) List(c *gin.Context) {
	f := Filter{
		SubscriptionType: SubscriptionType(c.Query("subscription_type")),
		SubscriptionID:   c.Query("subscription_id"),
	}
	if f.SubscriptionType != "" && !f.SubscriptionType.Valid() {
		response.FromError(c, ErrInvalidType)
		return
	}

	params := pagination.FromQuery(c)
	payments, meta, err := h.service.List(c.Request.Context(), f, params)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":      payments,
		"total":      meta.Total,
		"page":       meta.Page,
		"page_count": meta.PageCount,
	})
}
