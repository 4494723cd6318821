package plan

import "gymhub/internal/pkg/apperr"

var (
	ErrPlanNotFound       = apperr.NotFound("PLAN_NOT_FOUND", "plan not found")
	ErrPlanHasSubscribers = apperr.Conflict("PLAN_HAS_SUBSCRIBERS", "plan has active subscriptions")
	ErrPlanNameTaken      = apperr.Conflict("PLAN_NAME_TAKEN", "a plan with this name already exists")
)
