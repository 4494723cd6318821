package subscription

import "gymhub/internal/pkg/apperr"

var (
	ErrSubscriptionNotFound = apperr.NotFound("SUBSCRIPTION_NOT_FOUND", "subscription not found")
	ErrOwnerNotFound        = apperr.NotFound("OWNER_NOT_FOUND", "gym owner not found")
	ErrMemberNotFound       = apperr.NotFound("MEMBER_NOT_FOUND", "member not found")
	ErrPlanUnavailable      = apperr.NotFound("PLAN_NOT_FOUND", "plan not found or inactive")
	ErrInvalidBillingModel  = apperr.Validation("INVALID_BILLING_MODEL", "billing_model must be MONTHLY or YEARLY")
	ErrInvalidStartDate     = apperr.Validation("INVALID_START_DATE", "start_date must be RFC 3339 or YYYY-MM-DD")
)
