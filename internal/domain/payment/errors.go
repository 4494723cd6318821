package payment

import "gymhub/internal/pkg/apperr"

var (
	ErrInvalidLink   = apperr.Validation("INVALID_PAYMENT_LINK", "payment must reference exactly one subscription matching its type")
	ErrInvalidType   = apperr.Validation("INVALID_SUBSCRIPTION_TYPE", "subscription_type must be OWNER or MEMBER")
	ErrInvalidAmount = apperr.Validation("INVALID_AMOUNT", "amount must be positive")
)
