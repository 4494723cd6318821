package subscription

import "gymhub/internal/domain/plan"

// CreateRequest assigns a plan to an owner. StartDate defaults to now.
// When CarryOverRemainingDays is set, days left on the owner's previous
// subscription are added to the new end date. Payment fields, when
// present, record a ledger entry in the same transaction.
type CreateRequest struct {
	OwnerID                int64  `json:"owner_id" binding:"required"`
	PlanID                 int64  `json:"plan_id" binding:"required"`
	BillingModel           string `json:"billing_model" binding:"required"`
	StartDate              string `json:"start_date"`
	CarryOverRemainingDays bool   `json:"carry_over_remaining_days"`

	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
	PaymentDate   string  `json:"payment_date"`
	Notes         string  `json:"notes"`
}

// CreateMemberRequest starts a member's billing period.
type CreateMemberRequest struct {
	MemberID     int64   `json:"member_id" binding:"required"`
	Price        float64 `json:"price" binding:"min=0"`
	BillingModel string  `json:"billing_model" binding:"required"`
	StartDate    string  `json:"start_date"`

	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
	PaymentDate   string  `json:"payment_date"`
	Notes         string  `json:"notes"`
}

// StatusResponse is the derived view exposed to the session/UI. Limits
// are copied from the plan at read time.
type StatusResponse struct {
	Subscription        *OwnerSubscription `json:"subscription,omitempty"`
	SubscriptionActive  bool               `json:"subscription_active"`
	SubscriptionExpired bool               `json:"subscription_expired"`
	SubscriptionLimits  *plan.Quota        `json:"subscription_limits,omitempty"`
	PlanName            string             `json:"plan_name,omitempty"`
	RemainingDays       int64              `json:"remaining_days"`
}

// SweepResult reports one sweeper run.
type SweepResult struct {
	OwnerExpired  int64 `json:"owner_subscriptions_expired"`
	MemberExpired int64 `json:"member_subscriptions_expired"`
}
