package subscription

import "time"

// BillingModel selects the subscription cycle length.
type BillingModel string

const (
	BillingMonthly BillingModel = "MONTHLY"
	BillingYearly  BillingModel = "YEARLY"
)

func (m BillingModel) Valid() bool {
	return m == BillingMonthly || m == BillingYearly
}

// OwnerSubscription binds a gym owner to a plan for one billing period.
// Invariant: per owner, at most one row has
// is_active && !is_expired && !is_deleted. It is maintained by
// deactivating all prior active rows in the same transaction that
// activates a new one.
type OwnerSubscription struct {
	ID           string       `gorm:"column:id;primaryKey" json:"id"`
	OwnerID      int64        `gorm:"column:owner_id;index" json:"owner_id"`
	PlanID       *int64       `gorm:"column:plan_id" json:"plan_id,omitempty"`
	BillingModel BillingModel `gorm:"column:billing_model" json:"billing_model"`
	StartDate    time.Time    `gorm:"column:start_date" json:"start_date"`
	EndDate      time.Time    `gorm:"column:end_date" json:"end_date"`
	IsActive     bool         `gorm:"column:is_active" json:"is_active"`
	IsExpired    bool         `gorm:"column:is_expired" json:"is_expired"`
	IsDeleted    bool         `gorm:"column:is_deleted" json:"is_deleted"`
	CreatedAt    time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (OwnerSubscription) TableName() string { return "owner_subscriptions" }

// Live reports whether this row currently grants plan quotas.
func (s *OwnerSubscription) Live() bool {
	return s.IsActive && !s.IsExpired && !s.IsDeleted
}

// MemberSubscription is the analogous per-member billing record. Price
// is stored directly since members don't reference a plan.
type MemberSubscription struct {
	ID           string       `gorm:"column:id;primaryKey" json:"id"`
	MemberID     int64        `gorm:"column:member_id;index" json:"member_id"`
	Price        float64      `gorm:"column:price" json:"price"`
	BillingModel BillingModel `gorm:"column:billing_model" json:"billing_model"`
	StartDate    time.Time    `gorm:"column:start_date" json:"start_date"`
	EndDate      time.Time    `gorm:"column:end_date" json:"end_date"`
	IsActive     bool         `gorm:"column:is_active" json:"is_active"`
	IsExpired    bool         `gorm:"column:is_expired" json:"is_expired"`
	IsDeleted    bool         `gorm:"column:is_deleted" json:"is_deleted"`
	CreatedAt    time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (MemberSubscription) TableName() string { return "member_subscriptions" }

func (s *MemberSubscription) Live() bool {
	return s.IsActive && !s.IsExpired && !s.IsDeleted
}
