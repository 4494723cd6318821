package payment

import "time"

// SubscriptionType tags which ledger a payment belongs to.
type SubscriptionType string

const (
	TypeOwner  SubscriptionType = "OWNER"
	TypeMember SubscriptionType = "MEMBER"
)

func (t SubscriptionType) Valid() bool {
	return t == TypeOwner || t == TypeMember
}

// Payment is an append-only ledger entry. Exactly one of
// OwnerSubscriptionID / MemberSubscriptionID is set, matching
// SubscriptionType. Rows are never updated or deleted.
type Payment struct {
	ID                   string           `gorm:"column:id;primaryKey" json:"id"`
	Amount               float64          `gorm:"column:amount" json:"amount"`
	PaymentMethod        string           `gorm:"column:payment_method" json:"payment_method"`
	TransactionID        string           `gorm:"column:transaction_id" json:"transaction_id,omitempty"`
	PaymentDate          time.Time        `gorm:"column:payment_date" json:"payment_date"`
	Notes                string           `gorm:"column:notes" json:"notes,omitempty"`
	SubscriptionType     SubscriptionType `gorm:"column:subscription_type" json:"subscription_type"`
	OwnerSubscriptionID  *string          `gorm:"column:owner_subscription_id" json:"owner_subscription_id,omitempty"`
	MemberSubscriptionID *string          `gorm:"column:member_subscription_id" json:"member_subscription_id,omitempty"`
	CreatedAt            time.Time        `gorm:"column:created_at" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

// LinkValid reports whether the type tag and the XOR of subscription
// references are consistent.
func (p *Payment) LinkValid() bool {
	switch p.SubscriptionType {
	case TypeOwner:
		return p.OwnerSubscriptionID != nil && p.MemberSubscriptionID == nil
	case TypeMember:
		return p.MemberSubscriptionID != nil && p.OwnerSubscriptionID == nil
	}
	return false
}
