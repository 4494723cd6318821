package payment

import (
	"context"

	"gorm.io/gorm"

	"gymhub/internal/pkg/pagination"
)

// Filter narrows the ledger listing to one subscription.
type Filter struct {
	SubscriptionType SubscriptionType
	SubscriptionID   string
}

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// CreateTx inserts within an existing transaction, used when a
	// payment is recorded atomically with subscription creation.
	CreateTx(tx *gorm.DB, p *Payment) error
	List(ctx context.Context, f Filter, params pagination.Params) ([]*Payment, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) CreateTx(tx *gorm.DB, p *Payment) error {
	return tx.Create(p).Error
}

func (r *repository) List(ctx context.Context, f Filter, params pagination.Params) ([]*Payment, int64, error) {
	var payments []*Payment
	var total int64

	q := r.db.WithContext(ctx).Model(&Payment{})

	if f.SubscriptionType != "" {
		q = q.Where("subscription_type = ?", f.SubscriptionType)
	}
	if f.SubscriptionID != "" {
		switch f.SubscriptionType {
		case TypeMember:
			q = q.Where("member_subscription_id = ?", f.SubscriptionID)
		default:
			q = q.Where("owner_subscription_id = ?", f.SubscriptionID)
		}
	}

	q = q.Order("payment_date DESC")

	if params.Dropdown() {
		err := q.Find(&payments).Error
		return payments, int64(len(payments)), err
	}

	countQuery := q.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit := params.Normalized()
	err := q.Limit(limit).Offset(params.Offset()).Find(&payments).Error
	return payments, total, err
}
