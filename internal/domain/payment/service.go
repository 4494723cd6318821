package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gymhub/internal/metrics"
	"gymhub/internal/pkg/apperr"
	"gymhub/internal/pkg/pagination"
)

type RecordRequest struct {
	Amount               float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod        string  `json:"payment_method" binding:"required"`
	TransactionID        string  `json:"transaction_id"`
	PaymentDate          string  `json:"payment_date"`
	Notes                string  `json:"notes"`
	SubscriptionType     string  `json:"subscription_type" binding:"required"`
	OwnerSubscriptionID  *string `json:"owner_subscription_id"`
	MemberSubscriptionID *string `json:"member_subscription_id"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends one ledger entry. PaymentDate defaults to now when
// absent; accepted formats are RFC 3339 and YYYY-MM-DD.
func (s *Service) Record(ctx context.Context, req *RecordRequest) (*Payment, error) {
	p, err := Build(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.Internal("failed to record payment", err)
	}
	metrics.RecordPayment(string(p.SubscriptionType))
	return p, nil
}

func (s *Service) List(ctx context.Context, f Filter, params pagination.Params) ([]*Payment, pagination.Meta, error) {
	payments, total, err := s.repo.List(ctx, f, params)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal("failed to list payments", err)
	}
	return payments, pagination.NewMeta(params, total), nil
}

// Build validates a request into a Payment row without persisting it.
// The subscription service uses it to insert payments inside its own
// transaction.
func Build(req *RecordRequest) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	subType := SubscriptionType(req.SubscriptionType)
	if !subType.Valid() {
		return nil, ErrInvalidType
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, err := parseDate(req.PaymentDate)
		if err != nil {
			return nil, apperr.Validation("INVALID_PAYMENT_DATE", "payment_date must be RFC 3339 or YYYY-MM-DD")
		}
		paymentDate = parsed
	}

	p := &Payment{
		ID:                   uuid.New().String(),
		Amount:               req.Amount,
		PaymentMethod:        req.PaymentMethod,
		TransactionID:        req.TransactionID,
		PaymentDate:          paymentDate,
		Notes:                req.Notes,
		SubscriptionType:     subType,
		OwnerSubscriptionID:  req.OwnerSubscriptionID,
		MemberSubscriptionID: req.MemberSubscriptionID,
	}
	if !p.LinkValid() {
		return nil, ErrInvalidLink
	}
	return p, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
