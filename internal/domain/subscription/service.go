package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymhub/internal/domain/payment"
	"gymhub/internal/domain/plan"
	"gymhub/internal/metrics"
	"gymhub/internal/pkg/apperr"
	"gymhub/internal/pkg/pagination"
)

// PlanSource loads plans; implemented by the plan repository.
type PlanSource interface {
	GetByID(ctx context.Context, id int64) (*plan.Plan, error)
}

// OwnerDirectory verifies owners; implemented by the auth repository.
type OwnerDirectory interface {
	OwnerExists(ctx context.Context, id int64) (bool, error)
}

// MemberDirectory verifies members; implemented by the gym member
// repository.
type MemberDirectory interface {
	MemberExists(ctx context.Context, id int64) (bool, error)
	MemberOwnedBy(ctx context.Context, memberID, ownerID int64) (bool, error)
}

// PaymentWriter appends ledger rows inside the caller's transaction;
// implemented by the payment repository.
type PaymentWriter interface {
	CreateTx(tx *gorm.DB, p *payment.Payment) error
}

// Notifier publishes subscription lifecycle events to connected owners.
type Notifier interface {
	SubscriptionExpired(ownerID int64, subscriptionID string)
}

type Service struct {
	db       *gorm.DB
	repo     Repository
	plans    PlanSource
	owners   OwnerDirectory
	members  MemberDirectory
	payments PaymentWriter
	notifier Notifier
	now      func() time.Time
}

func NewService(db *gorm.DB, repo Repository, plans PlanSource, owners OwnerDirectory, members MemberDirectory, payments PaymentWriter) *Service {
	return &Service{
		db:       db,
		repo:     repo,
		plans:    plans,
		owners:   owners,
		members:  members,
		payments: payments,
		now:      time.Now,
	}
}

// SetNotifier attaches the expiry event feed (optional).
func (s *Service) SetNotifier(n Notifier) { s.notifier = n }

// Create assigns a plan to an owner. The previous active subscriptions
// are deactivated, the new row inserted and the optional payment
// recorded in one transaction, so the at-most-one-active invariant
// holds per request.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*OwnerSubscription, error) {
	exists, err := s.owners.OwnerExists(ctx, req.OwnerID)
	if err != nil {
		return nil, apperr.Internal("failed to look up owner", err)
	}
	if !exists {
		return nil, ErrOwnerNotFound
	}

	p, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, apperr.Internal("failed to load plan", err)
	}
	if p == nil || !p.IsActive {
		return nil, ErrPlanUnavailable
	}

	model := BillingModel(req.BillingModel)
	if !model.Valid() {
		return nil, ErrInvalidBillingModel
	}

	start, err := startDate(req.StartDate, s.now())
	if err != nil {
		return nil, err
	}

	end, err := EndDate(start, model)
	if err != nil {
		return nil, err
	}
	if req.CarryOverRemainingDays {
		if prev, err := s.repo.GetLiveByOwnerID(ctx, req.OwnerID); err != nil {
			return nil, apperr.Internal("failed to load previous subscription", err)
		} else if prev != nil {
			end, _ = EndDateWithRemainingDays(start, model, prev.EndDate, s.now())
		}
	}

	now := s.now()
	sub := &OwnerSubscription{
		ID:           uuid.New().String(),
		OwnerID:      req.OwnerID,
		PlanID:       &req.PlanID,
		BillingModel: model,
		StartDate:    start,
		EndDate:      end,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.DeactivateAllByOwner(ctx, req.OwnerID); err != nil {
			return err
		}
		if err := txRepo.Create(ctx, sub); err != nil {
			return err
		}
		if req.Amount > 0 {
			pay, err := payment.Build(&payment.RecordRequest{
				Amount:              req.Amount,
				PaymentMethod:       req.PaymentMethod,
				TransactionID:       req.TransactionID,
				PaymentDate:         req.PaymentDate,
				Notes:               req.Notes,
				SubscriptionType:    string(payment.TypeOwner),
				OwnerSubscriptionID: &sub.ID,
			})
			if err != nil {
				return err
			}
			return s.payments.CreateTx(tx, pay)
		}
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) != apperr.KindInternal {
			return nil, err
		}
		return nil, apperr.Internal("failed to create subscription", err)
	}

	metrics.RecordSubscriptionCreated(string(payment.TypeOwner))
	if req.Amount > 0 {
		metrics.RecordPayment(string(payment.TypeOwner))
	}
	return sub, nil
}

// ToggleActive flips one subscription. Activation deactivates every
// other active row for the same owner inside the transaction; the
// invariant survives concurrent toggles as long as the store prevents
// write skew between the two steps.
func (s *Service) ToggleActive(ctx context.Context, id string) (*OwnerSubscription, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load subscription", err)
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if !sub.IsActive {
			if err := txRepo.DeactivateAllByOwner(ctx, sub.OwnerID); err != nil {
				return err
			}
		}
		return txRepo.SetActive(ctx, id, !sub.IsActive)
	})
	if err != nil {
		return nil, apperr.Internal("failed to toggle subscription", err)
	}

	sub.IsActive = !sub.IsActive
	return sub, nil
}

// Delete soft-deletes the subscription and forces it inactive.
func (s *Service) Delete(ctx context.Context, id string) error {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to load subscription", err)
	}
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apperr.Internal("failed to delete subscription", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, ownerID int64, params pagination.Params) ([]*OwnerSubscription, pagination.Meta, error) {
	subs, total, err := s.repo.List(ctx, ownerID, params)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal("failed to list subscriptions", err)
	}
	return subs, pagination.NewMeta(params, total), nil
}

// Status derives the session view for an owner: active/expired flags,
// remaining days and the quota snapshot read from the plan (not cached
// on the subscription row).
func (s *Service) Status(ctx context.Context, ownerID int64) (*StatusResponse, error) {
	sub, err := s.repo.GetLatestByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal("failed to load subscription", err)
	}
	if sub == nil {
		return &StatusResponse{}, nil
	}

	resp := &StatusResponse{
		Subscription:        sub,
		SubscriptionActive:  sub.Live(),
		SubscriptionExpired: sub.IsExpired,
		RemainingDays:       RemainingDays(sub.EndDate, s.now()),
	}

	if sub.Live() && sub.PlanID != nil {
		p, err := s.plans.GetByID(ctx, *sub.PlanID)
		if err != nil {
			return nil, apperr.Internal("failed to load plan", err)
		}
		if p != nil {
			quota := p.Quota()
			resp.SubscriptionLimits = &quota
			resp.PlanName = p.Name
		}
	}
	return resp, nil
}

// LiveQuota returns the owner's current plan quota, or nil when the
// owner has no live subscription. Satisfies limits.PlanSource.
func (s *Service) LiveQuota(ctx context.Context, ownerID int64) (*plan.Quota, error) {
	sub, err := s.repo.GetLiveByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.PlanID == nil {
		return nil, nil
	}
	p, err := s.plans.GetByID(ctx, *sub.PlanID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	quota := p.Quota()
	return &quota, nil
}

// CreateMember starts a member's billing period, deactivating prior
// rows and recording the optional payment atomically.
func (s *Service) CreateMember(ctx context.Context, ownerID int64, req *CreateMemberRequest) (*MemberSubscription, error) {
	owned, err := s.members.MemberOwnedBy(ctx, req.MemberID, ownerID)
	if err != nil {
		return nil, apperr.Internal("failed to look up member", err)
	}
	if !owned {
		return nil, ErrMemberNotFound
	}

	model := BillingModel(req.BillingModel)
	if !model.Valid() {
		return nil, ErrInvalidBillingModel
	}

	start, err := startDate(req.StartDate, s.now())
	if err != nil {
		return nil, err
	}
	end, err := EndDate(start, model)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sub := &MemberSubscription{
		ID:           uuid.New().String(),
		MemberID:     req.MemberID,
		Price:        req.Price,
		BillingModel: model,
		StartDate:    start,
		EndDate:      end,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.DeactivateAllByMember(ctx, req.MemberID); err != nil {
			return err
		}
		if err := txRepo.CreateMember(ctx, sub); err != nil {
			return err
		}
		if req.Amount > 0 {
			pay, err := payment.Build(&payment.RecordRequest{
				Amount:               req.Amount,
				PaymentMethod:        req.PaymentMethod,
				TransactionID:        req.TransactionID,
				PaymentDate:          req.PaymentDate,
				Notes:                req.Notes,
				SubscriptionType:     string(payment.TypeMember),
				MemberSubscriptionID: &sub.ID,
			})
			if err != nil {
				return err
			}
			return s.payments.CreateTx(tx, pay)
		}
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) != apperr.KindInternal {
			return nil, err
		}
		return nil, apperr.Internal("failed to create member subscription", err)
	}

	metrics.RecordSubscriptionCreated(string(payment.TypeMember))
	if req.Amount > 0 {
		metrics.RecordPayment(string(payment.TypeMember))
	}
	return sub, nil
}

// ExpireDue is the Expiry Sweeper: every subscription whose end date
// has passed gets is_expired=true, is_active=false. Invoked from
// cmd/sweeper on a timer and from the admin endpoint.
func (s *Service) ExpireDue(ctx context.Context) (*SweepResult, error) {
	now := s.now()

	expiredOwners, err := s.repo.ExpireDueOwners(ctx, now)
	if err != nil {
		return nil, apperr.Internal("failed to expire owner subscriptions", err)
	}
	memberCount, err := s.repo.ExpireDueMembers(ctx, now)
	if err != nil {
		return nil, apperr.Internal("failed to expire member subscriptions", err)
	}

	metrics.SweeperRunsTotal.Inc()
	metrics.RecordSweep(string(payment.TypeOwner), int64(len(expiredOwners)))
	metrics.RecordSweep(string(payment.TypeMember), memberCount)

	if s.notifier != nil {
		for _, sub := range expiredOwners {
			s.notifier.SubscriptionExpired(sub.OwnerID, sub.ID)
		}
	}

	return &SweepResult{
		OwnerExpired:  int64(len(expiredOwners)),
		MemberExpired: memberCount,
	}, nil
}

func startDate(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidStartDate
}
