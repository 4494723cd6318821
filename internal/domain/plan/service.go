package plan

import (
	"context"

	"gymhub/internal/pkg/apperr"
	"gymhub/internal/pkg/pagination"
)

// SubscriptionCounter reports how many live (active, non-expired,
// non-deleted) subscriptions reference a plan. Implemented by the
// subscription repository.
type SubscriptionCounter interface {
	CountLiveByPlanID(ctx context.Context, planID int64) (int64, error)
}

type Service struct {
	repo          Repository
	subscriptions SubscriptionCounter
}

func NewService(repo Repository, subscriptions SubscriptionCounter) *Service {
	return &Service{repo: repo, subscriptions: subscriptions}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Plan, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, apperr.Internal("failed to look up plan name", err)
	}
	if existing != nil {
		return nil, ErrPlanNameTaken
	}

	p := &Plan{
		Name:         req.Name,
		MonthlyPrice: req.MonthlyPrice,
		YearlyPrice:  req.YearlyPrice,
		MaxGyms:      req.MaxGyms,
		MaxLocations: req.MaxLocations,
		MaxMembers:   req.MaxMembers,
		MaxEquipment: req.MaxEquipment,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.Internal("failed to create plan", err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load plan", err)
	}
	if p == nil {
		return nil, ErrPlanNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, params pagination.Params) ([]*Plan, pagination.Meta, error) {
	plans, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal("failed to list plans", err)
	}
	return plans, pagination.NewMeta(params, total), nil
}

// ToggleActive flips the plan's active flag. Deactivation is blocked
// while live subscriptions reference the plan, so owners never lose
// quota visibility mid-billing-cycle.
func (s *Service) ToggleActive(ctx context.Context, id int64) (*Plan, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.IsActive {
		if err := s.ensureNoLiveSubscribers(ctx, id); err != nil {
			return nil, err
		}
	}

	if err := s.repo.SetActive(ctx, id, !p.IsActive); err != nil {
		return nil, apperr.Internal("failed to toggle plan", err)
	}
	p.IsActive = !p.IsActive
	return p, nil
}

// Delete soft-deletes the plan, blocked under the same condition as
// deactivation.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.ensureNoLiveSubscribers(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apperr.Internal("failed to delete plan", err)
	}
	return nil
}

func (s *Service) ensureNoLiveSubscribers(ctx context.Context, planID int64) error {
	count, err := s.subscriptions.CountLiveByPlanID(ctx, planID)
	if err != nil {
		return apperr.Internal("failed to count plan subscribers", err)
	}
	if count > 0 {
		return ErrPlanHasSubscribers
	}
	return nil
}
