package limits

import (
	"context"
	"fmt"

	"gymhub/internal/domain/plan"
	"gymhub/internal/metrics"
	"gymhub/internal/pkg/apperr"
)

// Resource is a quota-counted entity kind.
type Resource string

const (
	ResourceGym       Resource = "gym"
	ResourceLocation  Resource = "location"
	ResourceMember    Resource = "member"
	ResourceEquipment Resource = "equipment"
)

// CheckOptions refine a quota check. LocationID scopes equipment counts
// to one location. ExcludingID leaves out the row being reassigned so an
// in-place update isn't double-counted against the destination quota.
type CheckOptions struct {
	LocationID  *int64
	ExcludingID *int64
}

// Result is the outcome of a quota check, returned to callers so the UI
// can render an upgrade prompt.
type Result struct {
	Exceeded bool  `json:"exceeded"`
	Current  int64 `json:"current"`
	Max      int64 `json:"max"`
}

// PlanSource yields the owner's current quota, nil when the owner has
// no live subscription. Implemented by the subscription service.
type PlanSource interface {
	LiveQuota(ctx context.Context, ownerID int64) (*plan.Quota, error)
}

// UsageCounter counts non-deleted resources scoped to an owner.
// Implemented by the gym repositories.
type UsageCounter interface {
	CountGyms(ctx context.Context, ownerID int64, excludingID *int64) (int64, error)
	CountLocations(ctx context.Context, ownerID int64, excludingID *int64) (int64, error)
	CountMembers(ctx context.Context, ownerID int64, excludingID *int64) (int64, error)
	CountEquipment(ctx context.Context, ownerID int64, locationID, excludingID *int64) (int64, error)
}

var ErrNoSubscription = apperr.Conflict("NO_ACTIVE_SUBSCRIPTION", "owner has no active subscription")

// Notifier pushes quota rejections to the owner's live event feed.
type Notifier interface {
	QuotaDenied(ownerID int64, resource string, current, max int64)
}

// Enforcer compares current usage against the owner's plan quota before
// any create or move. enforceWithoutPlan decides what happens when no
// live subscription exists: false keeps the legacy "unlimited" behavior,
// true denies creation.
type Enforcer struct {
	plans              PlanSource
	usage              UsageCounter
	enforceWithoutPlan bool
	notifier           Notifier
}

func NewEnforcer(plans PlanSource, usage UsageCounter, enforceWithoutPlan bool) *Enforcer {
	return &Enforcer{plans: plans, usage: usage, enforceWithoutPlan: enforceWithoutPlan}
}

// SetNotifier attaches the rejection event feed (optional).
func (e *Enforcer) SetNotifier(n Notifier) { e.notifier = n }

// Check returns the usage/quota comparison for one resource kind.
// Exceeded is current >= max.
func (e *Enforcer) Check(ctx context.Context, ownerID int64, resource Resource, opts CheckOptions) (Result, error) {
	quota, err := e.plans.LiveQuota(ctx, ownerID)
	if err != nil {
		return Result{}, apperr.Internal("failed to load owner quota", err)
	}
	if quota == nil {
		if e.enforceWithoutPlan {
			return Result{Exceeded: true}, ErrNoSubscription
		}
		return Result{}, nil
	}

	var current, max int64
	switch resource {
	case ResourceGym:
		max = quota.MaxGyms
		current, err = e.usage.CountGyms(ctx, ownerID, opts.ExcludingID)
	case ResourceLocation:
		max = quota.MaxLocations
		current, err = e.usage.CountLocations(ctx, ownerID, opts.ExcludingID)
	case ResourceMember:
		max = quota.MaxMembers
		current, err = e.usage.CountMembers(ctx, ownerID, opts.ExcludingID)
	case ResourceEquipment:
		max = quota.MaxEquipment
		current, err = e.usage.CountEquipment(ctx, ownerID, opts.LocationID, opts.ExcludingID)
	default:
		return Result{}, apperr.Validation("INVALID_RESOURCE", fmt.Sprintf("unknown resource type %q", resource))
	}
	if err != nil {
		return Result{}, apperr.Internal("failed to count resources", err)
	}

	return Result{Exceeded: current >= max, Current: current, Max: max}, nil
}

// Ensure aborts the caller's write with a 409 carrying current/max when
// the quota is reached.
func (e *Enforcer) Ensure(ctx context.Context, ownerID int64, resource Resource, opts CheckOptions) error {
	result, err := e.Check(ctx, ownerID, resource, opts)
	if err != nil {
		return err
	}
	if result.Exceeded {
		metrics.RecordQuotaRejection(string(resource))
		if e.notifier != nil {
			e.notifier.QuotaDenied(ownerID, string(resource), result.Current, result.Max)
		}
		return apperr.Conflict("QUOTA_EXCEEDED",
			fmt.Sprintf("%s limit reached for the current plan", resource)).
			WithDetails(result)
	}
	return nil
}
