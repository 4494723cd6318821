package subscription

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gymhub/internal/pkg/pagination"
)

type Repository interface {
	// WithTx rebinds the repository to a transaction handle so the
	// service can compose multi-step operations atomically.
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, sub *OwnerSubscription) error
	GetByID(ctx context.Context, id string) (*OwnerSubscription, error)
	GetLiveByOwnerID(ctx context.Context, ownerID int64) (*OwnerSubscription, error)
	GetLatestByOwnerID(ctx context.Context, ownerID int64) (*OwnerSubscription, error)
	List(ctx context.Context, ownerID int64, params pagination.Params) ([]*OwnerSubscription, int64, error)
	DeactivateAllByOwner(ctx context.Context, ownerID int64) error
	SetActive(ctx context.Context, id string, active bool) error
	SoftDelete(ctx context.Context, id string) error
	CountLiveByPlanID(ctx context.Context, planID int64) (int64, error)
	ExpireDueOwners(ctx context.Context, now time.Time) ([]*OwnerSubscription, error)

	CreateMember(ctx context.Context, sub *MemberSubscription) error
	GetLiveByMemberID(ctx context.Context, memberID int64) (*MemberSubscription, error)
	DeactivateAllByMember(ctx context.Context, memberID int64) error
	ExpireDueMembers(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, sub *OwnerSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*OwnerSubscription, error) {
	var sub OwnerSubscription
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) GetLiveByOwnerID(ctx context.Context, ownerID int64) (*OwnerSubscription, error) {
	var sub OwnerSubscription
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ? AND is_expired = ? AND is_deleted = ?",
			ownerID, true, false, false).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) GetLatestByOwnerID(ctx context.Context, ownerID int64) (*OwnerSubscription, error) {
	var sub OwnerSubscription
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_deleted = ?", ownerID, false).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) List(ctx context.Context, ownerID int64, params pagination.Params) ([]*OwnerSubscription, int64, error) {
	var subs []*OwnerSubscription
	var total int64

	q := r.db.WithContext(ctx).
		Model(&OwnerSubscription{}).
		Where("is_deleted = ?", false)
	if ownerID != 0 {
		q = q.Where("owner_id = ?", ownerID)
	}
	q = q.Order("created_at DESC")

	if params.Dropdown() {
		err := q.Find(&subs).Error
		return subs, int64(len(subs)), err
	}

	countQuery := q.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit := params.Normalized()
	err := q.Limit(limit).Offset(params.Offset()).Find(&subs).Error
	return subs, total, err
}

func (r *repository) DeactivateAllByOwner(ctx context.Context, ownerID int64) error {
	return r.db.WithContext(ctx).
		Model(&OwnerSubscription{}).
		Where("owner_id = ? AND is_active = ? AND is_deleted = ?", ownerID, true, false).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&OwnerSubscription{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now(),
		}).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&OwnerSubscription{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": true,
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *repository) CountLiveByPlanID(ctx context.Context, planID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OwnerSubscription{}).
		Where("plan_id = ? AND is_active = ? AND is_expired = ? AND is_deleted = ?",
			planID, true, false, false).
		Count(&count).Error
	return count, err
}

// ExpireDueOwners flips every overdue owner subscription and returns the
// flipped rows so callers can notify the affected owners.
func (r *repository) ExpireDueOwners(ctx context.Context, now time.Time) ([]*OwnerSubscription, error) {
	var due []*OwnerSubscription

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("end_date < ? AND is_expired = ? AND is_deleted = ?", now, false, false).
			Find(&due).Error; err != nil {
			return err
		}
		if len(due) == 0 {
			return nil
		}

		ids := make([]string, 0, len(due))
		for _, sub := range due {
			ids = append(ids, sub.ID)
			sub.IsExpired = true
			sub.IsActive = false
		}
		return tx.
			Model(&OwnerSubscription{}).
			Where("id IN ?", ids).
			Updates(map[string]any{
				"is_expired": true,
				"is_active":  false,
				"updated_at": now,
			}).Error
	})
	return due, err
}

func (r *repository) CreateMember(ctx context.Context, sub *MemberSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repository) GetLiveByMemberID(ctx context.Context, memberID int64) (*MemberSubscription, error) {
	var sub MemberSubscription
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND is_active = ? AND is_expired = ? AND is_deleted = ?",
			memberID, true, false, false).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) DeactivateAllByMember(ctx context.Context, memberID int64) error {
	return r.db.WithContext(ctx).
		Model(&MemberSubscription{}).
		Where("member_id = ? AND is_active = ? AND is_deleted = ?", memberID, true, false).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *repository) ExpireDueMembers(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&MemberSubscription{}).
		Where("end_date < ? AND is_expired = ? AND is_deleted = ?", now, false, false).
		Updates(map[string]any{
			"is_expired": true,
			"is_active":  false,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
