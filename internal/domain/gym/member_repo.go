package gym

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"gymhub/internal/pkg/pagination"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) ListByOwner(ctx context.Context, ownerID int64, gymID *int64, params pagination.Params) ([]*Member, int64, error) {
	var members []*Member
	var total int64

	q := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("is_deleted = ?", false).
		Where("gym_id IN (?)", ownedGymIDs(r.db, ownerID))
	if gymID != nil {
		q = q.Where("gym_id = ?", *gymID)
	}
	if s := strings.ToLower(strings.TrimSpace(params.Search)); s != "" {
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	q = q.Order("name ASC")

	if params.Dropdown() {
		err := q.Find(&members).Error
		return members, int64(len(members)), err
	}

	countQuery := q.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit := params.Normalized()
	err := q.Limit(limit).Offset(params.Offset()).Find(&members).Error
	return members, total, err
}

func (r *MemberRepository) Update(ctx context.Context, m *Member) error {
	m.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(m).Error
}

// MemberExists reports whether a non-deleted member row exists.
func (r *MemberRepository) MemberExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}

// MemberOwnedBy reports whether the member belongs to one of the
// owner's gyms. Satisfies subscription.MemberDirectory.
func (r *MemberRepository) MemberOwnedBy(ctx context.Context, memberID, ownerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("id = ? AND is_deleted = ?", memberID, false).
		Where("gym_id IN (?)", ownedGymIDs(r.db, ownerID)).
		Count(&count).Error
	return count > 0, err
}

// SoftDeleteTx marks the member deleted and, when a login account is
// linked, soft-deletes the user row in the same transaction.
func (r *MemberRepository) SoftDeleteTx(tx *gorm.DB, m *Member) error {
	now := time.Now()
	if err := tx.
		Model(&Member{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"is_deleted": true,
			"updated_at": now,
		}).Error; err != nil {
		return err
	}

	if m.UserID != nil {
		return tx.
			Table("users").
			Where("id = ?", *m.UserID).
			Updates(map[string]any{
				"is_deleted": true,
				"updated_at": now,
			}).Error
	}
	return nil
}
