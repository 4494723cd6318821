package gym

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"gymhub/internal/pkg/pagination"
)

type GymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) *GymRepository {
	return &GymRepository{db: db}
}

func (r *GymRepository) Create(ctx context.Context, g *Gym) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GymRepository) GetByID(ctx context.Context, id int64) (*Gym, error) {
	var g Gym
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

// List returns gyms scoped to ownerID (0 = all owners, admin view).
func (r *GymRepository) List(ctx context.Context, ownerID int64, params pagination.Params) ([]*Gym, int64, error) {
	var gyms []*Gym
	var total int64

	q := r.db.WithContext(ctx).
		Model(&Gym{}).
		Where("is_deleted = ?", false)
	if ownerID != 0 {
		q = q.Where("owner_id = ?", ownerID)
	}
	if s := strings.ToLower(strings.TrimSpace(params.Search)); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+s+"%")
	}
	q = q.Order("name ASC")

	if params.Dropdown() {
		err := q.Find(&gyms).Error
		return gyms, int64(len(gyms)), err
	}

	countQuery := q.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit := params.Normalized()
	err := q.Limit(limit).Offset(params.Offset()).Find(&gyms).Error
	return gyms, total, err
}

func (r *GymRepository) Update(ctx context.Context, g *Gym) error {
	g.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GymRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&Gym{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": true,
			"updated_at": time.Now(),
		}).Error
}

// ownedGymIDs is the subquery used across the package to scope child
// resources to an owner (subqueries instead of JOINs for SQLite
// compatibility).
func ownedGymIDs(db *gorm.DB, ownerID int64) *gorm.DB {
	return db.Model(&Gym{}).
		Select("id").
		Where("owner_id = ? AND is_deleted = ?", ownerID, false)
}
