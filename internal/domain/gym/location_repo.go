package gym

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"gymhub/internal/pkg/pagination"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, l *Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*Location, error) {
	var l Location
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// ListByOwner returns the owner's locations across all gyms.
func (r *LocationRepository) ListByOwner(ctx context.Context, ownerID int64, params pagination.Params) ([]*Location, int64, error) {
	var locations []*Location
	var total int64

	q := r.db.WithContext(ctx).
		Model(&Location{}).
		Where("is_deleted = ?", false).
		Where("gym_id IN (?)", ownedGymIDs(r.db, ownerID))
	if s := strings.ToLower(strings.TrimSpace(params.Search)); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+s+"%")
	}
	q = q.Order("name ASC")

	if params.Dropdown() {
		err := q.Find(&locations).Error
		return locations, int64(len(locations)), err
	}

	countQuery := q.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit := params.Normalized()
	err := q.Limit(limit).Offset(params.Offset()).Find(&locations).Error
	return locations, total, err
}

func (r *LocationRepository) Update(ctx context.Context, l *Location) error {
	l.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LocationRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&Location{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": true,
			"updated_at": time.Now(),
		}).Error
}

func ownedLocationIDs(db *gorm.DB, ownerID int64) *gorm.DB {
	return db.Model(&Location{}).
		Select("id").
		Where("is_deleted = ?", false).
		Where("gym_id IN (?)", ownedGymIDs(db, ownerID))
}
