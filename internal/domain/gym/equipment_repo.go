package gym

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"gymhub/internal/pkg/pagination"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*Equipment, error) {
	var e Equipment
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// ListByOwner returns the owner's equipment, optionally narrowed to one
// location.
func (r *EquipmentRepository) ListByOwner(ctx context.Context, ownerID int64, locationID *int64, params pagination.Params) ([]*Equipment, int64, error) {
	var equipment []*Equipment
	var total int64

	q := r.db.WithContext(ctx).
		Model(&Equipment{}).
		Where("is_deleted = ?", false).
		Where("location_id IN (?)", ownedLocationIDs(r.db, ownerID))
	if locationID != nil {
		q = q.Where("location_id = ?", *locationID)
	}
	if s := strings.ToLower(strings.TrimSpace(params.Search)); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+s+"%")
	}
	q = q.Order("name ASC")

	if params.Dropdown() {
		err := q.Find(&equipment).Error
		return equipment, int64(len(equipment)), err
	}

	countQuery := q.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit := params.Normalized()
	err := q.Limit(limit).Offset(params.Offset()).Find(&equipment).Error
	return equipment, total, err
}

func (r *EquipmentRepository) Update(ctx context.Context, e *Equipment) error {
	e.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EquipmentRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&Equipment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": true,
			"updated_at": time.Now(),
		}).Error
}
