package plan

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"gymhub/internal/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, id int64) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	List(ctx context.Context, params pagination.Params) ([]*Plan, int64, error)
	SetActive(ctx context.Context, id int64, active bool) error
	SoftDelete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Plan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Plan, error) {
	var p Plan
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Plan, error) {
	var p Plan
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ? AND is_deleted = ?", strings.ToLower(name), false).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns plans in paginated/search mode, or the full non-deleted
// set in dropdown mode. A numeric search term also matches either price
// exactly.
func (r *repository) List(ctx context.Context, params pagination.Params) ([]*Plan, int64, error) {
	var plans []*Plan
	var total int64

	q := r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("is_deleted = ?", false)

	if s := strings.ToLower(strings.TrimSpace(params.Search)); s != "" {
		if price, err := strconv.ParseFloat(s, 64); err == nil {
			q = q.Where("LOWER(name) LIKE ? OR monthly_price = ? OR yearly_price = ?",
				"%"+s+"%", price, price)
		} else {
			q = q.Where("LOWER(name) LIKE ?", "%"+s+"%")
		}
	}

	q = q.Order("monthly_price ASC")

	if params.Dropdown() {
		err := q.Find(&plans).Error
		return plans, int64(len(plans)), err
	}

	// Clone before counting so Count doesn't clobber the query
	countQuery := q.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit := params.Normalized()
	err := q.Limit(limit).Offset(params.Offset()).Find(&plans).Error
	return plans, total, err
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now(),
		}).Error
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": true,
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}
