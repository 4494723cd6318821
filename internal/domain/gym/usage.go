package gym

import (
	"context"

	"gorm.io/gorm"
)

// Usage implements limits.UsageCounter: non-deleted resource counts
// scoped to an owner, with optional exclusion of the row being moved.
type Usage struct {
	db *gorm.DB
}

func NewUsage(db *gorm.DB) *Usage {
	return &Usage{db: db}
}

func (u *Usage) CountGyms(ctx context.Context, ownerID int64, excludingID *int64) (int64, error) {
	q := u.db.WithContext(ctx).
		Model(&Gym{}).
		Where("owner_id = ? AND is_deleted = ?", ownerID, false)
	if excludingID != nil {
		q = q.Where("id <> ?", *excludingID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (u *Usage) CountLocations(ctx context.Context, ownerID int64, excludingID *int64) (int64, error) {
	q := u.db.WithContext(ctx).
		Model(&Location{}).
		Where("is_deleted = ?", false).
		Where("gym_id IN (?)", ownedGymIDs(u.db, ownerID))
	if excludingID != nil {
		q = q.Where("id <> ?", *excludingID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (u *Usage) CountMembers(ctx context.Context, ownerID int64, excludingID *int64) (int64, error) {
	q := u.db.WithContext(ctx).
		Model(&Member{}).
		Where("is_deleted = ?", false).
		Where("gym_id IN (?)", ownedGymIDs(u.db, ownerID))
	if excludingID != nil {
		q = q.Where("id <> ?", *excludingID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

// CountEquipment counts per owner, or per location when locationID is
// supplied (the per-location equipment quota).
func (u *Usage) CountEquipment(ctx context.Context, ownerID int64, locationID, excludingID *int64) (int64, error) {
	q := u.db.WithContext(ctx).
		Model(&Equipment{}).
		Where("is_deleted = ?", false)
	if locationID != nil {
		q = q.Where("location_id = ?", *locationID)
	} else {
		q = q.Where("location_id IN (?)", ownedLocationIDs(u.db, ownerID))
	}
	if excludingID != nil {
		q = q.Where("id <> ?", *excludingID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}
