package plan

import "time"

// Plan is a billing tier for gym owners: prices plus per-resource quotas.
// Quotas are immutable once a live subscription references the plan;
// only the active flag and soft delete may change, and both are blocked
// while live subscriptions exist.
type Plan struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	MonthlyPrice float64   `gorm:"column:monthly_price" json:"monthly_price"`
	YearlyPrice  float64   `gorm:"column:yearly_price" json:"yearly_price"`
	MaxGyms      int64     `gorm:"column:max_gyms" json:"max_gyms"`
	MaxLocations int64     `gorm:"column:max_locations" json:"max_locations"`
	MaxMembers   int64     `gorm:"column:max_members" json:"max_members"`
	MaxEquipment int64     `gorm:"column:max_equipment" json:"max_equipment"`
	IsActive     bool      `gorm:"column:is_active" json:"is_active"`
	IsDeleted    bool      `gorm:"column:is_deleted" json:"is_deleted"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Plan) TableName() string { return "plans" }

// Quota is the per-resource limit snapshot copied from a plan at read
// time (never cached on the subscription row).
type Quota struct {
	MaxGyms      int64 `json:"max_gyms"`
	MaxLocations int64 `json:"max_locations"`
	MaxMembers   int64 `json:"max_members"`
	MaxEquipment int64 `json:"max_equipment"`
}

func (p *Plan) Quota() Quota {
	return Quota{
		MaxGyms:      p.MaxGyms,
		MaxLocations: p.MaxLocations,
		MaxMembers:   p.MaxMembers,
		MaxEquipment: p.MaxEquipment,
	}
}
