package gym

import "time"

// Gym is owned directly by a GYM_OWNER user. Locations, equipment and
// members hang off it, so the ownership chain for quota counting is
// gym -> location -> equipment and gym -> member.
type Gym struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	OwnerID   int64     `gorm:"column:owner_id;index" json:"owner_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Address   string    `gorm:"column:address" json:"address,omitempty"`
	City      string    `gorm:"column:city" json:"city,omitempty"`
	IsDeleted bool      `gorm:"column:is_deleted" json:"is_deleted"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Gym) TableName() string { return "gyms" }

type Location struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	GymID     int64     `gorm:"column:gym_id;index" json:"gym_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Address   string    `gorm:"column:address" json:"address,omitempty"`
	IsDeleted bool      `gorm:"column:is_deleted" json:"is_deleted"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Location) TableName() string { return "locations" }

type Equipment struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	LocationID int64     `gorm:"column:location_id;index" json:"location_id"`
	Name       string    `gorm:"column:name" json:"name"`
	Category   string    `gorm:"column:category" json:"category,omitempty"`
	Quantity   int64     `gorm:"column:quantity" json:"quantity"`
	IsDeleted  bool      `gorm:"column:is_deleted" json:"is_deleted"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }

// Member belongs to a gym; UserID links the optional login account,
// which is soft-deleted together with the member.
type Member struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	GymID     int64     `gorm:"column:gym_id;index" json:"gym_id"`
	UserID    *int64    `gorm:"column:user_id" json:"user_id,omitempty"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email" json:"email,omitempty"`
	Phone     string    `gorm:"column:phone" json:"phone,omitempty"`
	IsDeleted bool      `gorm:"column:is_deleted" json:"is_deleted"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Member) TableName() string { return "members" }
