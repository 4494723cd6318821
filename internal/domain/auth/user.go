package auth

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleGymOwner   Role = "GYM_OWNER"
	RoleMember     Role = "MEMBER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleGymOwner, RoleMember:
		return true
	}
	return false
}

type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	Role         Role      `gorm:"column:role" json:"role"`
	IsDeleted    bool      `gorm:"column:is_deleted" json:"is_deleted"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
