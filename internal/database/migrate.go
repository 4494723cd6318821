package database

import (
	"gorm.io/gorm"

	"gymhub/internal/domain/auth"
	"gymhub/internal/domain/gym"
	"gymhub/internal/domain/payment"
	"gymhub/internal/domain/plan"
	"gymhub/internal/domain/subscription"
)

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&plan.Plan{},
		&subscription.OwnerSubscription{},
		&subscription.MemberSubscription{},
		&payment.Payment{},
		&gym.Gym{},
		&gym.Location{},
		&gym.Equipment{},
		&gym.Member{},
	)
}
