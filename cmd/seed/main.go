// Seeds a local database with plans, a super admin, and a demo owner
// with a small gym estate. Intended for development only.
package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gymhub/internal/database"
	"gymhub/internal/domain/auth"
	"gymhub/internal/domain/gym"
	"gymhub/internal/domain/plan"
	"gymhub/internal/domain/subscription"
)

func main() {
	db, err := database.Connect("gymhub.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup in dependency order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM member_subscriptions")
	db.Exec("DELETE FROM owner_subscriptions")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM members")
	db.Exec("DELETE FROM locations")
	db.Exec("DELETE FROM gyms")
	db.Exec("DELETE FROM plans")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := auth.User{
		Email:        "admin@gymhub.local",
		PasswordHash: string(adminHash),
		Name:         "Platform Admin",
		Role:         auth.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("create admin failed:", err)
	}

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := auth.User{
		Email:        "owner@gymhub.local",
		PasswordHash: string(ownerHash),
		Name:         "Demo Owner",
		Phone:        "+7 700 000 0001",
		Role:         auth.RoleGymOwner,
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Fatal("create owner failed:", err)
	}

	// ================== PLANS ==================
	log.Println("Creating plans...")

	plans := []plan.Plan{
		{
			Name:         "Starter",
			MonthlyPrice: 9900,
			YearlyPrice:  99000,
			MaxGyms:      1,
			MaxLocations: 2,
			MaxMembers:   100,
			MaxEquipment: 50,
			IsActive:     true,
		},
		{
			Name:         "Growth",
			MonthlyPrice: 29900,
			YearlyPrice:  299000,
			MaxGyms:      3,
			MaxLocations: 10,
			MaxMembers:   1000,
			MaxEquipment: 300,
			IsActive:     true,
		},
		{
			Name:         "Enterprise",
			MonthlyPrice: 99900,
			YearlyPrice:  999000,
			MaxGyms:      20,
			MaxLocations: 100,
			MaxMembers:   20000,
			MaxEquipment: 5000,
			IsActive:     true,
		},
	}
	for i := range plans {
		if err := db.Create(&plans[i]).Error; err != nil {
			log.Fatal("create plan failed:", err)
		}
	}

	// ================== SUBSCRIPTION ==================
	log.Println("Subscribing demo owner to Starter (monthly)...")

	start := time.Now().UTC().Truncate(24 * time.Hour)
	end, err := subscription.EndDate(start, subscription.BillingMonthly)
	if err != nil {
		log.Fatal("end date failed:", err)
	}
	sub := subscription.OwnerSubscription{
		ID:           uuid.NewString(),
		OwnerID:      owner.ID,
		PlanID:       &plans[0].ID,
		BillingModel: subscription.BillingMonthly,
		StartDate:    start,
		EndDate:      end,
		IsActive:     true,
	}
	if err := db.Create(&sub).Error; err != nil {
		log.Fatal("create subscription failed:", err)
	}

	// ================== GYM ESTATE ==================
	log.Println("Creating demo gym...")

	g := gym.Gym{
		OwnerID: owner.ID,
		Name:    "Iron Temple",
		Address: "12 Abay Ave",
		City:    "Almaty",
	}
	if err := db.Create(&g).Error; err != nil {
		log.Fatal("create gym failed:", err)
	}

	l := gym.Location{
		GymID:   g.ID,
		Name:    "Main Floor",
		Address: "12 Abay Ave, 1st floor",
	}
	if err := db.Create(&l).Error; err != nil {
		log.Fatal("create location failed:", err)
	}

	equipment := []gym.Equipment{
		{LocationID: l.ID, Name: "Treadmill", Category: "cardio", Quantity: 6},
		{LocationID: l.ID, Name: "Squat Rack", Category: "strength", Quantity: 4},
		{LocationID: l.ID, Name: "Rowing Machine", Category: "cardio", Quantity: 3},
	}
	for i := range equipment {
		if err := db.Create(&equipment[i]).Error; err != nil {
			log.Fatal("create equipment failed:", err)
		}
	}

	members := []gym.Member{
		{GymID: g.ID, Name: "Aruzhan S.", Email: "aruzhan@example.com", Phone: "+7 700 000 0002"},
		{GymID: g.ID, Name: "Daniyar K.", Email: "daniyar@example.com"},
	}
	for i := range members {
		if err := db.Create(&members[i]).Error; err != nil {
			log.Fatal("create member failed:", err)
		}
	}

	log.Println("Seed completed.")
	log.Println("  admin: admin@gymhub.local / admin123")
	log.Println("  owner: owner@gymhub.local / owner123")
}
