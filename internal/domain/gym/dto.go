package gym

type CreateGymRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// UpdateGymRequest changes gym fields; OwnerID is honored only for
// SUPER_ADMIN callers and triggers a quota check against the new owner.
type UpdateGymRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	OwnerID *int64  `json:"owner_id"`
}

type CreateLocationRequest struct {
	GymID   int64  `json:"gym_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type UpdateLocationRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	GymID   *int64  `json:"gym_id"`
}

type CreateEquipmentRequest struct {
	LocationID int64  `json:"location_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category"`
	Quantity   int64  `json:"quantity" binding:"min=0"`
}

type UpdateEquipmentRequest struct {
	Name       *string `json:"name"`
	Category   *string `json:"category"`
	Quantity   *int64  `json:"quantity"`
	LocationID *int64  `json:"location_id"`
}

type CreateMemberRequest struct {
	GymID  int64  `json:"gym_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	UserID *int64 `json:"user_id"`
}

type UpdateMemberRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	GymID *int64  `json:"gym_id"`
}
