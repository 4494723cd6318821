package plan

// CreateRequest is sent by a SUPER_ADMIN to add a billing tier.
// Quotas are absolute counts; negative values are rejected up front.
type CreateRequest struct {
	Name         string  `json:"name" binding:"required"`
	MonthlyPrice float64 `json:"monthly_price" binding:"min=0"`
	YearlyPrice  float64 `json:"yearly_price" binding:"min=0"`
	MaxGyms      int64   `json:"max_gyms" binding:"min=0"`
	MaxLocations int64   `json:"max_locations" binding:"min=0"`
	MaxMembers   int64   `json:"max_members" binding:"min=0"`
	MaxEquipment int64   `json:"max_equipment" binding:"min=0"`
}

type ListResponse struct {
	Items []*Plan `json:"items"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
	Pages int     `json:"page_count"`
}
