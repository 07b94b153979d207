package request

// CreateMedicineRequest represents a medicine creation request
type CreateMedicineRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Brand       *string `json:"brand" binding:"omitempty,max=255"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CostPrice   float64 `json:"cost_price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	ExpiryDate  *string `json:"expiry_date" binding:"omitempty"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// UpdateMedicineRequest represents a medicine update request; nil fields
// keep the current values
type UpdateMedicineRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Brand       *string  `json:"brand" binding:"omitempty,max=255"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	CostPrice   *float64 `json:"cost_price" binding:"omitempty,min=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=0"`
	ExpiryDate  *string  `json:"expiry_date" binding:"omitempty"`
	ClearExpiry bool     `json:"clear_expiry"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Description *string  `json:"description"`
}

// MedicineFilterRequest represents medicine list filter parameters
type MedicineFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}
