package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}
