package request

// CreateSaleRequest represents a sale recording request
type CreateSaleRequest struct {
	MedicineID uint  `json:"medicine_id" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required"`
	CustomerID *uint `json:"customer_id"`
}

// SaleSearchRequest represents sale search parameters. Dates use the
// YYYY-MM-DD format; unparsable values are ignored rather than rejected.
type SaleSearchRequest struct {
	Query    string `form:"q"`
	FromDate string `form:"from_date"`
	ToDate   string `form:"to_date"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// ResetSalesRequest represents a sales retention reset request
type ResetSalesRequest struct {
	Period  string `json:"period" binding:"required"`
	Confirm bool   `json:"confirm"`
}
