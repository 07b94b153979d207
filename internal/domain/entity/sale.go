package entity

import (
	"encoding/json"
	"time"
)

// Sale records a point-of-sale transaction. Price and total are frozen in
// cents at sale time; rows are immutable once created and are removed only
// by retention resets.
type Sale struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MedicineID   uint      `gorm:"not null;index" json:"medicine_id"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	PricePerUnit int64     `gorm:"not null" json:"-"` // Stored in cents
	TotalPrice   int64     `gorm:"not null" json:"-"` // Stored in cents
	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"` // Local wall clock
	CustomerID   *uint     `gorm:"index" json:"customer_id,omitempty"`

	// Relationships
	Medicine Medicine  `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetPricePerUnitDecimal returns the frozen unit price as a decimal
func (s *Sale) GetPricePerUnitDecimal() float64 {
	return float64(s.PricePerUnit) / 100
}

// GetTotalPriceDecimal returns the frozen total as a decimal
func (s *Sale) GetTotalPriceDecimal() float64 {
	return float64(s.TotalPrice) / 100
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		PricePerUnit float64 `json:"price_per_unit"`
		TotalPrice   float64 `json:"total_price"`
	}{
		Alias:        Alias(s),
		PricePerUnit: s.GetPricePerUnitDecimal(),
		TotalPrice:   s.GetTotalPriceDecimal(),
	})
}
