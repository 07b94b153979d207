package entity

import (
	"encoding/json"
	"math"
	"time"
)

// ExpiryStatus classifies a medicine's expiry relative to a reference day
type ExpiryStatus int

const (
	ExpiryNormal ExpiryStatus = iota
	ExpiryNear
	ExpiryExpired
)

// NearExpiryWindowDays is the default look-ahead window for expiry warnings
const NearExpiryWindowDays = 30

func (s ExpiryStatus) String() string {
	switch s {
	case ExpiryExpired:
		return "expired"
	case ExpiryNear:
		return "near_expiry"
	default:
		return "normal"
	}
}

// Medicine represents a medicine in the pharmacy inventory
type Medicine struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:120;not null" json:"name"`
	Brand       *string    `gorm:"size:120" json:"brand,omitempty"`
	CostPrice   int64      `gorm:"default:0" json:"-"` // Stored in cents
	Price       int64      `gorm:"not null" json:"-"`  // Stored in cents
	Quantity    int        `gorm:"not null;default:0" json:"quantity"`
	ExpiryDate  *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`
	Category    *string    `gorm:"size:80" json:"category,omitempty"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Medicine model
func (Medicine) TableName() string {
	return "medicines"
}

// CentsFromDecimal converts a decimal money amount to integer cents,
// rounding half-up. All price arithmetic downstream is exact integer math.
func CentsFromDecimal(v float64) int64 {
	return int64(math.Round(v * 100))
}

// GetPriceDecimal returns the selling price as a decimal (for display)
func (m *Medicine) GetPriceDecimal() float64 {
	return float64(m.Price) / 100
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (m *Medicine) GetCostPriceDecimal() float64 {
	return float64(m.CostPrice) / 100
}

// SetPriceFromDecimal sets the selling price from a decimal value
func (m *Medicine) SetPriceFromDecimal(price float64) {
	m.Price = CentsFromDecimal(price)
}

// SetCostPriceFromDecimal sets the cost price from a decimal value
func (m *Medicine) SetCostPriceFromDecimal(price float64) {
	m.CostPrice = CentsFromDecimal(price)
}

// IsExpired reports whether the expiry date is strictly before today.
func (m *Medicine) IsExpired(today time.Time) bool {
	if m.ExpiryDate == nil {
		return false
	}
	return dateOf(*m.ExpiryDate).Before(dateOf(today))
}

// NearExpiry reports whether the expiry date falls inside
// [today, today+windowDays].
func (m *Medicine) NearExpiry(today time.Time, windowDays int) bool {
	if m.ExpiryDate == nil {
		return false
	}
	exp := dateOf(*m.ExpiryDate)
	start := dateOf(today)
	end := start.AddDate(0, 0, windowDays)
	return !exp.Before(start) && !exp.After(end)
}

// ClassifyExpiry buckets the medicine into expired / near-expiry / normal.
// A medicine expiring exactly today counts as expired.
func (m *Medicine) ClassifyExpiry(today time.Time, windowDays int) ExpiryStatus {
	if m.ExpiryDate == nil {
		return ExpiryNormal
	}
	exp := dateOf(*m.ExpiryDate)
	day := dateOf(today)
	if !exp.After(day) {
		return ExpiryExpired
	}
	if !exp.After(day.AddDate(0, 0, windowDays)) {
		return ExpiryNear
	}
	return ExpiryNormal
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MedicineJSON is a helper struct for JSON marshaling with decimal prices
type MedicineJSON struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Brand       *string    `json:"brand,omitempty"`
	CostPrice   float64    `json:"cost_price"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	ExpiryDate  *string    `json:"expiry_date,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MarshalJSON converts Medicine to JSON with decimal prices and a plain date
func (m Medicine) MarshalJSON() ([]byte, error) {
	var expiry *string
	if m.ExpiryDate != nil {
		s := m.ExpiryDate.Format("2006-01-02")
		expiry = &s
	}
	return json.Marshal(MedicineJSON{
		ID:          m.ID,
		Name:        m.Name,
		Brand:       m.Brand,
		CostPrice:   m.GetCostPriceDecimal(),
		Price:       m.GetPriceDecimal(),
		Quantity:    m.Quantity,
		ExpiryDate:  expiry,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	})
}
