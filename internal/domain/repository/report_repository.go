package repository

import (
	"context"
	"time"
)

// BucketedTotalResult is one calendar day's sales aggregate
type BucketedTotalResult struct {
	Date  string  // YYYY-MM-DD
	Total float64 // decimal
	Count int64
}

// BestSellerResult represents a medicine's sales performance
type BestSellerResult struct {
	MedicineID   uint
	MedicineName string
	Price        float64 // current price, decimal
	TotalQty     int64
	TotalRevenue float64 // decimal
}

// ProfitTotals carries the raw sums the profit summary is derived from.
// GoodsCents is the frozen price x quantity sum before the cost ratio is
// applied.
type ProfitTotals struct {
	RevenueCents int64
	GoodsCents   int64
}

// ReportRepository defines interface for reporting/aggregation queries
type ReportRepository interface {
	// BucketedTotals groups sales by calendar date inside [start, end],
	// ascending by date. Days without sales are omitted.
	BucketedTotals(ctx context.Context, start, end time.Time) ([]BucketedTotalResult, error)

	// BestSellers ranks medicines by total quantity sold, descending, ties
	// broken by ascending medicine id.
	BestSellers(ctx context.Context, limit int) ([]BestSellerResult, error)

	// ProfitTotals sums revenue (frozen totals) and goods value
	// (frozen price x quantity) over all sales.
	ProfitTotals(ctx context.Context) (*ProfitTotals, error)

	// TotalRevenue sums total_price over all sales, in decimal.
	TotalRevenue(ctx context.Context) (float64, error)
}
