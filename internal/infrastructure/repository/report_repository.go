package repository

import (
	"context"
	"time"

	domainRepo "github.com/sangkips/pharmacy-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// The raw SQL here is kept to the dialect subset shared by Postgres and
// SQLite (DATE(), LOWER/LIKE, integer-cents sums divided by 100.0) so the
// exact same queries run in production and under the in-memory test store.

func (r *reportRepository) BucketedTotals(ctx context.Context, start, end time.Time) ([]domainRepo.BucketedTotalResult, error) {
	var rows []struct {
		Date  string
		Total float64
		Count int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(timestamp) as date,
			COALESCE(SUM(total_price), 0) / 100.0 as total,
			COUNT(id) as count
		FROM sales
		WHERE timestamp >= ? AND timestamp <= ?
		GROUP BY DATE(timestamp)
		ORDER BY date ASC
	`, start, end).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.BucketedTotalResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.BucketedTotalResult{
			Date:  row.Date,
			Total: row.Total,
			Count: row.Count,
		})
	}
	return results, nil
}

func (r *reportRepository) BestSellers(ctx context.Context, limit int) ([]domainRepo.BestSellerResult, error) {
	var rows []struct {
		MedicineID   uint
		MedicineName string
		Price        float64
		TotalQty     int64
		TotalRevenue float64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			m.id as medicine_id,
			m.name as medicine_name,
			m.price / 100.0 as price,
			COALESCE(SUM(s.quantity), 0) as total_qty,
			COALESCE(SUM(s.total_price), 0) / 100.0 as total_revenue
		FROM sales s
		JOIN medicines m ON m.id = s.medicine_id
		GROUP BY m.id, m.name, m.price
		ORDER BY total_qty DESC, m.id ASC
		LIMIT ?
	`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.BestSellerResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.BestSellerResult{
			MedicineID:   row.MedicineID,
			MedicineName: row.MedicineName,
			Price:        row.Price,
			TotalQty:     row.TotalQty,
			TotalRevenue: row.TotalRevenue,
		})
	}
	return results, nil
}

func (r *reportRepository) ProfitTotals(ctx context.Context) (*domainRepo.ProfitTotals, error) {
	var row struct {
		RevenueCents int64
		GoodsCents   int64
	}

	// Goods value uses the frozen sale price, not the live medicine price,
	// so the derived cost is stable under later price edits. The 60% cost
	// ratio is applied by the reporting service.
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_price), 0) as revenue_cents,
			COALESCE(SUM(price_per_unit * quantity), 0) as goods_cents
		FROM sales
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &domainRepo.ProfitTotals{
		RevenueCents: row.RevenueCents,
		GoodsCents:   row.GoodsCents,
	}, nil
}

func (r *reportRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_price), 0) / 100.0 FROM sales
	`).Scan(&revenue).Error
	return revenue, err
}
