package service

import (
	"context"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/sangkips/pharmacy-api/pkg/pagination"
)

// ReportService provides read-only sales analytics. Each report method runs
// its own queries; numbers across methods are point-in-time snapshots, not a
// single consistent read.
type ReportService struct {
	saleRepo     repository.SaleRepository
	medicineRepo repository.MedicineRepository
	customerRepo repository.CustomerRepository
	reportRepo   repository.ReportRepository
	now          func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	saleRepo repository.SaleRepository,
	medicineRepo repository.MedicineRepository,
	customerRepo repository.CustomerRepository,
	reportRepo repository.ReportRepository,
) *ReportService {
	return &ReportService{
		saleRepo:     saleRepo,
		medicineRepo: medicineRepo,
		customerRepo: customerRepo,
		reportRepo:   reportRepo,
		now:          time.Now,
	}
}

// WithClock overrides the service clock for deterministic report windows
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// DailyReport lists one day's sales newest first along with the day's total
type DailyReport struct {
	Date  string        `json:"date"`
	Sales []entity.Sale `json:"sales"`
	Total float64       `json:"total"`
}

// DailyTotal reports sales within [midnight, 23:59:59] of the given day
func (s *ReportService) DailyTotal(ctx context.Context, day time.Time) (*DailyReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	sales, err := s.saleRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var totalCents int64
	for _, sale := range sales {
		totalCents += sale.TotalPrice
	}

	return &DailyReport{
		Date:  start.Format("2006-01-02"),
		Sales: sales,
		Total: float64(totalCents) / 100,
	}, nil
}

// BucketedTotals groups sales by calendar date inside [start, end] ascending.
// Days without sales are omitted rather than zero-filled.
func (s *ReportService) BucketedTotals(ctx context.Context, start, end time.Time) ([]repository.BucketedTotalResult, error) {
	return s.reportRepo.BucketedTotals(ctx, start, end)
}

// BestSellers ranks medicines by total quantity sold
func (s *ReportService) BestSellers(ctx context.Context, limit int) ([]repository.BestSellerResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.reportRepo.BestSellers(ctx, limit)
}

// ProfitSummary is the all-time revenue/cost/profit overview. Cost is the
// fixed 60%-of-price heuristic applied to the frozen sale price.
type ProfitSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	TotalProfit  float64 `json:"total_profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

// CostRatio is the assumed cost share of the selling price (40% markup)
const CostRatio = 0.6

func (s *ReportService) ProfitSummary(ctx context.Context) (*ProfitSummary, error) {
	totals, err := s.reportRepo.ProfitTotals(ctx)
	if err != nil {
		return nil, err
	}

	revenue := float64(totals.RevenueCents) / 100
	cost := float64(totals.GoodsCents) / 100 * CostRatio
	profit := revenue - cost

	margin := 0.0
	if revenue > 0 {
		margin = profit / revenue * 100
	}

	return &ProfitSummary{
		TotalRevenue: revenue,
		TotalCost:    cost,
		TotalProfit:  profit,
		ProfitMargin: margin,
	}, nil
}

// SaleSearchInput carries already-parsed search filters; unparsable date
// bounds are dropped at the boundary and arrive here as nil
type SaleSearchInput struct {
	Query      string
	FromDate   *time.Time
	ToDate     *time.Time
	Pagination *pagination.PaginationParams
}

// SaleSearchResult is one page of matches plus the filtered-set total
type SaleSearchResult struct {
	Result   *pagination.PaginatedResult[entity.Sale] `json:"result"`
	TotalAll float64                                  `json:"total_all"`
}

// SearchSales filters by exact sale id when the query is all digits,
// otherwise by medicine or customer name substring, within the inclusive
// date range. The returned total covers the entire filtered set.
func (s *ReportService) SearchSales(ctx context.Context, input *SaleSearchInput) (*SaleSearchResult, error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	input.Pagination.Validate()

	params := &repository.SaleSearchParams{
		Pagination: input.Pagination,
		Query:      input.Query,
		StartDate:  input.FromDate,
	}
	if input.ToDate != nil {
		// To-date is inclusive: extend to the end of that day
		td := *input.ToDate
		end := time.Date(td.Year(), td.Month(), td.Day(), 23, 59, 59, 0, td.Location())
		params.EndDate = &end
	}

	sales, total, sumCents, err := s.saleRepo.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return &SaleSearchResult{
		Result:   pagination.NewPaginatedResult(sales, pag),
		TotalAll: float64(sumCents) / 100,
	}, nil
}

// ExportSales returns the entire filtered set for spreadsheet export,
// applying the same filters as SearchSales
func (s *ReportService) ExportSales(ctx context.Context, input *SaleSearchInput) ([]entity.Sale, error) {
	params := &repository.SaleSearchParams{
		Query:     input.Query,
		StartDate: input.FromDate,
	}
	if input.ToDate != nil {
		td := *input.ToDate
		end := time.Date(td.Year(), td.Month(), td.Day(), 23, 59, 59, 0, td.Location())
		params.EndDate = &end
	}
	return s.saleRepo.SearchAll(ctx, params)
}

// SalesReport is the full admin reports view
type SalesReport struct {
	Daily        *DailyReport                     `json:"daily"`
	WeeklySales  []repository.BucketedTotalResult `json:"weekly_sales"`
	TotalWeekly  float64                          `json:"total_weekly"`
	MonthlySales []repository.BucketedTotalResult `json:"monthly_sales"`
	TotalMonthly float64                          `json:"total_monthly"`
	BestSellers  []repository.BestSellerResult    `json:"best_sellers"`
	ExpiredItems []entity.Medicine                `json:"expired_items"`
	ExpiringSoon []entity.Medicine                `json:"expiring_soon"`
	Profit       *ProfitSummary                   `json:"profit"`
	TotalAllTime float64                          `json:"total_all_time"`
}

// FullReport aggregates today's sales, 7- and 30-day buckets, best sellers,
// expiry alerts and the profit summary into one payload
func (s *ReportService) FullReport(ctx context.Context) (*SalesReport, error) {
	now := s.now()

	daily, err := s.DailyTotal(ctx, now)
	if err != nil {
		return nil, err
	}

	weekStart := startOfDay(now.AddDate(0, 0, -7))
	weekly, err := s.reportRepo.BucketedTotals(ctx, weekStart, now)
	if err != nil {
		return nil, err
	}

	monthStart := startOfDay(now.AddDate(0, 0, -30))
	monthly, err := s.reportRepo.BucketedTotals(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}

	bestSellers, err := s.reportRepo.BestSellers(ctx, 10)
	if err != nil {
		return nil, err
	}

	expired, expiring, err := s.expiryAlerts(ctx, now)
	if err != nil {
		return nil, err
	}

	profit, err := s.ProfitSummary(ctx)
	if err != nil {
		return nil, err
	}

	totalAll, err := s.reportRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		Daily:        daily,
		WeeklySales:  weekly,
		TotalWeekly:  sumBuckets(weekly),
		MonthlySales: monthly,
		TotalMonthly: sumBuckets(monthly),
		BestSellers:  bestSellers,
		ExpiredItems: expired,
		ExpiringSoon: expiring,
		Profit:       profit,
		TotalAllTime: totalAll,
	}, nil
}

// Overview is the dashboard payload
type Overview struct {
	SalesTrend     []repository.BucketedTotalResult `json:"sales_trend"`
	StockLevels    []StockLevel                     `json:"stock_levels"`
	ExpiredItems   []entity.Medicine                `json:"expired_items"`
	ExpiringSoon   []entity.Medicine                `json:"expiring_soon"`
	TotalMedicines int64                            `json:"total_medicines"`
	TotalStock     int64                            `json:"total_stock"`
	TotalCustomers int64                            `json:"total_customers"`
	TotalSales     float64                          `json:"total_sales"`
}

// StockLevel is one bar of the dashboard stock chart
type StockLevel struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// GetOverview returns the 7-day sales trend, stock levels and expiry alerts
func (s *ReportService) GetOverview(ctx context.Context) (*Overview, error) {
	now := s.now()

	trend, err := s.reportRepo.BucketedTotals(ctx, startOfDay(now.AddDate(0, 0, -7)), now)
	if err != nil {
		return nil, err
	}

	medicines, err := s.medicineRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	levels := make([]StockLevel, 0, 10)
	for _, m := range medicines {
		if len(levels) == 10 {
			break
		}
		levels = append(levels, StockLevel{Name: m.Name, Quantity: m.Quantity})
	}

	expired, expiring, err := s.expiryAlerts(ctx, now)
	if err != nil {
		return nil, err
	}

	totalMedicines, err := s.medicineRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalStock, err := s.medicineRepo.TotalStock(ctx)
	if err != nil {
		return nil, err
	}
	totalCustomers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSales, err := s.reportRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		SalesTrend:     trend,
		StockLevels:    levels,
		ExpiredItems:   expired,
		ExpiringSoon:   expiring,
		TotalMedicines: totalMedicines,
		TotalStock:     totalStock,
		TotalCustomers: totalCustomers,
		TotalSales:     totalSales,
	}, nil
}

// expiryAlerts splits the inventory into expired and near-expiry buckets.
// A medicine expiring today lands in the expired bucket.
func (s *ReportService) expiryAlerts(ctx context.Context, now time.Time) (expired, expiring []entity.Medicine, err error) {
	medicines, err := s.medicineRepo.List(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	expired = make([]entity.Medicine, 0)
	expiring = make([]entity.Medicine, 0)
	for _, m := range medicines {
		switch m.ClassifyExpiry(now, entity.NearExpiryWindowDays) {
		case entity.ExpiryExpired:
			expired = append(expired, m)
		case entity.ExpiryNear:
			expiring = append(expiring, m)
		}
	}
	return expired, expiring, nil
}

func sumBuckets(buckets []repository.BucketedTotalResult) float64 {
	var total float64
	for _, b := range buckets {
		total += b.Total
	}
	return total
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
