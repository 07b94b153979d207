package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/pharmacy-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketedTotals(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)

	day1 := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 11, 15, 0, 0, 0, time.UTC)
	seedSale(t, svc.db, med.ID, 2, med.Price, day1)
	seedSale(t, svc.db, med.ID, 1, med.Price, day1.Add(2*time.Hour))
	seedSale(t, svc.db, med.ID, 4, med.Price, day2)

	buckets, err := svc.report.BucketedTotals(ctx,
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 23, 59, 59, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-03-10", buckets[0].Date)
	assert.Equal(t, 30.00, buckets[0].Total)
	assert.Equal(t, int64(2), buckets[0].Count)
	assert.Equal(t, "2024-03-11", buckets[1].Date)
	assert.Equal(t, 40.00, buckets[1].Total)
	assert.Equal(t, int64(1), buckets[1].Count)
}

func TestDailyTotal(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)

	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	seedSale(t, svc.db, med.ID, 2, med.Price, day)
	// Previous day must not leak in
	seedSale(t, svc.db, med.ID, 5, med.Price, day.AddDate(0, 0, -1))

	report, err := svc.report.DailyTotal(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-10", report.Date)
	assert.Len(t, report.Sales, 1)
	assert.Equal(t, 20.00, report.Total)
}

func TestSearchSales(t *testing.T) {
	ctx := context.Background()

	t.Run("all-digit query matches the sale id only", func(t *testing.T) {
		svc := newTestServices(t)
		// A medicine whose name contains the digits must not match
		med := seedMedicine(t, svc.db, "Vitamin B42", 5.00, 100)
		at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

		var target uint
		for i := 0; i < 50; i++ {
			s := seedSale(t, svc.db, med.ID, 1, med.Price, at)
			if s.ID == 42 {
				target = s.ID
			}
		}
		require.EqualValues(t, 42, target)

		result, err := svc.report.SearchSales(ctx, &SaleSearchInput{Query: "42"})
		require.NoError(t, err)

		require.Len(t, result.Result.Items, 1)
		assert.EqualValues(t, 42, result.Result.Items[0].ID)
		assert.Equal(t, 5.00, result.TotalAll)
	})

	t.Run("name query matches medicine and customer case-insensitively", func(t *testing.T) {
		svc := newTestServices(t)
		para := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)
		ibu := seedMedicine(t, svc.db, "Ibuprofen", 4.00, 100)
		at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

		seedSale(t, svc.db, para.ID, 1, para.Price, at)
		seedSale(t, svc.db, ibu.ID, 1, ibu.Price, at)

		result, err := svc.report.SearchSales(ctx, &SaleSearchInput{Query: "PARACET"})
		require.NoError(t, err)

		require.Len(t, result.Result.Items, 1)
		assert.Equal(t, "Paracetamol", result.Result.Items[0].Medicine.Name)
	})

	t.Run("to-date is inclusive of the whole day", func(t *testing.T) {
		svc := newTestServices(t)
		med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)

		lateSale := time.Date(2024, 3, 10, 23, 45, 0, 0, time.UTC)
		seedSale(t, svc.db, med.ID, 1, med.Price, lateSale)

		to := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		result, err := svc.report.SearchSales(ctx, &SaleSearchInput{ToDate: &to})
		require.NoError(t, err)

		assert.Len(t, result.Result.Items, 1)
	})

	t.Run("total covers the whole filtered set, not the page", func(t *testing.T) {
		svc := newTestServices(t)
		med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)
		at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

		for i := 0; i < 25; i++ {
			seedSale(t, svc.db, med.ID, 1, med.Price, at.Add(time.Duration(i)*time.Minute))
		}

		result, err := svc.report.SearchSales(ctx, &SaleSearchInput{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		})
		require.NoError(t, err)

		assert.Len(t, result.Result.Items, 10)
		assert.EqualValues(t, 25, result.Result.Pagination.Total)
		assert.Equal(t, 3, result.Result.Pagination.TotalPages)
		assert.Equal(t, 250.00, result.TotalAll)
	})
}

func TestBestSellers(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	para := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)
	ibu := seedMedicine(t, svc.db, "Ibuprofen", 4.00, 100)
	amox := seedMedicine(t, svc.db, "Amoxicillin", 12.00, 100)
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	seedSale(t, svc.db, para.ID, 3, para.Price, at)
	seedSale(t, svc.db, ibu.ID, 7, ibu.Price, at)
	// Same quantity as Paracetamol: the lower id wins the tie
	seedSale(t, svc.db, amox.ID, 3, amox.Price, at)

	sellers, err := svc.report.BestSellers(ctx, 10)
	require.NoError(t, err)

	require.Len(t, sellers, 3)
	assert.Equal(t, "Ibuprofen", sellers[0].MedicineName)
	assert.EqualValues(t, 7, sellers[0].TotalQty)
	assert.Equal(t, 28.00, sellers[0].TotalRevenue)
	assert.Equal(t, "Paracetamol", sellers[1].MedicineName)
	assert.Equal(t, "Amoxicillin", sellers[2].MedicineName)
}

func TestProfitSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("cost is sixty percent of the frozen goods value", func(t *testing.T) {
		svc := newTestServices(t)
		med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)
		at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

		seedSale(t, svc.db, med.ID, 5, med.Price, at) // 50.00 revenue

		summary, err := svc.report.ProfitSummary(ctx)
		require.NoError(t, err)

		assert.Equal(t, 50.00, summary.TotalRevenue)
		assert.InDelta(t, 30.00, summary.TotalCost, 0.001)
		assert.InDelta(t, 20.00, summary.TotalProfit, 0.001)
		assert.InDelta(t, 40.0, summary.ProfitMargin, 0.001)
	})

	t.Run("empty ledger reports zero margin", func(t *testing.T) {
		svc := newTestServices(t)

		summary, err := svc.report.ProfitSummary(ctx)
		require.NoError(t, err)

		assert.Zero(t, summary.TotalRevenue)
		assert.Zero(t, summary.ProfitMargin)
	})
}

func TestFullReport(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.report.WithClock(fixedClock(now))

	med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)
	seedSale(t, svc.db, med.ID, 2, med.Price, now.Add(-time.Hour))    // today
	seedSale(t, svc.db, med.ID, 1, med.Price, now.AddDate(0, 0, -3))  // this week
	seedSale(t, svc.db, med.ID, 1, med.Price, now.AddDate(0, 0, -20)) // this month
	seedSale(t, svc.db, med.ID, 1, med.Price, now.AddDate(0, 0, -60)) // older

	report, err := svc.report.FullReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, 20.00, report.Daily.Total)
	assert.Equal(t, 30.00, report.TotalWeekly)
	assert.Equal(t, 40.00, report.TotalMonthly)
	assert.Equal(t, 50.00, report.TotalAllTime)
	require.Len(t, report.BestSellers, 1)
	assert.EqualValues(t, 5, report.BestSellers[0].TotalQty)
}

func TestGetOverview(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.report.WithClock(fixedClock(now))

	expired := now.AddDate(0, 0, -1)
	soon := now.AddDate(0, 0, 10)
	med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 40)
	old := seedMedicine(t, svc.db, "Aspirin", 3.00, 8)
	near := seedMedicine(t, svc.db, "Cough Syrup", 6.00, 12)
	require.NoError(t, svc.db.Model(old).Update("expiry_date", expired).Error)
	require.NoError(t, svc.db.Model(near).Update("expiry_date", soon).Error)

	seedCustomer(t, svc.db, "Alice Wanjiku")
	seedSale(t, svc.db, med.ID, 2, med.Price, now.Add(-time.Hour))

	overview, err := svc.report.GetOverview(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, overview.TotalMedicines)
	assert.EqualValues(t, 60, overview.TotalStock)
	assert.EqualValues(t, 1, overview.TotalCustomers)
	assert.Equal(t, 20.00, overview.TotalSales)
	require.Len(t, overview.ExpiredItems, 1)
	assert.Equal(t, "Aspirin", overview.ExpiredItems[0].Name)
	require.Len(t, overview.ExpiringSoon, 1)
	assert.Equal(t, "Cough Syrup", overview.ExpiringSoon[0].Name)
	assert.Len(t, overview.SalesTrend, 1)
}
