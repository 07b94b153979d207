package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	infraRepo "github.com/sangkips/pharmacy-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory database and migrates the schema.
// Each test gets its own named memory DB so parallel tests never share rows.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Admin{},
		&entity.Medicine{},
		&entity.Customer{},
		&entity.Sale{},
		&entity.IdempotencyKey{},
	))

	return db
}

// fixedClock returns a clock function frozen at the given instant
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func seedMedicine(t *testing.T, db *gorm.DB, name string, price float64, quantity int) *entity.Medicine {
	t.Helper()

	m := &entity.Medicine{Name: name, Quantity: quantity}
	m.SetPriceFromDecimal(price)
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *entity.Customer {
	t.Helper()

	c := &entity.Customer{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

// seedSale inserts a sale row directly, bypassing the stock decrement
func seedSale(t *testing.T, db *gorm.DB, medicineID uint, qty int, priceCents int64, at time.Time) *entity.Sale {
	t.Helper()

	s := &entity.Sale{
		MedicineID:   medicineID,
		Quantity:     qty,
		PricePerUnit: priceCents,
		TotalPrice:   priceCents * int64(qty),
		Timestamp:    at,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

// newServices wires real repositories over the test database
type testServices struct {
	db        *gorm.DB
	sale      *SaleService
	inventory *InventoryService
	report    *ReportService
	retention *RetentionService
	customer  *CustomerService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := setupTestDB(t)
	saleRepo := infraRepo.NewSaleRepository(db)
	medicineRepo := infraRepo.NewMedicineRepository(db)
	customerRepo := infraRepo.NewCustomerRepository(db)
	reportRepo := infraRepo.NewReportRepository(db)

	return &testServices{
		db:        db,
		sale:      NewSaleService(saleRepo, medicineRepo, customerRepo),
		inventory: NewInventoryService(medicineRepo),
		report:    NewReportService(saleRepo, medicineRepo, customerRepo, reportRepo),
		retention: NewRetentionService(saleRepo),
		customer:  NewCustomerService(customerRepo),
	}
}
