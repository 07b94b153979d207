package service

import (
	"context"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/sangkips/pharmacy-api/pkg/apperror"
)

// SaleService records point-of-sale transactions. It is the only place that
// mutates both inventory and sales, and it does so in a single transaction.
type SaleService struct {
	saleRepo     repository.SaleRepository
	medicineRepo repository.MedicineRepository
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	medicineRepo repository.MedicineRepository,
	customerRepo repository.CustomerRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		medicineRepo: medicineRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

// WithClock overrides the service clock. Sales are stamped with local wall
// time, so tests inject a fixed clock here.
func (s *SaleService) WithClock(now func() time.Time) *SaleService {
	s.now = now
	return s
}

// RecordSaleInput represents the record sale input
type RecordSaleInput struct {
	MedicineID uint
	Quantity   int
	CustomerID *uint
}

// RecordSale validates the request, freezes the current price into the sale,
// and commits the stock decrement together with the sale row. Validation
// failures leave no partial state behind; a failed insert rolls the decrement
// back.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Sale, error) {
	if input.Quantity <= 0 {
		return nil, apperror.ErrInvalidQuantity
	}

	medicine, err := s.medicineRepo.GetByID(ctx, input.MedicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	// Early read-side check for the common case; the transactional guard in
	// the repository is what actually prevents concurrent oversells.
	if medicine.Quantity < input.Quantity {
		return nil, apperror.ErrInsufficientStock
	}

	sale := &entity.Sale{
		MedicineID:   medicine.ID,
		Quantity:     input.Quantity,
		PricePerUnit: medicine.Price,
		TotalPrice:   medicine.Price * int64(input.Quantity),
		Timestamp:    s.now(),
		CustomerID:   input.CustomerID,
	}

	if err := s.saleRepo.CreateWithStockDecrement(ctx, sale); err != nil {
		return nil, err
	}

	return s.saleRepo.GetByID(ctx, sale.ID)
}

// GetSale retrieves a sale by ID (receipt lookup)
func (s *SaleService) GetSale(ctx context.Context, id uint) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}
