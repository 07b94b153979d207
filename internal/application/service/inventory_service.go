package service

import (
	"context"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/sangkips/pharmacy-api/pkg/apperror"
)

// LowStockThreshold marks medicines that need restocking on listings
const LowStockThreshold = 5

// InventoryService owns medicine records and their derived expiry state.
// Stock decrements are owned by the sale transaction, not exposed here.
type InventoryService struct {
	medicineRepo repository.MedicineRepository
	now          func() time.Time
}

// NewInventoryService creates a new inventory service
func NewInventoryService(medicineRepo repository.MedicineRepository) *InventoryService {
	return &InventoryService{
		medicineRepo: medicineRepo,
		now:          time.Now,
	}
}

// WithClock overrides the service clock for deterministic expiry tests
func (s *InventoryService) WithClock(now func() time.Time) *InventoryService {
	s.now = now
	return s
}

// MedicineInput represents typed, already-parsed medicine fields
type MedicineInput struct {
	Name        string
	Brand       *string
	Price       float64
	CostPrice   float64
	Quantity    int
	ExpiryDate  *time.Time
	Category    *string
	Description *string
}

// MedicineListItem decorates a medicine with its derived inventory state
type MedicineListItem struct {
	entity.Medicine
	ExpiryStatus string `json:"expiry_status"`
	LowStock     bool   `json:"low_stock"`
}

func (s *InventoryService) CreateMedicine(ctx context.Context, input *MedicineInput) (*entity.Medicine, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}
	if input.Price <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "Price must be positive"},
		})
	}
	if input.Quantity < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "Quantity cannot be negative"},
		})
	}

	medicine := &entity.Medicine{
		Name:        input.Name,
		Brand:       input.Brand,
		Quantity:    input.Quantity,
		ExpiryDate:  input.ExpiryDate,
		Category:    input.Category,
		Description: input.Description,
	}
	medicine.SetPriceFromDecimal(input.Price)
	medicine.SetCostPriceFromDecimal(input.CostPrice)

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// UpdateMedicineInput holds optional updates; nil fields keep current values
type UpdateMedicineInput struct {
	Name        *string
	Brand       *string
	Price       *float64
	CostPrice   *float64
	Quantity    *int
	ExpiryDate  *time.Time
	ClearExpiry bool
	Category    *string
	Description *string
}

func (s *InventoryService) UpdateMedicine(ctx context.Context, id uint, input *UpdateMedicineInput) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	if input.Name != nil && *input.Name != "" {
		medicine.Name = *input.Name
	}
	if input.Brand != nil {
		medicine.Brand = input.Brand
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "Price must be positive"},
			})
		}
		medicine.SetPriceFromDecimal(*input.Price)
	}
	if input.CostPrice != nil {
		medicine.SetCostPriceFromDecimal(*input.CostPrice)
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "quantity", Message: "Quantity cannot be negative"},
			})
		}
		medicine.Quantity = *input.Quantity
	}
	if input.ClearExpiry {
		medicine.ExpiryDate = nil
	} else if input.ExpiryDate != nil {
		medicine.ExpiryDate = input.ExpiryDate
	}
	if input.Category != nil {
		medicine.Category = input.Category
	}
	if input.Description != nil {
		medicine.Description = input.Description
	}

	if err := s.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

func (s *InventoryService) DeleteMedicine(ctx context.Context, id uint) error {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return apperror.NewNotFoundError("Medicine")
	}
	return s.medicineRepo.Delete(ctx, id)
}

func (s *InventoryService) GetMedicine(ctx context.Context, id uint) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}
	return medicine, nil
}

// ListMedicines returns all medicines by name with derived expiry and
// low-stock state
func (s *InventoryService) ListMedicines(ctx context.Context, params *repository.MedicineFilterParams) ([]MedicineListItem, error) {
	medicines, err := s.medicineRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	today := s.now()
	items := make([]MedicineListItem, 0, len(medicines))
	for _, m := range medicines {
		items = append(items, MedicineListItem{
			Medicine:     m,
			ExpiryStatus: m.ClassifyExpiry(today, entity.NearExpiryWindowDays).String(),
			LowStock:     m.Quantity <= LowStockThreshold,
		})
	}
	return items, nil
}

// ListSellable returns medicines with stock on hand, for the POS picker
func (s *InventoryService) ListSellable(ctx context.Context) ([]entity.Medicine, error) {
	return s.medicineRepo.ListInStock(ctx)
}

// AvailableQuantity returns the on-hand quantity for a medicine
func (s *InventoryService) AvailableQuantity(ctx context.Context, id uint) (int, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if medicine == nil {
		return 0, apperror.NewNotFoundError("Medicine")
	}
	return medicine.Quantity, nil
}
