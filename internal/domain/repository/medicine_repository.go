package repository

import (
	"context"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
)

// MedicineRepository defines the interface for medicine data operations
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	GetByID(ctx context.Context, id uint) (*entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *MedicineFilterParams) ([]entity.Medicine, error)
	ListInStock(ctx context.Context) ([]entity.Medicine, error)
	Count(ctx context.Context) (int64, error)
	TotalStock(ctx context.Context) (int64, error)
}

// MedicineFilterParams contains filtering parameters for medicine queries
type MedicineFilterParams struct {
	Search   string
	Category string
}
