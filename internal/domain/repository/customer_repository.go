package repository

import (
	"context"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uint) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
