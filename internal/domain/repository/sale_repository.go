package repository

import (
	"context"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/sangkips/pharmacy-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	// CreateWithStockDecrement inserts the sale and decrements the medicine's
	// stock inside one transaction. The decrement is guarded
	// (quantity >= sale.Quantity); when the guard fails the transaction is
	// rolled back and apperror.ErrInsufficientStock is returned.
	CreateWithStockDecrement(ctx context.Context, sale *entity.Sale) error

	GetByID(ctx context.Context, id uint) (*entity.Sale, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error)

	// Search returns one page of matching sales (timestamp descending), the
	// matching row count, and the total_price sum in cents across the entire
	// filtered set, not just the returned page.
	Search(ctx context.Context, params *SaleSearchParams) ([]entity.Sale, int64, int64, error)

	// SearchAll returns every matching sale without pagination, for exports.
	SearchAll(ctx context.Context, params *SaleSearchParams) ([]entity.Sale, error)

	// CountAndSumBefore reports how many sales precede the cutoff and their
	// combined total_price in cents.
	CountAndSumBefore(ctx context.Context, cutoff time.Time) (int64, int64, error)

	// DeleteBefore removes all sales with timestamp < cutoff and returns the
	// number of deleted rows.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// SaleSearchParams contains filtering parameters for sale search queries
type SaleSearchParams struct {
	Pagination *pagination.PaginationParams

	// Query is matched against the sale id when it is all digits, otherwise
	// case-insensitively against medicine and customer names.
	Query     string
	StartDate *time.Time
	EndDate   *time.Time
}
