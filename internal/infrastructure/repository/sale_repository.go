package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	domainRepo "github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/sangkips/pharmacy-api/pkg/apperror"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CreateWithStockDecrement runs the guarded stock decrement and the sale
// insert in a single transaction. The guard
// (WHERE id = ? AND quantity >= ?) makes concurrent oversells impossible:
// whichever transaction loses the race affects zero rows and aborts.
func (r *saleRepository) CreateWithStockDecrement(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Medicine{}).
			Where("id = ? AND quantity >= ?", sale.MedicineID, sale.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", sale.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.ErrInsufficientStock
		}
		return tx.Create(sale).Error
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Medicine").Preload("Customer").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) ListBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Preload("Medicine").Preload("Customer").
		Order("timestamp DESC").
		Find(&sales).Error
	return sales, err
}

// searchScope applies the search filters to a query. A query string of all
// digits matches the sale id exactly and never a name containing the digits.
func searchScope(params *domainRepo.SaleSearchParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		query := db
		if params.StartDate != nil {
			query = query.Where("sales.timestamp >= ?", *params.StartDate)
		}
		if params.EndDate != nil {
			query = query.Where("sales.timestamp <= ?", *params.EndDate)
		}
		if params.Query != "" {
			if isAllDigits(params.Query) {
				query = query.Where("sales.id = ?", params.Query)
			} else {
				pattern := "%" + params.Query + "%"
				query = query.
					Joins("JOIN medicines ON medicines.id = sales.medicine_id").
					Joins("LEFT JOIN customers ON customers.id = sales.customer_id").
					Where("LOWER(medicines.name) LIKE LOWER(?) OR LOWER(customers.name) LIKE LOWER(?)",
						pattern, pattern)
			}
		}
		return query
	}
}

func (r *saleRepository) Search(ctx context.Context, params *domainRepo.SaleSearchParams) ([]entity.Sale, int64, int64, error) {
	scope := searchScope(params)

	var total int64
	if err := scope(r.db.WithContext(ctx).Model(&entity.Sale{})).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	// Sum over the whole filtered set, not the page
	var sumCents int64
	if err := scope(r.db.WithContext(ctx).Model(&entity.Sale{})).
		Select("COALESCE(SUM(sales.total_price), 0)").
		Scan(&sumCents).Error; err != nil {
		return nil, 0, 0, err
	}

	params.Pagination.Validate()
	var sales []entity.Sale
	err := scope(r.db.WithContext(ctx).Model(&entity.Sale{})).
		Order("sales.timestamp DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Preload("Medicine").Preload("Customer").
		Find(&sales).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return sales, total, sumCents, nil
}

func (r *saleRepository) SearchAll(ctx context.Context, params *domainRepo.SaleSearchParams) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := searchScope(params)(r.db.WithContext(ctx).Model(&entity.Sale{})).
		Order("sales.timestamp DESC").
		Preload("Medicine").Preload("Customer").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) CountAndSumBefore(ctx context.Context, cutoff time.Time) (int64, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("timestamp < ?", cutoff).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var sumCents int64
	if err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("timestamp < ?", cutoff).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&sumCents).Error; err != nil {
		return 0, 0, err
	}

	return count, sumCents, nil
}

func (r *saleRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&entity.Sale{})
	return result.RowsAffected, result.Error
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
