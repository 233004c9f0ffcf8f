// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// saleRepository implements the domain.SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// Create persists a new sale row. SaleDate defaults to the current time.
func (repo *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)
	if saleM.SaleDate.IsZero() {
		saleM.SaleDate = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("sale references unknown product")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sale fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.ID = saleM.ID
	sale.SaleDate = saleM.SaleDate

	return nil
}

// FindAll retrieves every sale ordered by sale date descending.
func (repo *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel
	if err := repo.db.WithContext(ctx).
		Order("sale_date DESC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return toSaleDomainSlice(saleModels), nil
}

// FindRecent retrieves the most recent sales, capped at limit.
func (repo *saleRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel
	if err := repo.db.WithContext(ctx).
		Order("sale_date DESC").
		Limit(limit).
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent sales")
	}

	return toSaleDomainSlice(saleModels), nil
}

// CountCurrentMonth counts sales falling within the current calendar month,
// truncated store-side so month boundaries follow the database clock.
func (repo *saleRepository) CountCurrentMonth(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("sale_date >= date_trunc('month', CURRENT_DATE)").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count monthly sales")
	}

	return count, nil
}

// TotalRevenue computes SUM(total_amount) store-side, zero when no sales exist.
func (repo *saleRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum revenue")
	}

	return total, nil
}

// --- Mapper Functions ---

// toSaleDomain converts a GORM SaleModel to a domain Sale entity.
func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	return &entity.Sale{
		ID:           data.ID,
		ProductID:    data.ProductID,
		Quantity:     data.Quantity,
		TotalAmount:  data.TotalAmount,
		CustomerName: data.CustomerName,
		SaleDate:     data.SaleDate,
	}
}

func toSaleDomainSlice(models []*model.SaleModel) []*entity.Sale {
	sales := make([]*entity.Sale, 0, len(models))
	for _, saleM := range models {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales
}

// fromSaleDomain converts a domain Sale entity to a GORM SaleModel for persistence.
func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	return &model.SaleModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		Quantity:     data.Quantity,
		TotalAmount:  data.TotalAmount,
		CustomerName: data.CustomerName,
		SaleDate:     data.SaleDate,
	}
}
