// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a domain.ProductRepository interface, adhering to dependency inversion.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindAllActive retrieves every active product, newest first.
func (repo *productRepository) FindAllActive(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a single product by ID regardless of its active flag.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product row. IsActive defaults to true.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.IsActive = true

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("duplicate product identifier")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Reflect generated values back onto the entity.
	product.ID = productM.ID
	product.IsActive = productM.IsActive
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update merges the non-nil patch fields onto the stored row and refreshes
// the update timestamp, returning the updated product.
func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.ProductPatch) (*entity.Product, error) {
	updates := buildProductUpdates(patch)
	updates["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return repo.FindByID(ctx, id)
}

// SoftDelete flips the active flag instead of removing the row; history
// stays queryable through FindByID.
func (repo *productRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft-delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock subtracts quantity in a single conditional UPDATE so the
// stock count can never be driven below zero, even under concurrent sales.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement product stock")
	}
	if result.RowsAffected == 0 {
		// The guard rejected the update: either the product is gone or the
		// remaining stock is too low. Distinguish for the caller.
		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// CountActive returns the number of active products.
func (repo *productRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active products")
	}

	return count, nil
}

// TotalStockValue computes SUM(price * stock) store-side so monetary
// precision never passes through binary floats.
func (repo *productRepository) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("COALESCE(SUM(price * stock), 0)").
		Where("is_active = ?", true).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum stock value")
	}

	return total, nil
}

// FindLowStock returns active products with 0 < stock <= threshold.
func (repo *productRepository) FindLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND stock > 0 AND stock <= ?", true, threshold).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list low-stock products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindOutOfStock returns active products with stock = 0.
func (repo *productRepository) FindOutOfStock(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND stock = 0", true).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list out-of-stock products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// buildProductUpdates translates the non-nil patch fields into a column map.
func buildProductUpdates(patch *entity.ProductPatch) map[string]any {
	updates := make(map[string]any)
	if patch == nil {
		return updates
	}

	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Brand != nil {
		updates["brand"] = *patch.Brand
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Stock != nil {
		updates["stock"] = *patch.Stock
	}
	if patch.SKU != nil {
		updates["sku"] = *patch.SKU
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Specifications != nil {
		updates["specifications"] = encodeSpecifications(patch.Specifications)
	}

	return updates
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Brand:          data.Brand,
		Description:    data.Description,
		Category:       data.Category,
		Price:          data.Price,
		Stock:          data.Stock,
		SKU:            data.SKU,
		ImageURL:       data.ImageURL,
		Specifications: decodeSpecifications(data.Specifications),
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Brand:          data.Brand,
		Description:    data.Description,
		Category:       data.Category,
		Price:          data.Price,
		Stock:          data.Stock,
		SKU:            data.SKU,
		ImageURL:       data.ImageURL,
		Specifications: encodeSpecifications(data.Specifications),
		IsActive:       data.IsActive,
	}
}

// encodeSpecifications serializes the key/value mapping to JSON text for storage.
func encodeSpecifications(specs map[string]string) string {
	if len(specs) == 0 {
		return "{}"
	}

	encoded, err := json.Marshal(specs)
	if err != nil {
		// A map[string]string cannot fail to marshal; guard anyway.
		return "{}"
	}

	return string(encoded)
}

// decodeSpecifications parses stored JSON text defensively: malformed or
// empty text yields an empty, non-nil mapping rather than an error.
func decodeSpecifications(raw string) map[string]string {
	specs := make(map[string]string)
	if raw == "" {
		return specs
	}

	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return make(map[string]string)
	}

	return specs
}
