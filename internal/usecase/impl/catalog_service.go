// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns all active products, newest first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAllActive(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product by ID, active or not.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to get product", slog.Any("error", err), slog.Any("product_id", id))

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct persists a new active product and returns it.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	product := &entity.Product{
		Name:           input.Name,
		Brand:          input.Brand,
		Description:    input.Description,
		Category:       input.Category,
		Price:          input.Price,
		Stock:          input.Stock,
		SKU:            input.SKU,
		ImageURL:       input.ImageURL,
		Specifications: input.Specifications,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err), slog.String("name", input.Name))

		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Successfully created product", slog.Any("product_id", product.ID))

	return product, nil
}

// UpdateProduct applies the partial update and returns the updated product.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("product_id", id))

	patch := &entity.ProductPatch{
		Name:           input.Name,
		Brand:          input.Brand,
		Description:    input.Description,
		Category:       input.Category,
		Price:          input.Price,
		Stock:          input.Stock,
		SKU:            input.SKU,
		ImageURL:       input.ImageURL,
		Specifications: input.Specifications,
	}

	product, err := srv.productRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.Any("product_id", id))

		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.log(ctx).Info("Successfully updated product", slog.Any("product_id", id))

	return product, nil
}

// DeleteProduct marks the product inactive so sales history keeps pointing
// at a real row.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("product_id", id))

	if err := srv.productRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("error", err), slog.Any("product_id", id))

		return errors.Wrap(err, "failed to delete product")
	}
	srv.log(ctx).Info("Successfully deleted product", slog.Any("product_id", id))

	return nil
}
