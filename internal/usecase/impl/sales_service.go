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

	"github.com/pkg/errors"
)

// salesService implements the SalesUsecase interface.
type salesService struct {
	saleRepo  repository.SaleRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSalesService is the constructor for salesService.
func NewSalesService(
	saleRepo repository.SaleRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SalesUsecase {
	return &salesService{
		saleRepo:  saleRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *salesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordSale writes the sale and decrements the referenced product's stock
// within a single transaction. A sale without a product reference (or with a
// non-positive quantity) is recorded without touching stock. Insufficient
// stock rolls the whole sale back.
func (srv *salesService) RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*entity.Sale, error) {
	srv.log(ctx).Info("Recording sale",
		slog.Any("product_id", input.ProductID),
		slog.Int("quantity", input.Quantity))

	sale := &entity.Sale{
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		TotalAmount:  input.TotalAmount,
		CustomerName: input.CustomerName,
		SaleDate:     input.SaleDate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.SaleRepo()
		productRepo := repoFactory.ProductRepo()

		// 1. Persist the sale itself.
		if err := saleRepo.Create(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to create sale")
		}

		// 2. Decrement stock only when the sale references a product.
		if sale.ProductID == nil || sale.Quantity <= 0 {
			return nil
		}

		if err := productRepo.DecrementStock(ctx, *sale.ProductID, sale.Quantity); err != nil {
			switch {
			case errors.Is(err, repository.ErrInsufficientStock):
				return domainerrors.ErrInsufficientStock
			case errors.Is(err, repository.ErrProductNotFound):
				return domainerrors.ErrProductNotFound.WrapMessage("sale references unknown product")
			}

			return errors.Wrap(err, "failed to decrement stock")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record sale", slog.Any("error", err), slog.Any("product_id", input.ProductID))

		return nil, err
	}
	srv.log(ctx).Info("Successfully recorded sale", slog.Any("sale_id", sale.ID))

	return sale, nil
}

// ListSales returns every sale, newest first.
func (srv *salesService) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	sales, err := srv.saleRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list sales", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// RecentSales returns the limit most recent sales.
func (srv *salesService) RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	if limit <= 0 {
		limit = usecase.DefaultRecentSalesLimit
	}

	sales, err := srv.saleRepo.FindRecent(ctx, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list recent sales", slog.Any("error", err), slog.Int("limit", limit))

		return nil, errors.Wrap(err, "failed to list recent sales")
	}

	return sales, nil
}
