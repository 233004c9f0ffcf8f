// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// analyticsService implements the AnalyticsUsecase interface.
// All numbers are computed on demand from the store; nothing is cached.
type analyticsService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Overview fans the four headline aggregations out in parallel. Each one
// resolves to zero on an empty store, so a fresh deployment renders a
// dashboard of zeroes rather than an error.
func (srv *analyticsService) Overview(ctx context.Context) (*usecase.OverviewOutput, error) {
	out := &usecase.OverviewOutput{}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := srv.productRepo.CountActive(groupCtx)
		if err != nil {
			return errors.Wrap(err, "failed to count products")
		}
		out.TotalProducts = count

		return nil
	})
	group.Go(func() error {
		value, err := srv.productRepo.TotalStockValue(groupCtx)
		if err != nil {
			return errors.Wrap(err, "failed to sum stock value")
		}
		out.StockValue = value

		return nil
	})
	group.Go(func() error {
		count, err := srv.saleRepo.CountCurrentMonth(groupCtx)
		if err != nil {
			return errors.Wrap(err, "failed to count monthly sales")
		}
		out.MonthlySales = count

		return nil
	})
	group.Go(func() error {
		revenue, err := srv.saleRepo.TotalRevenue(groupCtx)
		if err != nil {
			return errors.Wrap(err, "failed to sum revenue")
		}
		out.TotalRevenue = revenue

		return nil
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to build analytics overview", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build analytics overview")
	}

	return out, nil
}

// Inventory returns the low-stock and out-of-stock lists in parallel.
// The low-stock threshold comes from configuration.
func (srv *analyticsService) Inventory(ctx context.Context) (*usecase.InventoryOutput, error) {
	threshold := srv.cfg.LowStockThreshold()

	var lowStock, outOfStock []*entity.Product

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		products, err := srv.productRepo.FindLowStock(groupCtx, threshold)
		if err != nil {
			return errors.Wrap(err, "failed to list low stock products")
		}
		lowStock = products

		return nil
	})
	group.Go(func() error {
		products, err := srv.productRepo.FindOutOfStock(groupCtx)
		if err != nil {
			return errors.Wrap(err, "failed to list out of stock products")
		}
		outOfStock = products

		return nil
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to build inventory report", slog.Any("error", err), slog.Int("threshold", threshold))

		return nil, errors.Wrap(err, "failed to build inventory report")
	}

	return &usecase.InventoryOutput{
		LowStock:        lowStock,
		OutOfStock:      outOfStock,
		LowStockCount:   len(lowStock),
		OutOfStockCount: len(outOfStock),
	}, nil
}
