package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/mocks"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSalesServiceForTest() (usecase.SalesUsecase, *mocks.SaleRepository, *mocks.ProductRepository) {
	saleRepo := new(mocks.SaleRepository)
	productRepo := new(mocks.ProductRepository)
	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{
			Products: productRepo,
			Sales:    saleRepo,
		},
	}

	return NewSalesService(saleRepo, txManager, newTestLogger()), saleRepo, productRepo
}

func TestRecordSale_DecrementsStock(t *testing.T) {
	t.Parallel()

	srv, saleRepo, productRepo := newSalesServiceForTest()

	productID := uuid.New()
	saleRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Sale")).
		Run(func(args mock.Arguments) {
			sale := args.Get(1).(*entity.Sale)
			sale.ID = uuid.New()
			sale.SaleDate = time.Now()
		}).
		Return(nil)
	productRepo.On("DecrementStock", mock.Anything, productID, 3).Return(nil)

	sale, err := srv.RecordSale(context.Background(), usecase.RecordSaleInput{
		ProductID:    &productID,
		Quantity:     3,
		TotalAmount:  decimal.RequireFromString("30000"),
		CustomerName: "Walk-in",
	})

	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.NotEqual(t, uuid.Nil, sale.ID)
	saleRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestRecordSale_WithoutProductReference(t *testing.T) {
	t.Parallel()

	srv, saleRepo, productRepo := newSalesServiceForTest()

	saleRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Sale")).Return(nil)

	sale, err := srv.RecordSale(context.Background(), usecase.RecordSaleInput{
		Quantity:    2,
		TotalAmount: decimal.RequireFromString("500"),
	})

	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Nil(t, sale.ProductID)
	// Stock must be untouched when no product is referenced.
	productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSale_InsufficientStockAbortsSale(t *testing.T) {
	t.Parallel()

	srv, saleRepo, productRepo := newSalesServiceForTest()

	productID := uuid.New()
	saleRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Sale")).Return(nil)
	productRepo.On("DecrementStock", mock.Anything, productID, 50).
		Return(repository.ErrInsufficientStock)

	sale, err := srv.RecordSale(context.Background(), usecase.RecordSaleInput{
		ProductID:   &productID,
		Quantity:    50,
		TotalAmount: decimal.RequireFromString("100"),
	})

	require.Error(t, err)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestRecordSale_UnknownProduct(t *testing.T) {
	t.Parallel()

	srv, saleRepo, productRepo := newSalesServiceForTest()

	productID := uuid.New()
	saleRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Sale")).Return(nil)
	productRepo.On("DecrementStock", mock.Anything, productID, 1).
		Return(repository.ErrProductNotFound)

	_, err := srv.RecordSale(context.Background(), usecase.RecordSaleInput{
		ProductID:   &productID,
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("10"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestRecentSales_DefaultLimit(t *testing.T) {
	t.Parallel()

	srv, saleRepo, _ := newSalesServiceForTest()

	saleRepo.On("FindRecent", mock.Anything, usecase.DefaultRecentSalesLimit).
		Return([]*entity.Sale{}, nil)

	sales, err := srv.RecentSales(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, sales)
	saleRepo.AssertExpectations(t)
}

func TestListSales(t *testing.T) {
	t.Parallel()

	srv, saleRepo, _ := newSalesServiceForTest()

	expected := []*entity.Sale{
		{ID: uuid.New(), Quantity: 1, TotalAmount: decimal.RequireFromString("10")},
		{ID: uuid.New(), Quantity: 2, TotalAmount: decimal.RequireFromString("20")},
	}
	saleRepo.On("FindAll", mock.Anything).Return(expected, nil)

	sales, err := srv.ListSales(context.Background())

	require.NoError(t, err)
	assert.Len(t, sales, 2)
}
