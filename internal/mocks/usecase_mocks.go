package mocks

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// CatalogUsecase is a mock implementation of usecase.CatalogUsecase.
type CatalogUsecase struct {
	mock.Mock
}

func (m *CatalogUsecase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *CatalogUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *CatalogUsecase) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *CatalogUsecase) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *CatalogUsecase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// SalesUsecase is a mock implementation of usecase.SalesUsecase.
type SalesUsecase struct {
	mock.Mock
}

func (m *SalesUsecase) RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*entity.Sale, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *SalesUsecase) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Sale), args.Error(1)
}

func (m *SalesUsecase) RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Sale), args.Error(1)
}

// AnalyticsUsecase is a mock implementation of usecase.AnalyticsUsecase.
type AnalyticsUsecase struct {
	mock.Mock
}

func (m *AnalyticsUsecase) Overview(ctx context.Context) (*usecase.OverviewOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OverviewOutput), args.Error(1)
}

func (m *AnalyticsUsecase) Inventory(ctx context.Context) (*usecase.InventoryOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.InventoryOutput), args.Error(1)
}

// AuthUsecase is a mock implementation of usecase.AuthUsecase.
type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) NeedsSetup(ctx context.Context) (bool, error) {
	args := m.Called(ctx)

	return args.Bool(0), args.Error(1)
}

func (m *AuthUsecase) Setup(ctx context.Context, input usecase.SetupInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *AuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *AuthUsecase) CurrentAdmin(ctx context.Context, token string) (*entity.AdminIdentity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.AdminIdentity), args.Error(1)
}

func (m *AuthUsecase) CleanupExpiredSessions(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *AuthUsecase) UpsertUser(ctx context.Context, input usecase.UpsertUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *AuthUsecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}
