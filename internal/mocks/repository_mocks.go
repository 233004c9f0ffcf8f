// Package mocks provides testify doubles for the domain interfaces.
package mocks

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a mock implementation of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) FindAllActive(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.ProductPatch) (*entity.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)

	return args.Error(0)
}

func (m *ProductRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepository) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)

	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *ProductRepository) FindLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductRepository) FindOutOfStock(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

// SaleRepository is a mock implementation of repository.SaleRepository.
type SaleRepository struct {
	mock.Mock
}

func (m *SaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	args := m.Called(ctx, sale)

	return args.Error(0)
}

func (m *SaleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Sale), args.Error(1)
}

func (m *SaleRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Sale), args.Error(1)
}

func (m *SaleRepository) CountCurrentMonth(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *SaleRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)

	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// AdminRepository is a mock implementation of repository.AdminRepository.
type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminCredential, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.AdminCredential), args.Error(1)
}

func (m *AdminRepository) Create(ctx context.Context, admin *entity.AdminCredential) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}

func (m *AdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) Upsert(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// SessionRepository is a mock implementation of repository.SessionRepository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *SessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *SessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)

	return args.Error(0)
}

func (m *SessionRepository) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
// Its getters hand back whatever mocks the test wired in.
type RepositoryFactory struct {
	Products *ProductRepository
	Sales    *SaleRepository
	Admins   *AdminRepository
}

func (f *RepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.Products
}

func (f *RepositoryFactory) SaleRepo() repository.SaleRepository {
	return f.Sales
}

func (f *RepositoryFactory) AdminRepo() repository.AdminRepository {
	return f.Admins
}

// TransactionManager is a pass-through implementation of
// repository.TransactionManager: it runs the callback immediately against
// the given factory, so tests exercise the real transaction body.
type TransactionManager struct {
	Factory *RepositoryFactory
	// BeginErr, when set, is returned without running the callback.
	BeginErr error
}

func (tm *TransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if tm.BeginErr != nil {
		return tm.BeginErr
	}

	return fn(tm.Factory)
}
