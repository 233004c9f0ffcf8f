package impl

import (
	"context"
	"testing"

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

func newCatalogServiceForTest() (usecase.CatalogUsecase, *mocks.ProductRepository) {
	productRepo := new(mocks.ProductRepository)

	return NewCatalogService(productRepo, newTestLogger()), productRepo
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	srv, productRepo := newCatalogServiceForTest()

	expected := []*entity.Product{
		{ID: uuid.New(), Name: "Phone X", IsActive: true},
		{ID: uuid.New(), Name: "Phone Y", IsActive: true},
	}
	productRepo.On("FindAllActive", mock.Anything).Return(expected, nil)

	products, err := srv.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestGetProduct_NotFound(t *testing.T) {
	t.Parallel()

	srv, productRepo := newCatalogServiceForTest()

	id := uuid.New()
	productRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrProductNotFound)

	_, err := srv.GetProduct(context.Background(), id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	srv, productRepo := newCatalogServiceForTest()

	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(product *entity.Product) bool {
		return product.Name == "Phone X" &&
			product.Price.Equal(decimal.RequireFromString("10000")) &&
			product.Stock == 10 &&
			product.Specifications["color"] == "black"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Product).ID = uuid.New()
	}).Return(nil)

	product, err := srv.CreateProduct(context.Background(), usecase.CreateProductInput{
		Name:           "Phone X",
		Price:          decimal.RequireFromString("10000"),
		Stock:          10,
		Specifications: map[string]string{"color": "black"},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	t.Parallel()

	srv, productRepo := newCatalogServiceForTest()

	id := uuid.New()
	productRepo.On("Update", mock.Anything, id, mock.AnythingOfType("*entity.ProductPatch")).
		Return(nil, repository.ErrProductNotFound)

	name := "renamed"
	_, err := srv.UpdateProduct(context.Background(), id, usecase.UpdateProductInput{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestDeleteProduct_SoftDeletes(t *testing.T) {
	t.Parallel()

	srv, productRepo := newCatalogServiceForTest()

	id := uuid.New()
	productRepo.On("SoftDelete", mock.Anything, id).Return(nil)

	err := srv.DeleteProduct(context.Background(), id)

	require.NoError(t, err)
	productRepo.AssertExpectations(t)
}
