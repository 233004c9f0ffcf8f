package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/mocks"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSale_Created(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := new(mocks.SalesUsecase)
	h := NewSaleHandler(uc, newTestLogger())

	productID := uuid.New()
	uc.On("RecordSale", mock.Anything, mock.MatchedBy(func(input usecase.RecordSaleInput) bool {
		return input.ProductID != nil && *input.ProductID == productID && input.Quantity == 3
	})).Return(&entity.Sale{ID: uuid.New(), ProductID: &productID, Quantity: 3}, nil)

	body := `{"productId":"` + productID.String() + `","quantity":3,"totalAmount":"30000"}`
	rec := doJSON(e, http.MethodPost, "/api/sales", body, nil, h.CreateSale)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := new(mocks.SalesUsecase)
	h := NewSaleHandler(uc, newTestLogger())

	uc.On("RecordSale", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInsufficientStock)

	productID := uuid.New()
	body := `{"productId":"` + productID.String() + `","quantity":50,"totalAmount":"100"}`
	rec := doJSON(e, http.MethodPost, "/api/sales", body, nil, h.CreateSale)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
}

func TestCreateSale_BadProductID(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := new(mocks.SalesUsecase)
	h := NewSaleHandler(uc, newTestLogger())

	body := `{"productId":"nope","quantity":1,"totalAmount":"10"}`
	rec := doJSON(e, http.MethodPost, "/api/sales", body, nil, h.CreateSale)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "RecordSale", mock.Anything, mock.Anything)
}

func TestCreateSale_MissingQuantityRejected(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := new(mocks.SalesUsecase)
	h := NewSaleHandler(uc, newTestLogger())

	body := `{"totalAmount":"10"}`
	rec := doJSON(e, http.MethodPost, "/api/sales", body, nil, h.CreateSale)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecentSales_LimitHandling(t *testing.T) {
	t.Parallel()

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := new(mocks.SalesUsecase)
		h := NewSaleHandler(uc, newTestLogger())

		uc.On("RecentSales", mock.Anything, usecase.DefaultRecentSalesLimit).
			Return([]*entity.Sale{}, nil)

		rec := doJSON(e, http.MethodGet, "/api/sales/recent", "", nil, h.RecentSales)

		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("limit capped", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := new(mocks.SalesUsecase)
		h := NewSaleHandler(uc, newTestLogger())

		uc.On("RecentSales", mock.Anything, maxRecentSalesLimit).
			Return([]*entity.Sale{}, nil)

		rec := doJSON(e, http.MethodGet, "/api/sales/recent?limit=5000", "", nil, h.RecentSales)

		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("garbage limit rejected", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := new(mocks.SalesUsecase)
		h := NewSaleHandler(uc, newTestLogger())

		rec := doJSON(e, http.MethodGet, "/api/sales/recent?limit=abc", "", nil, h.RecentSales)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "RecentSales", mock.Anything, mock.Anything)
	})
}

func TestListSales_OK(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := new(mocks.SalesUsecase)
	h := NewSaleHandler(uc, newTestLogger())

	uc.On("ListSales", mock.Anything).Return([]*entity.Sale{
		{ID: uuid.New(), Quantity: 1, TotalAmount: decimal.RequireFromString("10")},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/sales", "", nil, h.ListSales)

	assert.Equal(t, http.StatusOK, rec.Code)
}
