package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-order-core/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleCart() entities.Cart {
	at := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	return entities.Cart{Lines: []entities.CartLine{
		{ID: "l1", ProductID: "p1", ProductName: "Mug", UnitPrice: 1000, Quantity: 2, Selected: true, AddedAt: at},
		{ID: "l2", ProductID: "p2", ProductName: "Tee", UnitPrice: 500, Quantity: 1, AddedAt: at},
	}}
}

func TestCartHandler_AddLine(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"product":{"id":"p1","name":"Mug","price":1000},"variant":{"id":"red","name":"Red","price":1200},"quantity":2}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().
					AddLine(mock.Anything, mock.MatchedBy(func(in service.AddLineInput) bool {
						return in.Product.ID == "p1" && in.Variant != nil && in.Variant.Price == 1200 && in.Quantity == 2
					})).
					Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_price":2500`,
		},
		{
			name:         "zero quantity",
			body:         `{"product":{"id":"p1","name":"Mug","price":1000},"quantity":0}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"quantity":"required"`,
		},
		{
			name:         "malformed body",
			body:         `{"product":`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "unauthenticated",
			body: `{"product":{"id":"p1","name":"Mug","price":1000},"quantity":1}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().
					AddLine(mock.Anything, mock.Anything).
					Return(entities.Cart{}, entities.ErrUnauthenticated).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"user is not authenticated"`,
		},
		{
			name: "internal error",
			body: `{"product":{"id":"p1","name":"Mug","price":1000},"quantity":1}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().
					AddLine(mock.Anything, mock.Anything).
					Return(entities.Cart{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCartService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, handler.NewCartHandler(discardLogger(), svc), http.MethodPost, "/cart/lines", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCartHandler_UpdateLine(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
	}{
		{
			name: "quantity and selection",
			body: `{"quantity":3,"selected":false}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().SetQuantity(mock.Anything, "l1", 3).Return(sampleCart(), nil).Once()
				svc.EXPECT().SetSelected(mock.Anything, "l1", false).Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "zero quantity removes and skips selection",
			body: `{"quantity":0,"selected":true}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().SetQuantity(mock.Anything, "l1", 0).Return(entities.Cart{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "selection only",
			body: `{"selected":true}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().SetSelected(mock.Anything, "l1", true).Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "nothing to update",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "unknown line",
			body: `{"quantity":2}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().SetQuantity(mock.Anything, "l1", 2).Return(entities.Cart{}, entities.ErrCartLineNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCartService(t)
			tc.mockBehavior(svc)

			status, _ := serve(t, handler.NewCartHandler(discardLogger(), svc), http.MethodPatch, "/cart/lines/l1", tc.body)

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestCartHandler_GetCart(t *testing.T) {
	svc := mocks.NewMockCartService(t)
	svc.EXPECT().GetCart(mock.Anything).Return(sampleCart(), nil).Once()

	status, body := serve(t, handler.NewCartHandler(discardLogger(), svc), http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, status)

	var cart handler.Cart
	require.NoError(t, json.Unmarshal([]byte(body), &cart))
	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 3, cart.TotalQuantity)
	assert.Equal(t, int64(2500), cart.TotalPrice)
	assert.Equal(t, 2, cart.SelectedQuantity)
	assert.Equal(t, int64(2000), cart.SelectedPrice)
	assert.Equal(t, int64(2000), cart.Lines[0].Total)
}

func TestCartHandler_BulkOperations(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		path         string
		mockBehavior func(svc *mocks.MockCartService)
	}{
		{
			name:   "select all",
			method: http.MethodPost,
			path:   "/cart/select-all",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().SelectAll(mock.Anything).Return(sampleCart(), nil).Once()
			},
		},
		{
			name:   "deselect all",
			method: http.MethodPost,
			path:   "/cart/deselect-all",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().DeselectAll(mock.Anything).Return(sampleCart(), nil).Once()
			},
		},
		{
			name:   "remove line",
			method: http.MethodDelete,
			path:   "/cart/lines/l2",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().RemoveLine(mock.Anything, "l2").Return(sampleCart(), nil).Once()
			},
		},
		{
			name:   "clear",
			method: http.MethodDelete,
			path:   "/cart",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().Clear(mock.Anything).Return(entities.Cart{}, nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCartService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, handler.NewCartHandler(discardLogger(), svc), tc.method, tc.path, "")

			assert.Equal(t, http.StatusOK, status)
			assert.Contains(t, body, `"lines":[`)
		})
	}
}
