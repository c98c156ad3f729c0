package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-order-core/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressHandler_AddAddress(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAddressService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "default address",
			body: `{"label":"Home","recipient_name":"Ann","phone":"+100","line":"1 Main St","is_default":true}`,
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().
					AddAddress(mock.Anything, service.AddressInput{Label: "Home", RecipientName: "Ann", Phone: "+100", Line: "1 Main St", IsDefault: true}).
					Return(entities.Address{ID: "a1", UserID: "u1", RecipientName: "Ann", Phone: "+100", Line: "1 Main St", IsDefault: true}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"is_default":true`,
		},
		{
			name:         "missing phone",
			body:         `{"recipient_name":"Ann","line":"1 Main St"}`,
			mockBehavior: func(svc *mocks.MockAddressService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"phone":"required"`,
		},
		{
			name: "blank after trimming",
			body: `{"recipient_name":" ","phone":"+100","line":"1 Main St"}`,
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().AddAddress(mock.Anything, mock.Anything).Return(entities.Address{}, entities.ErrInvalidAddress).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid address"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAddressService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, handler.NewAddressHandler(discardLogger(), svc), http.MethodPost, "/addresses", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAddressHandler_Manage(t *testing.T) {
	svc := mocks.NewMockAddressService(t)
	svc.EXPECT().ListAddresses(mock.Anything).Return([]entities.Address{
		{ID: "a1", RecipientName: "Ann", IsDefault: true},
		{ID: "a2", RecipientName: "Ann"},
	}, nil).Once()
	svc.EXPECT().UpdateAddress(mock.Anything, "a2", mock.AnythingOfType("service.AddressInput")).
		Return(entities.Address{ID: "a2", RecipientName: "Bob"}, nil).Once()
	svc.EXPECT().SetDefault(mock.Anything, "a2").Return(entities.Address{ID: "a2", IsDefault: true}, nil).Once()
	svc.EXPECT().SetDefault(mock.Anything, "missing").Return(entities.Address{}, entities.ErrAddressNotFound).Once()
	svc.EXPECT().DeleteAddress(mock.Anything, "a1").Return(nil).Once()

	h := handler.NewAddressHandler(discardLogger(), svc)

	status, body := serve(t, h, http.MethodGet, "/addresses", "")
	require.Equal(t, http.StatusOK, status)
	var list []handler.Address
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Len(t, list, 2)

	status, body = serve(t, h, http.MethodPut, "/addresses/a2", `{"recipient_name":"Bob","phone":"+1","line":"2 Side St"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"recipient_name":"Bob"`)

	status, body = serve(t, h, http.MethodPost, "/addresses/a2/default", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"is_default":true`)

	status, _ = serve(t, h, http.MethodPost, "/addresses/missing/default", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = serve(t, h, http.MethodDelete, "/addresses/a1", "")
	assert.Equal(t, http.StatusNoContent, status)
}
