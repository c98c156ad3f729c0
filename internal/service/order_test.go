package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/SergeyBogomolovv/shop-order-core/internal/pricing"
	"github.com/SergeyBogomolovv/shop-order-core/internal/repo/memory"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-order-core/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/shop-order-core/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartLines(userID string) []entities.CartLine {
	return []entities.CartLine{
		{ID: "l1", UserID: userID, ProductID: "X", ProductName: "Product X", UnitPrice: 1000, Quantity: 2, Selected: true},
		{ID: "l2", UserID: userID, ProductID: "Y", VariantID: "red", VariantName: "Red", UnitPrice: 500, Quantity: 1, Selected: true},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, carts *mocks.MockCartStore, addresses *mocks.MockAddressGetter)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		ctx          context.Context
		lines        []entities.CartLine
		input        service.CreateOrderInput
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			ctx:   asUser("u1"),
			lines: cartLines("u1"),
			input: service.CreateOrderInput{Customer: validCustomer(), PaymentMethod: entities.PaymentCashOnDelivery},
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCartStore, _ *mocks.MockAddressGetter) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				carts.EXPECT().ClearLines(mock.Anything, "u1", []string{"l1", "l2"}).Return(nil).Once()
			},
		},
		{
			name:  "cart cleanup failure is swallowed",
			ctx:   asUser("u1"),
			lines: cartLines("u1"),
			input: service.CreateOrderInput{Customer: validCustomer(), PaymentMethod: entities.PaymentEWallet},
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCartStore, _ *mocks.MockAddressGetter) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				carts.EXPECT().ClearLines(mock.Anything, "u1", mock.Anything).Return(dbError).Once()
			},
		},
		{
			name:  "persist failure leaves cart untouched",
			ctx:   asUser("u1"),
			lines: cartLines("u1"),
			input: service.CreateOrderInput{Customer: validCustomer(), PaymentMethod: entities.PaymentCashOnDelivery},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCartStore, _ *mocks.MockAddressGetter) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: entities.ErrOrderCreationFailed,
		},
		{
			name:         "empty selection",
			ctx:          asUser("u1"),
			input:        service.CreateOrderInput{Customer: validCustomer(), PaymentMethod: entities.PaymentCashOnDelivery},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCartStore, *mocks.MockAddressGetter) {},
			wantErr:      entities.ErrEmptySelection,
		},
		{
			name:         "unauthenticated",
			ctx:          context.Background(),
			lines:        cartLines("u1"),
			input:        service.CreateOrderInput{Customer: validCustomer(), PaymentMethod: entities.PaymentCashOnDelivery},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCartStore, *mocks.MockAddressGetter) {},
			wantErr:      entities.ErrUnauthenticated,
		},
		{
			name:         "lines of another user",
			ctx:          asUser("u1"),
			lines:        cartLines("u2"),
			input:        service.CreateOrderInput{Customer: validCustomer(), PaymentMethod: entities.PaymentCashOnDelivery},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCartStore, *mocks.MockAddressGetter) {},
			wantErr:      entities.ErrCartLineNotFound,
		},
		{
			name:  "missing phone",
			ctx:   asUser("u1"),
			lines: cartLines("u1"),
			input: service.CreateOrderInput{
				Customer:      entities.CustomerInfo{Name: "Jane", Email: "jane@example.com", Address: "1 Main St"},
				PaymentMethod: entities.PaymentCashOnDelivery,
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCartStore, *mocks.MockAddressGetter) {},
			wantErr:      entities.ErrInvalidCustomerInfo,
		},
		{
			name:  "malformed email",
			ctx:   asUser("u1"),
			lines: cartLines("u1"),
			input: service.CreateOrderInput{
				Customer:      entities.CustomerInfo{Name: "Jane", Phone: "1", Email: "not-an-email", Address: "1 Main St"},
				PaymentMethod: entities.PaymentCashOnDelivery,
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCartStore, *mocks.MockAddressGetter) {},
			wantErr:      entities.ErrInvalidCustomerInfo,
		},
		{
			name:         "unknown payment method",
			ctx:          asUser("u1"),
			lines:        cartLines("u1"),
			input:        service.CreateOrderInput{Customer: validCustomer(), PaymentMethod: "crypto"},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCartStore, *mocks.MockAddressGetter) {},
			wantErr:      entities.ErrInvalidPaymentMethod,
		},
		{
			name:  "saved address fills the customer",
			ctx:   asUser("u1"),
			lines: cartLines("u1"),
			input: service.CreateOrderInput{
				Customer:      entities.CustomerInfo{Email: "jane@example.com"},
				AddressID:     "addr-1",
				PaymentMethod: entities.PaymentBankTransfer,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCartStore, addresses *mocks.MockAddressGetter) {
				addresses.EXPECT().GetAddress(mock.Anything, "u1", "addr-1").Return(entities.Address{
					ID: "addr-1", UserID: "u1", RecipientName: "Jane", Phone: "555", Line: "2 Side St",
				}, nil).Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Customer.Name == "Jane" && o.Customer.Address == "2 Side St"
				})).Return(nil).Once()
				carts.EXPECT().ClearLines(mock.Anything, "u1", mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "unknown saved address",
			ctx:   asUser("u1"),
			lines: cartLines("u1"),
			input: service.CreateOrderInput{
				Customer:      validCustomer(),
				AddressID:     "missing",
				PaymentMethod: entities.PaymentCashOnDelivery,
			},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCartStore, addresses *mocks.MockAddressGetter) {
				addresses.EXPECT().GetAddress(mock.Anything, "u1", "missing").Return(entities.Address{}, entities.ErrAddressNotFound).Once()
			},
			wantErr: entities.ErrAddressNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			carts := mocks.NewMockCartStore(t)
			addresses := mocks.NewMockAddressGetter(t)
			cache := mocks.NewMockCache(t)
			events := mocks.NewMockEventPublisher(t)

			tc.mockBehavior(repo, carts, addresses)
			if tc.wantErr == nil {
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Once()
				events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.Event) bool {
					return e.Type == entities.EventOrderCreated
				})).Return().Once()
			}

			svc := service.NewOrderService(discardLogger(), service.OrderServiceDeps{
				Identity:  identity.NewContextProvider(),
				Repo:      repo,
				Carts:     carts,
				Addresses: addresses,
				Pricer:    pricing.NewEngine(pricing.DefaultShippingFee),
				Cache:     cache,
				Events:    events,
				LeadTime:  72 * time.Hour,
			})

			order, err := svc.CreateOrder(tc.ctx, tc.lines, tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusPending, order.Status)
			assert.Equal(t, entities.PaymentPending, order.Payment.Status)
			assert.Equal(t, tc.input.PaymentMethod, order.Payment.Method)
			assert.Equal(t, "u1", order.UserID)
			require.Len(t, order.History, 1)
			assert.Equal(t, entities.StatusPending, order.History[0].Status)
			assert.Equal(t, order.CreatedAt.Add(72*time.Hour), order.EstimatedDelivery)
		})
	}
}

func TestOrderService_ExampleScenario(t *testing.T) {
	store := memory.NewStore()
	carts := service.NewCartService(discardLogger(), identity.NewContextProvider(), store)
	orders := service.NewOrderService(discardLogger(), memoryOrderDeps(store, carts))
	ctx := asUser("u1")

	_, err := carts.AddLine(ctx, service.AddLineInput{Product: entities.Product{ID: "X", Price: 1000}, Quantity: 2})
	require.NoError(t, err)
	_, err = carts.AddLine(ctx, service.AddLineInput{
		Product:  entities.Product{ID: "Y", Price: 500},
		Variant:  &entities.Variant{ID: "red", Name: "Red"},
		Quantity: 1,
	})
	require.NoError(t, err)
	_, err = carts.SelectAll(ctx)
	require.NoError(t, err)

	order, err := orders.Checkout(ctx, service.CreateOrderInput{
		Customer:      validCustomer(),
		PaymentMethod: entities.PaymentCashOnDelivery,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2500), order.Pricing.Subtotal)
	assert.Equal(t, int64(30000), order.Pricing.ShippingFee)
	assert.Equal(t, int64(0), order.Pricing.Discount)
	assert.Equal(t, int64(32500), order.Pricing.Total)
	assert.Equal(t, entities.StatusPending, order.Status)
	assert.Len(t, order.Lines, 2)
	assert.True(t, strings.HasPrefix(order.ID, "ORD-"+order.CreatedAt.Format("20060102")+"-"))

	cart, err := carts.GetCart(ctx)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	stored, err := orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Pricing, stored.Pricing)
}

func TestOrderService_CheckoutOnlyTakesSelectedLines(t *testing.T) {
	store := memory.NewStore()
	carts := service.NewCartService(discardLogger(), identity.NewContextProvider(), store)
	orders := service.NewOrderService(discardLogger(), memoryOrderDeps(store, carts))
	ctx := asUser("u1")

	_, err := carts.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 1})
	require.NoError(t, err)
	cart, err := carts.AddLine(ctx, service.AddLineInput{Product: productY, Quantity: 1})
	require.NoError(t, err)
	_, err = carts.SetSelected(ctx, lineFor(t, cart, "Y", "").ID, false)
	require.NoError(t, err)

	order, err := orders.Checkout(ctx, service.CreateOrderInput{
		Customer:      validCustomer(),
		PaymentMethod: entities.PaymentCashOnDelivery,
		DiscountCode:  " save10 ",
	})
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "X", order.Lines[0].ProductID)
	assert.Equal(t, int64(100), order.Pricing.Discount)
	assert.Equal(t, int64(1000+30000-100), order.Pricing.Total)

	cart, err = carts.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Y", cart.Lines[0].ProductID)

	_, err = carts.DeselectAll(ctx)
	require.NoError(t, err)
	_, err = orders.Checkout(ctx, service.CreateOrderInput{Customer: validCustomer(), PaymentMethod: entities.PaymentCashOnDelivery})
	assert.ErrorIs(t, err, entities.ErrEmptySelection)
}

func TestOrderService_CancelOrder(t *testing.T) {
	testCases := []struct {
		from    entities.OrderStatus
		wantErr error
	}{
		{from: entities.StatusPending},
		{from: entities.StatusConfirmed},
		{from: entities.StatusShipping, wantErr: entities.ErrInvalidTransition},
		{from: entities.StatusDelivered, wantErr: entities.ErrInvalidTransition},
		{from: entities.StatusCancelled, wantErr: entities.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String(), func(t *testing.T) {
			store := memory.NewStore()
			orders := service.NewOrderService(discardLogger(), memoryOrderDeps(store, nil))
			seedOrder(store, "o1", "u1", tc.from, entities.PaymentCashOnDelivery)

			order, err := orders.CancelOrder(asUser("u1"), "o1", "changed my mind")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				stored, err := store.GetOrderByID(context.Background(), "o1")
				require.NoError(t, err)
				assert.Equal(t, tc.from, stored.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, order.Status)
			last := order.History[len(order.History)-1]
			assert.Equal(t, entities.StatusCancelled, last.Status)
			assert.Equal(t, "changed my mind", last.Note)
		})
	}
}

func TestOrderService_CancelOrderOfAnotherUser(t *testing.T) {
	store := memory.NewStore()
	orders := service.NewOrderService(discardLogger(), memoryOrderDeps(store, nil))
	seedOrder(store, "o1", "u1", entities.StatusPending, entities.PaymentCashOnDelivery)

	_, err := orders.CancelOrder(asUser("u2"), "o1", "")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	_, err = orders.GetOrder(asUser("u2"), "o1")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_UpdateStatusWalksTheLifecycle(t *testing.T) {
	store := memory.NewStore()
	orders := service.NewOrderService(discardLogger(), memoryOrderDeps(store, nil))
	seedOrder(store, "o1", "u1", entities.StatusPending, entities.PaymentCashOnDelivery)
	ctx := context.Background()

	for _, target := range []entities.OrderStatus{entities.StatusConfirmed, entities.StatusShipping, entities.StatusDelivered} {
		_, err := orders.UpdateStatus(ctx, "o1", target, "")
		require.NoError(t, err, target)
	}

	order, err := orders.GetOrder(asUser("u1"), "o1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDelivered, order.Status)
	require.Len(t, order.History, 4)
	assert.Equal(t, "order delivered", order.History[3].Note)

	_, err = orders.UpdateStatus(ctx, "o1", entities.StatusPending, "")
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = orders.UpdateStatus(ctx, "o1", "lost", "")
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = orders.UpdateStatus(ctx, "missing", entities.StatusConfirmed, "")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_TransitionUpdateFails(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	events := mocks.NewMockEventPublisher(t)
	tx := txMocks.NewMockManager(t)

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			})

	dbError := errors.New("db error")
	repo.EXPECT().GetOrderForUpdate(mock.Anything, "o1").
		Return(entities.Order{ID: "o1", UserID: "u1", Status: entities.StatusPending}, nil).Once()
	repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(dbError).Once()

	svc := service.NewOrderService(discardLogger(), service.OrderServiceDeps{
		Identity:  identity.NewContextProvider(),
		TxManager: tx,
		Repo:      repo,
		Cache:     cache,
		Events:    events,
	})

	_, err := svc.CancelOrder(asUser("u1"), "o1", "")
	assert.ErrorIs(t, err, dbError)
}

func TestOrderService_LookupOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "o1", UserID: "u1", Status: entities.StatusConfirmed, Version: 2}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	staleOrder := entities.Order{ID: "o1", UserID: "u1", Status: entities.StatusPending, Version: 1}
	staleData, err := staleOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		want         entities.Order
		wantErr      error
	}{
		{
			name:    "success from cache",
			orderID: "o1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(validData, true).Once()
				repo.EXPECT().GetOrderVersion(mock.Anything, "o1").Return(int64(2), nil).Once()
			},
			want: validOrder,
		},
		{
			name:    "stale cache entry is reloaded",
			orderID: "o1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(staleData, true).Once()
				repo.EXPECT().GetOrderVersion(mock.Anything, "o1").Return(int64(2), nil).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "cached order deleted from store",
			orderID: "o1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(validData, true).Once()
				repo.EXPECT().GetOrderVersion(mock.Anything, "o1").Return(int64(0), entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "o1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "broken cache entry falls back to repo",
			orderID: "o1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: "missing",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("missing").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "missing").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "store failure is not retried",
			orderID: "o1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(entities.Order{}, errors.New("connection reset")).Once()
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(discardLogger(), service.OrderServiceDeps{
				Identity: identity.NewContextProvider(),
				Repo:     repo,
				Cache:    cache,
			})

			got, err := svc.LookupOrder(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_Reorder(t *testing.T) {
	store := memory.NewStore()
	orders := service.NewOrderService(discardLogger(), memoryOrderDeps(store, nil))
	source := seedOrder(store, "o1", "u1", entities.StatusDelivered, entities.PaymentEWallet)

	order, err := orders.Reorder(asUser("u1"), "o1")
	require.NoError(t, err)

	assert.NotEqual(t, source.ID, order.ID)
	assert.Equal(t, entities.StatusPending, order.Status)
	assert.Equal(t, source.Lines, order.Lines)
	assert.Equal(t, source.Customer, order.Customer)
	assert.Equal(t, entities.PaymentEWallet, order.Payment.Method)
	assert.Equal(t, entities.PaymentPending, order.Payment.Status)
	assert.Equal(t, int64(32500), order.Pricing.Total)

	list, err := orders.ListOrders(asUser("u1"))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = orders.Reorder(asUser("u2"), "o1")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_WarmUpCache(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)

	orders := []entities.Order{{ID: "o1"}, {ID: "o2"}}
	repo.EXPECT().ListRecentOrders(mock.Anything, 10).Return(orders, nil).Once()
	cache.EXPECT().Set("o1", mock.Anything).Return().Once()
	cache.EXPECT().Set("o2", mock.Anything).Return().Once()

	svc := service.NewOrderService(discardLogger(), service.OrderServiceDeps{Repo: repo, Cache: cache})
	require.NoError(t, svc.WarmUpCache(context.Background(), 10))

	repo.EXPECT().ListRecentOrders(mock.Anything, 5).Return(nil, errors.New("db error")).Once()
	assert.Error(t, svc.WarmUpCache(context.Background(), 5))
}
