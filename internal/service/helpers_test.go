package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/events"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/SergeyBogomolovv/shop-order-core/internal/pricing"
	"github.com/SergeyBogomolovv/shop-order-core/internal/repo/memory"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/cache"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/trm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func asUser(userID string) context.Context {
	return identity.WithUser(context.Background(), userID, "customer")
}

func memoryOrderDeps(store *memory.Store, carts service.CartStore) service.OrderServiceDeps {
	return service.OrderServiceDeps{
		Identity:  identity.NewContextProvider(),
		TxManager: trm.NewMemoryManager(),
		Repo:      store,
		Carts:     carts,
		Addresses: store,
		Pricer:    pricing.NewEngine(pricing.DefaultShippingFee),
		Cache:     cache.NewLRUCache(100, time.Minute),
		Events:    events.NewLogPublisher(discardLogger()),
		LeadTime:  72 * time.Hour,
	}
}

func validCustomer() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:    "Jane Doe",
		Phone:   "+15550100",
		Email:   "jane@example.com",
		Address: "1 Main St",
	}
}

// seedOrder stores an order in the given status directly, bypassing checkout.
func seedOrder(store *memory.Store, id, userID string, status entities.OrderStatus, method entities.PaymentMethod) entities.Order {
	now := time.Now().UTC()
	order := entities.Order{
		ID:       id,
		UserID:   userID,
		Customer: validCustomer(),
		Lines: []entities.OrderLine{
			{ProductID: "X", ProductName: "Product X", UnitPrice: 1000, Quantity: 2},
			{ProductID: "Y", VariantID: "red", VariantName: "Red", ProductName: "Product Y", UnitPrice: 500, Quantity: 1},
		},
		Pricing: entities.PricingSnapshot{Subtotal: 2500, ShippingFee: 30000, Total: 32500},
		Payment: entities.PaymentRecord{Method: method, Status: entities.PaymentPending},
		Status:  status,
		History: []entities.StatusHistoryEntry{{Status: status, Timestamp: now}},

		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.CreateOrder(context.Background(), order); err != nil {
		panic(err)
	}
	return order
}

func newSeededStore(t interface{ Helper() }) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	seedOrder(store, "o1", "u1", entities.StatusPending, entities.PaymentBankTransfer)
	return store
}
