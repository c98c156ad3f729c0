package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/repo/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrders(t *testing.T, store *memory.Store, n int) {
	t.Helper()
	base := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	for i := range n {
		at := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.CreateOrder(context.Background(), entities.Order{
			ID:        fmt.Sprintf("o%d", i+1),
			UserID:    "u1",
			Status:    entities.StatusPending,
			CreatedAt: at,
			UpdatedAt: at,
		}))
	}
}

func TestStore_ListRecentOrders(t *testing.T) {
	store := memory.NewStore()
	seedOrders(t, store, 3)

	testCases := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "newest first", limit: 2, want: []string{"o3", "o2"}},
		{name: "limit above size", limit: 10, want: []string{"o3", "o2", "o1"}},
		{name: "zero", limit: 0, want: []string{}},
		{name: "negative", limit: -1, want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, err := store.ListRecentOrders(context.Background(), tc.limit)
			require.NoError(t, err)

			ids := make([]string, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestStore_GetOrderVersion(t *testing.T) {
	store := memory.NewStore()
	seedOrders(t, store, 1)
	ctx := context.Background()

	version, err := store.GetOrderVersion(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	order, err := store.GetOrderByID(ctx, "o1")
	require.NoError(t, err)
	order.Status = entities.StatusConfirmed
	order.Version++
	require.NoError(t, store.UpdateOrder(ctx, order))

	version, err = store.GetOrderVersion(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = store.GetOrderVersion(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
