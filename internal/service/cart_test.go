package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/SergeyBogomolovv/shop-order-core/internal/repo/memory"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-order-core/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	productX = entities.Product{ID: "X", Name: "Product X", Price: 1000, Category: "shoes"}
	productY = entities.Product{ID: "Y", Name: "Product Y", Price: 500}
	variantA = &entities.Variant{ID: "a", Name: "A"}
	variantB = &entities.Variant{ID: "b", Name: "B", Price: 1200}
)

func lineFor(t *testing.T, cart entities.Cart, productID, variantID string) entities.CartLine {
	t.Helper()
	for _, l := range cart.Lines {
		if l.ProductID == productID && l.VariantID == variantID {
			return l
		}
	}
	t.Fatalf("no line for product %s variant %q", productID, variantID)
	return entities.CartLine{}
}

func TestCartService_AddLine(t *testing.T) {
	testCases := []struct {
		name      string
		adds      []service.AddLineInput
		wantLines int
		wantQty   map[string]int
		wantErr   error
	}{
		{
			name: "same product merges",
			adds: []service.AddLineInput{
				{Product: productX, Quantity: 2},
				{Product: productX, Quantity: 3},
			},
			wantLines: 1,
			wantQty:   map[string]int{"": 5},
		},
		{
			name: "different variants stay separate",
			adds: []service.AddLineInput{
				{Product: productX, Variant: variantA, Quantity: 1},
				{Product: productX, Variant: variantB, Quantity: 1},
			},
			wantLines: 2,
			wantQty:   map[string]int{"a": 1, "b": 1},
		},
		{
			name: "no variant does not merge with a variant",
			adds: []service.AddLineInput{
				{Product: productX, Quantity: 1},
				{Product: productX, Variant: variantA, Quantity: 4},
			},
			wantLines: 2,
			wantQty:   map[string]int{"": 1, "a": 4},
		},
		{
			name:    "zero quantity rejected",
			adds:    []service.AddLineInput{{Product: productX, Quantity: 0}},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name:    "negative quantity rejected",
			adds:    []service.AddLineInput{{Product: productX, Quantity: -1}},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name:    "missing product id rejected",
			adds:    []service.AddLineInput{{Product: entities.Product{Name: "nameless"}, Quantity: 1}},
			wantErr: entities.ErrInvalidProduct,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())
			ctx := asUser("u1")

			var (
				cart entities.Cart
				err  error
			)
			for _, in := range tc.adds {
				cart, err = svc.AddLine(ctx, in)
				if err != nil {
					break
				}
			}

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, cart.Lines, tc.wantLines)
			for variantID, q := range tc.wantQty {
				assert.Equal(t, q, lineFor(t, cart, "X", variantID).Quantity)
			}
		})
	}
}

func TestCartService_VariantPriceOverride(t *testing.T) {
	svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())

	cart, err := svc.AddLine(asUser("u1"), service.AddLineInput{Product: productX, Variant: variantB, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1200), cart.Lines[0].UnitPrice)
	assert.Equal(t, int64(2400), cart.TotalPrice())
	assert.True(t, cart.Lines[0].Selected)
}

func TestCartService_ConcurrentAddsMerge(t *testing.T) {
	svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())
	ctx := asUser("u1")

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := svc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, n, cart.Lines[0].Quantity)
}

func TestCartService_Unauthenticated(t *testing.T) {
	svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())
	ctx := context.Background()

	_, err := svc.GetCart(ctx)
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)

	_, err = svc.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 1})
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)

	_, err = svc.SelectAll(ctx)
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)

	_, err = svc.Clear(ctx)
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)
}

func TestCartService_SetQuantity(t *testing.T) {
	svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())
	ctx := asUser("u1")

	cart, err := svc.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 1})
	require.NoError(t, err)
	lineID := cart.Lines[0].ID

	cart, err = svc.SetQuantity(ctx, lineID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Lines[0].Quantity)

	cart, err = svc.SetQuantity(ctx, lineID, 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	_, err = svc.SetQuantity(ctx, lineID, 3)
	assert.ErrorIs(t, err, entities.ErrCartLineNotFound)
}

func TestCartService_LinesAreScopedToUser(t *testing.T) {
	svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())

	cart, err := svc.AddLine(asUser("u1"), service.AddLineInput{Product: productX, Quantity: 1})
	require.NoError(t, err)
	lineID := cart.Lines[0].ID

	other, err := svc.GetCart(asUser("u2"))
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	_, err = svc.RemoveLine(asUser("u2"), lineID)
	assert.ErrorIs(t, err, entities.ErrCartLineNotFound)

	_, err = svc.SetSelected(asUser("u2"), lineID, false)
	assert.ErrorIs(t, err, entities.ErrCartLineNotFound)
}

func TestCartService_Selection(t *testing.T) {
	svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())
	ctx := asUser("u1")

	_, err := svc.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.AddLine(ctx, service.AddLineInput{Product: productY, Quantity: 1})
	require.NoError(t, err)

	cart, err = svc.SetSelected(ctx, lineFor(t, cart, "Y", "").ID, false)
	require.NoError(t, err)

	selected, err := svc.SelectedLines(ctx)
	require.NoError(t, err)
	require.Len(t, selected.Lines, 1)
	assert.Equal(t, "X", selected.Lines[0].ProductID)

	cart, err = svc.DeselectAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Selected().Lines)

	cart, err = svc.SelectAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Selected().Lines, 2)
	assert.Equal(t, 3, cart.TotalQuantity())
	assert.Equal(t, int64(2500), cart.TotalPrice())
}

func TestCartService_ClearLines(t *testing.T) {
	svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())
	ctx := asUser("u1")

	_, err := svc.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 1})
	require.NoError(t, err)
	cart, err := svc.AddLine(ctx, service.AddLineInput{Product: productY, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.ClearLines(context.Background(), "u1", []string{lineFor(t, cart, "X", "").ID}))

	cart, err = svc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Y", cart.Lines[0].ProductID)

	cart, err = svc.Clear(ctx)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_Subscribe(t *testing.T) {
	svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), memory.NewStore())
	ctx := asUser("u1")

	var got []entities.Cart
	unsubscribe := svc.Subscribe(func(cart entities.Cart) {
		got = append(got, cart)
	})

	_, err := svc.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 1})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[1].UserID)
	assert.Equal(t, 2, got[1].TotalQuantity())

	unsubscribe()
	_, err = svc.Clear(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

type cartWriter interface {
	AddLine(ctx context.Context, in service.AddLineInput) (entities.Cart, error)
	Clear(ctx context.Context) (entities.Cart, error)
}

func TestCartService_StoreFailures(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCartRepo)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		call         func(ctx context.Context, svc cartWriter) error
		mockBehavior MockBehavior
	}{
		{
			name: "upsert fails",
			call: func(ctx context.Context, svc cartWriter) error {
				_, err := svc.AddLine(ctx, service.AddLineInput{Product: productX, Quantity: 1})
				return err
			},
			mockBehavior: func(repo *mocks.MockCartRepo) {
				repo.EXPECT().UpsertLine(mock.Anything, mock.Anything).Return(entities.CartLine{}, dbError).Once()
			},
		},
		{
			name: "reload fails after write",
			call: func(ctx context.Context, svc cartWriter) error {
				_, err := svc.Clear(ctx)
				return err
			},
			mockBehavior: func(repo *mocks.MockCartRepo) {
				repo.EXPECT().DeleteAllLines(mock.Anything, "u1").Return(nil).Once()
				repo.EXPECT().ListLines(mock.Anything, "u1").Return(nil, dbError).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCartRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewCartService(discardLogger(), identity.NewContextProvider(), repo)

			err := tc.call(asUser("u1"), svc)
			assert.ErrorIs(t, err, dbError)
		})
	}
}
