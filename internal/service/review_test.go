package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/events"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/SergeyBogomolovv/shop-order-core/internal/repo/memory"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-order-core/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderLookup(store *memory.Store) service.OrderLookup {
	return service.NewOrderService(discardLogger(), memoryOrderDeps(store, nil))
}

func validReview() service.SubmitReviewInput {
	return service.SubmitReviewInput{
		OrderID:   "o1",
		ProductID: "Y",
		Rating:    5,
		Comment:   "Fits well and arrived quickly",
		Images:    []string{"https://img.example.com/1.jpg"},
	}
}

func TestReviewService_SubmitReviewExactlyOnce(t *testing.T) {
	store := memory.NewStore()
	seedOrder(store, "o1", "u1", entities.StatusDelivered, entities.PaymentCashOnDelivery)
	svc := service.NewReviewService(discardLogger(), identity.NewContextProvider(), store, orderLookup(store), events.NewLogPublisher(discardLogger()))
	ctx := asUser("u1")

	review, err := svc.SubmitReview(ctx, validReview())
	require.NoError(t, err)
	assert.True(t, review.VerifiedPurchase)
	assert.Equal(t, "Red", review.VariantName)
	assert.Equal(t, "u1", review.UserID)
	assert.NotEmpty(t, review.ID)

	for range 3 {
		_, err = svc.SubmitReview(ctx, validReview())
		assert.ErrorIs(t, err, entities.ErrAlreadyReviewed)
	}

	in := validReview()
	in.ProductID = "X"
	_, err = svc.SubmitReview(ctx, in)
	assert.ErrorIs(t, err, entities.ErrAlreadyReviewed)

	stored, err := store.ListReviewsByProduct(context.Background(), "Y")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestReviewService_ConcurrentSubmitStoresOne(t *testing.T) {
	store := memory.NewStore()
	seedOrder(store, "o1", "u1", entities.StatusDelivered, entities.PaymentCashOnDelivery)
	svc := service.NewReviewService(discardLogger(), identity.NewContextProvider(), store, orderLookup(store), events.NewLogPublisher(discardLogger()))
	ctx := asUser("u1")

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitReview(ctx, validReview())
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, entities.ErrAlreadyReviewed)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	stored, err := store.ListReviewsByProduct(context.Background(), "Y")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestReviewService_SubmitReviewValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(in *service.SubmitReviewInput)
	}{
		{name: "rating below range", mutate: func(in *service.SubmitReviewInput) { in.Rating = 0 }},
		{name: "rating above range", mutate: func(in *service.SubmitReviewInput) { in.Rating = 6 }},
		{name: "comment too short", mutate: func(in *service.SubmitReviewInput) { in.Comment = "too short" }},
		{name: "comment short after trim", mutate: func(in *service.SubmitReviewInput) { in.Comment = "   nine  c   " }},
		{name: "comment too long", mutate: func(in *service.SubmitReviewInput) { in.Comment = strings.Repeat("é", 1001) }},
		{name: "too many images", mutate: func(in *service.SubmitReviewInput) { in.Images = make([]string, 6) }},
		{name: "blank image", mutate: func(in *service.SubmitReviewInput) { in.Images = []string{" "} }},
		{name: "blank order id", mutate: func(in *service.SubmitReviewInput) { in.OrderID = " " }},
		{name: "blank product id", mutate: func(in *service.SubmitReviewInput) { in.ProductID = "" }},
		{name: "product not in order", mutate: func(in *service.SubmitReviewInput) { in.ProductID = "Z" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore()
			seedOrder(store, "o1", "u1", entities.StatusDelivered, entities.PaymentCashOnDelivery)
			svc := service.NewReviewService(discardLogger(), identity.NewContextProvider(), store, orderLookup(store), events.NewLogPublisher(discardLogger()))

			in := validReview()
			tc.mutate(&in)

			_, err := svc.SubmitReview(asUser("u1"), in)
			assert.ErrorIs(t, err, entities.ErrInvalidReview)

			stored, err := store.ListReviewsByProduct(context.Background(), in.ProductID)
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestReviewService_CommentBoundsAreInclusive(t *testing.T) {
	for _, comment := range []string{strings.Repeat("a", entities.MinCommentLength), strings.Repeat("ж", entities.MaxCommentLength)} {
		store := memory.NewStore()
		seedOrder(store, "o1", "u1", entities.StatusDelivered, entities.PaymentCashOnDelivery)
		svc := service.NewReviewService(discardLogger(), identity.NewContextProvider(), store, orderLookup(store), events.NewLogPublisher(discardLogger()))

		in := validReview()
		in.Comment = comment
		_, err := svc.SubmitReview(asUser("u1"), in)
		assert.NoError(t, err)
	}
}

func TestReviewService_Eligibility(t *testing.T) {
	testCases := []struct {
		name       string
		status     entities.OrderStatus
		ctx        context.Context
		orderID    string
		reviewed   bool
		want       bool
		wantErr    error
		wantSubmit error
	}{
		{name: "delivered and unreviewed", status: entities.StatusDelivered, ctx: asUser("u1"), orderID: "o1", want: true},
		{name: "delivered and reviewed", status: entities.StatusDelivered, ctx: asUser("u1"), orderID: "o1", reviewed: true, wantSubmit: entities.ErrAlreadyReviewed},
		{name: "still shipping", status: entities.StatusShipping, ctx: asUser("u1"), orderID: "o1", wantSubmit: entities.ErrOrderNotReviewable},
		{name: "cancelled", status: entities.StatusCancelled, ctx: asUser("u1"), orderID: "o1", wantSubmit: entities.ErrOrderNotReviewable},
		{name: "another user", status: entities.StatusDelivered, ctx: asUser("u2"), orderID: "o1", wantErr: entities.ErrOrderNotFound, wantSubmit: entities.ErrOrderNotFound},
		{name: "missing order", status: entities.StatusDelivered, ctx: asUser("u1"), orderID: "nope", wantErr: entities.ErrOrderNotFound, wantSubmit: entities.ErrOrderNotFound},
		{name: "unauthenticated", status: entities.StatusDelivered, ctx: context.Background(), orderID: "o1", wantErr: entities.ErrUnauthenticated, wantSubmit: entities.ErrUnauthenticated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore()
			seedOrder(store, "o1", "u1", tc.status, entities.PaymentCashOnDelivery)
			svc := service.NewReviewService(discardLogger(), identity.NewContextProvider(), store, orderLookup(store), events.NewLogPublisher(discardLogger()))
			if tc.reviewed {
				_, err := svc.SubmitReview(asUser("u1"), validReview())
				require.NoError(t, err)
			}

			ok, err := svc.CheckCanReview(tc.ctx, tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, ok)

			in := validReview()
			in.OrderID = tc.orderID
			_, err = svc.SubmitReview(tc.ctx, in)
			if tc.wantSubmit != nil {
				assert.ErrorIs(t, err, tc.wantSubmit)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_LostInsertRace(t *testing.T) {
	repo := mocks.NewMockReviewRepo(t)
	orders := mocks.NewMockOrderLookup(t)
	publisher := mocks.NewMockEventPublisher(t)

	orders.EXPECT().LookupOrder(mock.Anything, "o1").Return(entities.Order{
		ID:     "o1",
		UserID: "u1",
		Status: entities.StatusDelivered,
		Lines:  []entities.OrderLine{{ProductID: "Y", Quantity: 1}},
	}, nil).Once()
	repo.EXPECT().GetReviewByOrderID(mock.Anything, "o1").Return(entities.Review{}, entities.ErrReviewNotFound).Once()
	repo.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(entities.ErrAlreadyReviewed).Once()

	svc := service.NewReviewService(discardLogger(), identity.NewContextProvider(), repo, orders, publisher)

	_, err := svc.SubmitReview(asUser("u1"), validReview())
	assert.ErrorIs(t, err, entities.ErrAlreadyReviewed)
}

func TestReviewService_SubmitReviewWithoutImages(t *testing.T) {
	repo := mocks.NewMockReviewRepo(t)
	orders := mocks.NewMockOrderLookup(t)
	publisher := mocks.NewMockEventPublisher(t)

	orders.EXPECT().LookupOrder(mock.Anything, "o1").Return(entities.Order{
		ID:     "o1",
		UserID: "u1",
		Status: entities.StatusDelivered,
		Lines:  []entities.OrderLine{{ProductID: "Y", Quantity: 1}},
	}, nil).Once()
	repo.EXPECT().GetReviewByOrderID(mock.Anything, "o1").Return(entities.Review{}, entities.ErrReviewNotFound).Once()
	repo.EXPECT().CreateReview(mock.Anything, mock.MatchedBy(func(r entities.Review) bool {
		return r.Images != nil && len(r.Images) == 0
	})).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return().Once()

	svc := service.NewReviewService(discardLogger(), identity.NewContextProvider(), repo, orders, publisher)

	in := validReview()
	in.Images = nil
	review, err := svc.SubmitReview(asUser("u1"), in)
	require.NoError(t, err)
	assert.NotNil(t, review.Images)
	assert.Empty(t, review.Images)
}

// Each instance has its own cache; a transition made through one must be
// visible to the review gate of the other.
func TestReviewService_SeesTransitionsFromAnotherInstance(t *testing.T) {
	store := memory.NewStore()
	seedOrder(store, "o1", "u1", entities.StatusShipping, entities.PaymentCashOnDelivery)

	ordersA := service.NewOrderService(discardLogger(), memoryOrderDeps(store, nil))
	ordersB := service.NewOrderService(discardLogger(), memoryOrderDeps(store, nil))
	reviewsB := service.NewReviewService(discardLogger(), identity.NewContextProvider(), store, ordersB, events.NewLogPublisher(discardLogger()))
	ctx := asUser("u1")

	before, err := ordersB.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusShipping, before.Status)
	ok, err := reviewsB.CheckCanReview(ctx, "o1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ordersA.UpdateStatus(context.Background(), "o1", entities.StatusDelivered, "")
	require.NoError(t, err)

	after, err := ordersB.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDelivered, after.Status)
	assert.Equal(t, before.Version+1, after.Version)

	ok, err = reviewsB.CheckCanReview(ctx, "o1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = reviewsB.SubmitReview(ctx, validReview())
	assert.NoError(t, err)
}

func TestReviewService_ReadPaths(t *testing.T) {
	store := memory.NewStore()
	seedOrder(store, "o1", "u1", entities.StatusDelivered, entities.PaymentCashOnDelivery)
	seedOrder(store, "o2", "u2", entities.StatusDelivered, entities.PaymentCashOnDelivery)
	svc := service.NewReviewService(discardLogger(), identity.NewContextProvider(), store, orderLookup(store), events.NewLogPublisher(discardLogger()))

	_, err := svc.GetOrderReview(asUser("u1"), "o1")
	assert.ErrorIs(t, err, entities.ErrReviewNotFound)

	first := validReview()
	first.Rating = 4
	_, err = svc.SubmitReview(asUser("u1"), first)
	require.NoError(t, err)

	second := validReview()
	second.OrderID = "o2"
	second.Rating = 1
	_, err = svc.SubmitReview(asUser("u2"), second)
	require.NoError(t, err)

	review, err := svc.GetOrderReview(asUser("u1"), "o1")
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	_, err = svc.GetOrderReview(asUser("u2"), "o1")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	reviews, summary, err := svc.ListProductReviews(context.Background(), "Y")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, 2, summary.TotalCount)
	assert.InDelta(t, 2.5, summary.AverageRating, 1e-9)
}
