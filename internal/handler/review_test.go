package handler_test

import (
	"encoding/json"
	"fmt"
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

func sampleReview() entities.Review {
	return entities.Review{
		ID:               "r1",
		OrderID:          "o1",
		ProductID:        "p1",
		UserID:           "u1",
		Rating:           5,
		Comment:          "Great mug",
		VerifiedPurchase: true,
		CreatedAt:        time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestReviewHandler_SubmitReview(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockReviewService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"product_id":"p1","rating":5,"comment":"Great mug"}`,
			mockBehavior: func(svc *mocks.MockReviewService) {
				svc.EXPECT().
					SubmitReview(mock.Anything, service.SubmitReviewInput{OrderID: "o1", ProductID: "p1", Rating: 5, Comment: "Great mug"}).
					Return(sampleReview(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"verified_purchase":true`,
		},
		{
			name:         "rating out of range",
			body:         `{"product_id":"p1","rating":6,"comment":"Great mug"}`,
			mockBehavior: func(svc *mocks.MockReviewService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"rating":"lte"`,
		},
		{
			name:         "too many images",
			body:         `{"product_id":"p1","rating":4,"comment":"ok","images":["http://a/1","http://a/2","http://a/3","http://a/4","http://a/5","http://a/6"]}`,
			mockBehavior: func(svc *mocks.MockReviewService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"images":"max"`,
		},
		{
			name: "second review",
			body: `{"product_id":"p1","rating":5,"comment":"Great mug"}`,
			mockBehavior: func(svc *mocks.MockReviewService) {
				svc.EXPECT().SubmitReview(mock.Anything, mock.Anything).Return(entities.Review{}, entities.ErrAlreadyReviewed).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order already reviewed"`,
		},
		{
			name: "not delivered",
			body: `{"product_id":"p1","rating":5,"comment":"Great mug"}`,
			mockBehavior: func(svc *mocks.MockReviewService) {
				svc.EXPECT().SubmitReview(mock.Anything, mock.Anything).Return(entities.Review{}, entities.ErrOrderNotReviewable).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "comment too short after trimming",
			body: `{"product_id":"p1","rating":5,"comment":"  "}`,
			mockBehavior: func(svc *mocks.MockReviewService) {
				svc.EXPECT().SubmitReview(mock.Anything, mock.Anything).
					Return(entities.Review{}, fmt.Errorf("%w: comment is empty", entities.ErrInvalidReview)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid review: comment is empty"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReviewService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, handler.NewReviewHandler(discardLogger(), svc), http.MethodPost, "/orders/o1/review", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestReviewHandler_CheckCanReview(t *testing.T) {
	testCases := []struct {
		name       string
		canReview  bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "eligible", canReview: true, wantStatus: http.StatusOK, wantBody: `{"can_review":true}`},
		{name: "not eligible", wantStatus: http.StatusOK, wantBody: `{"can_review":false}`},
		{name: "foreign order", err: entities.ErrOrderNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReviewService(t)
			svc.EXPECT().CheckCanReview(mock.Anything, "o1").Return(tc.canReview, tc.err).Once()

			status, body := serve(t, handler.NewReviewHandler(discardLogger(), svc), http.MethodGet, "/orders/o1/review/eligibility", "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestReviewHandler_ReadPaths(t *testing.T) {
	svc := mocks.NewMockReviewService(t)
	svc.EXPECT().GetOrderReview(mock.Anything, "o1").Return(sampleReview(), nil).Once()
	svc.EXPECT().GetOrderReview(mock.Anything, "o2").Return(entities.Review{}, entities.ErrReviewNotFound).Once()
	svc.EXPECT().ListProductReviews(mock.Anything, "p1").
		Return([]entities.Review{sampleReview()}, entities.ReviewSummary{AverageRating: 5, TotalCount: 1}, nil).Once()

	h := handler.NewReviewHandler(discardLogger(), svc)

	status, body := serve(t, h, http.MethodGet, "/orders/o1/review", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"images":[]`)

	status, _ = serve(t, h, http.MethodGet, "/orders/o2/review", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = serve(t, h, http.MethodGet, "/products/p1/reviews", "")
	require.Equal(t, http.StatusOK, status)
	var res handler.ProductReviews
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, 1, res.TotalCount)
	assert.InDelta(t, 5.0, res.AverageRating, 0.001)
	assert.Len(t, res.Reviews, 1)
}
