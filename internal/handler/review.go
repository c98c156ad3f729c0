package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, in service.SubmitReviewInput) (entities.Review, error)
	CheckCanReview(ctx context.Context, orderID string) (bool, error)
	GetOrderReview(ctx context.Context, orderID string) (entities.Review, error)
	ListProductReviews(ctx context.Context, productID string) ([]entities.Review, entities.ReviewSummary, error)
}

type ReviewHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ReviewService
}

func NewReviewHandler(logger *slog.Logger, svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		logger:   logger.With(slog.String("handler", "review")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *ReviewHandler) Init(r chi.Router) {
	r.Get("/orders/{order_id}/review", h.GetOrderReview)
	r.Get("/orders/{order_id}/review/eligibility", h.CheckCanReview)
	r.Post("/orders/{order_id}/review", h.SubmitReview)
	r.Get("/products/{product_id}/reviews", h.ListProductReviews)
}

// SubmitReview stores the single review allowed for a delivered order.
// @Summary      Review order
// @Tags         reviews
// @Security     BearerAuth
// @Param        order_id  path      string         true  "Order ID"
// @Param        request   body      ReviewRequest  true  "Rating, comment and images"
// @Success      201  {object}  Review
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Already reviewed or not delivered"
// @Router       /orders/{order_id}/review [post]
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	review, err := h.svc.SubmitReview(r.Context(), req.ToInput(chi.URLParam(r, "order_id")))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "submit review")
		return
	}
	reviewsSubmitted.Inc()
	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}

// @Summary      Review eligibility
// @Tags         reviews
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order ID"
// @Success      200  {object}  Eligibility
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/review/eligibility [get]
func (h *ReviewHandler) CheckCanReview(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.CheckCanReview(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "check review eligibility")
		return
	}
	utils.WriteJSON(w, Eligibility{CanReview: ok}, http.StatusOK)
}

// @Summary      Get order review
// @Tags         reviews
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order ID"
// @Success      200  {object}  Review
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/review [get]
func (h *ReviewHandler) GetOrderReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.svc.GetOrderReview(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "get review")
		return
	}
	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusOK)
}

// ListProductReviews is public.
// @Summary      Product reviews
// @Tags         reviews
// @Param        product_id  path      string  true  "Product ID"
// @Success      200  {object}  ProductReviews
// @Router       /products/{product_id}/reviews [get]
func (h *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	reviews, summary, err := h.svc.ListProductReviews(r.Context(), chi.URLParam(r, "product_id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "list product reviews")
		return
	}

	res := ProductReviews{
		Reviews:       make([]Review, len(reviews)),
		AverageRating: summary.AverageRating,
		TotalCount:    summary.TotalCount,
	}
	for i, rv := range reviews {
		res.Reviews[i] = ReviewEntityToJSON(rv)
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
