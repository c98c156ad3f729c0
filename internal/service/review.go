package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/google/uuid"
)

type ReviewRepo interface {
	// CreateReview returns ErrAlreadyReviewed when the order already has a review.
	CreateReview(ctx context.Context, r entities.Review) error
	GetReviewByOrderID(ctx context.Context, orderID string) (entities.Review, error)
	ListReviewsByProduct(ctx context.Context, productID string) ([]entities.Review, error)
}

type OrderLookup interface {
	LookupOrder(ctx context.Context, orderID string) (entities.Order, error)
}

type SubmitReviewInput struct {
	OrderID   string
	ProductID string
	Rating    int
	Comment   string
	Images    []string
}

type reviewService struct {
	logger   *slog.Logger
	identity identity.Provider
	repo     ReviewRepo
	orders   OrderLookup
	events   EventPublisher
}

func NewReviewService(logger *slog.Logger, ident identity.Provider, repo ReviewRepo, orders OrderLookup, events EventPublisher) *reviewService {
	return &reviewService{
		logger:   logger.With(slog.String("service", "review")),
		identity: ident,
		repo:     repo,
		orders:   orders,
		events:   events,
	}
}

// SubmitReview stores the single review allowed for a delivered order.
func (s *reviewService) SubmitReview(ctx context.Context, in SubmitReviewInput) (entities.Review, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Review{}, err
	}

	comment := strings.TrimSpace(in.Comment)
	if err := validateReview(in, comment); err != nil {
		return entities.Review{}, err
	}

	order, err := s.reviewableOrder(ctx, userID, in.OrderID)
	if err != nil {
		return entities.Review{}, err
	}
	line, ok := order.Line(in.ProductID)
	if !ok {
		return entities.Review{}, fmt.Errorf("%w: product %s is not part of order %s", entities.ErrInvalidReview, in.ProductID, in.OrderID)
	}

	switch _, err := s.repo.GetReviewByOrderID(ctx, in.OrderID); {
	case err == nil:
		return entities.Review{}, entities.ErrAlreadyReviewed
	case !errors.Is(err, entities.ErrReviewNotFound):
		return entities.Review{}, fmt.Errorf("failed to check existing review: %w", err)
	}

	review := entities.Review{
		ID:               uuid.NewString(),
		OrderID:          in.OrderID,
		UserID:           userID,
		ProductID:        in.ProductID,
		VariantName:      line.VariantName,
		Rating:           in.Rating,
		Comment:          comment,
		Images:           append(make([]string, 0, len(in.Images)), in.Images...),
		VerifiedPurchase: true,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, entities.ErrAlreadyReviewed) {
			return entities.Review{}, err
		}
		return entities.Review{}, fmt.Errorf("failed to save review: %w", err)
	}

	s.logger.Info("review submitted",
		slog.String("order_id", review.OrderID),
		slog.String("product_id", review.ProductID),
		slog.Int("rating", review.Rating),
	)
	s.events.Publish(ctx, entities.Event{
		Type:       entities.EventReviewSubmitted,
		Key:        review.OrderID,
		UserID:     userID,
		OccurredAt: review.CreatedAt,
		Data: map[string]any{
			"review_id":  review.ID,
			"order_id":   review.OrderID,
			"product_id": review.ProductID,
			"rating":     review.Rating,
		},
	})
	return review, nil
}

// CheckCanReview reports whether SubmitReview could succeed for the order right now.
func (s *reviewService) CheckCanReview(ctx context.Context, orderID string) (bool, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return false, err
	}

	if _, err := s.reviewableOrder(ctx, userID, orderID); err != nil {
		if errors.Is(err, entities.ErrOrderNotReviewable) {
			return false, nil
		}
		return false, err
	}

	_, err = s.repo.GetReviewByOrderID(ctx, orderID)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, entities.ErrReviewNotFound):
		return true, nil
	default:
		return false, fmt.Errorf("failed to check existing review: %w", err)
	}
}

func (s *reviewService) GetOrderReview(ctx context.Context, orderID string) (entities.Review, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Review{}, err
	}

	order, err := s.orders.LookupOrder(ctx, orderID)
	if err != nil {
		return entities.Review{}, err
	}
	if order.UserID != userID {
		return entities.Review{}, entities.ErrOrderNotFound
	}
	return s.repo.GetReviewByOrderID(ctx, orderID)
}

// ListProductReviews is public and needs no identity.
func (s *reviewService) ListProductReviews(ctx context.Context, productID string) ([]entities.Review, entities.ReviewSummary, error) {
	reviews, err := s.repo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, entities.ReviewSummary{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, entities.SummarizeReviews(reviews), nil
}

func (s *reviewService) reviewableOrder(ctx context.Context, userID, orderID string) (entities.Order, error) {
	order, err := s.orders.LookupOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if order.Status != entities.StatusDelivered {
		return entities.Order{}, fmt.Errorf("%w: order is %s", entities.ErrOrderNotReviewable, order.Status)
	}
	return order, nil
}

func validateReview(in SubmitReviewInput, comment string) error {
	switch {
	case strings.TrimSpace(in.OrderID) == "":
		return fmt.Errorf("%w: order id is required", entities.ErrInvalidReview)
	case strings.TrimSpace(in.ProductID) == "":
		return fmt.Errorf("%w: product id is required", entities.ErrInvalidReview)
	case in.Rating < entities.MinRating || in.Rating > entities.MaxRating:
		return fmt.Errorf("%w: rating must be between %d and %d", entities.ErrInvalidReview, entities.MinRating, entities.MaxRating)
	}

	if n := utf8.RuneCountInString(comment); n < entities.MinCommentLength || n > entities.MaxCommentLength {
		return fmt.Errorf("%w: comment must be %d to %d characters", entities.ErrInvalidReview, entities.MinCommentLength, entities.MaxCommentLength)
	}
	if len(in.Images) > entities.MaxReviewImages {
		return fmt.Errorf("%w: at most %d images", entities.ErrInvalidReview, entities.MaxReviewImages)
	}
	for _, img := range in.Images {
		if strings.TrimSpace(img) == "" {
			return fmt.Errorf("%w: blank image url", entities.ErrInvalidReview)
		}
	}
	return nil
}
