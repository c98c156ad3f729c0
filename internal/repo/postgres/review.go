package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var reviewColumns = []string{
	"id", "order_id", "user_id", "product_id", "variant_name",
	"rating", "comment", "images", "verified_purchase", "created_at",
}

// CreateReview relies on the unique index on order_id; a second review for
// the same order fails with ErrAlreadyReviewed even under concurrent writes.
func (r *postgresRepo) CreateReview(ctx context.Context, rv entities.Review) error {
	query, args := r.qb.Insert("reviews").
		Columns(reviewColumns...).
		Values(
			rv.ID, rv.OrderID, rv.UserID, rv.ProductID, nullString(rv.VariantName),
			rv.Rating, rv.Comment, textArray(rv.Images), rv.VerifiedPurchase, rv.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrAlreadyReviewed
	}
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetReviewByOrderID(ctx context.Context, orderID string) (entities.Review, error) {
	query, args := r.qb.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var row Review
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Review{}, entities.ErrReviewNotFound
	}
	if err != nil {
		return entities.Review{}, fmt.Errorf("failed to get review: %w", err)
	}
	return ReviewToEntity(row), nil
}

func (r *postgresRepo) ListReviewsByProduct(ctx context.Context, productID string) ([]entities.Review, error) {
	query, args := r.qb.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("created_at DESC").
		MustSql()

	var rows []Review
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}

	reviews := make([]entities.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, ReviewToEntity(row))
	}
	return reviews, nil
}
