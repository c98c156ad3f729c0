package memory

import (
	"context"
	"slices"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
)

// CreateReview keeps reviews unique by order id, the same guarantee the
// Postgres unique index gives.
func (s *Store) CreateReview(ctx context.Context, r entities.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reviews {
		if existing.OrderID == r.OrderID {
			return entities.ErrAlreadyReviewed
		}
	}
	s.reviews[r.ID] = cloneReview(r)
	return nil
}

func (s *Store) GetReviewByOrderID(ctx context.Context, orderID string) (entities.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.OrderID == orderID {
			return cloneReview(r), nil
		}
	}
	return entities.Review{}, entities.ErrReviewNotFound
}

func (s *Store) ListReviewsByProduct(ctx context.Context, productID string) ([]entities.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]entities.Review, 0)
	for _, r := range s.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, cloneReview(r))
		}
	}
	slices.SortFunc(reviews, func(a, b entities.Review) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return reviews, nil
}
