package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
)

func (s *Store) CreateOrder(ctx context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	s.orders[o.ID] = cloneOrder(o)
	return nil
}

func (s *Store) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (s *Store) GetOrderVersion(ctx context.Context, orderID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok {
		return 0, entities.ErrOrderNotFound
	}
	return o.Version, nil
}

// GetOrderForUpdate has no row lock to take; writers are serialized by the memory tx manager.
func (s *Store) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	return s.GetOrderByID(ctx, orderID)
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]entities.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, cloneOrder(o))
		}
	}
	slices.SortFunc(orders, func(a, b entities.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return orders, nil
}

func (s *Store) ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	if limit <= 0 {
		return []entities.Order{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, cloneOrder(o))
	}
	slices.SortFunc(orders, func(a, b entities.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (s *Store) UpdateOrder(ctx context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.orders[o.ID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	existing.Status = o.Status
	existing.History = slices.Clone(o.History)
	existing.Payment = o.Payment
	existing.UpdatedAt = o.UpdatedAt
	existing.Version = o.Version
	s.orders[o.ID] = existing
	return nil
}
