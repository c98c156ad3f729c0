package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
)

func (s *Store) ListAddresses(ctx context.Context, userID string) ([]entities.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addrs := make([]entities.Address, 0)
	for _, a := range s.addresses {
		if a.UserID == userID {
			addrs = append(addrs, a)
		}
	}
	slices.SortFunc(addrs, func(a, b entities.Address) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return addrs, nil
}

func (s *Store) GetAddress(ctx context.Context, userID, addressID string) (entities.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.addresses[addressID]
	if !ok || a.UserID != userID {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	return a, nil
}

func (s *Store) CreateAddress(ctx context.Context, a entities.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addresses[a.ID] = a
	return nil
}

func (s *Store) UpdateAddress(ctx context.Context, a entities.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.addresses[a.ID]
	if !ok || existing.UserID != a.UserID {
		return entities.ErrAddressNotFound
	}
	a.CreatedAt = existing.CreatedAt
	s.addresses[a.ID] = a
	return nil
}

func (s *Store) DeleteAddress(ctx context.Context, userID, addressID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.addresses[addressID]
	if !ok || a.UserID != userID {
		return entities.ErrAddressNotFound
	}
	delete(s.addresses, addressID)
	return nil
}

// ClearDefault unsets the default flag on every address of the user except exceptID.
func (s *Store) ClearDefault(ctx context.Context, userID, exceptID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.addresses {
		if a.UserID == userID && a.IsDefault && id != exceptID {
			a.IsDefault = false
			a.UpdatedAt = at
			s.addresses[id] = a
		}
	}
	return nil
}
