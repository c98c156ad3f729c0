package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
)

func (s *Store) ListLines(ctx context.Context, userID string) ([]entities.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]entities.CartLine, 0)
	for _, l := range s.carts {
		if l.UserID == userID {
			lines = append(lines, l)
		}
	}
	slices.SortFunc(lines, func(a, b entities.CartLine) int {
		if c := a.AddedAt.Compare(b.AddedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return lines, nil
}

func (s *Store) GetLine(ctx context.Context, userID, lineID string) (entities.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.carts[lineID]
	if !ok || l.UserID != userID {
		return entities.CartLine{}, entities.ErrCartLineNotFound
	}
	return l, nil
}

// UpsertLine inserts the line or, when one with the same key exists, adds to its quantity.
func (s *Store) UpsertLine(ctx context.Context, line entities.CartLine) (entities.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := line.Key()
	for id, existing := range s.carts {
		if existing.Key() == key {
			existing.Quantity += line.Quantity
			existing.UpdatedAt = line.UpdatedAt
			s.carts[id] = existing
			return existing, nil
		}
	}
	s.carts[line.ID] = line
	return line, nil
}

func (s *Store) UpdateLine(ctx context.Context, line entities.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.carts[line.ID]
	if !ok || existing.UserID != line.UserID {
		return entities.ErrCartLineNotFound
	}
	existing.Quantity = line.Quantity
	existing.Selected = line.Selected
	existing.UpdatedAt = line.UpdatedAt
	s.carts[line.ID] = existing
	return nil
}

func (s *Store) SetSelectedAll(ctx context.Context, userID string, selected bool, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.carts {
		if l.UserID == userID && l.Selected != selected {
			l.Selected = selected
			l.UpdatedAt = at
			s.carts[id] = l
		}
	}
	return nil
}

func (s *Store) DeleteLines(ctx context.Context, userID string, lineIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range lineIDs {
		if l, ok := s.carts[id]; ok && l.UserID == userID {
			delete(s.carts, id)
		}
	}
	return nil
}

func (s *Store) DeleteAllLines(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.carts {
		if l.UserID == userID {
			delete(s.carts, id)
		}
	}
	return nil
}
