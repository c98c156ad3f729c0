package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/google/uuid"
)

type CartRepo interface {
	ListLines(ctx context.Context, userID string) ([]entities.CartLine, error)
	GetLine(ctx context.Context, userID, lineID string) (entities.CartLine, error)

	// UpsertLine inserts the line or atomically adds its quantity to the
	// existing line with the same key, returning the stored line.
	UpsertLine(ctx context.Context, line entities.CartLine) (entities.CartLine, error)
	UpdateLine(ctx context.Context, line entities.CartLine) error
	SetSelectedAll(ctx context.Context, userID string, selected bool, at time.Time) error
	DeleteLines(ctx context.Context, userID string, lineIDs []string) error
	DeleteAllLines(ctx context.Context, userID string) error
}

type CartObserver func(cart entities.Cart)

type AddLineInput struct {
	Product  entities.Product
	Variant  *entities.Variant
	Quantity int
}

type cartService struct {
	logger   *slog.Logger
	identity identity.Provider
	repo     CartRepo

	mu        sync.RWMutex
	observers map[uint64]CartObserver
	nextID    uint64
}

func NewCartService(logger *slog.Logger, ident identity.Provider, repo CartRepo) *cartService {
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		identity:  ident,
		repo:      repo,
		observers: make(map[uint64]CartObserver),
	}
}

// Subscribe registers an observer called with the fresh cart after every reload.
func (s *cartService) Subscribe(observer CartObserver) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = observer

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *cartService) GetCart(ctx context.Context) (entities.Cart, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Cart{}, err
	}
	return s.load(ctx, userID)
}

func (s *cartService) SelectedLines(ctx context.Context) (entities.Cart, error) {
	cart, err := s.GetCart(ctx)
	if err != nil {
		return entities.Cart{}, err
	}
	return cart.Selected(), nil
}

func (s *cartService) AddLine(ctx context.Context, in AddLineInput) (entities.Cart, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Cart{}, err
	}
	if in.Quantity <= 0 {
		return entities.Cart{}, entities.ErrInvalidQuantity
	}
	if strings.TrimSpace(in.Product.ID) == "" {
		return entities.Cart{}, fmt.Errorf("%w: product id is required", entities.ErrInvalidProduct)
	}
	if in.Product.Price < 0 || (in.Variant != nil && in.Variant.Price < 0) {
		return entities.Cart{}, fmt.Errorf("%w: price must not be negative", entities.ErrInvalidProduct)
	}

	line := entities.NewCartLine(userID, in.Product, in.Variant, in.Quantity, time.Now().UTC())
	line.ID = uuid.NewString()

	stored, err := s.repo.UpsertLine(ctx, line)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to add cart line: %w", err)
	}
	s.logger.Debug("cart line added",
		slog.String("user_id", userID),
		slog.String("line_id", stored.ID),
		slog.Int("quantity", stored.Quantity),
	)

	return s.reload(ctx, userID)
}

// SetQuantity removes the line when quantity drops to zero or below.
func (s *cartService) SetQuantity(ctx context.Context, lineID string, quantity int) (entities.Cart, error) {
	if quantity <= 0 {
		return s.RemoveLine(ctx, lineID)
	}

	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Cart{}, err
	}

	line, err := s.repo.GetLine(ctx, userID, lineID)
	if err != nil {
		return entities.Cart{}, err
	}
	line.Quantity = quantity
	line.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateLine(ctx, line); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to update cart line: %w", err)
	}
	return s.reload(ctx, userID)
}

func (s *cartService) SetSelected(ctx context.Context, lineID string, selected bool) (entities.Cart, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Cart{}, err
	}

	line, err := s.repo.GetLine(ctx, userID, lineID)
	if err != nil {
		return entities.Cart{}, err
	}
	line.Selected = selected
	line.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateLine(ctx, line); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to update cart line: %w", err)
	}
	return s.reload(ctx, userID)
}

func (s *cartService) SelectAll(ctx context.Context) (entities.Cart, error) {
	return s.setSelectedAll(ctx, true)
}

func (s *cartService) DeselectAll(ctx context.Context) (entities.Cart, error) {
	return s.setSelectedAll(ctx, false)
}

func (s *cartService) setSelectedAll(ctx context.Context, selected bool) (entities.Cart, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Cart{}, err
	}
	if err := s.repo.SetSelectedAll(ctx, userID, selected, time.Now().UTC()); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to update cart selection: %w", err)
	}
	return s.reload(ctx, userID)
}

func (s *cartService) RemoveLine(ctx context.Context, lineID string) (entities.Cart, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Cart{}, err
	}

	if _, err := s.repo.GetLine(ctx, userID, lineID); err != nil {
		return entities.Cart{}, err
	}
	if err := s.repo.DeleteLines(ctx, userID, []string{lineID}); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to remove cart line: %w", err)
	}
	return s.reload(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context) (entities.Cart, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Cart{}, err
	}
	if err := s.repo.DeleteAllLines(ctx, userID); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to clear cart: %w", err)
	}
	return s.reload(ctx, userID)
}

// ClearLines deletes a subset of the user's lines, used after checkout.
func (s *cartService) ClearLines(ctx context.Context, userID string, lineIDs []string) error {
	if len(lineIDs) == 0 {
		return nil
	}
	if err := s.repo.DeleteLines(ctx, userID, lineIDs); err != nil {
		return fmt.Errorf("failed to clear cart lines: %w", err)
	}
	_, err := s.reload(ctx, userID)
	return err
}

func (s *cartService) load(ctx context.Context, userID string) (entities.Cart, error) {
	lines, err := s.repo.ListLines(ctx, userID)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}
	return entities.Cart{UserID: userID, Lines: lines}, nil
}

// reload re-reads the store after a write and fans the result out to observers.
func (s *cartService) reload(ctx context.Context, userID string) (entities.Cart, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	s.mu.RLock()
	observers := make([]CartObserver, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.RUnlock()

	for _, notify := range observers {
		notify(cart)
	}
	return cart, nil
}
