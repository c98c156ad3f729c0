package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/trm"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderRepo interface {
	// CreateOrder fails if an order with the same id already exists.
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderVersion(ctx context.Context, orderID string) (int64, error)

	// GetOrderForUpdate locks the order row until the surrounding transaction ends.
	GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, o entities.Order) error
}

// CartStore is the part of the cart the checkout flow needs.
type CartStore interface {
	SelectedLines(ctx context.Context) (entities.Cart, error)
	ClearLines(ctx context.Context, userID string, lineIDs []string) error
}

type AddressGetter interface {
	GetAddress(ctx context.Context, userID, addressID string) (entities.Address, error)
}

type Pricer interface {
	Quote(lines []entities.OrderLine, discountCode string) entities.PricingSnapshot
}

type OrderServiceDeps struct {
	Identity  identity.Provider
	TxManager trm.Manager
	Repo      OrderRepo
	Carts     CartStore
	Addresses AddressGetter
	Pricer    Pricer
	Cache     Cache
	Events    EventPublisher

	// LeadTime is added to the creation time to estimate delivery.
	LeadTime time.Duration
}

type CreateOrderInput struct {
	Customer      entities.CustomerInfo
	AddressID     string
	PaymentMethod entities.PaymentMethod
	DiscountCode  string
}

type orderService struct {
	logger    *slog.Logger
	identity  identity.Provider
	txManager trm.Manager
	repo      OrderRepo
	carts     CartStore
	addresses AddressGetter
	pricer    Pricer
	cache     Cache
	events    EventPublisher
	leadTime  time.Duration
	validate  *validator.Validate
}

func NewOrderService(logger *slog.Logger, deps OrderServiceDeps) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		identity:  deps.Identity,
		txManager: deps.TxManager,
		repo:      deps.Repo,
		carts:     deps.Carts,
		addresses: deps.Addresses,
		pricer:    deps.Pricer,
		cache:     deps.Cache,
		events:    deps.Events,
		leadTime:  deps.LeadTime,
		validate:  validator.New(),
	}
}

// Checkout turns the caller's selected cart lines into an order.
func (s *orderService) Checkout(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if _, err := currentUser(ctx, s.identity); err != nil {
		return entities.Order{}, err
	}
	cart, err := s.carts.SelectedLines(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	return s.CreateOrder(ctx, cart.Lines, in)
}

// CreateOrder persists a new pending order for the given lines and then
// removes them from the cart. A failed cart cleanup does not fail the order.
func (s *orderService) CreateOrder(ctx context.Context, lines []entities.CartLine, in CreateOrderInput) (entities.Order, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Order{}, err
	}
	if len(lines) == 0 {
		return entities.Order{}, entities.ErrEmptySelection
	}

	orderLines := make([]entities.OrderLine, 0, len(lines))
	lineIDs := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.UserID != userID {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrCartLineNotFound, l.ID)
		}
		if l.Quantity <= 0 {
			return entities.Order{}, entities.ErrInvalidQuantity
		}
		orderLines = append(orderLines, entities.OrderLineFromCart(l))
		lineIDs = append(lineIDs, l.ID)
	}

	customer, err := s.resolveCustomer(ctx, userID, in)
	if err != nil {
		return entities.Order{}, err
	}
	if !in.PaymentMethod.Valid() {
		return entities.Order{}, fmt.Errorf("%w: %q", entities.ErrInvalidPaymentMethod, in.PaymentMethod)
	}

	order := s.newOrder(userID, customer, orderLines, in.PaymentMethod, in.DiscountCode)
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		s.logger.Error("failed to persist order", slog.String("order_id", order.ID), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrOrderCreationFailed, err)
	}
	s.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("user_id", userID),
		slog.Int64("total", order.Pricing.Total),
	)

	if err := s.carts.ClearLines(ctx, userID, lineIDs); err != nil {
		s.logger.Warn("failed to clear ordered cart lines", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	s.remember(order)
	s.publish(ctx, entities.EventOrderCreated, order, map[string]any{
		"status": order.Status.String(),
		"total":  order.Pricing.Total,
		"method": string(order.Payment.Method),
	})
	return order, nil
}

// GetOrder returns an order owned by the caller. Orders of other users are reported as missing.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Order{}, err
	}
	order, err := s.LookupOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

// LookupOrder reads an order regardless of owner. A cached copy is served only
// while its version matches the store, so updates committed by another
// instance or a concurrent writer are never hidden.
func (s *orderService) LookupOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if cached, ok := s.cached(orderID); ok {
		version, err := s.repo.GetOrderVersion(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		if version == cached.Version {
			return cached, nil
		}
		s.logger.Debug("cached order is stale",
			slog.String("order_id", orderID),
			slog.Int64("cached_version", cached.Version),
			slog.Int64("version", version),
		)
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	s.remember(order)
	return order, nil
}

// ListOrders returns the caller's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) CancelOrder(ctx context.Context, orderID, reason string) (entities.Order, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Order{}, err
	}
	return s.transition(ctx, orderID, userID, entities.StatusCancelled, strings.TrimSpace(reason))
}

// UpdateStatus is the operator path: no ownership check, same transition table.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, target entities.OrderStatus, note string) (entities.Order, error) {
	if !target.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidTransition, target)
	}
	return s.transition(ctx, orderID, "", target, strings.TrimSpace(note))
}

// Reorder places a fresh order with the lines, customer and payment method of an earlier one.
func (s *orderService) Reorder(ctx context.Context, orderID string) (entities.Order, error) {
	source, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	lines := make([]entities.OrderLine, len(source.Lines))
	copy(lines, source.Lines)

	order := s.newOrder(source.UserID, source.Customer, lines, source.Payment.Method, source.Pricing.DiscountCode)
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		s.logger.Error("failed to persist reorder", slog.String("source_id", source.ID), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrOrderCreationFailed, err)
	}
	s.logger.Info("order reordered", slog.String("order_id", order.ID), slog.String("source_id", source.ID))

	s.remember(order)
	s.publish(ctx, entities.EventOrderCreated, order, map[string]any{
		"status":    order.Status.String(),
		"total":     order.Pricing.Total,
		"method":    string(order.Payment.Method),
		"source_id": source.ID,
	})
	return order, nil
}

// WarmUpCache loads the most recent orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListRecentOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	for _, o := range orders {
		s.remember(o)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// UpdatePayment applies update to the locked order and stores the new payment record.
func (s *orderService) UpdatePayment(ctx context.Context, orderID string, update func(order *entities.Order) error) (entities.Order, error) {
	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := update(&order); err != nil {
			return err
		}
		order.UpdatedAt = time.Now().UTC()
		order.Version++
		if err := s.repo.UpdateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}
		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.remember(updated)
	s.publish(ctx, entities.EventOrderPaymentUpdate, updated, map[string]any{
		"method":         string(updated.Payment.Method),
		"payment_status": string(updated.Payment.Status),
		"transaction_id": updated.Payment.TransactionID,
	})
	return updated, nil
}

func (s *orderService) transition(ctx context.Context, orderID, ownerID string, target entities.OrderStatus, note string) (entities.Order, error) {
	var (
		updated entities.Order
		from    entities.OrderStatus
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if ownerID != "" && order.UserID != ownerID {
			return entities.ErrOrderNotFound
		}
		from = order.Status
		if err := order.TransitionTo(target, note, time.Now().UTC()); err != nil {
			return err
		}
		order.Version++
		if err := s.repo.UpdateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		updated = order
		return nil
	})
	if err != nil {
		if !errors.Is(err, entities.ErrInvalidTransition) && !errors.Is(err, entities.ErrOrderNotFound) {
			s.logger.Error("failed to change order status", slog.String("order_id", orderID), slog.Any("error", err))
		}
		return entities.Order{}, err
	}

	s.logger.Info("order status changed",
		slog.String("order_id", orderID),
		slog.String("from", from.String()),
		slog.String("to", target.String()),
	)
	s.remember(updated)
	s.publish(ctx, entities.EventOrderStatusChanged, updated, map[string]any{
		"from": from.String(),
		"to":   target.String(),
		"note": updated.History[len(updated.History)-1].Note,
	})
	return updated, nil
}

func (s *orderService) newOrder(
	userID string,
	customer entities.CustomerInfo,
	lines []entities.OrderLine,
	method entities.PaymentMethod,
	discountCode string,
) entities.Order {
	now := time.Now().UTC()
	status := entities.StatusPending
	return entities.Order{
		ID:       newOrderID(now),
		UserID:   userID,
		Customer: customer,
		Lines:    lines,
		Pricing:  s.pricer.Quote(lines, discountCode),
		Payment: entities.PaymentRecord{
			Method: method,
			Status: entities.PaymentPending,
		},
		Status: status,
		History: []entities.StatusHistoryEntry{{
			Status:    status,
			Note:      "order created",
			Timestamp: now,
		}},
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(s.leadTime),
	}
}

// resolveCustomer fills blank contact fields from a saved address, then validates.
func (s *orderService) resolveCustomer(ctx context.Context, userID string, in CreateOrderInput) (entities.CustomerInfo, error) {
	c := entities.CustomerInfo{
		Name:    strings.TrimSpace(in.Customer.Name),
		Phone:   strings.TrimSpace(in.Customer.Phone),
		Email:   strings.TrimSpace(in.Customer.Email),
		Address: strings.TrimSpace(in.Customer.Address),
		Note:    strings.TrimSpace(in.Customer.Note),
	}

	if in.AddressID != "" {
		addr, err := s.addresses.GetAddress(ctx, userID, in.AddressID)
		if err != nil {
			return entities.CustomerInfo{}, err
		}
		if c.Name == "" {
			c.Name = addr.RecipientName
		}
		if c.Phone == "" {
			c.Phone = addr.Phone
		}
		if c.Address == "" {
			c.Address = addr.Line
		}
	}

	switch {
	case c.Name == "":
		return entities.CustomerInfo{}, fmt.Errorf("%w: name is required", entities.ErrInvalidCustomerInfo)
	case c.Phone == "":
		return entities.CustomerInfo{}, fmt.Errorf("%w: phone is required", entities.ErrInvalidCustomerInfo)
	case c.Address == "":
		return entities.CustomerInfo{}, fmt.Errorf("%w: address is required", entities.ErrInvalidCustomerInfo)
	case c.Email == "":
		return entities.CustomerInfo{}, fmt.Errorf("%w: email is required", entities.ErrInvalidCustomerInfo)
	}
	if err := s.validate.Var(c.Email, "email"); err != nil {
		return entities.CustomerInfo{}, fmt.Errorf("%w: malformed email", entities.ErrInvalidCustomerInfo)
	}
	return c, nil
}

func (s *orderService) cached(orderID string) (entities.Order, bool) {
	data, ok := s.cache.Get(orderID)
	if !ok {
		return entities.Order{}, false
	}
	var order entities.Order
	if err := order.Unmarshal(data); err != nil {
		s.logger.Warn("dropping undecodable cached order", slog.String("order_id", orderID), slog.Any("error", err))
		s.cache.Delete(orderID)
		return entities.Order{}, false
	}
	return order, true
}

func (s *orderService) remember(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		s.cache.Delete(order.ID)
		return
	}
	s.cache.Set(order.ID, data)
}

func (s *orderService) publish(ctx context.Context, typ entities.EventType, order entities.Order, data map[string]any) {
	data["order_id"] = order.ID
	s.events.Publish(ctx, entities.Event{
		Type:       typ,
		Key:        order.ID,
		UserID:     order.UserID,
		OccurredAt: order.UpdatedAt,
		Data:       data,
	})
}

// newOrderID yields ORD-YYYYMMDD-<unix millis>-<4 hex>.
func newOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("ORD-%s-%d-%s", now.Format("20060102"), now.UnixMilli(), suffix)
}
