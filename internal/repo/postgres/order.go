package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"id", "user_id",
	"customer_name", "customer_phone", "customer_email", "customer_address", "customer_note",
	"lines",
	"subtotal", "shipping_fee", "discount", "discount_code", "total",
	"payment_method", "payment_status", "paid_at", "transaction_id",
	"status", "status_history",
	"created_at", "updated_at", "estimated_delivery",
	"version",
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	lines, err := encodeLines(o.Lines)
	if err != nil {
		return err
	}
	history, err := encodeHistory(o.History)
	if err != nil {
		return err
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.UserID,
			o.Customer.Name, o.Customer.Phone, o.Customer.Email, o.Customer.Address, nullString(o.Customer.Note),
			lines,
			o.Pricing.Subtotal, o.Pricing.ShippingFee, o.Pricing.Discount, nullString(o.Pricing.DiscountCode), o.Pricing.Total,
			string(o.Payment.Method), string(o.Payment.Status), nullTime(o.Payment.PaidAt), nullString(o.Payment.TransactionID),
			string(o.Status), history,
			o.CreatedAt, o.UpdatedAt, o.EstimatedDelivery,
			o.Version,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, orderID, "")
}

// GetOrderForUpdate locks the order row until the surrounding transaction ends.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, orderID, "FOR UPDATE")
}

func (r *postgresRepo) getOrder(ctx context.Context, orderID, suffix string) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if suffix != "" {
		q = q.Suffix(suffix)
	}
	query, args := q.MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(row)
}

// GetOrderVersion reads only the version column, used to validate cached copies.
func (r *postgresRepo) GetOrderVersion(ctx context.Context, orderID string) (int64, error) {
	query, args := r.qb.Select("version").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var version int64
	err := r.getContext(ctx, &version, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrOrderNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get order version: %w", err)
	}
	return version, nil
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	return r.selectOrders(ctx, query, args...)
}

// ListRecentOrders returns the latest orders across all users, used to warm the cache.
func (r *postgresRepo) ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(recentLimit(limit)).
		MustSql()

	return r.selectOrders(ctx, query, args...)
}

// recentLimit clamps negative limits to zero instead of letting them wrap.
func recentLimit(limit int) uint64 {
	return uint64(max(limit, 0))
}

func (r *postgresRepo) selectOrders(ctx context.Context, query string, args ...any) ([]entities.Order, error) {
	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateOrder writes the mutable parts of an order: status, history and payment.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	history, err := encodeHistory(o.History)
	if err != nil {
		return err
	}

	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("status_history", history).
		Set("payment_status", string(o.Payment.Status)).
		Set("paid_at", nullTime(o.Payment.PaidAt)).
		Set("transaction_id", nullString(o.Payment.TransactionID)).
		Set("updated_at", o.UpdatedAt).
		Set("version", o.Version).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
