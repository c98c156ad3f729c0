package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var cartLineColumns = []string{
	"id", "user_id", "product_id", "variant_id", "variant_name", "product_name",
	"unit_price", "image_url", "category", "quantity", "selected", "added_at", "updated_at",
}

func (r *postgresRepo) ListLines(ctx context.Context, userID string) ([]entities.CartLine, error) {
	query, args := r.qb.Select(cartLineColumns...).
		From("cart_lines").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("added_at", "id").
		MustSql()

	var rows []CartLine
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart lines: %w", err)
	}

	lines := make([]entities.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, CartLineToEntity(row))
	}
	return lines, nil
}

func (r *postgresRepo) GetLine(ctx context.Context, userID, lineID string) (entities.CartLine, error) {
	query, args := r.qb.Select(cartLineColumns...).
		From("cart_lines").
		Where(sq.Eq{"id": lineID, "user_id": userID}).
		MustSql()

	var row CartLine
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartLine{}, entities.ErrCartLineNotFound
	}
	if err != nil {
		return entities.CartLine{}, fmt.Errorf("failed to get cart line: %w", err)
	}
	return CartLineToEntity(row), nil
}

// UpsertLine merges into the line with the same (user, product, variant) in one statement.
func (r *postgresRepo) UpsertLine(ctx context.Context, l entities.CartLine) (entities.CartLine, error) {
	query, args := r.qb.Insert("cart_lines").
		Columns(cartLineColumns...).
		Values(
			l.ID, l.UserID, l.ProductID, l.VariantID, l.VariantName, l.ProductName,
			l.UnitPrice, l.ImageURL, l.Category, l.Quantity, l.Selected, l.AddedAt, l.UpdatedAt,
		).
		Suffix("ON CONFLICT (user_id, product_id, variant_id) DO UPDATE SET " +
			"quantity = cart_lines.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at " +
			"RETURNING " + strings.Join(cartLineColumns, ", ")).
		MustSql()

	var row CartLine
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.CartLine{}, fmt.Errorf("failed to upsert cart line: %w", err)
	}
	return CartLineToEntity(row), nil
}

func (r *postgresRepo) UpdateLine(ctx context.Context, l entities.CartLine) error {
	query, args := r.qb.Update("cart_lines").
		Set("quantity", l.Quantity).
		Set("selected", l.Selected).
		Set("updated_at", l.UpdatedAt).
		Where(sq.Eq{"id": l.ID, "user_id": l.UserID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart line: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ErrCartLineNotFound
	}
	return nil
}

func (r *postgresRepo) SetSelectedAll(ctx context.Context, userID string, selected bool, at time.Time) error {
	query, args := r.qb.Update("cart_lines").
		Set("selected", selected).
		Set("updated_at", at).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"selected": selected}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update cart selection: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteLines(ctx context.Context, userID string, lineIDs []string) error {
	if len(lineIDs) == 0 {
		return nil
	}

	query, args := r.qb.Delete("cart_lines").
		Where(sq.Eq{"user_id": userID, "id": lineIDs}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart lines: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteAllLines(ctx context.Context, userID string) error {
	query, args := r.qb.Delete("cart_lines").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
