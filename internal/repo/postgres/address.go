package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var addressColumns = []string{
	"id", "user_id", "label", "recipient_name", "phone", "line", "is_default", "created_at", "updated_at",
}

func (r *postgresRepo) ListAddresses(ctx context.Context, userID string) ([]entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		MustSql()

	var rows []Address
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select addresses: %w", err)
	}

	addrs := make([]entities.Address, 0, len(rows))
	for _, row := range rows {
		addrs = append(addrs, AddressToEntity(row))
	}
	return addrs, nil
}

func (r *postgresRepo) GetAddress(ctx context.Context, userID, addressID string) (entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": addressID, "user_id": userID}).
		MustSql()

	var row Address
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(row), nil
}

func (r *postgresRepo) CreateAddress(ctx context.Context, a entities.Address) error {
	query, args := r.qb.Insert("addresses").
		Columns(addressColumns...).
		Values(a.ID, a.UserID, a.Label, a.RecipientName, a.Phone, a.Line, a.IsDefault, a.CreatedAt, a.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateAddress(ctx context.Context, a entities.Address) error {
	query, args := r.qb.Update("addresses").
		Set("label", a.Label).
		Set("recipient_name", a.RecipientName).
		Set("phone", a.Phone).
		Set("line", a.Line).
		Set("is_default", a.IsDefault).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"id": a.ID, "user_id": a.UserID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteAddress(ctx context.Context, userID, addressID string) error {
	query, args := r.qb.Delete("addresses").
		Where(sq.Eq{"id": addressID, "user_id": userID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}

func (r *postgresRepo) ClearDefault(ctx context.Context, userID, exceptID string, at time.Time) error {
	query, args := r.qb.Update("addresses").
		Set("is_default", false).
		Set("updated_at", at).
		Where(sq.Eq{"user_id": userID, "is_default": true}).
		Where(sq.NotEq{"id": exceptID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear default address: %w", err)
	}
	return nil
}
