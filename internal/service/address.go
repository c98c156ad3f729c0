package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/trm"
	"github.com/google/uuid"
)

type AddressRepo interface {
	ListAddresses(ctx context.Context, userID string) ([]entities.Address, error)
	GetAddress(ctx context.Context, userID, addressID string) (entities.Address, error)
	CreateAddress(ctx context.Context, a entities.Address) error
	UpdateAddress(ctx context.Context, a entities.Address) error
	DeleteAddress(ctx context.Context, userID, addressID string) error

	// ClearDefault unsets the default flag on every address of the user except exceptID.
	ClearDefault(ctx context.Context, userID, exceptID string, at time.Time) error
}

type AddressInput struct {
	Label         string
	RecipientName string
	Phone         string
	Line          string
	IsDefault     bool
}

type addressService struct {
	logger    *slog.Logger
	identity  identity.Provider
	txManager trm.Manager
	repo      AddressRepo
}

func NewAddressService(logger *slog.Logger, ident identity.Provider, txManager trm.Manager, repo AddressRepo) *addressService {
	return &addressService{
		logger:    logger.With(slog.String("service", "address")),
		identity:  ident,
		txManager: txManager,
		repo:      repo,
	}
}

func (s *addressService) ListAddresses(ctx context.Context) ([]entities.Address, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return nil, err
	}
	addresses, err := s.repo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

func (s *addressService) AddAddress(ctx context.Context, in AddressInput) (entities.Address, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Address{}, err
	}
	in, err = normalizeAddress(in)
	if err != nil {
		return entities.Address{}, err
	}

	now := time.Now().UTC()
	address := entities.Address{
		ID:            uuid.NewString(),
		UserID:        userID,
		Label:         in.Label,
		RecipientName: in.RecipientName,
		Phone:         in.Phone,
		Line:          in.Line,
		IsDefault:     in.IsDefault,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if address.IsDefault {
			if err := s.repo.ClearDefault(ctx, userID, address.ID, now); err != nil {
				return fmt.Errorf("failed to clear default address: %w", err)
			}
		}
		if err := s.repo.CreateAddress(ctx, address); err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Address{}, err
	}

	s.logger.Debug("address added", slog.String("user_id", userID), slog.String("address_id", address.ID))
	return address, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, addressID string, in AddressInput) (entities.Address, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Address{}, err
	}
	in, err = normalizeAddress(in)
	if err != nil {
		return entities.Address{}, err
	}

	var updated entities.Address
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		address, err := s.repo.GetAddress(ctx, userID, addressID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if in.IsDefault {
			if err := s.repo.ClearDefault(ctx, userID, addressID, now); err != nil {
				return fmt.Errorf("failed to clear default address: %w", err)
			}
		}

		address.Label = in.Label
		address.RecipientName = in.RecipientName
		address.Phone = in.Phone
		address.Line = in.Line
		address.IsDefault = in.IsDefault
		address.UpdatedAt = now

		if err := s.repo.UpdateAddress(ctx, address); err != nil {
			return fmt.Errorf("failed to update address: %w", err)
		}
		updated = address
		return nil
	})
	if err != nil {
		return entities.Address{}, err
	}
	return updated, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, addressID string) error {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return err
	}
	return s.repo.DeleteAddress(ctx, userID, addressID)
}

// SetDefault makes the address the user's only default.
func (s *addressService) SetDefault(ctx context.Context, addressID string) (entities.Address, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.Address{}, err
	}

	var updated entities.Address
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		address, err := s.repo.GetAddress(ctx, userID, addressID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := s.repo.ClearDefault(ctx, userID, addressID, now); err != nil {
			return fmt.Errorf("failed to clear default address: %w", err)
		}
		address.IsDefault = true
		address.UpdatedAt = now

		if err := s.repo.UpdateAddress(ctx, address); err != nil {
			return fmt.Errorf("failed to set default address: %w", err)
		}
		updated = address
		return nil
	})
	if err != nil {
		return entities.Address{}, err
	}
	return updated, nil
}

func normalizeAddress(in AddressInput) (AddressInput, error) {
	in.Label = strings.TrimSpace(in.Label)
	in.RecipientName = strings.TrimSpace(in.RecipientName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Line = strings.TrimSpace(in.Line)

	switch {
	case in.RecipientName == "":
		return in, fmt.Errorf("%w: recipient name is required", entities.ErrInvalidAddress)
	case in.Phone == "":
		return in, fmt.Errorf("%w: phone is required", entities.ErrInvalidAddress)
	case in.Line == "":
		return in, fmt.Errorf("%w: address line is required", entities.ErrInvalidAddress)
	}
	return in, nil
}
