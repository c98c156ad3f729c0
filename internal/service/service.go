package service

import (
	"context"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
)

// EventPublisher hands domain events to the outside world. It must not block.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.Event)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

func currentUser(ctx context.Context, provider identity.Provider) (string, error) {
	userID, ok := provider.CurrentUserID(ctx)
	if !ok || strings.TrimSpace(userID) == "" {
		return "", entities.ErrUnauthenticated
	}
	return userID, nil
}
