package events

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
)

// LogPublisher is used when Kafka is disabled: events are only logged.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) LogPublisher {
	return LogPublisher{logger: logger.With(slog.String("component", "events"))}
}

func (p LogPublisher) Publish(_ context.Context, event entities.Event) {
	p.logger.Debug("event",
		slog.String("type", string(event.Type)),
		slog.String("key", event.Key),
		slog.Any("data", event.Data),
	)
}
