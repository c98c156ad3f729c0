// Package events ships domain events to Kafka. Publishing never blocks the
// caller: events go to a bounded queue drained by a background writer.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/config"
	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

const queueSize = 1024

var (
	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of domain events written to Kafka",
		},
		[]string{"type"},
	)

	eventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "events",
			Name:      "dropped_total",
			Help:      "Total number of domain events dropped because the queue was full or Kafka rejected them",
		},
		[]string{"type"},
	)
)

// Message is the JSON body written to the events topic.
type Message struct {
	Type       string         `json:"type"`
	Key        string         `json:"key"`
	UserID     string         `json:"user_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// MessageWriter is the subset of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer MessageWriter
	queue  chan entities.Event
	retry  utils.RetryConfig
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return NewPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	})
}

func NewPublisher(logger *slog.Logger, writer MessageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("component", "events")),
		writer: writer,
		queue:  make(chan entities.Event, queueSize),
		retry: utils.RetryConfig{
			MaxAttempts:  5,
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2,
		},
	}
}

// Publish enqueues the event, dropping it when the queue is full.
func (p *kafkaPublisher) Publish(_ context.Context, event entities.Event) {
	select {
	case p.queue <- event:
	default:
		eventsDropped.WithLabelValues(string(event.Type)).Inc()
		p.logger.Warn("event queue full, dropping event",
			slog.String("type", string(event.Type)),
			slog.String("key", event.Key),
		)
	}
}

// Start drains the queue until ctx is done, then flushes what is left.
func (p *kafkaPublisher) Start(ctx context.Context) error {
	for {
		select {
		case event := <-p.queue:
			p.write(ctx, event)
		case <-ctx.Done():
			p.drain()
			return nil
		}
	}
}

func (p *kafkaPublisher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for {
		select {
		case event := <-p.queue:
			p.write(ctx, event)
		default:
			return
		}
	}
}

func (p *kafkaPublisher) write(ctx context.Context, event entities.Event) {
	msg, err := Encode(event)
	if err != nil {
		eventsDropped.WithLabelValues(string(event.Type)).Inc()
		p.logger.Error("failed to encode event", slog.String("type", string(event.Type)), slog.Any("error", err))
		return
	}

	err = utils.Retry(ctx, p.retry, func() error {
		return p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		eventsDropped.WithLabelValues(string(event.Type)).Inc()
		p.logger.Error("failed to publish event",
			slog.String("type", string(event.Type)),
			slog.String("key", event.Key),
			slog.Any("error", err),
		)
		return
	}
	eventsPublished.WithLabelValues(string(event.Type)).Inc()
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// Encode builds the Kafka message for an event, keyed so that one order's events stay ordered.
func Encode(event entities.Event) (kafka.Message, error) {
	body, err := json.Marshal(Message{
		Type:       string(event.Type),
		Key:        event.Key,
		UserID:     event.UserID,
		OccurredAt: event.OccurredAt,
		Data:       event.Data,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.Key),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}
