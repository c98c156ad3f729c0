package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/config"
	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Domain rejections are final; retrying them only delays the DLQ.
var permanentErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrInvalidTransition,
	entities.ErrRefundNotAllowed,
	entities.ErrPaymentAlreadySettled,
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	retry    utils.RetryConfig
	orders   StatusUpdater
	payments Refunder
}

// NewKafkaHandler consumes operator commands from the commands topic.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, orders StatusUpdater, payments Refunder) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.CommandsTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return NewKafkaHandlerWith(logger, reader, dlq, orders, payments)
}

func NewKafkaHandlerWith(logger *slog.Logger, reader MessageReader, dlq MessageWriter, orders StatusUpdater, payments Refunder) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: utils.NewValidator(),
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     time.Second,
			Multiplier:   2,
		},
		orders:   orders,
		payments: payments,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// Leave the offset uncommitted when the command could not be parked in the DLQ.
		if !h.process(ctx, m) {
			continue
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) bool {
	commandsInProgress.Inc()
	start := time.Now()
	defer func() {
		commandsInProgress.Dec()
		commandProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.handleCommand(ctx, m); err != nil {
		commandsFailed.Inc()
		h.logger.Error("failed to handle command", slog.String("key", string(m.Key)), slog.Any("error", err))

		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return false
		}
		commandsDLQ.Inc()
		return true
	}
	commandsProcessed.Inc()
	return true
}

func (h *kafkaHandler) handleCommand(ctx context.Context, m kafka.Message) error {
	var cmd StatusCommand
	if err := json.Unmarshal(m.Value, &cmd); err != nil {
		return fmt.Errorf("failed to unmarshal command: %w", err)
	}

	if err := h.validate.Struct(cmd); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return utils.Retry(ctx, h.retry, func() error {
		return applyCommand(ctx, h.orders, h.payments, cmd)
	}, permanentErrors...)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
