package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/google/uuid"
)

// PaymentLedger reads orders and applies payment changes under a row lock.
type PaymentLedger interface {
	LookupOrder(ctx context.Context, orderID string) (entities.Order, error)
	UpdatePayment(ctx context.Context, orderID string, update func(order *entities.Order) error) (entities.Order, error)
}

// Settler talks to the payment rail. Settle reports whether the charge went through.
type Settler interface {
	Settle(ctx context.Context, method entities.PaymentMethod) (bool, error)
	Refund(ctx context.Context, method entities.PaymentMethod) error
}

type paymentService struct {
	logger   *slog.Logger
	identity identity.Provider
	ledger   PaymentLedger
	settler  Settler
}

func NewPaymentService(logger *slog.Logger, ident identity.Provider, ledger PaymentLedger, settler Settler) *paymentService {
	return &paymentService{
		logger:   logger.With(slog.String("service", "payment")),
		identity: ident,
		ledger:   ledger,
		settler:  settler,
	}
}

// RequiresImmediateProcessing is false for cash on delivery, which settles at the door.
func RequiresImmediateProcessing(method entities.PaymentMethod) bool {
	return method == entities.PaymentBankTransfer || method == entities.PaymentEWallet
}

// ProcessPayment charges the caller's order with its chosen method. A declined
// charge is recorded on the order and reported as ErrPaymentFailed together
// with the failed record. The order is claimed under its row lock before the
// rail is called, so concurrent calls charge it at most once.
func (s *paymentService) ProcessPayment(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	userID, err := currentUser(ctx, s.identity)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	order, err := s.ledger.LookupOrder(ctx, orderID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if order.UserID != userID {
		return entities.PaymentRecord{}, entities.ErrOrderNotFound
	}
	if err := checkPayable(order); err != nil {
		return entities.PaymentRecord{}, err
	}

	method := order.Payment.Method
	var record entities.PaymentRecord
	switch {
	case method == entities.PaymentCashOnDelivery:
		record, err = s.recordCashOnDelivery(ctx, orderID)
	case RequiresImmediateProcessing(method):
		record, err = s.charge(ctx, orderID, method)
	default:
		err = fmt.Errorf("%w: %q", entities.ErrInvalidPaymentMethod, method)
	}
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	s.logger.Info("payment processed",
		slog.String("order_id", orderID),
		slog.String("method", string(method)),
		slog.String("status", string(record.Status)),
	)
	if record.Status == entities.PaymentFailed {
		return record, entities.ErrPaymentFailed
	}
	return record, nil
}

func (s *paymentService) recordCashOnDelivery(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	updated, err := s.ledger.UpdatePayment(ctx, orderID, func(o *entities.Order) error {
		if err := checkPayable(*o); err != nil {
			return err
		}
		o.Payment = entities.PaymentRecord{
			Method:        entities.PaymentCashOnDelivery,
			Status:        entities.PaymentPending,
			TransactionID: "COD-" + orderID,
		}
		return nil
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return updated.Payment, nil
}

func (s *paymentService) charge(ctx context.Context, orderID string, method entities.PaymentMethod) (entities.PaymentRecord, error) {
	var previous entities.PaymentStatus
	_, err := s.ledger.UpdatePayment(ctx, orderID, func(o *entities.Order) error {
		if err := checkPayable(*o); err != nil {
			return err
		}
		previous = o.Payment.Status
		o.Payment.Status = entities.PaymentProcessing
		return nil
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	ok, err := s.settler.Settle(ctx, method)
	if err != nil {
		s.release(ctx, orderID, previous)
		return entities.PaymentRecord{}, fmt.Errorf("failed to settle payment: %w", err)
	}

	record := entities.PaymentRecord{Method: method, Status: entities.PaymentFailed}
	if ok {
		record.Status = entities.PaymentPaid
		record.PaidAt = time.Now().UTC()
		record.TransactionID = "TXN-" + uuid.NewString()
	}

	// The rail has answered; its outcome is recorded even if the caller is gone.
	updated, err := s.ledger.UpdatePayment(context.WithoutCancel(ctx), orderID, func(o *entities.Order) error {
		if o.Payment.Status != entities.PaymentProcessing {
			return fmt.Errorf("%w: payment is %s", entities.ErrPaymentInProgress, o.Payment.Status)
		}
		o.Payment = record
		return nil
	})
	if err != nil {
		s.logger.Error("failed to record settled payment",
			slog.String("order_id", orderID),
			slog.String("status", string(record.Status)),
			slog.String("transaction_id", record.TransactionID),
			slog.Any("error", err),
		)
		return entities.PaymentRecord{}, err
	}
	return updated.Payment, nil
}

// release hands a claimed order back when the rail gave no answer.
func (s *paymentService) release(ctx context.Context, orderID string, previous entities.PaymentStatus) {
	_, err := s.ledger.UpdatePayment(context.WithoutCancel(ctx), orderID, func(o *entities.Order) error {
		if o.Payment.Status != entities.PaymentProcessing {
			return nil
		}
		o.Payment.Status = previous
		return nil
	})
	if err != nil {
		s.logger.Error("failed to release payment claim", slog.String("order_id", orderID), slog.Any("error", err))
	}
}

// ProcessRefund reverses a settled non-cash payment. Operator only.
func (s *paymentService) ProcessRefund(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	order, err := s.ledger.LookupOrder(ctx, orderID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if err := checkRefundable(order); err != nil {
		return entities.PaymentRecord{}, err
	}

	if err := s.settler.Refund(ctx, order.Payment.Method); err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("failed to refund payment: %w", err)
	}

	updated, err := s.ledger.UpdatePayment(ctx, orderID, func(o *entities.Order) error {
		if err := checkRefundable(*o); err != nil {
			return err
		}
		o.Payment.Status = entities.PaymentRefunded
		o.Payment.TransactionID += "-REFUND"
		return nil
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	s.logger.Info("payment refunded", slog.String("order_id", orderID), slog.String("transaction_id", updated.Payment.TransactionID))
	return updated.Payment, nil
}

func checkPayable(order entities.Order) error {
	if order.Status == entities.StatusCancelled {
		return fmt.Errorf("%w: order is cancelled", entities.ErrInvalidTransition)
	}
	switch order.Payment.Status {
	case entities.PaymentPaid, entities.PaymentRefunded:
		return entities.ErrPaymentAlreadySettled
	case entities.PaymentProcessing:
		return entities.ErrPaymentInProgress
	}
	return nil
}

func checkRefundable(order entities.Order) error {
	if order.Payment.Method == entities.PaymentCashOnDelivery {
		return fmt.Errorf("%w: cash on delivery", entities.ErrRefundNotAllowed)
	}
	if order.Payment.Status != entities.PaymentPaid {
		return fmt.Errorf("%w: payment is %s", entities.ErrRefundNotAllowed, order.Payment.Status)
	}
	return nil
}
