package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID string, target entities.OrderStatus, note string) (entities.Order, error)
}

type Refunder interface {
	ProcessRefund(ctx context.Context, orderID string) (entities.PaymentRecord, error)
}

const actionRefund = "refund"

// applyCommand executes an operator command against the order or payment service.
func applyCommand(ctx context.Context, orders StatusUpdater, payments Refunder, cmd StatusCommand) error {
	if cmd.Action == actionRefund {
		record, err := payments.ProcessRefund(ctx, cmd.OrderID)
		if err != nil {
			return err
		}
		paymentsProcessed.WithLabelValues(string(record.Method), string(record.Status)).Inc()
		return nil
	}

	if cmd.Status == "" {
		return fmt.Errorf("%w: status is required", entities.ErrInvalidTransition)
	}
	order, err := orders.UpdateStatus(ctx, cmd.OrderID, entities.OrderStatus(cmd.Status), cmd.Note)
	if err != nil {
		return err
	}
	statusTransitions.WithLabelValues(order.Status.String()).Inc()
	return nil
}

// AdminHandler serves operator endpoints behind guard.
type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	guard    func(http.Handler) http.Handler
	orders   StatusUpdater
	payments Refunder
}

func NewAdminHandler(logger *slog.Logger, guard func(http.Handler) http.Handler, orders StatusUpdater, payments Refunder) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: utils.NewValidator(),
		guard:    guard,
		orders:   orders,
		payments: payments,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin/orders/{order_id}", func(r chi.Router) {
		r.Use(h.guard)
		r.Post("/status", h.UpdateStatus)
		r.Post("/refund", h.Refund)
	})
}

// UpdateStatus moves an order along the status table.
// @Summary      Update order status
// @Tags         admin
// @Security     BearerAuth
// @Param        order_id  path      string               true  "Order ID"
// @Param        request   body      UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed"
// @Router       /admin/orders/{order_id}/status [post]
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "order_id"), entities.OrderStatus(req.Status), req.Note)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "update order status")
		return
	}
	statusTransitions.WithLabelValues(order.Status.String()).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// @Summary      Refund order
// @Tags         admin
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order ID"
// @Success      200  {object}  Payment
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Nothing to refund"
// @Router       /admin/orders/{order_id}/refund [post]
func (h *AdminHandler) Refund(w http.ResponseWriter, r *http.Request) {
	record, err := h.payments.ProcessRefund(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "refund order")
		return
	}
	paymentsProcessed.WithLabelValues(string(record.Method), string(record.Status)).Inc()
	utils.WriteJSON(w, PaymentEntityToJSON(record), http.StatusOK)
}
