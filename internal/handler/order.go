package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	Checkout(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) (entities.Order, error)
	Reorder(ctx context.Context, orderID string) (entities.Order, error)
}

type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, orderID string) (entities.PaymentRecord, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	payments PaymentProcessor
}

func NewOrderHandler(logger *slog.Logger, orders OrderService, payments PaymentProcessor) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: utils.NewValidator(),
		orders:   orders,
		payments: payments,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.Checkout)
		r.Get("/", h.ListOrders)
		r.Get("/{order_id}", h.GetOrder)
		r.Post("/{order_id}/cancel", h.CancelOrder)
		r.Post("/{order_id}/reorder", h.Reorder)
		r.Post("/{order_id}/payment", h.ProcessPayment)
	})
}

// Checkout places an order from the selected cart lines. Bank transfer and
// e-wallet orders are charged right away; a declined charge still returns the order.
// @Summary      Checkout
// @Tags         orders
// @Security     BearerAuth
// @Param        request  body      CheckoutRequest  true  "Customer, address and payment method"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Nothing selected"
// @Router       /orders [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	order, err := h.orders.Checkout(r.Context(), req.ToInput())
	if err != nil {
		writeServiceError(w, r, h.logger, err, "checkout")
		return
	}
	h.writePlaced(w, r, order)
}

// @Summary      List orders
// @Tags         orders
// @Security     BearerAuth
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err, "list orders")
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// @Summary      Get order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "get order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder cancels a pending or confirmed order. The body is optional.
// @Summary      Cancel order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string         true   "Order ID"
// @Param        request   body      CancelRequest  false  "Reason"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed"
// @Router       /orders/{order_id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if r.ContentLength != 0 && !decodeRequest(w, r, h.validate, &req) {
		return
	}

	order, err := h.orders.CancelOrder(r.Context(), chi.URLParam(r, "order_id"), req.Reason)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "cancel order")
		return
	}
	statusTransitions.WithLabelValues(order.Status.String()).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// @Summary      Reorder
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Source order ID"
// @Success      201  {object}  CheckoutResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/reorder [post]
func (h *OrderHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Reorder(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "reorder")
		return
	}
	h.writePlaced(w, r, order)
}

// ProcessPayment retries the charge of an unpaid order.
// @Summary      Pay order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order ID"
// @Success      200  {object}  Payment
// @Failure      402  {object}  utils.ErrorResponse "Payment declined"
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Already settled, in progress or cancelled"
// @Router       /orders/{order_id}/payment [post]
func (h *OrderHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	record, err := h.payments.ProcessPayment(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil && !errors.Is(err, entities.ErrPaymentFailed) {
		writeServiceError(w, r, h.logger, err, "process payment")
		return
	}
	paymentsProcessed.WithLabelValues(string(record.Method), string(record.Status)).Inc()
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusPaymentRequired)
		return
	}
	utils.WriteJSON(w, PaymentEntityToJSON(record), http.StatusOK)
}

func (h *OrderHandler) writePlaced(w http.ResponseWriter, r *http.Request, order entities.Order) {
	ordersCreated.WithLabelValues(string(order.Payment.Method)).Inc()

	res := CheckoutResponse{}
	if service.RequiresImmediateProcessing(order.Payment.Method) {
		record, err := h.payments.ProcessPayment(r.Context(), order.ID)
		switch {
		case err == nil || errors.Is(err, entities.ErrPaymentFailed):
			order.Payment = record
			paymentsProcessed.WithLabelValues(string(record.Method), string(record.Status)).Inc()
			payment := PaymentEntityToJSON(record)
			res.Payment = &payment
			if err != nil {
				res.PaymentError = err.Error()
			}
		default:
			h.logger.ErrorContext(r.Context(), "failed to process payment",
				slog.String("order_id", order.ID), slog.Any("error", err))
			res.PaymentError = "payment could not be processed, please retry"
		}
	}
	res.Order = OrderEntityToJSON(order)

	utils.WriteJSON(w, res, http.StatusCreated)
}
