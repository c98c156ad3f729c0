package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	GetCart(ctx context.Context) (entities.Cart, error)
	AddLine(ctx context.Context, in service.AddLineInput) (entities.Cart, error)
	SetQuantity(ctx context.Context, lineID string, quantity int) (entities.Cart, error)
	SetSelected(ctx context.Context, lineID string, selected bool) (entities.Cart, error)
	SelectAll(ctx context.Context) (entities.Cart, error)
	DeselectAll(ctx context.Context) (entities.Cart, error)
	RemoveLine(ctx context.Context, lineID string) (entities.Cart, error)
	Clear(ctx context.Context) (entities.Cart, error)
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/lines", h.AddLine)
		r.Patch("/lines/{line_id}", h.UpdateLine)
		r.Delete("/lines/{line_id}", h.RemoveLine)
		r.Post("/select-all", h.SelectAll)
		r.Post("/deselect-all", h.DeselectAll)
	})
}

// GetCart returns the caller's cart.
// @Summary      Get cart
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.GetCart(r.Context())
	h.writeCart(w, r, cart, err, "get cart")
}

// AddLine adds a product to the cart, merging with an existing line of the same variant.
// @Summary      Add cart line
// @Tags         cart
// @Security     BearerAuth
// @Param        request  body      AddLineRequest  true  "Product snapshot and quantity"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /cart/lines [post]
func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req AddLineRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}
	cart, err := h.svc.AddLine(r.Context(), req.ToInput())
	h.writeCart(w, r, cart, err, "add cart line")
}

// UpdateLine changes quantity and/or selection of one line. Quantity zero removes it.
// @Summary      Update cart line
// @Tags         cart
// @Security     BearerAuth
// @Param        line_id  path      string             true  "Cart line ID"
// @Param        request  body      UpdateLineRequest  true  "Fields to change"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cart/lines/{line_id} [patch]
func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "line_id")

	var req UpdateLineRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}
	if req.Quantity == nil && req.Selected == nil {
		utils.WriteError(w, "nothing to update", http.StatusBadRequest)
		return
	}

	var (
		cart entities.Cart
		err  error
	)
	if req.Quantity != nil {
		cart, err = h.svc.SetQuantity(r.Context(), lineID, *req.Quantity)
		if err != nil || *req.Quantity <= 0 {
			h.writeCart(w, r, cart, err, "update cart line")
			return
		}
	}
	if req.Selected != nil {
		cart, err = h.svc.SetSelected(r.Context(), lineID, *req.Selected)
	}
	h.writeCart(w, r, cart, err, "update cart line")
}

// @Summary      Remove cart line
// @Tags         cart
// @Security     BearerAuth
// @Param        line_id  path      string  true  "Cart line ID"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cart/lines/{line_id} [delete]
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.RemoveLine(r.Context(), chi.URLParam(r, "line_id"))
	h.writeCart(w, r, cart, err, "remove cart line")
}

// @Summary      Select all cart lines
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Router       /cart/select-all [post]
func (h *CartHandler) SelectAll(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.SelectAll(r.Context())
	h.writeCart(w, r, cart, err, "select cart lines")
}

// @Summary      Deselect all cart lines
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Router       /cart/deselect-all [post]
func (h *CartHandler) DeselectAll(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.DeselectAll(r.Context())
	h.writeCart(w, r, cart, err, "deselect cart lines")
}

// @Summary      Clear cart
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.Clear(r.Context())
	h.writeCart(w, r, cart, err, "clear cart")
}

func (h *CartHandler) writeCart(w http.ResponseWriter, r *http.Request, cart entities.Cart, err error, action string) {
	if err != nil {
		writeServiceError(w, r, h.logger, err, action)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}
