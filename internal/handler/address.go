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

type AddressService interface {
	ListAddresses(ctx context.Context) ([]entities.Address, error)
	AddAddress(ctx context.Context, in service.AddressInput) (entities.Address, error)
	UpdateAddress(ctx context.Context, addressID string, in service.AddressInput) (entities.Address, error)
	DeleteAddress(ctx context.Context, addressID string) error
	SetDefault(ctx context.Context, addressID string) (entities.Address, error)
}

type AddressHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AddressService
}

func NewAddressHandler(logger *slog.Logger, svc AddressService) *AddressHandler {
	return &AddressHandler{
		logger:   logger.With(slog.String("handler", "address")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *AddressHandler) Init(r chi.Router) {
	r.Route("/addresses", func(r chi.Router) {
		r.Get("/", h.ListAddresses)
		r.Post("/", h.AddAddress)
		r.Put("/{address_id}", h.UpdateAddress)
		r.Delete("/{address_id}", h.DeleteAddress)
		r.Post("/{address_id}/default", h.SetDefault)
	})
}

// @Summary      List addresses
// @Tags         addresses
// @Security     BearerAuth
// @Success      200  {array}   Address
// @Router       /addresses [get]
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.svc.ListAddresses(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err, "list addresses")
		return
	}

	res := make([]Address, len(addresses))
	for i, a := range addresses {
		res[i] = AddressEntityToJSON(a)
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// @Summary      Add address
// @Tags         addresses
// @Security     BearerAuth
// @Param        request  body      AddressRequest  true  "Address"
// @Success      201  {object}  Address
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /addresses [post]
func (h *AddressHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}
	address, err := h.svc.AddAddress(r.Context(), req.ToInput())
	h.writeAddress(w, r, address, err, http.StatusCreated, "add address")
}

// @Summary      Update address
// @Tags         addresses
// @Security     BearerAuth
// @Param        address_id  path      string          true  "Address ID"
// @Param        request     body      AddressRequest  true  "Address"
// @Success      200  {object}  Address
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /addresses/{address_id} [put]
func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}
	address, err := h.svc.UpdateAddress(r.Context(), chi.URLParam(r, "address_id"), req.ToInput())
	h.writeAddress(w, r, address, err, http.StatusOK, "update address")
}

// @Summary      Delete address
// @Tags         addresses
// @Security     BearerAuth
// @Param        address_id  path  string  true  "Address ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /addresses/{address_id} [delete]
func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAddress(r.Context(), chi.URLParam(r, "address_id")); err != nil {
		writeServiceError(w, r, h.logger, err, "delete address")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetDefault makes the address the only default one of the caller.
// @Summary      Set default address
// @Tags         addresses
// @Security     BearerAuth
// @Param        address_id  path      string  true  "Address ID"
// @Success      200  {object}  Address
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /addresses/{address_id}/default [post]
func (h *AddressHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	address, err := h.svc.SetDefault(r.Context(), chi.URLParam(r, "address_id"))
	h.writeAddress(w, r, address, err, http.StatusOK, "set default address")
}

func (h *AddressHandler) writeAddress(w http.ResponseWriter, r *http.Request, a entities.Address, err error, code int, action string) {
	if err != nil {
		writeServiceError(w, r, h.logger, err, action)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(a), code)
}
