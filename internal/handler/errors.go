package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var (
	notFoundErrors = []error{
		entities.ErrOrderNotFound,
		entities.ErrCartLineNotFound,
		entities.ErrAddressNotFound,
		entities.ErrReviewNotFound,
	}
	invalidErrors = []error{
		entities.ErrInvalidQuantity,
		entities.ErrInvalidProduct,
		entities.ErrInvalidCustomerInfo,
		entities.ErrInvalidPaymentMethod,
		entities.ErrInvalidReview,
		entities.ErrInvalidAddress,
	}
	conflictErrors = []error{
		entities.ErrEmptySelection,
		entities.ErrInvalidTransition,
		entities.ErrAlreadyReviewed,
		entities.ErrOrderNotReviewable,
		entities.ErrPaymentAlreadySettled,
		entities.ErrPaymentInProgress,
		entities.ErrRefundNotAllowed,
	}
)

// statusFor maps a domain error to its HTTP status. Zero means unexpected.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, invalidErrors):
		return http.StatusBadRequest
	case isAny(err, conflictErrors):
		return http.StatusConflict
	}
	return 0
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// writeServiceError answers with the mapped status, or logs and hides the error as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, action string) {
	if code := statusFor(err); code != 0 {
		utils.WriteError(w, err.Error(), code)
		return
	}
	logger.ErrorContext(r.Context(), "failed to "+action, slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

// decodeRequest reads a JSON body into v and validates it, answering 400 on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}
