package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
)

var (
	ErrUnauthenticated = errors.New("user is not authenticated")

	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrCartLineNotFound = errors.New("cart line not found")

	ErrEmptySelection       = errors.New("no cart lines selected")
	ErrInvalidCustomerInfo  = errors.New("invalid customer info")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrOrderCreationFailed  = errors.New("failed to create order")
	ErrInvalidOrder         = errors.New("invalid order data")

	ErrPaymentFailed         = errors.New("payment failed, please retry")
	ErrPaymentAlreadySettled = errors.New("payment already settled")
	ErrPaymentInProgress     = errors.New("payment is already being processed")
	ErrRefundNotAllowed      = errors.New("refund not allowed")

	ErrInvalidReview      = errors.New("invalid review")
	ErrAlreadyReviewed    = errors.New("order already reviewed")
	ErrOrderNotReviewable = errors.New("order cannot be reviewed")
	ErrReviewNotFound     = errors.New("review not found")

	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidAddress  = errors.New("invalid address")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return errors.Join(ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderLine{})
	gob.Register(PaymentRecord{})
	gob.Register(StatusHistoryEntry{})
}
