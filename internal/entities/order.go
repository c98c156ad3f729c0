package entities

import (
	"fmt"
	"time"
)

// CustomerInfo is the contact snapshot frozen on the order.
type CustomerInfo struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Note    string
}

// OrderLine copies display data and unit price as of order time.
type OrderLine struct {
	ProductID   string
	VariantID   string
	VariantName string
	ProductName string
	ImageURL    string
	Category    string
	UnitPrice   int64
	Quantity    int
}

func (l OrderLine) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

func OrderLineFromCart(l CartLine) OrderLine {
	return OrderLine{
		ProductID:   l.ProductID,
		VariantID:   l.VariantID,
		VariantName: l.VariantName,
		ProductName: l.ProductName,
		ImageURL:    l.ImageURL,
		Category:    l.Category,
		UnitPrice:   l.UnitPrice,
		Quantity:    l.Quantity,
	}
}

type PricingSnapshot struct {
	Subtotal     int64
	ShippingFee  int64
	Discount     int64
	DiscountCode string
	Total        int64
}

type StatusHistoryEntry struct {
	Status    OrderStatus
	Note      string
	Timestamp time.Time
}

type Order struct {
	ID                string
	UserID            string
	Customer          CustomerInfo
	Lines             []OrderLine
	Pricing           PricingSnapshot
	Payment           PaymentRecord
	Status            OrderStatus
	History           []StatusHistoryEntry
	CreatedAt         time.Time
	UpdatedAt         time.Time
	EstimatedDelivery time.Time

	// Version grows by one with every stored update of status or payment.
	Version int64
}

// TransitionTo moves the order along the status table and appends a history entry.
func (o *Order) TransitionTo(target OrderStatus, note string, at time.Time) error {
	if !o.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}
	if note == "" {
		note = target.defaultNote()
	}
	o.Status = target
	o.History = append(o.History, StatusHistoryEntry{Status: target, Note: note, Timestamp: at})
	o.UpdatedAt = at
	return nil
}

func (o Order) HasProduct(productID string) bool {
	for _, l := range o.Lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

func (o Order) Line(productID string) (OrderLine, bool) {
	for _, l := range o.Lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return OrderLine{}, false
}

func (o Order) ItemCount() int {
	count := 0
	for _, l := range o.Lines {
		count += l.Quantity
	}
	return count
}
