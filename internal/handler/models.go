package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
)

// Product is the catalog snapshot sent with an add-to-cart request
type Product struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
	Category string `json:"category,omitempty"`
}

type Variant struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price,omitempty" validate:"gte=0"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type AddLineRequest struct {
	Product  Product  `json:"product" validate:"required"`
	Variant  *Variant `json:"variant,omitempty"`
	Quantity int      `json:"quantity" validate:"required,gt=0"`
}

func (r AddLineRequest) ToInput() service.AddLineInput {
	in := service.AddLineInput{
		Product: entities.Product{
			ID:       r.Product.ID,
			Name:     r.Product.Name,
			Price:    r.Product.Price,
			ImageURL: r.Product.ImageURL,
			Category: r.Product.Category,
		},
		Quantity: r.Quantity,
	}
	if r.Variant != nil {
		in.Variant = &entities.Variant{
			ID:       r.Variant.ID,
			Name:     r.Variant.Name,
			Price:    r.Variant.Price,
			ImageURL: r.Variant.ImageURL,
		}
	}
	return in
}

// UpdateLineRequest changes quantity, selection or both. Quantity 0 removes the line.
type UpdateLineRequest struct {
	Quantity *int  `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Selected *bool `json:"selected,omitempty"`
}

type CartLine struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	VariantID   string    `json:"variant_id,omitempty"`
	VariantName string    `json:"variant_name,omitempty"`
	ProductName string    `json:"product_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	UnitPrice   int64     `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Selected    bool      `json:"selected"`
	Total       int64     `json:"total"`
	AddedAt     time.Time `json:"added_at"`
}

type Cart struct {
	Lines            []CartLine `json:"lines"`
	TotalQuantity    int        `json:"total_quantity"`
	TotalPrice       int64      `json:"total_price"`
	UniqueCount      int        `json:"unique_count"`
	SelectedQuantity int        `json:"selected_quantity"`
	SelectedPrice    int64      `json:"selected_price"`
}

func CartEntityToJSON(c entities.Cart) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLine{
			ID:          l.ID,
			ProductID:   l.ProductID,
			VariantID:   l.VariantID,
			VariantName: l.VariantName,
			ProductName: l.ProductName,
			ImageURL:    l.ImageURL,
			Category:    l.Category,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Selected:    l.Selected,
			Total:       l.Total(),
			AddedAt:     l.AddedAt,
		})
	}
	selected := c.Selected()
	return Cart{
		Lines:            lines,
		TotalQuantity:    c.TotalQuantity(),
		TotalPrice:       c.TotalPrice(),
		UniqueCount:      c.UniqueCount(),
		SelectedQuantity: selected.TotalQuantity(),
		SelectedPrice:    selected.TotalPrice(),
	}
}

type Customer struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address,omitempty"`
	Note    string `json:"note,omitempty" validate:"max=500"`
}

// CheckoutRequest orders the selected cart lines. Either address or address_id must be given.
type CheckoutRequest struct {
	Customer      Customer `json:"customer" validate:"required"`
	AddressID     string   `json:"address_id,omitempty"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=cod bank_transfer e_wallet"`
	DiscountCode  string   `json:"discount_code,omitempty" validate:"max=32"`
}

func (r CheckoutRequest) ToInput() service.CreateOrderInput {
	return service.CreateOrderInput{
		Customer: entities.CustomerInfo{
			Name:    r.Customer.Name,
			Phone:   r.Customer.Phone,
			Email:   r.Customer.Email,
			Address: r.Customer.Address,
			Note:    r.Customer.Note,
		},
		AddressID:     r.AddressID,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		DiscountCode:  r.DiscountCode,
	}
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

type OrderLine struct {
	ProductID   string `json:"product_id"`
	VariantID   string `json:"variant_id,omitempty"`
	VariantName string `json:"variant_name,omitempty"`
	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
}

type Pricing struct {
	Subtotal     int64  `json:"subtotal"`
	ShippingFee  int64  `json:"shipping_fee"`
	Discount     int64  `json:"discount"`
	DiscountCode string `json:"discount_code,omitempty"`
	Total        int64  `json:"total"`
}

type Payment struct {
	Method        string     `json:"method"`
	Status        string     `json:"status" enums:"pending,processing,paid,failed,refunded"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
}

func PaymentEntityToJSON(p entities.PaymentRecord) Payment {
	res := Payment{
		Method:        string(p.Method),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
	}
	if !p.PaidAt.IsZero() {
		paidAt := p.PaidAt
		res.PaidAt = &paidAt
	}
	return res
}

type StatusEntry struct {
	Status    string    `json:"status"`
	Label     string    `json:"label"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Status carries display metadata so clients need no status table of their own.
type Status struct {
	Code        string   `json:"code"`
	Label       string   `json:"label"`
	Color       string   `json:"color"`
	Terminal    bool     `json:"terminal"`
	Cancellable bool     `json:"cancellable"`
	Next        []string `json:"next"`
}

func StatusEntityToJSON(s entities.OrderStatus) Status {
	next := make([]string, 0)
	for _, n := range s.Next() {
		next = append(next, n.String())
	}
	return Status{
		Code:        s.String(),
		Label:       s.Label(),
		Color:       s.Color(),
		Terminal:    s.IsTerminal(),
		Cancellable: s.Cancellable(),
		Next:        next,
	}
}

type Order struct {
	ID                string        `json:"id"`
	Customer          Customer      `json:"customer"`
	Lines             []OrderLine   `json:"lines"`
	ItemCount         int           `json:"item_count"`
	Pricing           Pricing       `json:"pricing"`
	Payment           Payment       `json:"payment"`
	Status            Status        `json:"status"`
	History           []StatusEntry `json:"history"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
}

func OrderEntityToJSON(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{
			ProductID:   l.ProductID,
			VariantID:   l.VariantID,
			VariantName: l.VariantName,
			ProductName: l.ProductName,
			ImageURL:    l.ImageURL,
			Category:    l.Category,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Total:       l.Total(),
		})
	}
	history := make([]StatusEntry, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, StatusEntry{
			Status:    h.Status.String(),
			Label:     h.Status.Label(),
			Note:      h.Note,
			Timestamp: h.Timestamp,
		})
	}
	return Order{
		ID: o.ID,
		Customer: Customer{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Email:   o.Customer.Email,
			Address: o.Customer.Address,
			Note:    o.Customer.Note,
		},
		Lines:     lines,
		ItemCount: o.ItemCount(),
		Pricing: Pricing{
			Subtotal:     o.Pricing.Subtotal,
			ShippingFee:  o.Pricing.ShippingFee,
			Discount:     o.Pricing.Discount,
			DiscountCode: o.Pricing.DiscountCode,
			Total:        o.Pricing.Total,
		},
		Payment:           PaymentEntityToJSON(o.Payment),
		Status:            StatusEntityToJSON(o.Status),
		History:           history,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

// CheckoutResponse reports the new order and, for online methods, the first payment attempt.
type CheckoutResponse struct {
	Order        Order    `json:"order"`
	Payment      *Payment `json:"payment,omitempty"`
	PaymentError string   `json:"payment_error,omitempty"`
}

type ReviewRequest struct {
	ProductID string   `json:"product_id" validate:"required"`
	Rating    int      `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string   `json:"comment" validate:"required"`
	Images    []string `json:"images,omitempty" validate:"max=5,dive,url"`
}

func (r ReviewRequest) ToInput(orderID string) service.SubmitReviewInput {
	return service.SubmitReviewInput{
		OrderID:   orderID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    r.Images,
	}
}

type Review struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	ProductID        string    `json:"product_id"`
	VariantName      string    `json:"variant_name,omitempty"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	Images           []string  `json:"images"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	CreatedAt        time.Time `json:"created_at"`
}

func ReviewEntityToJSON(r entities.Review) Review {
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return Review{
		ID:               r.ID,
		OrderID:          r.OrderID,
		ProductID:        r.ProductID,
		VariantName:      r.VariantName,
		Rating:           r.Rating,
		Comment:          r.Comment,
		Images:           images,
		VerifiedPurchase: r.VerifiedPurchase,
		CreatedAt:        r.CreatedAt,
	}
}

type Eligibility struct {
	CanReview bool `json:"can_review"`
}

type ProductReviews struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
	TotalCount    int      `json:"total_count"`
}

type AddressRequest struct {
	Label         string `json:"label,omitempty" validate:"max=50"`
	RecipientName string `json:"recipient_name" validate:"required,max=100"`
	Phone         string `json:"phone" validate:"required,max=32"`
	Line          string `json:"line" validate:"required,max=500"`
	IsDefault     bool   `json:"is_default"`
}

func (r AddressRequest) ToInput() service.AddressInput {
	return service.AddressInput{
		Label:         r.Label,
		RecipientName: r.RecipientName,
		Phone:         r.Phone,
		Line:          r.Line,
		IsDefault:     r.IsDefault,
	}
}

type Address struct {
	ID            string    `json:"id"`
	Label         string    `json:"label,omitempty"`
	RecipientName string    `json:"recipient_name"`
	Phone         string    `json:"phone"`
	Line          string    `json:"line"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		ID:            a.ID,
		Label:         a.Label,
		RecipientName: a.RecipientName,
		Phone:         a.Phone,
		Line:          a.Line,
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// StatusCommand is an operator instruction, sent over HTTP or the command topic.
// Action "refund" refunds the payment; otherwise Status is the target status.
type StatusCommand struct {
	OrderID string `json:"order_id" validate:"required"`
	Action  string `json:"action,omitempty" validate:"omitempty,oneof=status refund"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed shipping delivered cancelled"`
	Note    string `json:"note,omitempty" validate:"max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipping delivered cancelled"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}
