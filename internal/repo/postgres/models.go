package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/lib/pq"
)

type CartLine struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	ProductID   string    `db:"product_id"`
	VariantID   string    `db:"variant_id"`
	VariantName string    `db:"variant_name"`
	ProductName string    `db:"product_name"`
	UnitPrice   int64     `db:"unit_price"`
	ImageURL    string    `db:"image_url"`
	Category    string    `db:"category"`
	Quantity    int       `db:"quantity"`
	Selected    bool      `db:"selected"`
	AddedAt     time.Time `db:"added_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Order struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`

	CustomerName    string         `db:"customer_name"`
	CustomerPhone   string         `db:"customer_phone"`
	CustomerEmail   string         `db:"customer_email"`
	CustomerAddress string         `db:"customer_address"`
	CustomerNote    sql.NullString `db:"customer_note"`

	Lines []byte `db:"lines"`

	Subtotal     int64          `db:"subtotal"`
	ShippingFee  int64          `db:"shipping_fee"`
	Discount     int64          `db:"discount"`
	DiscountCode sql.NullString `db:"discount_code"`
	Total        int64          `db:"total"`

	PaymentMethod string         `db:"payment_method"`
	PaymentStatus string         `db:"payment_status"`
	PaidAt        sql.NullTime   `db:"paid_at"`
	TransactionID sql.NullString `db:"transaction_id"`

	Status        string `db:"status"`
	StatusHistory []byte `db:"status_history"`

	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	EstimatedDelivery time.Time `db:"estimated_delivery"`
	Version           int64     `db:"version"`
}

// orderLineDoc and statusEntryDoc are the JSONB shapes of the nested arrays.
type orderLineDoc struct {
	ProductID   string `json:"product_id"`
	VariantID   string `json:"variant_id,omitempty"`
	VariantName string `json:"variant_name,omitempty"`
	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

type statusEntryDoc struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

type Review struct {
	ID               string         `db:"id"`
	OrderID          string         `db:"order_id"`
	UserID           string         `db:"user_id"`
	ProductID        string         `db:"product_id"`
	VariantName      sql.NullString `db:"variant_name"`
	Rating           int            `db:"rating"`
	Comment          string         `db:"comment"`
	Images           pq.StringArray `db:"images"`
	VerifiedPurchase bool           `db:"verified_purchase"`
	CreatedAt        time.Time      `db:"created_at"`
}

type Address struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	Label         string    `db:"label"`
	RecipientName string    `db:"recipient_name"`
	Phone         string    `db:"phone"`
	Line          string    `db:"line"`
	IsDefault     bool      `db:"is_default"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func CartLineToEntity(l CartLine) entities.CartLine {
	return entities.CartLine{
		ID:          l.ID,
		UserID:      l.UserID,
		ProductID:   l.ProductID,
		VariantID:   l.VariantID,
		VariantName: l.VariantName,
		ProductName: l.ProductName,
		UnitPrice:   l.UnitPrice,
		ImageURL:    l.ImageURL,
		Category:    l.Category,
		Quantity:    l.Quantity,
		Selected:    l.Selected,
		AddedAt:     l.AddedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func encodeLines(lines []entities.OrderLine) (string, error) {
	docs := make([]orderLineDoc, 0, len(lines))
	for _, l := range lines {
		docs = append(docs, orderLineDoc{
			ProductID:   l.ProductID,
			VariantID:   l.VariantID,
			VariantName: l.VariantName,
			ProductName: l.ProductName,
			ImageURL:    l.ImageURL,
			Category:    l.Category,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("failed to encode order lines: %w", err)
	}
	return string(data), nil
}

func encodeHistory(history []entities.StatusHistoryEntry) (string, error) {
	docs := make([]statusEntryDoc, 0, len(history))
	for _, h := range history {
		docs = append(docs, statusEntryDoc{Status: string(h.Status), Note: h.Note, Timestamp: h.Timestamp})
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("failed to encode status history: %w", err)
	}
	return string(data), nil
}

func OrderToEntity(o Order) (entities.Order, error) {
	var lineDocs []orderLineDoc
	if err := json.Unmarshal(o.Lines, &lineDocs); err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode order lines: %w", err)
	}
	var historyDocs []statusEntryDoc
	if err := json.Unmarshal(o.StatusHistory, &historyDocs); err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode status history: %w", err)
	}

	order := entities.Order{
		ID:     o.ID,
		UserID: o.UserID,
		Customer: entities.CustomerInfo{
			Name:    o.CustomerName,
			Phone:   o.CustomerPhone,
			Email:   o.CustomerEmail,
			Address: o.CustomerAddress,
			Note:    nullStringToString(o.CustomerNote),
		},
		Pricing: entities.PricingSnapshot{
			Subtotal:     o.Subtotal,
			ShippingFee:  o.ShippingFee,
			Discount:     o.Discount,
			DiscountCode: nullStringToString(o.DiscountCode),
			Total:        o.Total,
		},
		Payment: entities.PaymentRecord{
			Method:        entities.PaymentMethod(o.PaymentMethod),
			Status:        entities.PaymentStatus(o.PaymentStatus),
			TransactionID: nullStringToString(o.TransactionID),
		},
		Status:            entities.OrderStatus(o.Status),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		Version:           o.Version,
	}
	if o.PaidAt.Valid {
		order.Payment.PaidAt = o.PaidAt.Time
	}

	order.Lines = make([]entities.OrderLine, 0, len(lineDocs))
	for _, d := range lineDocs {
		order.Lines = append(order.Lines, entities.OrderLine{
			ProductID:   d.ProductID,
			VariantID:   d.VariantID,
			VariantName: d.VariantName,
			ProductName: d.ProductName,
			ImageURL:    d.ImageURL,
			Category:    d.Category,
			UnitPrice:   d.UnitPrice,
			Quantity:    d.Quantity,
		})
	}
	order.History = make([]entities.StatusHistoryEntry, 0, len(historyDocs))
	for _, d := range historyDocs {
		order.History = append(order.History, entities.StatusHistoryEntry{
			Status:    entities.OrderStatus(d.Status),
			Note:      d.Note,
			Timestamp: d.Timestamp,
		})
	}
	return order, nil
}

func ReviewToEntity(r Review) entities.Review {
	return entities.Review{
		ID:               r.ID,
		OrderID:          r.OrderID,
		UserID:           r.UserID,
		ProductID:        r.ProductID,
		VariantName:      nullStringToString(r.VariantName),
		Rating:           r.Rating,
		Comment:          r.Comment,
		Images:           []string(r.Images),
		VerifiedPurchase: r.VerifiedPurchase,
		CreatedAt:        r.CreatedAt,
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:            a.ID,
		UserID:        a.UserID,
		Label:         a.Label,
		RecipientName: a.RecipientName,
		Phone:         a.Phone,
		Line:          a.Line,
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
