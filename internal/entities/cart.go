package entities

import "time"

// Product is the catalog data captured when a product is put into the cart.
type Product struct {
	ID       string
	Name     string
	Price    int64
	ImageURL string
	Category string
}

// Variant is an optional product variant. Price overrides the product price when positive.
type Variant struct {
	ID       string
	Name     string
	Price    int64
	ImageURL string
}

type CartLine struct {
	ID          string
	UserID      string
	ProductID   string
	VariantID   string
	VariantName string
	ProductName string
	UnitPrice   int64
	ImageURL    string
	Category    string
	Quantity    int
	Selected    bool
	AddedAt     time.Time
	UpdatedAt   time.Time
}

// CartLineKey identifies a cart line. An empty VariantID means "no variant",
// which never matches a line of the same product that has one.
type CartLineKey struct {
	UserID    string
	ProductID string
	VariantID string
}

func (l CartLine) Key() CartLineKey {
	return CartLineKey{UserID: l.UserID, ProductID: l.ProductID, VariantID: l.VariantID}
}

func (l CartLine) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// NewCartLine captures product and variant metadata at add time.
func NewCartLine(userID string, p Product, v *Variant, quantity int, now time.Time) CartLine {
	line := CartLine{
		UserID:      userID,
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Quantity:    quantity,
		Selected:    true,
		AddedAt:     now,
		UpdatedAt:   now,
	}
	if v != nil && v.ID != "" {
		line.VariantID = v.ID
		line.VariantName = v.Name
		if v.Price > 0 {
			line.UnitPrice = v.Price
		}
		if v.ImageURL != "" {
			line.ImageURL = v.ImageURL
		}
	}
	return line
}

// Cart is a read-only view of a user's lines. Aggregates are computed on every call.
type Cart struct {
	UserID string
	Lines  []CartLine
}

func (c Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

func (c Cart) TotalPrice() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

func (c Cart) UniqueCount() int {
	return len(c.Lines)
}

func (c Cart) Selected() Cart {
	selected := Cart{UserID: c.UserID, Lines: make([]CartLine, 0, len(c.Lines))}
	for _, l := range c.Lines {
		if l.Selected {
			selected.Lines = append(selected.Lines, l)
		}
	}
	return selected
}

func (c Cart) LineIDs() []string {
	ids := make([]string, 0, len(c.Lines))
	for _, l := range c.Lines {
		ids = append(ids, l.ID)
	}
	return ids
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
