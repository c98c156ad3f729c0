// Package memory is a document store kept in process memory. It backs tests
// and STORE_DRIVER=memory. Documents are copied on the way in and out so
// callers never share state with the store.
package memory

import (
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
)

type Store struct {
	mu sync.RWMutex

	carts     map[string]entities.CartLine
	orders    map[string]entities.Order
	reviews   map[string]entities.Review
	addresses map[string]entities.Address
}

func NewStore() *Store {
	return &Store{
		carts:     make(map[string]entities.CartLine),
		orders:    make(map[string]entities.Order),
		reviews:   make(map[string]entities.Review),
		addresses: make(map[string]entities.Address),
	}
}

func cloneOrder(o entities.Order) entities.Order {
	o.Lines = slices.Clone(o.Lines)
	o.History = slices.Clone(o.History)
	return o
}

func cloneReview(r entities.Review) entities.Review {
	r.Images = slices.Clone(r.Images)
	return r
}
