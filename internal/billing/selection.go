package billing

import (
	"github.com/palaniappa-jewellers/backoffice/internal/catalog"
)

// Entry is one selected product with its quantity. Quantity is always
// at least 1 while the entry exists; dropping to zero removes the entry
// instead.
type Entry struct {
	Product  catalog.Product
	Quantity int
}

// Selection is the working set of products on a bill, keyed by product
// ID but iterated in insertion order. The ordering matters: calculator
// output must be identical across invocations with the same inputs, and
// a plain map would shuffle line items between calls.
type Selection struct {
	order []int64
	index map[int64]*Entry
}

func NewSelection() *Selection {
	return &Selection{index: make(map[int64]*Entry)}
}

// Add inserts the product with quantity 1, or bumps the quantity when
// the product is already selected.
func (s *Selection) Add(p catalog.Product) {
	if e, ok := s.index[p.ID]; ok {
		e.Quantity++
		return
	}
	s.index[p.ID] = &Entry{Product: p, Quantity: 1}
	s.order = append(s.order, p.ID)
}

// AddWithQuantity inserts the product at the given quantity. Quantities
// below 1 leave the selection untouched.
func (s *Selection) AddWithQuantity(p catalog.Product, qty int) {
	if qty < 1 {
		return
	}
	if e, ok := s.index[p.ID]; ok {
		e.Quantity = qty
		return
	}
	s.index[p.ID] = &Entry{Product: p, Quantity: qty}
	s.order = append(s.order, p.ID)
}

// SetQuantity updates an entry's quantity; a quantity below 1 removes
// the entry entirely.
func (s *Selection) SetQuantity(productID int64, qty int) {
	e, ok := s.index[productID]
	if !ok {
		return
	}
	if qty < 1 {
		s.Remove(productID)
		return
	}
	e.Quantity = qty
}

// Remove deletes the entry for the product, if present.
func (s *Selection) Remove(productID int64) {
	if _, ok := s.index[productID]; !ok {
		return
	}
	delete(s.index, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of selected products.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Entries returns the selection in insertion order.
func (s *Selection) Entries() []Entry {
	if s == nil {
		return nil
	}
	entries := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, *s.index[id])
	}
	return entries
}
