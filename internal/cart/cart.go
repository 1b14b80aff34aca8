package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/catalog"
	"github.com/brewpos/terminal/internal/enum"
	"github.com/brewpos/terminal/internal/pricing"
)

// Errors returned by the cart store.
var (
	ErrInvalidOrderType = errors.New("invalid order type")
)

// Orders above this subtotal get a flat 10% discount. Strictly greater-than:
// a subtotal of exactly 20.00 earns nothing.
var (
	discountThreshold = decimal.RequireFromString("20.00")
	discountRate      = decimal.RequireFromString("0.10")
)

// LineItem is one configured product in the cart. TotalPrice is always
// recomputed from the configuration, never scaled incrementally.
type LineItem struct {
	ID             string
	Product        catalog.Product
	Quantity       int
	Size           string
	SelectedAddOns []catalog.AddOn
	UnitPrice      decimal.Decimal
	TotalPrice     decimal.Decimal
}

// Store owns the terminal's in-progress order. All mutations go through the
// pricing engine so derived amounts cannot drift. Safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	items     []LineItem
	orderType string
}

// NewStore creates an empty cart defaulting to dine-in.
func NewStore() *Store {
	return &Store{orderType: enum.OrderTypeDineIn}
}

// AddItem adds one unit of the configured product. If a line with the same
// configuration already exists (regardless of add-on selection order) its
// quantity is incremented instead of a new line being appended.
// An empty size on a sized product means Small.
func (s *Store) AddItem(p catalog.Product, size string, addOns []catalog.AddOn) (LineItem, error) {
	if p.HasSizes && size == "" {
		size = enum.SizeSmall
	}
	if err := pricing.ValidateSelection(p, size, addOns); err != nil {
		return LineItem{}, err
	}

	unit, err := pricing.PriceOf(p, size, addOns)
	if err != nil {
		return LineItem{}, err
	}

	key := pricing.LineKey(p.ID, size, addOns)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == key {
			s.items[i].Quantity++
			s.items[i].UnitPrice = unit
			s.items[i].TotalPrice = unit.Mul(decimal.NewFromInt(int64(s.items[i].Quantity)))
			return s.items[i], nil
		}
	}

	item := LineItem{
		ID:             key,
		Product:        p,
		Quantity:       1,
		Size:           size,
		SelectedAddOns: append([]catalog.AddOn(nil), addOns...),
		UnitPrice:      unit,
		TotalPrice:     unit,
	}
	s.items = append(s.items, item)
	return item, nil
}

// RemoveItem deletes the line with the given id. Removing an unknown id is a
// no-op, which keeps the operation idempotent.
func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(itemID)
}

func (s *Store) removeLocked(itemID string) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity and reprices it from its stored
// configuration. A quantity of zero or less removes the line; negative
// quantities are never observable.
func (s *Store) UpdateQuantity(itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(itemID)
		return nil
	}

	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}
		unit, err := pricing.PriceOf(s.items[i].Product, s.items[i].Size, s.items[i].SelectedAddOns)
		if err != nil {
			return err
		}
		s.items[i].Quantity = quantity
		s.items[i].UnitPrice = unit
		s.items[i].TotalPrice = unit.Mul(decimal.NewFromInt(int64(quantity)))
		return nil
	}
	return nil // unknown id: no-op
}

// UpdateSize changes the line's size and reprices it. The line's identity is
// recomputed; if the new configuration matches another existing line, the two
// merge so identical configurations never occupy two rows.
func (s *Store) UpdateSize(itemID, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}
		if err := pricing.ValidateSelection(s.items[i].Product, size, s.items[i].SelectedAddOns); err != nil {
			return err
		}
		s.items[i].Size = size
		return s.repriceAndRekeyLocked(i)
	}
	return nil // unknown id: no-op
}

// ToggleAddOn adds the add-on to the line if absent and removes it if present
// (set semantics keyed by add-on id), then reprices. Identity is recomputed
// and merged like UpdateSize.
func (s *Store) ToggleAddOn(itemID string, addOn catalog.AddOn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}

		selected := s.items[i].SelectedAddOns
		removed := false
		for j := range selected {
			if selected[j].ID == addOn.ID {
				selected = append(selected[:j], selected[j+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			if !s.items[i].Product.Allows(addOn.ID) {
				return fmt.Errorf("%w: %s on %s", pricing.ErrAddOnNotAllowed, addOn.ID, s.items[i].Product.ID)
			}
			selected = append(selected, addOn)
		}
		s.items[i].SelectedAddOns = selected
		return s.repriceAndRekeyLocked(i)
	}
	return nil // unknown id: no-op
}

// repriceAndRekeyLocked recomputes the line's unit price, total, and identity
// after a configuration change, merging into an existing line on key collision.
func (s *Store) repriceAndRekeyLocked(i int) error {
	item := &s.items[i]

	unit, err := pricing.PriceOf(item.Product, item.Size, item.SelectedAddOns)
	if err != nil {
		return err
	}

	newKey := pricing.LineKey(item.Product.ID, item.Size, item.SelectedAddOns)
	for j := range s.items {
		if j != i && s.items[j].ID == newKey {
			s.items[j].Quantity += item.Quantity
			s.items[j].UnitPrice = unit
			s.items[j].TotalPrice = unit.Mul(decimal.NewFromInt(int64(s.items[j].Quantity)))
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}

	item.ID = newKey
	item.UnitPrice = unit
	item.TotalPrice = unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return nil
}

// ClearCart empties the cart. The order type is preserved.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// SetOrderType sets the order type. Items and pricing are unaffected.
func (s *Store) SetOrderType(orderType string) error {
	if !enum.IsValidOrderType(orderType) {
		return ErrInvalidOrderType
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderType = orderType
	return nil
}

// OrderType returns the current order type.
func (s *Store) OrderType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderType
}

// Items returns a snapshot of the cart lines in insertion order. Add-on
// slices are copied too; later edits never show through.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]LineItem(nil), s.items...)
	for i := range out {
		out[i].SelectedAddOns = append([]catalog.AddOn(nil), out[i].SelectedAddOns...)
	}
	return out
}

// Subtotal is recomputed from the raw lines on every call.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *Store) subtotalLocked() decimal.Decimal {
	sum := decimal.Zero
	for i := range s.items {
		sum = sum.Add(s.items[i].TotalPrice)
	}
	return sum
}

// Discount is 10% of the subtotal once it exceeds 20.00, otherwise zero.
func (s *Store) Discount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return discountFor(s.subtotalLocked())
}

// Total is subtotal minus discount.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal := s.subtotalLocked()
	return subtotal.Sub(discountFor(subtotal))
}

func discountFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(discountThreshold) {
		return subtotal.Mul(discountRate)
	}
	return decimal.Zero
}
