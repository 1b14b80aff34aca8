package orders

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/enum"
)

// Errors returned by the online-orders store.
var (
	ErrOrderNotFound     = errors.New("online order not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Item is a single line on an inbound delivery order.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Order is an inbound delivery-platform order. Orders are never deleted;
// terminal statuses are retained for display.
type Order struct {
	ID            string          `json:"id"`
	Platform      string          `json:"platform"`
	ExternalID    string          `json:"external_order_id"`
	Time          time.Time       `json:"time"`
	Items         []Item          `json:"items"`
	CustomerNotes string          `json:"customer_notes,omitempty"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
}

// Broadcaster receives order lifecycle events for push delivery. A nil
// broadcaster is valid and drops events.
type Broadcaster interface {
	OrderEvent(eventType string, order Order)
}

// Event types emitted by the store.
const (
	EventOrderCreated = "online_order.created"
	EventOrderStatus  = "online_order.status"
)

// allowedTransitions is the closed status graph. Forward-only happy path,
// with a single reject edge out of New. Completed and Cancelled are terminal.
var allowedTransitions = map[string][]string{
	enum.OrderStatusNew:       {enum.OrderStatusPreparing, enum.OrderStatusCancelled},
	enum.OrderStatusPreparing: {enum.OrderStatusReady},
	enum.OrderStatusReady:     {enum.OrderStatusCompleted},
}

// Store owns the inbound delivery orders and their status machine. The store
// itself validates every transition against the graph; callers cannot corrupt
// an order's state by requesting an illegal jump. Safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	orders      []Order
	broadcaster Broadcaster
}

// NewStore creates a store pre-loaded with the standing demo orders.
func NewStore(b Broadcaster) *Store {
	s := &Store{broadcaster: b}
	s.orders = seedOrders(time.Now())
	return s
}

// NewEmptyStore creates a store with no seeded orders.
func NewEmptyStore(b Broadcaster) *Store {
	return &Store{broadcaster: b}
}

// Add prepends the order, keeping the collection most-recent-first.
func (s *Store) Add(order Order) {
	s.mu.Lock()
	s.orders = append([]Order{order}, s.orders...)
	s.mu.Unlock()

	if s.broadcaster != nil {
		s.broadcaster.OrderEvent(EventOrderCreated, order)
	}
}

// Orders returns all orders, most recent first.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Order(nil), s.orders...)
}

// Get returns the order with the given id.
func (s *Store) Get(orderID string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return s.orders[i], nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// UpdateStatus moves the order along the status graph. Illegal transitions,
// including any transition out of a terminal state, fail with
// ErrInvalidTransition and leave the order unchanged.
func (s *Store) UpdateStatus(orderID, next string) (Order, error) {
	if !enum.IsValidOrderStatus(next) {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if err := validateTransition(s.orders[i].Status, next); err != nil {
			return Order{}, err
		}
		s.orders[i].Status = next
		updated := s.orders[i]

		if s.broadcaster != nil {
			// Holding the lock is fine: broadcasters queue, they don't block.
			s.broadcaster.OrderEvent(EventOrderStatus, updated)
		}
		return updated, nil
	}
	return Order{}, ErrOrderNotFound
}

func validateTransition(current, next string) error {
	for _, allowed := range allowedTransitions[current] {
		if allowed == next {
			return nil
		}
	}
	return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current, next)
}

func seedOrders(now time.Time) []Order {
	return []Order{
		{
			ID:         "online-1",
			Platform:   enum.PlatformUberEats,
			ExternalID: "UE-45821",
			Time:       now.Add(-5 * time.Minute),
			Items: []Item{
				{Name: "Cappuccino", Quantity: 2, Notes: "Extra hot"},
				{Name: "Butter Croissant", Quantity: 1},
			},
			CustomerNotes: "Please ring doorbell",
			Total:         decimal.RequireFromString("13.94"),
			Status:        enum.OrderStatusNew,
		},
		{
			ID:         "online-2",
			Platform:   enum.PlatformDoorDash,
			ExternalID: "DD-78234",
			Time:       now.Add(-12 * time.Minute),
			Items: []Item{
				{Name: "Coffee Latte", Quantity: 1},
				{Name: "Avocado Toast", Quantity: 1},
			},
			Total:  decimal.RequireFromString("15.96"),
			Status: enum.OrderStatusPreparing,
		},
		{
			ID:         "online-3",
			Platform:   enum.PlatformUberEats,
			ExternalID: "UE-45820",
			Time:       now.Add(-25 * time.Minute),
			Items: []Item{
				{Name: "Mocha", Quantity: 2},
				{Name: "Tiramisu", Quantity: 2},
			},
			CustomerNotes: "Leave at door",
			Total:         decimal.RequireFromString("28.92"),
			Status:        enum.OrderStatusReady,
		},
	}
}
