package orders

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/enum"
)

// recordingBroadcaster captures emitted events for assertions.
type recordingBroadcaster struct {
	events []string
	orders []Order
}

func (b *recordingBroadcaster) OrderEvent(eventType string, order Order) {
	b.events = append(b.events, eventType)
	b.orders = append(b.orders, order)
}

func newOrder(id, status string) Order {
	return Order{
		ID:         id,
		Platform:   enum.PlatformUberEats,
		ExternalID: "UE-10001",
		Time:       time.Now(),
		Items:      []Item{{Name: "Cappuccino", Quantity: 1}},
		Total:      decimal.RequireFromString("4.98"),
		Status:     status,
	}
}

func TestAddPrependsMostRecentFirst(t *testing.T) {
	s := NewEmptyStore(nil)
	s.Add(newOrder("a", enum.OrderStatusNew))
	s.Add(newOrder("b", enum.OrderStatusNew))

	got := s.Orders()
	if len(got) != 2 {
		t.Fatalf("got %d orders, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("order not most-recent-first: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestHappyPathLifecycle(t *testing.T) {
	s := NewEmptyStore(nil)
	s.Add(newOrder("o1", enum.OrderStatusNew))

	for _, next := range []string{
		enum.OrderStatusPreparing,
		enum.OrderStatusReady,
		enum.OrderStatusCompleted,
	} {
		updated, err := s.UpdateStatus("o1", next)
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", next, err)
		}
		if updated.Status != next {
			t.Fatalf("status = %s, want %s", updated.Status, next)
		}
	}

	// Completed is terminal: attempting to rewind must not change state.
	if _, err := s.UpdateStatus("o1", enum.OrderStatusNew); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	got, err := s.Get("o1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != enum.OrderStatusCompleted {
		t.Errorf("terminal state corrupted to %s", got.Status)
	}
}

func TestRejectEdge(t *testing.T) {
	s := NewEmptyStore(nil)
	s.Add(newOrder("o1", enum.OrderStatusNew))

	updated, err := s.UpdateStatus("o1", enum.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != enum.OrderStatusCancelled {
		t.Errorf("status = %s, want Cancelled", updated.Status)
	}

	// Cancelled is terminal.
	if _, err := s.UpdateStatus("o1", enum.OrderStatusPreparing); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestStatusGraphClosure(t *testing.T) {
	all := []string{
		enum.OrderStatusNew,
		enum.OrderStatusPreparing,
		enum.OrderStatusReady,
		enum.OrderStatusCompleted,
		enum.OrderStatusCancelled,
	}
	legal := map[[2]string]bool{
		{enum.OrderStatusNew, enum.OrderStatusPreparing}:   true,
		{enum.OrderStatusNew, enum.OrderStatusCancelled}:   true,
		{enum.OrderStatusPreparing, enum.OrderStatusReady}: true,
		{enum.OrderStatusReady, enum.OrderStatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			s := NewEmptyStore(nil)
			s.Add(newOrder("o1", from))
			_, err := s.UpdateStatus("o1", to)

			if legal[[2]string{from, to}] {
				if err != nil {
					t.Errorf("%s -> %s should be legal, got %v", from, to, err)
				}
			} else if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s -> %s should be rejected, got %v", from, to, err)
			}
		}
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	s := NewEmptyStore(nil)
	if _, err := s.UpdateStatus("missing", enum.OrderStatusPreparing); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	s := NewEmptyStore(nil)
	s.Add(newOrder("o1", enum.OrderStatusNew))
	if _, err := s.UpdateStatus("o1", "Shipped"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestBroadcasts(t *testing.T) {
	b := &recordingBroadcaster{}
	s := NewEmptyStore(b)

	s.Add(newOrder("o1", enum.OrderStatusNew))
	if _, err := s.UpdateStatus("o1", enum.OrderStatusPreparing); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	want := []string{EventOrderCreated, EventOrderStatus}
	if len(b.events) != len(want) {
		t.Fatalf("got %d events, want %d", len(b.events), len(want))
	}
	for i := range want {
		if b.events[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, b.events[i], want[i])
		}
	}
	if b.orders[1].Status != enum.OrderStatusPreparing {
		t.Errorf("status event carries %s, want Preparing", b.orders[1].Status)
	}
}

func TestSeededOrders(t *testing.T) {
	s := NewStore(nil)
	got := s.Orders()
	if len(got) != 3 {
		t.Fatalf("got %d seeded orders, want 3", len(got))
	}
	if got[0].ExternalID != "UE-45821" || got[0].Status != enum.OrderStatusNew {
		t.Errorf("unexpected first seeded order: %+v", got[0])
	}
}

func TestSimulateNewStructuralValidity(t *testing.T) {
	s := NewEmptyStore(nil)

	for i := 0; i < 50; i++ {
		order := s.SimulateNew()

		if len(order.Items) < 1 || len(order.Items) > 3 {
			t.Fatalf("item count %d out of range", len(order.Items))
		}
		if order.Total.IsNegative() {
			t.Fatalf("negative total %s", order.Total)
		}
		if order.Status != enum.OrderStatusNew {
			t.Fatalf("status = %s, want New", order.Status)
		}
		if order.Platform != enum.PlatformUberEats && order.Platform != enum.PlatformDoorDash {
			t.Fatalf("unknown platform %q", order.Platform)
		}
		if order.ID == "" || order.ExternalID == "" {
			t.Fatalf("missing identifiers: %+v", order)
		}
		if found, err := s.Get(order.ID); err != nil || found.Status != enum.OrderStatusNew {
			t.Fatalf("simulated order not present as New: %v", err)
		}
	}
}
