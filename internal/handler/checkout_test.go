package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brewpos/terminal/internal/cart"
	"github.com/brewpos/terminal/internal/handler"
	"github.com/brewpos/terminal/internal/history"
)

func newCheckoutRouter() (chi.Router, *cart.Store, *history.Store) {
	c := cart.NewStore()
	hist := history.NewEmptyStore()

	r := chi.NewRouter()
	handler.NewCartHandler(c).RegisterRoutes(r)
	handler.NewCheckoutHandler(c, hist, 10*time.Millisecond, 10*time.Millisecond).RegisterRoutes(r)
	return r, c, hist
}

func waitForTicket(t *testing.T, r http.Handler) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		rr := getJSON(t, r, "/cart/checkout")
		if rr.Code != http.StatusOK {
			t.Fatalf("poll status: got %d; body: %s", rr.Code, rr.Body.String())
		}
		resp := decodeResponse(t, rr)
		if resp["closed"] == true {
			ticket, _ := resp["ticket"].(string)
			return ticket
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("checkout did not settle in time")
	return ""
}

func TestCheckout_EmptyCart(t *testing.T) {
	r, _, _ := newCheckoutRouter()

	rr := postJSON(t, r, "/cart/checkout", nil)
	if rr.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestCheckout_FullRun(t *testing.T) {
	r, c, hist := newCheckoutRouter()
	postJSON(t, r, "/cart/items", map[string]interface{}{"product_id": "club-sandwich"})

	rr := postJSON(t, r, "/cart/checkout", nil)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("open status: got %d, want %d; body: %s", rr.Code, http.StatusAccepted, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	if resp["state"] != "idle" {
		t.Errorf("state after open: got %v, want idle", resp["state"])
	}

	rr = doJSON(t, r, "PUT", "/cart/checkout", map[string]string{"method": "card"})
	if rr.Code != http.StatusOK {
		t.Fatalf("select status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp = decodeResponse(t, rr)
	if resp["state"] != "processing" {
		t.Errorf("state after select: got %v, want processing", resp["state"])
	}

	ticket := waitForTicket(t, r)
	if ticket == "" {
		t.Fatal("expected settled ticket id")
	}

	records := hist.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
	if records[0].ID != ticket {
		t.Errorf("ticket: got %q, want %q", ticket, records[0].ID)
	}
	if records[0].Total.StringFixed(2) != "11.48" {
		t.Errorf("recorded total: got %s, want 11.48", records[0].Total.StringFixed(2))
	}
	if len(c.Items()) != 0 {
		t.Error("cart should be cleared after settle")
	}
}

func TestCheckout_StartWithMethod(t *testing.T) {
	r, _, _ := newCheckoutRouter()
	postJSON(t, r, "/cart/items", map[string]interface{}{"product_id": "club-sandwich"})

	rr := postJSON(t, r, "/cart/checkout", map[string]string{"method": "cash"})
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	if resp["state"] != "processing" {
		t.Errorf("state: got %v, want processing", resp["state"])
	}
	if resp["method"] != "cash" {
		t.Errorf("method: got %v, want cash", resp["method"])
	}

	waitForTicket(t, r)
}

func TestCheckout_InvalidMethod(t *testing.T) {
	r, _, _ := newCheckoutRouter()
	postJSON(t, r, "/cart/items", map[string]interface{}{"product_id": "club-sandwich"})

	rr := postJSON(t, r, "/cart/checkout", map[string]string{"method": "barter"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCheckout_CancelBeforeCharge(t *testing.T) {
	r, c, hist := newCheckoutRouter()
	postJSON(t, r, "/cart/items", map[string]interface{}{"product_id": "club-sandwich"})
	postJSON(t, r, "/cart/checkout", nil)

	rr := doJSON(t, r, "DELETE", "/cart/checkout", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}

	if len(hist.Records()) != 0 {
		t.Error("cancelled checkout must not record history")
	}
	if len(c.Items()) != 1 {
		t.Error("cancelled checkout must keep the cart")
	}
}

func TestCheckout_NoCancelDuringCharge(t *testing.T) {
	r, _, _ := newCheckoutRouter()
	postJSON(t, r, "/cart/items", map[string]interface{}{"product_id": "club-sandwich"})
	postJSON(t, r, "/cart/checkout", map[string]string{"method": "card"})

	rr := doJSON(t, r, "DELETE", "/cart/checkout", nil)
	if rr.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusConflict)
	}

	waitForTicket(t, r)
}

func TestCheckout_SecondOpenWhileLive(t *testing.T) {
	r, _, _ := newCheckoutRouter()
	postJSON(t, r, "/cart/items", map[string]interface{}{"product_id": "club-sandwich"})
	postJSON(t, r, "/cart/checkout", nil)

	rr := postJSON(t, r, "/cart/checkout", nil)
	if rr.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestCheckout_ReopenAfterSettle(t *testing.T) {
	r, _, hist := newCheckoutRouter()
	postJSON(t, r, "/cart/items", map[string]interface{}{"product_id": "club-sandwich"})
	postJSON(t, r, "/cart/checkout", map[string]string{"method": "card"})
	waitForTicket(t, r)

	postJSON(t, r, "/cart/items", map[string]interface{}{"product_id": "cookie"})
	rr := postJSON(t, r, "/cart/checkout", map[string]string{"method": "cash"})
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	waitForTicket(t, r)

	if len(hist.Records()) != 2 {
		t.Errorf("expected 2 settled orders, got %d", len(hist.Records()))
	}
}

func TestCheckout_PollWithoutActiveFlow(t *testing.T) {
	r, _, _ := newCheckoutRouter()

	rr := getJSON(t, r, "/cart/checkout")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}
