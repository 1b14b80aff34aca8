package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brewpos/terminal/internal/cart"
	"github.com/brewpos/terminal/internal/history"
	"github.com/brewpos/terminal/internal/metrics"
	"github.com/brewpos/terminal/internal/payment"
)

// CheckoutHandler owns the terminal's single payment flow. Opening a
// checkout captures the cart as it stands; on settle the order is recorded
// and the cart cleared. Only one flow is live at a time.
type CheckoutHandler struct {
	cart    *cart.Store
	history *history.Store

	processingDelay time.Duration
	settleDelay     time.Duration

	mu         sync.Mutex
	flow       *payment.Flow
	lastTicket string
}

// NewCheckoutHandler creates a new CheckoutHandler. Zero delays use the
// payment package defaults.
func NewCheckoutHandler(c *cart.Store, h *history.Store, processingDelay, settleDelay time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		cart:            c,
		history:         h,
		processingDelay: processingDelay,
		settleDelay:     settleDelay,
	}
}

// RegisterRoutes registers checkout endpoints on the given Chi router.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/cart/checkout", h.Start)
	r.Put("/cart/checkout", h.SelectMethod)
	r.Get("/cart/checkout", h.State)
	r.Delete("/cart/checkout", h.Cancel)
}

type checkoutRequest struct {
	Method string `json:"method"`
}

type checkoutResponse struct {
	State  string `json:"state"`
	Method string `json:"method,omitempty"`
	Closed bool   `json:"closed"`
	Ticket string `json:"ticket,omitempty"`
}

// Start opens a checkout for the current cart. The cart snapshot is taken
// here; mutations after checkout do not affect the settled order. A method
// in the request body starts the charge immediately.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	items := h.cart.Items()
	if len(items) == 0 {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "cart is empty"})
		return
	}
	orderType := h.cart.OrderType()
	subtotal := h.cart.Subtotal()
	discount := h.cart.Discount()
	total := h.cart.Total()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.flow != nil {
		if _, _, closed := h.flow.State(); !closed {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "checkout already open"})
			return
		}
	}

	var flow *payment.Flow
	flow = payment.NewFlow(h.processingDelay, h.settleDelay, func() {
		record := h.history.Append(orderType, items, subtotal, discount, total)
		h.cart.ClearCart()
		metrics.OrdersCompleted.Inc()
		_, method, _ := flow.State()
		metrics.PaymentsTotal.WithLabelValues(method).Inc()

		h.mu.Lock()
		h.lastTicket = record.ID
		h.mu.Unlock()
	})

	if req.Method != "" {
		if err := flow.Select(req.Method); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payment method"})
			return
		}
	}

	h.flow = flow
	h.lastTicket = ""

	state, method, closed := flow.State()
	writeJSON(w, http.StatusAccepted, checkoutResponse{State: state, Method: method, Closed: closed})
}

// SelectMethod starts the simulated charge on the open checkout. Once the
// charge begins it runs to completion.
func (h *CheckoutHandler) SelectMethod(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	h.mu.Lock()
	flow := h.flow
	h.mu.Unlock()

	if flow == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no open checkout"})
		return
	}

	if err := flow.Select(req.Method); err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidMethod):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payment method"})
		case errors.Is(err, payment.ErrAlreadyStarted), errors.Is(err, payment.ErrFlowClosed):
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}

	state, method, closed := flow.State()
	writeJSON(w, http.StatusOK, checkoutResponse{State: state, Method: method, Closed: closed})
}

// State polls the live flow. The settled ticket id appears once the charge
// has cleared.
func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	flow, ticket := h.flow, h.lastTicket
	h.mu.Unlock()

	if flow == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no open checkout"})
		return
	}

	state, method, closed := flow.State()
	writeJSON(w, http.StatusOK, checkoutResponse{State: state, Method: method, Closed: closed, Ticket: ticket})
}

// Cancel abandons a checkout that has not started charging. A charge in
// flight runs to completion.
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	flow := h.flow
	h.mu.Unlock()

	if flow == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no open checkout"})
		return
	}

	if err := flow.Cancel(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "payment in progress"})
		return
	}

	state, method, closed := flow.State()
	writeJSON(w, http.StatusOK, checkoutResponse{State: state, Method: method, Closed: closed})
}
