package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/brewpos/terminal/internal/enum"
	"github.com/brewpos/terminal/internal/metrics"
	"github.com/brewpos/terminal/internal/orders"
	"github.com/brewpos/terminal/internal/settings"
)

// OrdersHandler handles inbound delivery-platform orders.
type OrdersHandler struct {
	store   *orders.Store
	secrets SecretStore
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(store *orders.Store, secrets SecretStore) *OrdersHandler {
	return &OrdersHandler{store: store, secrets: secrets}
}

// RegisterRoutes registers online-order endpoints on the given Chi router.
func (h *OrdersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/orders/online", h.List)
	r.Post("/orders/online/simulate", h.Simulate)
	r.Patch("/orders/online/{id}/status", h.UpdateStatus)
}

type updateStatusRequest struct {
	Status        string `json:"status"`
	SupervisorKey string `json:"supervisor_key"`
}

// List returns all online orders, most recent first.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Orders())
}

// Simulate injects a randomized inbound order, standing in for a real
// delivery-platform webhook.
func (h *OrdersHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	order := h.store.SimulateNew()
	metrics.OnlineOrdersReceived.WithLabelValues(order.Platform).Inc()
	writeJSON(w, http.StatusCreated, order)
}

// UpdateStatus moves an order along its lifecycle. Rejecting an order
// requires the supervisor key.
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Status == enum.OrderStatusCancelled {
		keyHash, err := h.secrets.Secret(settings.SecretSupervisorKey)
		if err != nil {
			if errors.Is(err, settings.ErrNotFound) {
				writeJSON(w, http.StatusForbidden, map[string]string{"error": "supervisor key required"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(req.SupervisorKey)) != nil {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "supervisor key required"})
			return
		}
	}

	order, err := h.store.UpdateStatus(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		case errors.Is(err, orders.ErrInvalidStatus):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		case errors.Is(err, orders.ErrInvalidTransition):
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, order)
}
