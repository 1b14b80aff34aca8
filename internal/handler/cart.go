package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewpos/terminal/internal/cart"
	"github.com/brewpos/terminal/internal/catalog"
	"github.com/brewpos/terminal/internal/pricing"
)

// CartHandler handles the in-progress order.
type CartHandler struct {
	cart *cart.Store
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(c *cart.Store) *CartHandler {
	return &CartHandler{cart: c}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/cart", h.Get)
	r.Delete("/cart", h.Clear)
	r.Put("/cart/order-type", h.SetOrderType)
	r.Post("/cart/items", h.AddItem)
	r.Delete("/cart/items/{id}", h.RemoveItem)
	r.Patch("/cart/items/{id}/quantity", h.UpdateQuantity)
	r.Patch("/cart/items/{id}/size", h.UpdateSize)
	r.Post("/cart/items/{id}/addons", h.ToggleAddOn)
}

// --- Request / Response types ---

type addItemRequest struct {
	ProductID string   `json:"product_id"`
	Size      string   `json:"size"`
	AddOnIDs  []string `json:"add_on_ids"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type sizeRequest struct {
	Size string `json:"size"`
}

type toggleAddOnRequest struct {
	AddOnID string `json:"add_on_id"`
}

type orderTypeRequest struct {
	OrderType string `json:"order_type"`
}

type lineItemResponse struct {
	ID         string          `json:"id"`
	Product    productResponse `json:"product"`
	Quantity   int             `json:"quantity"`
	Size       string          `json:"size,omitempty"`
	AddOns     []addOnResponse `json:"add_ons"`
	UnitPrice  string          `json:"unit_price"`
	TotalPrice string          `json:"total_price"`
}

type cartResponse struct {
	Items     []lineItemResponse `json:"items"`
	OrderType string             `json:"order_type"`
	Subtotal  string             `json:"subtotal"`
	Discount  string             `json:"discount"`
	Total     string             `json:"total"`
}

// --- Handlers ---

// Get returns the cart with its derived totals.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartResponse())
}

// AddItem adds one unit of a configured product to the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	product, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	addOns := make([]catalog.AddOn, 0, len(req.AddOnIDs))
	for _, id := range req.AddOnIDs {
		addOn, ok := catalog.AddOnByID(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "add-on not found"})
			return
		}
		addOns = append(addOns, addOn)
	}

	if _, err := h.cart.AddItem(product, req.Size, addOns); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.cartResponse())
}

// RemoveItem deletes a line. Removing an unknown line is not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.cart.RemoveItem(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, h.cartResponse())
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.cart.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

// UpdateSize changes a line's size.
func (h *CartHandler) UpdateSize(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.cart.UpdateSize(chi.URLParam(r, "id"), req.Size); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

// ToggleAddOn adds the add-on to the line if absent, removes it if present.
func (h *CartHandler) ToggleAddOn(w http.ResponseWriter, r *http.Request) {
	var req toggleAddOnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	addOn, ok := catalog.AddOnByID(req.AddOnID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "add-on not found"})
		return
	}

	if err := h.cart.ToggleAddOn(chi.URLParam(r, "id"), addOn); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.ClearCart()
	writeJSON(w, http.StatusOK, h.cartResponse())
}

// SetOrderType switches between dine-in, take-away, and delivery.
func (h *CartHandler) SetOrderType(w http.ResponseWriter, r *http.Request) {
	var req orderTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.cart.SetOrderType(req.OrderType); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order type"})
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() cartResponse {
	items := h.cart.Items()
	resp := cartResponse{
		Items:     make([]lineItemResponse, 0, len(items)),
		OrderType: h.cart.OrderType(),
		Subtotal:  h.cart.Subtotal().StringFixed(2),
		Discount:  h.cart.Discount().StringFixed(2),
		Total:     h.cart.Total().StringFixed(2),
	}
	for _, item := range items {
		addOns := make([]addOnResponse, 0, len(item.SelectedAddOns))
		for _, a := range item.SelectedAddOns {
			addOns = append(addOns, addOnResponse{ID: a.ID, Name: a.Name, Price: a.Price.StringFixed(2)})
		}
		resp.Items = append(resp.Items, lineItemResponse{
			ID:         item.ID,
			Product:    toProductResponse(item.Product),
			Quantity:   item.Quantity,
			Size:       item.Size,
			AddOns:     addOns,
			UnitPrice:  item.UnitPrice.StringFixed(2),
			TotalPrice: item.TotalPrice.StringFixed(2),
		})
	}
	return resp
}

// writeCartError maps pricing validation failures to 400s.
func writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidSize),
		errors.Is(err, pricing.ErrSizeNotAllowed),
		errors.Is(err, pricing.ErrAddOnNotAllowed),
		errors.Is(err, pricing.ErrDuplicateAddOn):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
