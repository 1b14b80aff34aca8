package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brewpos/terminal/internal/history"
)

// ReportsHandler serves the dashboard sales figures and the order history.
type ReportsHandler struct {
	history *history.Store
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(h *history.Store) *ReportsHandler {
	return &ReportsHandler{history: h}
}

// RegisterRoutes registers report endpoints on the given Chi router.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/sales", h.Sales)
	r.Get("/reports/history", h.History)
}

// --- Response types ---

type salesPointResponse struct {
	Date   string `json:"date"`
	Sales  string `json:"sales"`
	Orders int    `json:"orders"`
}

type salesResponse struct {
	Series       []salesPointResponse `json:"series"`
	TotalSales   string               `json:"total_sales"`
	TotalOrders  int                  `json:"total_orders"`
	AverageOrder string               `json:"average_order"`
}

type historyRecordResponse struct {
	ID        string `json:"id"`
	OrderType string `json:"order_type"`
	Subtotal  string `json:"subtotal"`
	Discount  string `json:"discount"`
	Total     string `json:"total"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Sales returns the weekly series plus the aggregate KPI figures.
func (h *ReportsHandler) Sales(w http.ResponseWriter, r *http.Request) {
	series := h.history.WeeklySales()
	summary := h.history.Summarize()

	resp := salesResponse{
		Series:       make([]salesPointResponse, 0, len(series)),
		TotalSales:   summary.TotalSales.StringFixed(2),
		TotalOrders:  summary.TotalOrders,
		AverageOrder: summary.AverageOrder.StringFixed(2),
	}
	for _, p := range series {
		resp.Series = append(resp.Series, salesPointResponse{
			Date:   p.Date,
			Sales:  p.Sales.StringFixed(2),
			Orders: p.Orders,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// History returns settled orders, most recent first.
func (h *ReportsHandler) History(w http.ResponseWriter, r *http.Request) {
	records := h.history.Records()

	resp := make([]historyRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, historyRecordResponse{
			ID:        rec.ID,
			OrderType: rec.OrderType,
			Subtotal:  rec.Subtotal.StringFixed(2),
			Discount:  rec.Discount.StringFixed(2),
			Total:     rec.Total.StringFixed(2),
			Status:    rec.Status,
			CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
