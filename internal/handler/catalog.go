package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewpos/terminal/internal/catalog"
)

// CatalogHandler serves the static product catalog.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// RegisterRoutes registers catalog endpoints on the given Chi router.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/catalog/products", h.ListProducts)
	r.Get("/catalog/categories", h.ListCategories)
}

type productResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       string          `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	HasSizes    bool            `json:"has_sizes"`
	AddOns      []addOnResponse `json:"add_ons"`
}

type addOnResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ListProducts returns the catalog, optionally filtered by ?category=.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := catalog.Products
	if category := r.URL.Query().Get("category"); category != "" {
		products = catalog.ByCategory(category)
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListCategories returns the category names in display order.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories)
}

func toProductResponse(p catalog.Product) productResponse {
	addOns := make([]addOnResponse, 0, len(p.AddOns))
	for _, a := range p.AddOns {
		addOns = append(addOns, addOnResponse{ID: a.ID, Name: a.Name, Price: a.Price.StringFixed(2)})
	}
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Image:       p.Image,
		Category:    p.Category,
		HasSizes:    p.HasSizes,
		AddOns:      addOns,
	}
}
