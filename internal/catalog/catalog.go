package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/enum"
)

// AddOn is an immutable catalog entry a customer can attach to a drink.
type AddOn struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Product is a static menu entry. Read-only to the rest of the system.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	HasSizes    bool            `json:"has_sizes"`
	AddOns      []AddOn         `json:"add_ons,omitempty"`
}

// Categories in menu display order.
var Categories = []string{
	enum.CategoryCoffee,
	enum.CategoryNonCoffee,
	enum.CategoryFood,
	enum.CategorySnack,
	enum.CategoryDessert,
}

// ProductByID returns the product with the given id, or false if absent.
func ProductByID(id string) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// AddOnByID looks an add-on up across all add-on groups.
func AddOnByID(id string) (AddOn, bool) {
	for _, group := range [][]AddOn{MilkOptions, ExtraOptions, SyrupOptions, ToppingOptions} {
		for _, a := range group {
			if a.ID == id {
				return a, true
			}
		}
	}
	return AddOn{}, false
}

// ByCategory returns all products in the given category, in menu order.
func ByCategory(category string) []Product {
	var out []Product
	for _, p := range Products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Allows reports whether the product offers the given add-on.
func (p Product) Allows(addOnID string) bool {
	for _, a := range p.AddOns {
		if a.ID == addOnID {
			return true
		}
	}
	return false
}
