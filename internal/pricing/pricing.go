package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/catalog"
	"github.com/brewpos/terminal/internal/enum"
)

// Errors returned by the pricing engine.
var (
	ErrInvalidSize      = errors.New("invalid size")
	ErrSizeNotAllowed   = errors.New("product does not have sizes")
	ErrAddOnNotAllowed  = errors.New("add-on not offered for product")
	ErrDuplicateAddOn   = errors.New("duplicate add-on")
)

// SizeSurcharge returns the fixed surcharge for a size. The empty string
// means "no size" and carries no surcharge. The size set is closed: anything
// outside it is an error, never a silent zero.
func SizeSurcharge(size string) (decimal.Decimal, error) {
	switch size {
	case "", enum.SizeSmall:
		return decimal.Zero, nil
	case enum.SizeMedium:
		return decimal.RequireFromString("0.50"), nil
	case enum.SizeLarge:
		return decimal.RequireFromString("1.00"), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidSize, size)
}

// PriceOf computes the unit price for one configured item:
// base price + size surcharge + sum of add-on prices. Pure; full precision
// is kept, rounding happens only where amounts leave the system.
func PriceOf(p catalog.Product, size string, addOns []catalog.AddOn) (decimal.Decimal, error) {
	surcharge, err := SizeSurcharge(size)
	if err != nil {
		return decimal.Zero, err
	}

	total := p.Price.Add(surcharge)
	for _, a := range addOns {
		total = total.Add(a.Price)
	}
	return total, nil
}

// ValidateSelection checks that a size and add-on set are compatible with the
// product. The engine itself stays permissive (PriceOf prices whatever it is
// given); callers that want fail-fast behavior run this first.
func ValidateSelection(p catalog.Product, size string, addOns []catalog.AddOn) error {
	if _, err := SizeSurcharge(size); err != nil {
		return err
	}
	if !p.HasSizes && size != "" {
		return fmt.Errorf("%w: %s", ErrSizeNotAllowed, p.ID)
	}

	seen := make(map[string]bool, len(addOns))
	for _, a := range addOns {
		if seen[a.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateAddOn, a.ID)
		}
		seen[a.ID] = true
		if !p.Allows(a.ID) {
			return fmt.Errorf("%w: %s on %s", ErrAddOnNotAllowed, a.ID, p.ID)
		}
	}
	return nil
}
