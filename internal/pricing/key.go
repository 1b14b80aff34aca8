package pricing

import (
	"sort"
	"strings"

	"github.com/brewpos/terminal/internal/catalog"
)

// LineKey derives the identity of a cart line from its configuration.
// Two selections with the same product, size, and add-on set (in any order)
// get the same key, so re-adding an identical configuration merges into the
// existing line instead of creating a new one.
func LineKey(productID, size string, addOns []catalog.AddOn) string {
	if size == "" {
		size = "none"
	}

	ids := make([]string, len(addOns))
	for i, a := range addOns {
		ids[i] = a.ID
	}
	sort.Strings(ids)

	return productID + "-" + size + "-" + strings.Join(ids, ",")
}
