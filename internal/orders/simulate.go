package orders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/enum"
)

// Item pool for the simulator, mirroring the café menu.
var simulatorItems = []Item{
	{Name: "Cappuccino", Quantity: 1},
	{Name: "Coffee Latte", Quantity: 2},
	{Name: "Americano", Quantity: 1},
	{Name: "V60", Quantity: 1},
	{Name: "Espresso", Quantity: 2},
	{Name: "Mocha", Quantity: 1},
	{Name: "Avocado Toast", Quantity: 1},
	{Name: "Club Sandwich", Quantity: 1},
	{Name: "Butter Croissant", Quantity: 2},
	{Name: "Tiramisu", Quantity: 1},
}

// Roughly 3 in 8 simulated orders carry no customer note.
var simulatorNotes = []string{
	"Please ring doorbell",
	"Leave at door",
	"Extra napkins please",
	"No ice in drinks",
	"Allergic to nuts",
	"",
	"",
	"",
}

// SimulateNew synthesizes a plausible inbound delivery order and adds it to
// the store. The randomness is not a contract; structural validity is
// (non-empty items, non-negative total, status New, known platform).
func (s *Store) SimulateNew() Order {
	platform := enum.PlatformUberEats
	prefix := "UE"
	if rand.Intn(2) == 1 {
		platform = enum.PlatformDoorDash
		prefix = "DD"
	}

	count := rand.Intn(3) + 1
	items := make([]Item, 0, count)
	total := decimal.Zero
	for i := 0; i < count; i++ {
		item := simulatorItems[rand.Intn(len(simulatorItems))]
		if rand.Float64() > 0.7 {
			item.Notes = "No sugar"
		}
		items = append(items, item)

		// Unit price drawn from [4.00, 10.00) per item.
		unit := decimal.NewFromFloat(4 + rand.Float64()*6)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := Order{
		ID:            "online-" + uuid.NewString(),
		Platform:      platform,
		ExternalID:    fmt.Sprintf("%s-%d", prefix, 10000+rand.Intn(90000)),
		Time:          time.Now(),
		Items:         items,
		CustomerNotes: simulatorNotes[rand.Intn(len(simulatorNotes))],
		Total:         total.Round(2),
		Status:        enum.OrderStatusNew,
	}

	s.Add(order)
	return order
}
