package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/cart"
	"github.com/brewpos/terminal/internal/enum"
)

// Record is a settled terminal order kept for the history feed.
type Record struct {
	ID        string          `json:"id"`
	Items     []cart.LineItem `json:"-"`
	OrderType string          `json:"order_type"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// SalesPoint is one day in the weekly sales series.
type SalesPoint struct {
	Date   string          `json:"date"`
	Sales  decimal.Decimal `json:"sales"`
	Orders int             `json:"orders"`
}

// Summary aggregates the weekly series for the dashboard KPI cards.
type Summary struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalOrders  int             `json:"total_orders"`
	AverageOrder decimal.Decimal `json:"average_order"`
}

// Store keeps settled orders, most recent first, and serves the weekly sales
// figures. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	records []Record
	nextNum int
}

// NewStore creates a store pre-loaded with the standing demo history.
func NewStore() *Store {
	now := time.Now()
	return &Store{
		nextNum: 3244,
		records: []Record{
			{ID: "#3243", OrderType: enum.OrderTypeDineIn, Subtotal: dec("20.92"), Discount: dec("3.00"), Total: dec("17.92"), Status: enum.OrderStatusCompleted, CreatedAt: now.Add(-30 * time.Minute)},
			{ID: "#3242", OrderType: enum.OrderTypeTakeAway, Subtotal: dec("15.46"), Discount: dec("0"), Total: dec("15.46"), Status: enum.OrderStatusCompleted, CreatedAt: now.Add(-60 * time.Minute)},
			{ID: "#3241", OrderType: enum.OrderTypeDelivery, Subtotal: dec("32.94"), Discount: dec("5.00"), Total: dec("27.94"), Status: enum.OrderStatusCompleted, CreatedAt: now.Add(-90 * time.Minute)},
			{ID: "#3240", OrderType: enum.OrderTypeDineIn, Subtotal: dec("24.96"), Discount: dec("0"), Total: dec("24.96"), Status: enum.OrderStatusCompleted, CreatedAt: now.Add(-120 * time.Minute)},
			{ID: "#3239", OrderType: enum.OrderTypeTakeAway, Subtotal: dec("8.96"), Discount: dec("0"), Total: dec("8.96"), Status: enum.OrderStatusCancelled, CreatedAt: now.Add(-150 * time.Minute)},
		},
	}
}

// NewEmptyStore creates a store with no seeded history.
func NewEmptyStore() *Store {
	return &Store{nextNum: 3244}
}

// Append records a settled order under the next ticket number and returns it.
func (s *Store) Append(orderType string, items []cart.LineItem, subtotal, discount, total decimal.Decimal) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		ID:        fmt.Sprintf("#%d", s.nextNum),
		Items:     items,
		OrderType: orderType,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
		Status:    enum.OrderStatusCompleted,
		CreatedAt: time.Now(),
	}
	s.nextNum++
	s.records = append([]Record{rec}, s.records...)
	return rec
}

// Records returns the settled orders, most recent first.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records...)
}

// weeklySales is the pre-aggregated demo series consumed by the sales chart.
var weeklySales = []SalesPoint{
	{Date: "Mon", Sales: dec("1245"), Orders: 42},
	{Date: "Tue", Sales: dec("1398"), Orders: 48},
	{Date: "Wed", Sales: dec("1567"), Orders: 52},
	{Date: "Thu", Sales: dec("1234"), Orders: 41},
	{Date: "Fri", Sales: dec("1890"), Orders: 63},
	{Date: "Sat", Sales: dec("2345"), Orders: 78},
	{Date: "Sun", Sales: dec("2012"), Orders: 67},
}

// WeeklySales returns the sales series for the overview chart.
func (s *Store) WeeklySales() []SalesPoint {
	return append([]SalesPoint(nil), weeklySales...)
}

// Summarize derives the KPI figures from the weekly series.
func (s *Store) Summarize() Summary {
	totalSales := decimal.Zero
	totalOrders := 0
	for _, p := range weeklySales {
		totalSales = totalSales.Add(p.Sales)
		totalOrders += p.Orders
	}

	avg := decimal.Zero
	if totalOrders > 0 {
		avg = totalSales.Div(decimal.NewFromInt(int64(totalOrders))).Round(2)
	}
	return Summary{TotalSales: totalSales, TotalOrders: totalOrders, AverageOrder: avg}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
