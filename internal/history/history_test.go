package history

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/enum"
)

func TestAppendAssignsSequentialTickets(t *testing.T) {
	s := NewEmptyStore()

	first := s.Append(enum.OrderTypeDineIn, nil, dec("10.00"), dec("0"), dec("10.00"))
	second := s.Append(enum.OrderTypeTakeAway, nil, dec("22.00"), dec("2.20"), dec("19.80"))

	if first.ID != "#3244" || second.ID != "#3245" {
		t.Errorf("ticket ids = %s, %s; want #3244, #3245", first.ID, second.ID)
	}
	if first.Status != enum.OrderStatusCompleted {
		t.Errorf("status = %s, want Completed", first.Status)
	}

	records := s.Records()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != second.ID {
		t.Errorf("records not most-recent-first: %s first", records[0].ID)
	}
}

func TestSeededHistory(t *testing.T) {
	s := NewStore()
	records := s.Records()
	if len(records) != 5 {
		t.Fatalf("got %d seeded records, want 5", len(records))
	}
	if records[0].ID != "#3243" {
		t.Errorf("first seeded record is %s, want #3243", records[0].ID)
	}

	// Ticket numbering continues after the seed.
	rec := s.Append(enum.OrderTypeDineIn, nil, dec("5.00"), dec("0"), dec("5.00"))
	if rec.ID != "#3244" {
		t.Errorf("next ticket = %s, want #3244", rec.ID)
	}
}

func TestSummarize(t *testing.T) {
	s := NewStore()
	sum := s.Summarize()

	if want := dec("11691"); !sum.TotalSales.Equal(want) {
		t.Errorf("total sales = %s, want %s", sum.TotalSales, want)
	}
	if sum.TotalOrders != 391 {
		t.Errorf("total orders = %d, want 391", sum.TotalOrders)
	}
	want := dec("11691").Div(decimal.NewFromInt(391)).Round(2)
	if !sum.AverageOrder.Equal(want) {
		t.Errorf("average order = %s, want %s", sum.AverageOrder, want)
	}
}

func TestWeeklySalesShape(t *testing.T) {
	s := NewStore()
	series := s.WeeklySales()
	if len(series) != 7 {
		t.Fatalf("got %d points, want 7", len(series))
	}
	if series[0].Date != "Mon" || series[6].Date != "Sun" {
		t.Errorf("series runs %s..%s, want Mon..Sun", series[0].Date, series[6].Date)
	}
}
