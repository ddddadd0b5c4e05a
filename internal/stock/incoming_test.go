package stock

import (
	"testing"

	"github.com/talgya/storedesk/internal/store"
)

func newTestState() *store.State {
	return store.NewState("Test Store", "Electronics", 500, 50, 15)
}

func advanceTo(s *store.State, day int) {
	for s.CurrentDay() < day {
		s.AdvanceDay()
	}
}

func TestLeadTimes(t *testing.T) {
	q := NewIncomingQueue(newTestState(), 1, 2)
	if got := q.LeadTime(SupplierFast); got != 1 {
		t.Fatalf("fast lead time = %d, want 1", got)
	}
	if got := q.LeadTime(SupplierCheap); got != 2 {
		t.Fatalf("cheap lead time = %d, want 2", got)
	}
}

func TestCheapOrderArrivesTwoDaysOut(t *testing.T) {
	state := newTestState()
	q := NewIncomingQueue(state, 1, 2)
	advanceTo(state, 5)

	entry := q.Enqueue(50, SupplierCheap)
	if entry.ArrivalDay != 7 {
		t.Fatalf("arrival day = %d, want 7", entry.ArrivalDay)
	}
	if got := q.PendingTotal(); got != 50 {
		t.Fatalf("pending = %d, want 50", got)
	}

	// Not due yet on day 6.
	advanceTo(state, 6)
	if got := q.ReleaseDue(); got != 0 {
		t.Fatalf("released on day 6 = %d, want 0", got)
	}

	advanceTo(state, 7)
	stockBefore := state.Stock()
	if got := q.ReleaseDue(); got != 50 {
		t.Fatalf("released on day 7 = %d, want 50", got)
	}
	if got := state.Stock(); got != stockBefore+50 {
		t.Fatalf("stock = %d, want %d", got, stockBefore+50)
	}
	if got := q.PendingTotal(); got != 0 {
		t.Fatalf("pending after arrival = %d, want 0", got)
	}
}

func TestReleaseDueIdempotent(t *testing.T) {
	state := newTestState()
	q := NewIncomingQueue(state, 1, 2)

	q.Enqueue(30, SupplierFast) // arrives day 2
	state.AdvanceDay()

	if got := q.ReleaseDue(); got != 30 {
		t.Fatalf("first release = %d, want 30", got)
	}
	if got := q.ReleaseDue(); got != 0 {
		t.Fatalf("second release same day = %d, want 0", got)
	}
}

func TestMultipleEntriesSameDay(t *testing.T) {
	state := newTestState()
	q := NewIncomingQueue(state, 1, 2)

	q.Enqueue(20, SupplierFast)  // day 2
	q.Enqueue(40, SupplierFast)  // day 2
	q.Enqueue(10, SupplierCheap) // day 3

	state.AdvanceDay()
	if got := q.ReleaseDue(); got != 60 {
		t.Fatalf("released = %d, want 60", got)
	}
	if got := q.PendingTotal(); got != 10 {
		t.Fatalf("pending = %d, want 10", got)
	}
}

func TestStockBotBuysBelowThreshold(t *testing.T) {
	state := newTestState()
	bot := NewBot(state, 20, 100, 50)
	bot.Activate()

	state.AddStock(-45) // stock now 5

	report := bot.RunDaily()
	if !report.Purchased {
		t.Fatalf("expected purchase, got %+v", report)
	}
	if got := state.Stock(); got != 55 {
		t.Fatalf("stock = %d, want 55", got)
	}
	if got := state.Cash(); got != 400 {
		t.Fatalf("cash = %.2f, want 400", got)
	}
}

func TestStockBotIdleAboveThreshold(t *testing.T) {
	state := newTestState()
	bot := NewBot(state, 20, 100, 50)
	bot.Activate()

	report := bot.RunDaily()
	if report.Purchased || report.Reason != "" {
		t.Fatalf("expected no action at stock 50, got %+v", report)
	}
}

func TestStockBotFailsVisiblyWithoutCash(t *testing.T) {
	state := newTestState()
	bot := NewBot(state, 20, 100, 50)
	bot.Activate()

	state.AddStock(-45)
	state.AddCash(-450) // cash now 50, below order cost

	report := bot.RunDaily()
	if report.Purchased {
		t.Fatal("expected failed purchase")
	}
	if report.Reason == "" {
		t.Fatal("expected a visible failure reason")
	}
	if got := state.Stock(); got != 5 {
		t.Fatalf("stock = %d, want unchanged 5", got)
	}
}

func TestStockBotInactiveByDefault(t *testing.T) {
	state := newTestState()
	bot := NewBot(state, 20, 100, 50)
	state.AddStock(-45)

	if report := bot.RunDaily(); report.Purchased || report.Reason != "" {
		t.Fatalf("uninstalled bot acted: %+v", report)
	}
}
