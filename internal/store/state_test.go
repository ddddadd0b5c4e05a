package store

import "testing"

func newTestState() *State {
	return NewState("Test Store", "Electronics", 500, 50, 15)
}

func TestStockNeverNegative(t *testing.T) {
	s := newTestState()
	s.AddStock(-80)
	if got := s.Stock(); got != 0 {
		t.Fatalf("stock after oversized deduction = %d, want 0", got)
	}
}

func TestPriceFloor(t *testing.T) {
	s := newTestState()
	s.SetPrice(0)
	if got := s.Price(); got != 15 {
		t.Fatalf("price after invalid set = %d, want unchanged 15", got)
	}
	s.SetPrice(1)
	if got := s.Price(); got != 1 {
		t.Fatalf("price = %d, want 1", got)
	}
}

func TestBankruptcyCounter(t *testing.T) {
	s := newTestState()
	s.AddCash(-600) // cash now -100

	for day := 1; day <= 2; day++ {
		s.TrackNegativeDay()
		if s.IsBankrupt() {
			t.Fatalf("bankrupt after %d negative days", day)
		}
	}

	// A non-negative day resets the streak.
	s.AddCash(200)
	s.TrackNegativeDay()
	if got := s.ConsecutiveNegativeDays(); got != 0 {
		t.Fatalf("streak after recovery = %d, want 0", got)
	}

	// Three straight negative days end the session.
	s.AddCash(-200)
	for day := 1; day <= 3; day++ {
		s.TrackNegativeDay()
	}
	if !s.IsBankrupt() {
		t.Fatal("expected bankruptcy after three consecutive negative days")
	}
}

func TestRevenueNeverDecreases(t *testing.T) {
	s := newTestState()
	s.AddRevenue(150)
	s.AddRevenue(0)
	if got := s.TotalRevenue(); got != 150 {
		t.Fatalf("total revenue = %.2f, want 150", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative revenue")
		}
	}()
	s.AddRevenue(-1)
}

func TestBusSubscribeUnsubscribe(t *testing.T) {
	s := newTestState()

	calls := 0
	unsub := s.Subscribe(TopicCashChanged, func() { calls++ })
	s.AddCash(10)
	if calls != 1 {
		t.Fatalf("calls after publish = %d, want 1", calls)
	}

	unsub()
	s.AddCash(10)
	if calls != 1 {
		t.Fatalf("calls after unsubscribe = %d, want still 1", calls)
	}
}

func TestBusMultipleSubscribers(t *testing.T) {
	s := newTestState()

	a, b := 0, 0
	s.Subscribe(TopicDayChanged, func() { a++ })
	s.Subscribe(TopicDayChanged, func() { b++ })
	s.AdvanceDay()

	if a != 1 || b != 1 {
		t.Fatalf("subscriber calls = %d,%d, want 1,1", a, b)
	}
	if got := s.CurrentDay(); got != 2 {
		t.Fatalf("day = %d, want 2", got)
	}
}

func TestSoftwareInstallTracking(t *testing.T) {
	s := newTestState()
	if s.HasSoftware("stockbot") {
		t.Fatal("fresh state should have no software")
	}
	s.InstallSoftware("stockbot")
	if !s.HasSoftware("stockbot") {
		t.Fatal("installed software not found")
	}
}
