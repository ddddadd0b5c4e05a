package recorder

import (
	"path/filepath"
	"testing"

	"github.com/talgya/storedesk/internal/sim"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	r, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecordDayRoundTrip(t *testing.T) {
	r := openTestDB(t)

	rec := &DayRecord{
		Summary: sim.DailySummary{
			Day:                2,
			Visits:             170,
			ConversionRate:     0.06,
			PotentialOrders:    10,
			StockLimitedOrders: 10,
			ProcessedOrders:    10,
			Revenue:            150,
			Costs:              30,
			Net:                120,
			EventID:            "cost_increase",
		},
		Cash:            620,
		Debt:            0,
		Stock:           40,
		ReputationScore: 1.0,
		ReputationTier:  "Good",
	}
	if err := r.RecordDay(rec); err != nil {
		t.Fatalf("record day: %v", err)
	}

	var got struct {
		Day     int     `db:"day"`
		Visits  int     `db:"visits"`
		Revenue float64 `db:"revenue"`
		Cash    float64 `db:"cash"`
		EventID string  `db:"event_id"`
		Tier    string  `db:"reputation_tier"`
		Session string  `db:"session_id"`
	}
	err := r.conn.Get(&got, `SELECT day, visits, revenue, cash, event_id, reputation_tier, session_id
		FROM daily_summaries WHERE day = 2`)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Visits != 170 || got.Revenue != 150 || got.Cash != 620 {
		t.Fatalf("row = %+v", got)
	}
	if got.EventID != "cost_increase" || got.Tier != "Good" {
		t.Fatalf("row = %+v", got)
	}
	if got.Session != r.session {
		t.Fatalf("session = %q, want %q", got.Session, r.session)
	}
}

func TestRecordActionRoundTrip(t *testing.T) {
	r := openTestDB(t)

	if err := r.RecordAction(&ActionRecord{Day: 3, Action: "take_loan", Success: true, Message: "loan of $100 granted"}); err != nil {
		t.Fatalf("record action: %v", err)
	}
	if err := r.RecordAction(&ActionRecord{Day: 3, Action: "start_campaign", Success: false, Message: "insufficient cash ($200)"}); err != nil {
		t.Fatalf("record action: %v", err)
	}

	var count int
	if err := r.conn.Get(&count, `SELECT COUNT(*) FROM player_actions WHERE day = 3`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("actions = %d, want 2", count)
	}

	var success int
	if err := r.conn.Get(&success, `SELECT success FROM player_actions WHERE action = 'start_campaign'`); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if success != 0 {
		t.Fatalf("success = %d, want 0", success)
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.RecordAction(&ActionRecord{Day: 1, Action: "adjust_price", Success: true}); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	if second.session == first.session {
		t.Fatal("sessions should get distinct IDs")
	}

	var count int
	if err := second.conn.Get(&count, `SELECT COUNT(*) FROM player_actions`); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("rows after reopen = %d, want 1", count)
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = Noop{}
	if err := r.RecordDay(&DayRecord{}); err != nil {
		t.Fatal(err)
	}
	if err := r.RecordAction(&ActionRecord{}); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}
