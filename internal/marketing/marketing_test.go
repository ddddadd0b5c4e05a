package marketing

import (
	"testing"

	"github.com/talgya/storedesk/internal/store"
)

// stubSource feeds scripted draws, repeating the last one when exhausted.
type stubSource struct {
	draws []float64
	i     int
}

func (s *stubSource) Float64() float64 {
	if s.i >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	v := s.draws[s.i]
	s.i++
	return v
}

func (s *stubSource) Between(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

func (s *stubSource) Intn(n int) int {
	return int(s.Float64() * float64(n))
}

func testSettings() Settings {
	return Settings{
		CampaignCost:       200,
		CampaignDays:       4,
		CampaignMultiplier: 2.5,
		ViralProbability:   0.08,
		ViralCooldownDays:  7,
		ViralDays:          2,
		ViralMultiplierMin: 3.0,
		ViralMultiplierMax: 4.0,
		MultiplierCap:      6.0,
	}
}

func newTestSystem(cash float64, draws ...float64) (*System, *store.State) {
	state := store.NewState("Test Store", "Electronics", cash, 50, 15)
	return NewSystem(state, &stubSource{draws: draws}, testSettings()), state
}

func TestStartCampaign(t *testing.T) {
	m, state := newTestSystem(500, 0.9)

	res := m.StartCampaign()
	if !res.OK {
		t.Fatalf("campaign start failed: %s", res.Message)
	}
	if state.Cash() != 300 {
		t.Fatalf("cash = %.0f, want 300", state.Cash())
	}
	if !m.CampaignActive() || m.CampaignDaysRemaining() != 4 {
		t.Fatalf("campaign state: active=%v days=%d", m.CampaignActive(), m.CampaignDaysRemaining())
	}
	if got := m.VisitMultiplier(); got != 2.5 {
		t.Fatalf("multiplier = %.2f, want 2.5", got)
	}

	if res := m.StartCampaign(); res.OK {
		t.Fatal("second campaign should fail while one is active")
	}
}

func TestStartCampaignInsufficientCash(t *testing.T) {
	m, state := newTestSystem(100, 0.9)

	if res := m.StartCampaign(); res.OK {
		t.Fatal("campaign with $100 should fail")
	}
	if state.Cash() != 100 {
		t.Fatalf("cash changed on failure: %.0f", state.Cash())
	}
}

func TestCampaignExpiry(t *testing.T) {
	m, state := newTestSystem(500, 0.9)

	ended := false
	state.Subscribe(store.TopicCampaignEnded, func() { ended = true })

	m.StartCampaign()
	for day := 0; day < 4; day++ {
		m.AdvanceDay()
	}

	if m.CampaignActive() {
		t.Fatal("campaign should have expired after 4 days")
	}
	if !ended {
		t.Fatal("campaign-ended notification not published")
	}
	if got := m.VisitMultiplier(); got != 1.0 {
		t.Fatalf("multiplier after expiry = %.2f, want 1.0", got)
	}
}

func TestViralRollAndCooldown(t *testing.T) {
	// First draw hits (0.05 < 0.08), second draw picks the multiplier
	// midpoint, later draws would hit again but the cooldown blocks them.
	m, state := newTestSystem(500, 0.05, 0.5, 0.01, 0.01)

	occurred, mult := m.RollViral()
	if !occurred {
		t.Fatal("expected viral on first roll")
	}
	if mult != 3.5 {
		t.Fatalf("viral multiplier = %.2f, want 3.5", mult)
	}
	if !m.BoostActive() {
		t.Fatal("boost should be active")
	}

	// Expire the viral, then try again well inside the 7-day cooldown.
	m.AdvanceDay()
	m.AdvanceDay()
	if m.ViralActive() {
		t.Fatal("viral should have expired after 2 days")
	}

	state.AdvanceDay() // day 2
	if occurred, _ := m.RollViral(); occurred {
		t.Fatal("viral during cooldown should not occur")
	}

	// After the cooldown a hit lands again.
	for state.CurrentDay() < 8 {
		state.AdvanceDay()
	}
	if occurred, _ := m.RollViral(); !occurred {
		t.Fatal("expected viral after cooldown")
	}
}

func TestCombinedMultiplierCap(t *testing.T) {
	// Campaign 2.5 stacked with a 3.5 viral would be 8.75; the cap holds it
	// at 6.0.
	m, _ := newTestSystem(500, 0.05, 0.5)

	m.StartCampaign()
	if occurred, _ := m.RollViral(); !occurred {
		t.Fatal("expected viral")
	}

	if got := m.VisitMultiplier(); got != 6.0 {
		t.Fatalf("multiplier = %.2f, want capped 6.0", got)
	}
}

func TestNoViralWhileActive(t *testing.T) {
	m, _ := newTestSystem(500, 0.01, 0.5, 0.01)

	if occurred, _ := m.RollViral(); !occurred {
		t.Fatal("expected viral")
	}
	if occurred, _ := m.RollViral(); occurred {
		t.Fatal("second viral while one is active")
	}
}
