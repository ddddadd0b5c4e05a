// Package reputation tracks the continuous [0,1] trust score behind the
// three-level tier shown to the player.
package reputation

import "github.com/talgya/storedesk/internal/store"

const recoveryPerDay = 0.005

// Tracker owns the continuous score. The UI never sets it; all movement goes
// through bounded deltas.
type Tracker struct {
	state *store.State
	score float64
}

// NewTracker starts a session at full reputation.
func NewTracker(state *store.State) *Tracker {
	return &Tracker{state: state, score: 1.0}
}

// Score returns the continuous score.
func (t *Tracker) Score() float64 {
	return t.score
}

// Adjust applies a delta, clamps the score to [0,1] and refreshes the
// display tier.
func (t *Tracker) Adjust(delta float64) {
	t.score += delta
	if t.score < 0 {
		t.score = 0
	}
	if t.score > 1 {
		t.score = 1
	}
	t.SyncTier()
}

// Recover applies the natural daily drift: +0.005 only while the score sits
// strictly between 0.5 and 1.0.
func (t *Tracker) Recover() {
	if t.score > 0.5 && t.score < 1.0 {
		t.score += recoveryPerDay
		if t.score > 1.0 {
			t.score = 1.0
		}
	}
}

// SyncTier recomputes the display tier from the score.
func (t *Tracker) SyncTier() {
	t.state.SetReputationTier(TierFor(t.score))
}

// TierFor maps a score to its display tier: >=0.7 Good, >=0.4 Average,
// otherwise Poor.
func TierFor(score float64) store.ReputationTier {
	switch {
	case score >= 0.7:
		return store.TierGood
	case score >= 0.4:
		return store.TierAverage
	default:
		return store.TierPoor
	}
}
