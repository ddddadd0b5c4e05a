// Package recorder persists session history for post-game analysis: one row
// per resolved day plus every player action. Append-only; the game never
// reads it back.
package recorder

import "github.com/talgya/storedesk/internal/sim"

// DayRecord pairs a daily summary with the closing balances.
type DayRecord struct {
	Summary sim.DailySummary

	Cash            float64
	Debt            float64
	Stock           int
	ReputationScore float64
	ReputationTier  string
}

// ActionRecord captures one player action and its outcome.
type ActionRecord struct {
	Day     int
	Action  string
	Success bool
	Message string
}

// Recorder persists session history.
type Recorder interface {
	RecordDay(rec *DayRecord) error
	RecordAction(rec *ActionRecord) error
	Close() error
}

// Noop discards everything. Used when no database is configured.
type Noop struct{}

func (Noop) RecordDay(*DayRecord) error       { return nil }
func (Noop) RecordAction(*ActionRecord) error { return nil }
func (Noop) Close() error                     { return nil }
