// Package challenge tracks the optional victory objective for a session.
package challenge

import (
	"fmt"

	"github.com/talgya/storedesk/internal/store"
)

// Type identifies a selectable objective.
type Type string

const (
	None             Type = "none"
	FirstProfit      Type = "first_profit"
	Survivor         Type = "survivor"
	ReputationMaster Type = "reputation_master"
	GrowthHacker     Type = "growth_hacker"
)

const (
	firstProfitRevenue  = 1000
	survivorDays        = 30
	reputationStreak    = 20
	growthHackerRevenue = 5000
)

// Info describes a challenge for selection screens.
type Info struct {
	ID          Type
	Name        string
	Description string
}

// Catalog lists the selectable objectives.
var Catalog = []Info{
	{None, "Free Play", "sandbox mode, no objective"},
	{FirstProfit, "First Profit", "reach $1000 total revenue with positive cash"},
	{Survivor, "Survivor", "survive 30 days without going bankrupt"},
	{ReputationMaster, "Reputation Master", "hold Good reputation for 20 consecutive days"},
	{GrowthHacker, "Growth Hacker", "reach $5000 total revenue"},
}

// System checks the active objective after each resolved day.
type System struct {
	state  *store.State
	active Type
	streak int // consecutive Good days, for ReputationMaster
}

// NewSystem creates a challenge tracker.
func NewSystem(state *store.State, active Type) *System {
	return &System{state: state, active: active}
}

// Active returns the selected objective.
func (s *System) Active() Type {
	return s.active
}

// Set switches the objective and resets progress tracking.
func (s *System) Set(t Type) {
	s.active = t
	s.streak = 0
}

// TrackDay updates streak counters; call once per resolved day.
func (s *System) TrackDay() {
	if s.state.Reputation() == store.TierGood {
		s.streak++
	} else {
		s.streak = 0
	}
}

// Achieved reports whether the active objective is complete.
func (s *System) Achieved() bool {
	switch s.active {
	case FirstProfit:
		return s.state.TotalRevenue() >= firstProfitRevenue && s.state.Cash() > 0
	case Survivor:
		return s.state.CurrentDay() >= survivorDays
	case ReputationMaster:
		return s.streak >= reputationStreak
	case GrowthHacker:
		return s.state.TotalRevenue() >= growthHackerRevenue
	default:
		return false
	}
}

// Progress returns completion in [0,1].
func (s *System) Progress() float64 {
	clamp := func(v float64) float64 {
		if v > 1 {
			return 1
		}
		return v
	}
	switch s.active {
	case FirstProfit:
		p := clamp(s.state.TotalRevenue() / firstProfitRevenue)
		if s.state.Cash() <= 0 && p > 0.99 {
			p = 0.99 // revenue done but cash negative
		}
		return p
	case Survivor:
		return clamp(float64(s.state.CurrentDay()) / survivorDays)
	case ReputationMaster:
		return clamp(float64(s.streak) / reputationStreak)
	case GrowthHacker:
		return clamp(s.state.TotalRevenue() / growthHackerRevenue)
	default:
		return 0
	}
}

// ProgressText returns a short status line for display.
func (s *System) ProgressText() string {
	switch s.active {
	case FirstProfit:
		return fmt.Sprintf("$%.0f/$%d (cash: $%.0f)", s.state.TotalRevenue(), firstProfitRevenue, s.state.Cash())
	case Survivor:
		return fmt.Sprintf("%d/%d days", s.state.CurrentDay(), survivorDays)
	case ReputationMaster:
		return fmt.Sprintf("%d/%d Good days", s.streak, reputationStreak)
	case GrowthHacker:
		return fmt.Sprintf("$%.0f/$%d", s.state.TotalRevenue(), growthHackerRevenue)
	default:
		return ""
	}
}
