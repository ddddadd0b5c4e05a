// Package events provides the low-probability daily disruption events.
// Selection and effect application are separate steps: most days select
// nothing, but once an event is selected its effect applies unconditionally.
package events

import (
	"math"

	"github.com/talgya/storedesk/internal/entropy"
	"github.com/talgya/storedesk/internal/reputation"
	"github.com/talgya/storedesk/internal/store"
)

// Event is one catalog entry with its predefined effect.
type Event struct {
	ID      string
	Title   string
	Message string
	Effect  func(state *store.State, rep *reputation.Tracker)
}

// Catalog is the fixed set of disruptions, matching the shipped balance.
var Catalog = []Event{
	{
		ID:      "supplier_delay",
		Title:   "Supplier Delay",
		Message: "Your supplier missed the delivery window. Reputation takes a hit.",
		Effect: func(_ *store.State, rep *reputation.Tracker) {
			rep.Adjust(-0.10)
		},
	},
	{
		ID:      "defective_batch",
		Title:   "Defective Batch",
		Message: "A defective batch was detected. 20% of stock written off.",
		Effect: func(state *store.State, rep *reputation.Tracker) {
			loss := int(math.Floor(float64(state.Stock()) * 0.2))
			state.AddStock(-loss)
			rep.Adjust(-0.15)
		},
	},
	{
		ID:      "visit_spike",
		Title:   "Visit Spike",
		Message: "A post took off. +50% visits today.",
		Effect: func(state *store.State, _ *reputation.Tracker) {
			boosted := int(math.Floor(float64(state.DailyVisits()) * 1.5))
			state.SetDailyMetrics(boosted, state.DailyOrders(), state.ConversionRate())
		},
	},
	{
		ID:      "public_complaint",
		Title:   "Public Complaint",
		Message: "An unhappy customer went public. Reputation severely affected.",
		Effect: func(_ *store.State, rep *reputation.Tracker) {
			rep.Adjust(-0.20)
		},
	},
	{
		ID:      "cost_increase",
		Title:   "Cost Increase",
		Message: "Operating costs went up. An extra $50 gone.",
		Effect: func(state *store.State, _ *reputation.Tracker) {
			state.AddCash(-50)
		},
	},
}

// Generator draws daily disruption events from the catalog.
type Generator struct {
	state       *store.State
	rep         *reputation.Tracker
	rand        entropy.Source
	probability float64
	minGapDays  int
	lastDay     int
}

// NewGenerator creates a generator with the configured probability and
// minimum gap between events.
func NewGenerator(state *store.State, rep *reputation.Tracker, rand entropy.Source, probability float64, minGapDays int) *Generator {
	return &Generator{
		state:       state,
		rep:         rep,
		rand:        rand,
		probability: probability,
		minGapDays:  minGapDays,
	}
}

// Check rolls for today's event. Returns nil on most days: when the gap since
// the last event is too short or the daily draw misses.
func (g *Generator) Check() *Event {
	day := g.state.CurrentDay()
	if day-g.lastDay < g.minGapDays {
		return nil
	}
	if g.rand.Float64() >= g.probability {
		return nil
	}

	event := Catalog[g.rand.Intn(len(Catalog))]
	g.lastDay = day
	return &event
}

// Trigger applies an event's effect and announces it.
func (g *Generator) Trigger(event *Event) {
	event.Effect(g.state, g.rep)
	g.state.Publish(store.TopicEventTriggered)
}
