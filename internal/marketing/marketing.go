// Package marketing tracks the paid campaign and random viral boosts that
// amplify daily visits.
package marketing

import (
	"fmt"
	"math"

	"github.com/talgya/storedesk/internal/entropy"
	"github.com/talgya/storedesk/internal/store"
)

// Settings are the marketing balance knobs.
type Settings struct {
	CampaignCost       float64
	CampaignDays       int
	CampaignMultiplier float64
	ViralProbability   float64
	ViralCooldownDays  int
	ViralDays          int
	ViralMultiplierMin float64
	ViralMultiplierMax float64
	MultiplierCap      float64
}

type boost struct {
	active        bool
	daysRemaining int
	multiplier    float64
}

// System holds the campaign and viral boost state for one session.
type System struct {
	state    *store.State
	rand     entropy.Source
	settings Settings

	campaign     boost
	viral        boost
	lastViralDay int
}

// NewSystem creates an idle marketing system.
func NewSystem(state *store.State, rand entropy.Source, settings Settings) *System {
	return &System{
		state:        state,
		rand:         rand,
		settings:     settings,
		lastViralDay: -999, // no viral yet, cooldown satisfied from day one
	}
}

// StartCampaign launches a paid campaign for the fixed duration.
func (m *System) StartCampaign() store.ActionResult {
	if m.campaign.active {
		return store.ActionResult{Message: "campaign already running"}
	}
	if m.state.Cash() < m.settings.CampaignCost {
		return store.ActionResult{Message: fmt.Sprintf("insufficient cash ($%.0f)", m.settings.CampaignCost)}
	}

	m.state.AddCash(-m.settings.CampaignCost)
	m.campaign = boost{
		active:        true,
		daysRemaining: m.settings.CampaignDays,
		multiplier:    m.settings.CampaignMultiplier,
	}
	m.state.Publish(store.TopicCampaignStarted)

	pct := int(math.Round((m.settings.CampaignMultiplier - 1) * 100))
	return store.ActionResult{
		OK:      true,
		Message: fmt.Sprintf("campaign started: +%d%% visits for %d days", pct, m.settings.CampaignDays),
	}
}

// RollViral draws for a spontaneous viral boost. No draw happens while a
// viral is active or within the cooldown window of the last one.
func (m *System) RollViral() (occurred bool, multiplier float64) {
	if m.viral.active {
		return false, 0
	}
	if m.state.CurrentDay()-m.lastViralDay < m.settings.ViralCooldownDays {
		return false, 0
	}
	if m.rand.Float64() >= m.settings.ViralProbability {
		return false, 0
	}

	m.viral = boost{
		active:        true,
		daysRemaining: m.settings.ViralDays,
		multiplier:    m.rand.Between(m.settings.ViralMultiplierMin, m.settings.ViralMultiplierMax),
	}
	m.lastViralDay = m.state.CurrentDay()
	m.state.Publish(store.TopicViralStarted)
	return true, m.viral.multiplier
}

// AdvanceDay counts down active boosts, ending them when they expire.
func (m *System) AdvanceDay() {
	if m.campaign.active {
		m.campaign.daysRemaining--
		if m.campaign.daysRemaining <= 0 {
			m.campaign = boost{}
			m.state.Publish(store.TopicCampaignEnded)
		}
	}
	if m.viral.active {
		m.viral.daysRemaining--
		if m.viral.daysRemaining <= 0 {
			m.viral = boost{}
			m.state.Publish(store.TopicViralEnded)
		}
	}
}

// VisitMultiplier returns the combined visit amplification, capped so stacked
// boosts cannot run away.
func (m *System) VisitMultiplier() float64 {
	multiplier := 1.0
	if m.campaign.active {
		multiplier *= m.campaign.multiplier
	}
	if m.viral.active {
		multiplier *= m.viral.multiplier
	}
	if multiplier > m.settings.MultiplierCap {
		multiplier = m.settings.MultiplierCap
	}
	return multiplier
}

// BoostActive reports whether any campaign or viral boost is live. Lost-order
// reputation penalties double while one is.
func (m *System) BoostActive() bool {
	return m.campaign.active || m.viral.active
}

// CampaignActive reports whether the paid campaign is live.
func (m *System) CampaignActive() bool {
	return m.campaign.active
}

// CampaignDaysRemaining returns days left on the paid campaign.
func (m *System) CampaignDaysRemaining() int {
	return m.campaign.daysRemaining
}

// ViralActive reports whether a viral boost is live.
func (m *System) ViralActive() bool {
	return m.viral.active
}

// ViralDaysRemaining returns days left on the viral boost.
func (m *System) ViralDaysRemaining() int {
	return m.viral.daysRemaining
}

// CampaignCost returns the configured campaign price.
func (m *System) CampaignCost() float64 {
	return m.settings.CampaignCost
}
