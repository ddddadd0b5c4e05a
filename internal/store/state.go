// Package store owns the economic ledger of a single play session. All
// mutation funnels through typed methods that enforce the clamps (stock never
// negative, price at least 1) and publish change notifications; collaborators
// hold a *State reference handed to them at construction.
package store

// ReputationTier is the three-level display bucket of the continuous score.
type ReputationTier string

const (
	TierGood    ReputationTier = "Good"
	TierAverage ReputationTier = "Average"
	TierPoor    ReputationTier = "Poor"
)

// ActionResult reports the outcome of a player action. Business-rule
// violations are values, not errors.
type ActionResult struct {
	OK      bool
	Message string
}

// State is the mutable ledger for one store session.
type State struct {
	*Bus

	StoreName string
	Niche     string

	cash  float64
	debt  float64
	stock int
	price int

	dailyVisits    int
	dailyOrders    int
	conversionRate float64 // percent, for display
	reputation     ReputationTier

	currentDay              int
	paused                  bool
	consecutiveNegativeDays int
	totalRevenue            float64

	installedSoftware []string
}

// NewState creates a session ledger with the given opening balance.
func NewState(name, niche string, cash float64, stock, price int) *State {
	if price < 1 {
		panic("store: starting price below 1")
	}
	if stock < 0 {
		panic("store: negative starting stock")
	}
	return &State{
		Bus:        NewBus(),
		StoreName:  name,
		Niche:      niche,
		cash:       cash,
		stock:      stock,
		price:      price,
		reputation: TierGood,
		currentDay: 1,
	}
}

func (s *State) Cash() float64              { return s.cash }
func (s *State) Debt() float64              { return s.debt }
func (s *State) Stock() int                 { return s.stock }
func (s *State) Price() int                 { return s.price }
func (s *State) CurrentDay() int            { return s.currentDay }
func (s *State) Paused() bool               { return s.paused }
func (s *State) TotalRevenue() float64      { return s.totalRevenue }
func (s *State) Reputation() ReputationTier { return s.reputation }
func (s *State) DailyVisits() int           { return s.dailyVisits }
func (s *State) DailyOrders() int           { return s.dailyOrders }
func (s *State) ConversionRate() float64    { return s.conversionRate }

// AddCash applies a signed cash delta. Cash may go negative.
func (s *State) AddCash(amount float64) {
	s.cash += amount
	s.Publish(TopicCashChanged)
}

// AddStock applies a signed stock delta, clamped at zero.
func (s *State) AddStock(amount int) {
	s.stock += amount
	if s.stock < 0 {
		s.stock = 0
	}
	s.Publish(TopicStockChanged)
}

// AddDebt applies a signed debt delta, clamped at zero.
func (s *State) AddDebt(amount float64) {
	s.debt += amount
	if s.debt < 0 {
		s.debt = 0
	}
	s.Publish(TopicDebtChanged)
}

// SetPrice sets the unit price, ignoring values below the $1 floor.
func (s *State) SetPrice(price int) {
	if price < 1 {
		return
	}
	s.price = price
	s.Publish(TopicPriceChanged)
}

// AddRevenue records gross sales. totalRevenue only ever grows.
func (s *State) AddRevenue(amount float64) {
	if amount < 0 {
		panic("store: negative revenue")
	}
	s.totalRevenue += amount
}

// AdvanceDay moves the calendar forward one day.
func (s *State) AdvanceDay() {
	s.currentDay++
	s.Publish(TopicDayChanged)
}

// SetPaused toggles the simulation pause flag.
func (s *State) SetPaused(paused bool) {
	s.paused = paused
	s.Publish(TopicPauseChanged)
}

// SetDailyMetrics records the day's visit/order/conversion figures for
// display. conversion is a percentage.
func (s *State) SetDailyMetrics(visits, orders int, conversion float64) {
	if visits < 0 || orders < 0 {
		panic("store: negative daily metrics")
	}
	s.dailyVisits = visits
	s.dailyOrders = orders
	s.conversionRate = conversion
	s.Publish(TopicMetricsChanged)
}

// SetReputationTier records the derived display tier.
func (s *State) SetReputationTier(tier ReputationTier) {
	s.reputation = tier
	s.Publish(TopicReputationChanged)
}

// TrackNegativeDay updates the bankruptcy counter after a resolution. Any day
// closing with non-negative cash resets the streak.
func (s *State) TrackNegativeDay() {
	if s.cash < 0 {
		s.consecutiveNegativeDays++
	} else {
		s.consecutiveNegativeDays = 0
	}
}

// ConsecutiveNegativeDays reports the current negative-cash streak, used by
// drivers to warn at one and two days.
func (s *State) ConsecutiveNegativeDays() int {
	return s.consecutiveNegativeDays
}

// IsBankrupt reports whether the session has ended: three consecutive
// resolved days with negative cash.
func (s *State) IsBankrupt() bool {
	return s.consecutiveNegativeDays >= 3
}

// InstallSoftware records a purchased software item.
func (s *State) InstallSoftware(id string) {
	s.installedSoftware = append(s.installedSoftware, id)
}

// HasSoftware reports whether a software item is installed.
func (s *State) HasSoftware(id string) bool {
	for _, sw := range s.installedSoftware {
		if sw == id {
			return true
		}
	}
	return false
}
