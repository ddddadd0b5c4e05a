package sim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/talgya/storedesk/internal/stock"
	"github.com/talgya/storedesk/internal/store"
)

// DailySummary is the typed record of one resolved day, published to
// observers and persisted by the recorder.
type DailySummary struct {
	Day int

	Visits             int
	ConversionRate     float64 // fraction, not percent
	PotentialOrders    int
	StockLimitedOrders int
	ProcessedOrders    int
	LostToStock        int
	LostToCapacity     int
	OverflowCreated    int

	Revenue  float64
	Costs    float64
	Interest float64
	Net      float64

	EmployeeWorked   bool
	EmployeeSalary   float64
	ReputationImpact float64 // summed lost-order penalties, <= 0

	EventID         string
	ViralOccurred   bool
	ViralMultiplier float64
}

// ResolveDay advances the calendar one day and runs the fixed resolution
// pipeline. Every step feeds the next; the order is load-bearing. Invoked by
// the scheduler exactly once per simulated day.
func (s *Session) ResolveDay() DailySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolving {
		panic("sim: re-entrant day resolution")
	}
	s.resolving = true
	defer func() { s.resolving = false }()

	eco := &s.cfg.Economy
	s.state.AdvanceDay()
	summary := DailySummary{Day: s.state.CurrentDay()}

	// 1. Shift capacity overflow: today becomes yesterday.
	s.capacity.AdvanceDay()

	// 2. Release stock orders due today, before any selling happens.
	s.incoming.ReleaseDue()

	// 3. Visits: uniform draw over the middle 20-80% of the configured band,
	// amplified by marketing.
	band := float64(eco.BaseVisitsMax - eco.BaseVisitsMin)
	base := float64(eco.BaseVisitsMin) + (0.2+0.6*s.rand.Float64())*band
	visits := int(base * s.marketing.VisitMultiplier())
	summary.Visits = visits

	// 4. Conversion: price elasticity around the reference price, scaled by
	// the continuous reputation score.
	conversion := eco.BaseConversionRate
	conversion -= float64(s.state.Price()-eco.ReferencePrice) * eco.PriceElasticity
	conversion *= s.rep.Score()
	conversion = math.Max(0.001, math.Min(0.15, conversion))
	summary.ConversionRate = conversion

	// 5-6. Orders, limited by stock on hand. Accepted orders commit their
	// inventory immediately.
	potential := int(float64(visits) * conversion)
	accepted := min(potential, s.state.Stock())
	lostToStock := potential - accepted
	s.state.AddStock(-accepted)
	summary.PotentialOrders = potential
	summary.StockLimitedOrders = accepted
	summary.LostToStock = lostToStock

	// 7. Staffing: the operator works only if the salary clears right now.
	staffing := s.capacity.ResolveStaffing()
	summary.EmployeeWorked = staffing.Worked
	summary.EmployeeSalary = staffing.Salary

	// 8. Fulfillment: yesterday's overflow first, then today's orders.
	processed := s.capacity.ProcessOrders(accepted)
	summary.ProcessedOrders = processed.Processed
	summary.LostToCapacity = processed.LostToCapacity
	summary.OverflowCreated = processed.Overflow

	// 9. Lost orders hurt reputation, each pool separately. Active marketing
	// doubles the damage: more eyes on the failure.
	summary.ReputationImpact += s.applyLostOrderPenalty(lostToStock)
	summary.ReputationImpact += s.applyLostOrderPenalty(processed.LostToCapacity)

	// 10. Settle the books.
	revenue := float64(processed.Processed) * float64(s.state.Price())
	s.state.AddCash(revenue)
	s.state.AddRevenue(revenue)
	summary.Revenue = revenue

	s.state.AddCash(-eco.DailyFixedCost)
	summary.Costs = eco.DailyFixedCost

	if s.state.Debt() > 0 {
		interest := s.state.Debt() * eco.DebtInterestRate
		s.state.AddDebt(interest)
		s.state.AddCash(-interest)
		summary.Interest = interest
	}
	summary.Net = revenue - summary.Costs - summary.Interest - staffing.Salary

	// 11. Publish the day's metrics (conversion shown as a percentage).
	s.state.SetDailyMetrics(visits, processed.Processed, conversion*100)

	// 12-14. Reputation drift, supplier bias, tier refresh.
	s.rep.Recover()
	if s.supplier == stock.SupplierFast {
		s.rep.Adjust(eco.FastSupplierRepBonus)
	} else {
		s.rep.Adjust(eco.CheapSupplierRepPenalty)
	}
	s.rep.SyncTier()

	// 15-16. Marketing countdowns, then the viral roll for a fresh boost.
	s.marketing.AdvanceDay()
	if occurred, mult := s.marketing.RollViral(); occurred {
		summary.ViralOccurred = true
		summary.ViralMultiplier = mult
	}

	// Random disruption, if the daily roll hits.
	if event := s.events.Check(); event != nil {
		s.events.Trigger(event)
		summary.EventID = event.ID
		slog.Info("disruption event", "day", summary.Day, "event", event.ID, "title", event.Title)
	}

	// 17. StockBot automation.
	if report := s.bot.RunDaily(); report.Reason != "" {
		slog.Info("stockbot", "day", summary.Day, "purchased", report.Purchased, "detail", report.Reason)
	}

	// 18. Publish the summary, then close out the day: bankruptcy streak and
	// challenge progress.
	s.lastSummary = summary
	s.state.Publish(store.TopicDailySummary)

	s.state.TrackNegativeDay()
	s.challenge.TrackDay()

	slog.Info("daily report",
		"day", summary.Day,
		"visits", summary.Visits,
		"conversion", fmt.Sprintf("%.2f%%", summary.ConversionRate*100),
		"orders", summary.ProcessedOrders,
		"lost_stock", summary.LostToStock,
		"lost_capacity", summary.LostToCapacity,
		"overflow", summary.OverflowCreated,
		"revenue", fmt.Sprintf("%.2f", summary.Revenue),
		"net", fmt.Sprintf("%.2f", summary.Net),
		"cash", fmt.Sprintf("%.2f", s.state.Cash()),
		"reputation", fmt.Sprintf("%.3f", s.rep.Score()),
	)

	if s.state.IsBankrupt() {
		s.state.Publish(store.TopicGameOver)
	} else if s.challenge.Achieved() {
		s.state.Publish(store.TopicVictory)
	}

	return summary
}

// applyLostOrderPenalty converts a lost-order count into a bounded negative
// reputation delta and applies it. Returns the delta.
func (s *Session) applyLostOrderPenalty(lost int) float64 {
	if lost <= 0 {
		return 0
	}
	scale := math.Min(float64(lost)/10, 3.0)
	delta := -s.cfg.Economy.LostOrderPenalty * scale
	if s.marketing.BoostActive() {
		delta *= 2
	}
	s.rep.Adjust(delta)
	return delta
}
