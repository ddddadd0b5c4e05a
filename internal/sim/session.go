// Package sim ties the economy subsystems into one play session and runs the
// daily resolution pipeline. A single mutex serializes player actions against
// the resolver, so the resolver always sees a consistent snapshot of
// player-set values.
package sim

import (
	"fmt"
	"sync"

	"github.com/talgya/storedesk/internal/capacity"
	"github.com/talgya/storedesk/internal/challenge"
	"github.com/talgya/storedesk/internal/config"
	"github.com/talgya/storedesk/internal/entropy"
	"github.com/talgya/storedesk/internal/events"
	"github.com/talgya/storedesk/internal/marketing"
	"github.com/talgya/storedesk/internal/reputation"
	"github.com/talgya/storedesk/internal/stock"
	"github.com/talgya/storedesk/internal/store"
)

// Session holds the complete state of one store run and wires the subsystems
// together.
type Session struct {
	mu sync.Mutex

	cfg   *config.Config
	state *store.State
	rand  entropy.Source

	incoming  *stock.IncomingQueue
	bot       *stock.Bot
	capacity  *capacity.Queue
	marketing *marketing.System
	rep       *reputation.Tracker
	events    *events.Generator
	challenge *challenge.System

	supplier stock.Supplier

	actionHook  func(name string, res store.ActionResult)
	resolving   bool
	lastSummary DailySummary
}

// NewSession builds a fresh session from config and a random source.
func NewSession(cfg *config.Config, rand entropy.Source) *Session {
	state := store.NewState(
		cfg.Store.Name,
		cfg.Store.Niche,
		cfg.Store.StartingCash,
		cfg.Store.StartingStock,
		cfg.Store.StartingPrice,
	)
	rep := reputation.NewTracker(state)

	return &Session{
		cfg:   cfg,
		state: state,
		rand:  rand,
		incoming: stock.NewIncomingQueue(state,
			cfg.Economy.FastSupplierLeadDays,
			cfg.Economy.CheapSupplierLeadDays),
		bot: stock.NewBot(state,
			cfg.StockBot.Threshold,
			cfg.Economy.StockOrderCost,
			cfg.Economy.StockOrderAmount),
		capacity: capacity.NewQueue(state,
			cfg.Capacity.Base,
			cfg.Capacity.PerExpansion,
			cfg.Capacity.ExpansionCosts,
			cfg.Capacity.EmployeeSalary,
			cfg.Capacity.EmployeeCapacity),
		marketing: marketing.NewSystem(state, rand, marketing.Settings{
			CampaignCost:       cfg.Marketing.CampaignCost,
			CampaignDays:       cfg.Marketing.CampaignDays,
			CampaignMultiplier: cfg.Marketing.CampaignMultiplier,
			ViralProbability:   cfg.Marketing.ViralProbability,
			ViralCooldownDays:  cfg.Marketing.ViralCooldownDays,
			ViralDays:          cfg.Marketing.ViralDays,
			ViralMultiplierMin: cfg.Marketing.ViralMultiplierMin,
			ViralMultiplierMax: cfg.Marketing.ViralMultiplierMax,
			MultiplierCap:      cfg.Marketing.MultiplierCap,
		}),
		rep:       rep,
		events:    events.NewGenerator(state, rep, rand, cfg.Events.DailyProbability, cfg.Events.MinGapDays),
		challenge: challenge.NewSystem(state, challenge.None),
		supplier:  stock.SupplierFast,
	}
}

// State returns the session ledger. Read access only; mutation stays behind
// the action handlers and the resolver.
func (s *Session) State() *store.State {
	return s.state
}

// LastSummary returns the most recent day's resolution record.
func (s *Session) LastSummary() DailySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSummary
}

// Supplier returns the current supplier preference.
func (s *Session) Supplier() stock.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.supplier
}

// ReputationScore returns the continuous reputation score.
func (s *Session) ReputationScore() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rep.Score()
}

// PendingStock returns the units still in transit.
func (s *Session) PendingStock() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incoming.PendingTotal()
}

// Challenge returns the victory tracker.
func (s *Session) Challenge() *challenge.System {
	return s.challenge
}

// SetActionHook registers a callback invoked after every player action with
// its outcome, for audit logging. The hook runs under the session lock and
// must not call back into the session.
func (s *Session) SetActionHook(hook func(name string, res store.ActionResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actionHook = hook
}

func (s *Session) finish(name string, res store.ActionResult) store.ActionResult {
	if s.actionHook != nil {
		s.actionHook(name, res)
	}
	return res
}

// ── Player actions ────────────────────────────────────────────────────────

// OrderStock places a supplier order at the flat order cost. The goods arrive
// after the supplier's lead time.
func (s *Session) OrderStock(amount int, supplier stock.Supplier) store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return s.finish("order_stock", store.ActionResult{Message: "order amount must be positive"})
	}
	if s.state.Cash() < s.cfg.Economy.StockOrderCost {
		return s.finish("order_stock", store.ActionResult{Message: fmt.Sprintf("insufficient cash ($%.0f)", s.cfg.Economy.StockOrderCost)})
	}

	s.state.AddCash(-s.cfg.Economy.StockOrderCost)
	entry := s.incoming.Enqueue(amount, supplier)
	return s.finish("order_stock", store.ActionResult{
		OK:      true,
		Message: fmt.Sprintf("ordered %d units, arriving day %d", amount, entry.ArrivalDay),
	})
}

// AdjustPrice applies a signed delta to the unit price. A result below the $1
// floor is silently ignored.
func (s *Session) AdjustPrice(delta int) store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	price := s.state.Price() + delta
	if price < 1 {
		return s.finish("adjust_price", store.ActionResult{})
	}
	s.state.SetPrice(price)
	return s.finish("adjust_price", store.ActionResult{OK: true, Message: fmt.Sprintf("price set to $%d", price)})
}

// TakeLoan adds the amount to both cash and debt. There is no approval step;
// interest does the gatekeeping.
func (s *Session) TakeLoan(amount float64) store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return s.finish("take_loan", store.ActionResult{Message: "loan amount must be positive"})
	}
	s.state.AddCash(amount)
	s.state.AddDebt(amount)
	return s.finish("take_loan", store.ActionResult{OK: true, Message: fmt.Sprintf("loan of $%.0f granted", amount)})
}

// HireEmployee puts the operator on payroll.
func (s *Session) HireEmployee() store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish("hire_employee", s.capacity.HireEmployee())
}

// FireEmployee removes the operator from payroll.
func (s *Session) FireEmployee() store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish("fire_employee", s.capacity.FireEmployee())
}

// PurchaseExpansion buys the next warehouse expansion.
func (s *Session) PurchaseExpansion() store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish("purchase_expansion", s.capacity.PurchaseExpansion())
}

// StartCampaign launches a paid marketing campaign.
func (s *Session) StartCampaign() store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish("start_campaign", s.marketing.StartCampaign())
}

// SetSupplier switches the supplier preference for subsequent orders and
// resolutions. Always succeeds.
func (s *Session) SetSupplier(supplier stock.Supplier) store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.supplier = supplier
	return s.finish("set_supplier", store.ActionResult{OK: true, Message: fmt.Sprintf("supplier set to %s", supplier)})
}

// InstallStockBot purchases and activates the auto-restock software.
func (s *Session) InstallStockBot() store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bot.Installed() {
		return s.finish("install_stockbot", store.ActionResult{Message: "StockBot already installed"})
	}
	if s.state.Cash() < s.cfg.StockBot.InstallCost {
		return s.finish("install_stockbot", store.ActionResult{Message: fmt.Sprintf("insufficient cash ($%.0f)", s.cfg.StockBot.InstallCost)})
	}

	s.state.AddCash(-s.cfg.StockBot.InstallCost)
	s.state.InstallSoftware(stock.SoftwareID)
	s.bot.Activate()
	return s.finish("install_stockbot", store.ActionResult{OK: true, Message: "StockBot v1.0 installed, auto-restock active"})
}

// SetChallenge selects the session objective.
func (s *Session) SetChallenge(t challenge.Type) store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenge.Set(t)
	return s.finish("set_challenge", store.ActionResult{OK: true, Message: fmt.Sprintf("challenge set: %s", t)})
}

// SetPaused toggles the pause flag read by the scheduler.
func (s *Session) SetPaused(paused bool) store.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetPaused(paused)
	if paused {
		return s.finish("pause", store.ActionResult{OK: true, Message: "simulation paused"})
	}
	return s.finish("pause", store.ActionResult{OK: true, Message: "simulation resumed"})
}
