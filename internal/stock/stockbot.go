package stock

import (
	"fmt"

	"github.com/talgya/storedesk/internal/store"
)

// SoftwareID is the catalog identifier for the StockBot item.
const SoftwareID = "stockbot"

// BotReport describes what the StockBot did on a given day.
type BotReport struct {
	Purchased bool
	Reason    string
}

// Bot is the purchasable auto-restock software. Its logic is deliberately
// naive: it only looks at the stock level and a flat cash floor, so it can
// fail in front of the player.
type Bot struct {
	state     *store.State
	threshold int
	orderCost float64
	orderSize int
	active    bool
}

// NewBot creates an uninstalled StockBot.
func NewBot(state *store.State, threshold int, orderCost float64, orderSize int) *Bot {
	return &Bot{
		state:     state,
		threshold: threshold,
		orderCost: orderCost,
		orderSize: orderSize,
	}
}

// Activate marks the bot installed.
func (b *Bot) Activate() {
	b.active = true
	b.state.Publish(store.TopicStockBotInstalled)
}

// Installed reports whether the bot is active.
func (b *Bot) Installed() bool {
	return b.active
}

// Threshold returns the restock trigger level.
func (b *Bot) Threshold() int {
	return b.threshold
}

// RunDaily checks the stock level after the economy resolves and buys one
// standard batch when below threshold. It does not reserve cash for the
// day's other obligations.
func (b *Bot) RunDaily() BotReport {
	if !b.active {
		return BotReport{}
	}

	level := b.state.Stock()
	if level >= b.threshold {
		return BotReport{}
	}

	if b.state.Cash() >= b.orderCost {
		b.state.AddCash(-b.orderCost)
		b.state.AddStock(b.orderSize)
		report := BotReport{
			Purchased: true,
			Reason:    fmt.Sprintf("StockBot: stock low (%d), bought %d units", level, b.orderSize),
		}
		b.state.Publish(store.TopicStockBotAction)
		return report
	}

	report := BotReport{
		Purchased: false,
		Reason:    fmt.Sprintf("StockBot: tried to buy but cash insufficient ($%.2f)", b.state.Cash()),
	}
	b.state.Publish(store.TopicStockBotAction)
	return report
}
