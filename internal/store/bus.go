package store

// Topic names a state change the UI layer can subscribe to.
type Topic string

const (
	TopicCashChanged       Topic = "cash-changed"
	TopicStockChanged      Topic = "stock-changed"
	TopicDebtChanged       Topic = "debt-changed"
	TopicPriceChanged      Topic = "price-changed"
	TopicDayChanged        Topic = "day-changed"
	TopicReputationChanged Topic = "reputation-changed"
	TopicMetricsChanged    Topic = "metrics-changed"
	TopicPauseChanged      Topic = "pause-changed"
	TopicDailySummary      Topic = "daily-summary"
	TopicIncomingStock     Topic = "incoming-stock-changed"
	TopicCampaignStarted   Topic = "campaign-started"
	TopicCampaignEnded     Topic = "campaign-ended"
	TopicViralStarted      Topic = "viral-started"
	TopicViralEnded        Topic = "viral-ended"
	TopicEventTriggered    Topic = "event-triggered"
	TopicStockBotInstalled Topic = "stockbot-installed"
	TopicStockBotAction    Topic = "stockbot-action"
	TopicGameOver          Topic = "game-over"
	TopicVictory           Topic = "victory"
)

// Bus delivers change notifications synchronously to all current
// subscribers. Subscribers are anonymous to publishers; Subscribe returns the
// matching unregister function so listener lifecycle stays explicit.
type Bus struct {
	nextID    int
	listeners map[Topic]map[int]func()
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[Topic]map[int]func())}
}

// Subscribe registers fn for a topic and returns its unsubscribe function.
func (b *Bus) Subscribe(topic Topic, fn func()) func() {
	if b.listeners[topic] == nil {
		b.listeners[topic] = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.listeners[topic][id] = fn
	return func() {
		delete(b.listeners[topic], id)
	}
}

// Publish invokes every subscriber of the topic, fire-and-forget.
func (b *Bus) Publish(topic Topic) {
	for _, fn := range b.listeners[topic] {
		fn()
	}
}
