// Package stock handles inventory in transit: supplier orders with per-order
// arrival days, plus the StockBot auto-purchase software.
package stock

import "github.com/talgya/storedesk/internal/store"

// Supplier selects the lead-time/reputation trade-off for stock orders.
type Supplier string

const (
	SupplierFast  Supplier = "fast"
	SupplierCheap Supplier = "cheap"
)

// Entry is one order in transit.
type Entry struct {
	Amount     int
	ArrivalDay int
}

// IncomingQueue tracks stock orders until their arrival day.
type IncomingQueue struct {
	state     *store.State
	fastLead  int
	cheapLead int
	entries   []Entry
}

// NewIncomingQueue creates an empty in-transit queue with the configured
// supplier lead times.
func NewIncomingQueue(state *store.State, fastLead, cheapLead int) *IncomingQueue {
	return &IncomingQueue{state: state, fastLead: fastLead, cheapLead: cheapLead}
}

// LeadTime returns the configured lead time in days for a supplier.
func (q *IncomingQueue) LeadTime(supplier Supplier) int {
	if supplier == SupplierFast {
		return q.fastLead
	}
	return q.cheapLead
}

// Enqueue registers an order arriving leadTime days from the current day.
func (q *IncomingQueue) Enqueue(amount int, supplier Supplier) Entry {
	if amount <= 0 {
		panic("stock: non-positive order amount")
	}
	entry := Entry{
		Amount:     amount,
		ArrivalDay: q.state.CurrentDay() + q.LeadTime(supplier),
	}
	q.entries = append(q.entries, entry)
	q.state.Publish(store.TopicIncomingStock)
	return entry
}

// ReleaseDue moves every entry due today into stock and removes it from the
// queue. Calling it twice in the same day is a no-op the second time.
func (q *IncomingQueue) ReleaseDue() int {
	today := q.state.CurrentDay()
	received := 0
	remaining := q.entries[:0]
	for _, e := range q.entries {
		if e.ArrivalDay == today {
			received += e.Amount
		} else {
			remaining = append(remaining, e)
		}
	}
	q.entries = remaining

	if received > 0 {
		q.state.AddStock(received)
		q.state.Publish(store.TopicIncomingStock)
	}
	return received
}

// PendingTotal returns all units still in transit.
func (q *IncomingQueue) PendingTotal() int {
	total := 0
	for _, e := range q.entries {
		total += e.Amount
	}
	return total
}

// Entries returns a copy of the in-transit orders for display.
func (q *IncomingQueue) Entries() []Entry {
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}
