package domain

import (
	"github.com/google/uuid"
)

// Ledger is the ordered collection of investments of one session
// Insertion order is preserved. Records are never merged or updated in place.
// A Ledger is not safe for concurrent use; the SessionRepository serializes access.
type Ledger struct {
	investments []*Investment
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{investments: make([]*Investment, 0)}
}

// Append adds an investment to the tail of the ledger
func (l *Ledger) Append(inv *Investment) {
	l.investments = append(l.investments, inv)
}

// Remove deletes the investment with the given ID
// Returns false (and leaves the ledger unchanged) if no such investment exists
func (l *Ledger) Remove(id uuid.UUID) bool {
	for i, inv := range l.investments {
		if inv.ID == id {
			l.investments = append(l.investments[:i], l.investments[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the investment with the given ID, or nil
func (l *Ledger) Get(id uuid.UUID) *Investment {
	for _, inv := range l.investments {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

// List returns the investments in insertion order
// The returned slice is a copy; the records themselves are shared.
func (l *Ledger) List() []*Investment {
	out := make([]*Investment, len(l.investments))
	copy(out, l.investments)
	return out
}

// Len returns the number of investments
func (l *Ledger) Len() int {
	return len(l.investments)
}

// Aggregates computes the portfolio summary over the whole ledger
func (l *Ledger) Aggregates() Aggregates {
	return ComputeAggregates(l.investments)
}
