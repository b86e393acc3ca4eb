package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session owns exactly one ledger for its whole lifetime
// The ledger is created empty when the session starts and discarded when it ends.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time
	Ledger    *Ledger
}

// NewSession starts a session with an empty ledger
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		StartedAt: now,
		Ledger:    NewLedger(),
	}
}
