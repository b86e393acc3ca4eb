package domain

import (
	"context"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for session storage
// Sessions are held in memory only; nothing outlives the process.
type SessionRepository interface {
	// Create stores a new session
	// Returns ErrSessionLimit if the store is full
	Create(ctx context.Context, session *Session) error

	// View runs fn with read access to the session
	// Returns ErrSessionNotFound if the session does not exist
	View(ctx context.Context, id uuid.UUID, fn func(*Session) error) error

	// Update runs fn with exclusive write access to the session
	// Returns ErrSessionNotFound if the session does not exist
	Update(ctx context.Context, id uuid.UUID, fn func(*Session) error) error

	// Delete discards the session and its ledger
	// Deleting an unknown session is not an error; the return value reports whether one was removed
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
