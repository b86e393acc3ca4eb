package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-ledger/internal/domain"
)

// sessionRepository implements domain.SessionRepository
// A single mutex guards the map and every ledger in it, so callbacks never interleave.
type sessionRepository struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*domain.Session
	maxSessions int
}

// NewSessionRepository creates an in-memory session store
// maxSessions <= 0 means unlimited
func NewSessionRepository(maxSessions int) domain.SessionRepository {
	return &sessionRepository{
		sessions:    make(map[uuid.UUID]*domain.Session),
		maxSessions: maxSessions,
	}
}

// Create stores a new session
func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return fmt.Errorf("failed to create session: %w", domain.ErrSessionLimit)
	}
	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}

	r.sessions[session.ID] = session
	return nil
}

// View runs fn under a read lock
func (r *sessionRepository) View(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return fn(session)
}

// Update runs fn under the write lock
func (r *sessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return fn(session)
}

// Delete discards the session
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false, nil
	}
	delete(r.sessions, id)
	return true, nil
}
