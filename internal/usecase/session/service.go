package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-ledger/internal/domain"
)

// SessionService handles the lifecycle of sessions and the ledgers they own
type SessionService struct {
	SessionRepo domain.SessionRepository
}

// NewSessionService creates a new SessionService instance
func NewSessionService(sessionRepo domain.SessionRepository) *SessionService {
	return &SessionService{
		SessionRepo: sessionRepo,
	}
}

// StartSession creates a session with an empty ledger
func (s *SessionService) StartSession(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(time.Now())

	if err := s.SessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	slog.InfoContext(ctx, "session started", "session_id", session.ID)
	return session, nil
}

// EndSession discards the session and its ledger
// Ending an unknown session is a no-op; the bool reports whether a session was ended
func (s *SessionService) EndSession(ctx context.Context, id uuid.UUID) (bool, error) {
	ended, err := s.SessionRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to end session: %w", err)
	}

	if ended {
		slog.InfoContext(ctx, "session ended", "session_id", id)
	}
	return ended, nil
}
