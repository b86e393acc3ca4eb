package investment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-ledger/internal/domain"
)

// InvestmentService handles investment-related operations on a session's ledger
type InvestmentService struct {
	SessionRepo domain.SessionRepository
}

// NewInvestmentService creates a new InvestmentService instance
func NewInvestmentService(sessionRepo domain.SessionRepository) *InvestmentService {
	return &InvestmentService{
		SessionRepo: sessionRepo,
	}
}

// AddInvestment validates the form, derives the capital and appends a new record to the ledger
// Logic:
//  1. Parse and validate the form (name, rate, amount, mode)
//  2. Derive capital (DIRECT as-is, FROM_TOTAL = total / (1 + rate/100))
//  3. Append to the ledger tail
//
// On any rejection the ledger is left untouched and a *domain.RejectionError is returned
func (s *InvestmentService) AddInvestment(ctx context.Context, sessionID uuid.UUID, form domain.InvestmentForm) (*domain.Investment, error) {
	// Validate before touching the session so invalid input never takes the write lock
	input, err := domain.ParseForm(form)
	if err != nil {
		logRejection(ctx, sessionID, err)
		return nil, err
	}

	var created *domain.Investment
	err = s.SessionRepo.Update(ctx, sessionID, func(session *domain.Session) error {
		inv, err := domain.NewInvestment(input, time.Now())
		if err != nil {
			return err
		}
		session.Ledger.Append(inv)
		created = inv
		return nil
	})
	if err != nil {
		logRejection(ctx, sessionID, err)
		return nil, err
	}

	return created, nil
}

// RemoveInvestment removes the investment with the given ID from the ledger
// Removing an unknown investment is not an error; the bool reports whether a record was removed
func (s *InvestmentService) RemoveInvestment(ctx context.Context, sessionID, investmentID uuid.UUID) (bool, error) {
	var removed bool
	err := s.SessionRepo.Update(ctx, sessionID, func(session *domain.Session) error {
		removed = session.Ledger.Remove(investmentID)
		return nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// ListInvestments returns the session's investments in insertion order
func (s *InvestmentService) ListInvestments(ctx context.Context, sessionID uuid.UUID) ([]*domain.Investment, error) {
	var investments []*domain.Investment
	err := s.SessionRepo.View(ctx, sessionID, func(session *domain.Session) error {
		investments = session.Ledger.List()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return investments, nil
}

// PreviewCapital returns the capital a submission would store, without touching any ledger
// Used by forms to show the derived capital while the user is typing a total amount
func (s *InvestmentService) PreviewCapital(profitRate, amount string, mode domain.InputMode) (decimal.Decimal, error) {
	rate, value, err := domain.ParseFigures(profitRate, amount)
	if err != nil {
		return decimal.Zero, err
	}

	input, err := domain.NewInput(mode, "", rate, value)
	if err != nil {
		return decimal.Zero, err
	}

	return domain.DeriveCapital(input)
}

// logRejection records rejected submissions at debug level; other errors are left to the caller
func logRejection(ctx context.Context, sessionID uuid.UUID, err error) {
	if reason, ok := domain.IsRejection(err); ok {
		slog.DebugContext(ctx, "investment rejected", "session_id", sessionID, "reason", string(reason))
	}
}
