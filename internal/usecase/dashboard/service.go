package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-ledger/internal/domain"
)

// SummaryItem is one ledger line with its derived values
type SummaryItem struct {
	Investment *domain.Investment
	Profit     decimal.Decimal
	TotalValue decimal.Decimal
	Category   domain.Category
}

// Summary is the portfolio view of a session: aggregates plus one item per investment
type Summary struct {
	Aggregates domain.Aggregates
	Items      []SummaryItem
}

// CategoryTotal sums the investments falling into one category
type CategoryTotal struct {
	Category   domain.Category
	Count      int
	Capital    decimal.Decimal
	Profit     decimal.Decimal
	TotalValue decimal.Decimal
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	SessionRepo domain.SessionRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(sessionRepo domain.SessionRepository) *DashboardService {
	return &DashboardService{
		SessionRepo: sessionRepo,
	}
}

// GetSummary computes the aggregates and per-investment values for a session
// Everything is recomputed from the ledger on each call
func (s *DashboardService) GetSummary(ctx context.Context, sessionID uuid.UUID) (*Summary, error) {
	var investments []*domain.Investment
	err := s.SessionRepo.View(ctx, sessionID, func(session *domain.Session) error {
		investments = session.Ledger.List()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	items := make([]SummaryItem, 0, len(investments))
	for _, inv := range investments {
		items = append(items, SummaryItem{
			Investment: inv,
			Profit:     inv.Profit(),
			TotalValue: inv.TotalValue(),
			Category:   inv.Category(),
		})
	}

	return &Summary{
		Aggregates: domain.ComputeAggregates(investments),
		Items:      items,
	}, nil
}

// GetCategoryBreakdown groups the ledger by category
// Categories come out in classification order; empty categories are omitted
func (s *DashboardService) GetCategoryBreakdown(ctx context.Context, sessionID uuid.UUID) ([]CategoryTotal, error) {
	summary, err := s.GetSummary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.Category]*CategoryTotal)
	for _, item := range summary.Items {
		total, ok := byCategory[item.Category]
		if !ok {
			total = &CategoryTotal{
				Category:   item.Category,
				Capital:    decimal.Zero,
				Profit:     decimal.Zero,
				TotalValue: decimal.Zero,
			}
			byCategory[item.Category] = total
		}
		total.Count++
		total.Capital = total.Capital.Add(item.Investment.Capital)
		total.Profit = total.Profit.Add(item.Profit)
		total.TotalValue = total.TotalValue.Add(item.TotalValue)
	}

	breakdown := make([]CategoryTotal, 0, len(byCategory))
	for _, category := range domain.Categories() {
		if total, ok := byCategory[category]; ok {
			breakdown = append(breakdown, *total)
		}
	}

	return breakdown, nil
}
