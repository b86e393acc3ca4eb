package domain

import (
	"github.com/shopspring/decimal"
)

// Aggregates is the portfolio-level summary of a ledger
type Aggregates struct {
	Count             int
	TotalCapital      decimal.Decimal
	TotalProfit       decimal.Decimal
	OverallProfitRate decimal.Decimal // TotalProfit / TotalCapital * 100, or 0 when there is no capital
	TotalValue        decimal.Decimal // TotalCapital + TotalProfit
}

// ComputeAggregates sums capital and profit over all investments
// Nothing is cached: the result is recomputed from scratch on every call.
func ComputeAggregates(investments []*Investment) Aggregates {
	totalCapital := decimal.Zero
	totalProfit := decimal.Zero

	for _, inv := range investments {
		totalCapital = totalCapital.Add(inv.Capital)
		totalProfit = totalProfit.Add(inv.Profit())
	}

	overallRate := decimal.Zero
	if totalCapital.IsPositive() {
		overallRate = totalProfit.Mul(hundred).Div(totalCapital)
	}

	return Aggregates{
		Count:             len(investments),
		TotalCapital:      totalCapital,
		TotalProfit:       totalProfit,
		OverallProfitRate: overallRate,
		TotalValue:        totalCapital.Add(totalProfit),
	}
}
