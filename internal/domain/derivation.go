package domain

import (
	"github.com/shopspring/decimal"
)

// DeriveCapital returns the capital to store for the given input
// Logic:
//   - DIRECT: capital is the amount entered
//   - FROM_TOTAL: capital = total / (1 + rate/100), profit being computed on capital
//
// A rate of -100 zeroes the divisor and a rate below -100 would yield a
// negative capital. Both are rejected as degenerate.
func DeriveCapital(input InvestmentInput) (decimal.Decimal, error) {
	switch in := input.(type) {
	case DirectInput:
		if in.Capital.IsNegative() {
			return decimal.Zero, Reject(ReasonNegativeAmount)
		}
		return in.Capital, nil

	case FromTotalInput:
		if in.TotalAmount.IsNegative() {
			return decimal.Zero, Reject(ReasonNegativeAmount)
		}

		// decimal.Div panics on a zero divisor
		divisor := decimal.NewFromInt(1).Add(in.ProfitRate.Div(hundred))
		if divisor.Sign() <= 0 {
			return decimal.Zero, Reject(ReasonDegenerateDerivation)
		}
		return in.TotalAmount.Div(divisor), nil

	default:
		return decimal.Zero, Reject(ReasonUnknownMode)
	}
}

// TotalFromCapital is the inverse of the FROM_TOTAL derivation: capital * (1 + rate/100)
func TotalFromCapital(capital, profitRate decimal.Decimal) decimal.Decimal {
	return capital.Add(capital.Mul(profitRate).Div(hundred))
}
