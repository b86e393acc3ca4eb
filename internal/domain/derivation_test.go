package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCapital(t *testing.T) {
	tests := []struct {
		name       string
		input      InvestmentInput
		want       string
		wantReason RejectionReason
	}{
		{
			name:  "Direct returns the capital unchanged",
			input: DirectInput{Name: "Gold", Capital: dec("10000"), ProfitRate: dec("15")},
			want:  "10000",
		},
		{
			name:  "Direct zero capital",
			input: DirectInput{Name: "Gold", Capital: decimal.Zero, ProfitRate: dec("15")},
			want:  "0",
		},
		{
			name:  "From total divides by one plus rate",
			input: FromTotalInput{Name: "Stocks", TotalAmount: dec("11500"), ProfitRate: dec("15")},
			want:  "10000",
		},
		{
			name:  "From total with zero rate",
			input: FromTotalInput{Name: "Stocks", TotalAmount: dec("800"), ProfitRate: decimal.Zero},
			want:  "800",
		},
		{
			name:  "From total with a loss",
			input: FromTotalInput{Name: "Crypto", TotalAmount: dec("750"), ProfitRate: dec("-25")},
			want:  "1000",
		},
		{
			name:       "From total at -100 is degenerate",
			input:      FromTotalInput{Name: "Gold", TotalAmount: dec("1000"), ProfitRate: dec("-100")},
			wantReason: ReasonDegenerateDerivation,
		},
		{
			name:       "From total below -100 is degenerate",
			input:      FromTotalInput{Name: "Gold", TotalAmount: dec("1000"), ProfitRate: dec("-150")},
			wantReason: ReasonDegenerateDerivation,
		},
		{
			name:       "Negative direct capital",
			input:      DirectInput{Name: "Gold", Capital: dec("-5"), ProfitRate: dec("15")},
			wantReason: ReasonNegativeAmount,
		},
		{
			name:       "Negative total",
			input:      FromTotalInput{Name: "Gold", TotalAmount: dec("-5"), ProfitRate: dec("15")},
			wantReason: ReasonNegativeAmount,
		},
		{
			name:       "Nil input",
			input:      nil,
			wantReason: ReasonUnknownMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveCapital(tt.input)

			if tt.wantReason != "" {
				reason, ok := IsRejection(err)
				assert.True(t, ok, "expected rejection, got %v", err)
				assert.Equal(t, tt.wantReason, reason)
				assert.True(t, got.IsZero())
				return
			}

			require.NoError(t, err)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestDeriveCapital_InverseOfTotal(t *testing.T) {
	capitals := []string{"0.01", "1000", "1234.56", "999999.99"}
	rates := []string{"0", "15", "7.25", "-50", "-99.5", "250", "1000"}
	tolerance := dec("0.000000001")

	for _, c := range capitals {
		for _, r := range rates {
			capital, rate := dec(c), dec(r)
			total := TotalFromCapital(capital, rate)

			got, err := DeriveCapital(FromTotalInput{Name: "x", TotalAmount: total, ProfitRate: rate})

			require.NoError(t, err, "capital=%s rate=%s", c, r)
			assert.True(t, got.Sub(capital).Abs().LessThan(tolerance),
				"capital=%s rate=%s: derived %s", c, r, got)
		}
	}
}

func TestTotalFromCapital(t *testing.T) {
	assertDecimal(t, "11500", TotalFromCapital(dec("10000"), dec("15")))
	assertDecimal(t, "500", TotalFromCapital(dec("1000"), dec("-50")))
	assertDecimal(t, "0", TotalFromCapital(dec("1000"), dec("-100")))
}
