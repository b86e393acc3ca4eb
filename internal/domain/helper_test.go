package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// assertDecimal compares decimals by value, ignoring exponent differences
func assertDecimal(t *testing.T, want string, got decimal.Decimal) bool {
	t.Helper()
	return assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
