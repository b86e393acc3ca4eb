package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// InputMode tells how the amount of an investment form was entered
type InputMode string

const (
	// InputModeDirect means the amount is the capital itself
	InputModeDirect InputMode = "DIRECT"
	// InputModeFromTotal means the amount is capital plus profit
	InputModeFromTotal InputMode = "FROM_TOTAL"
)

// ParseInputMode maps the textual mode names used by forms to an InputMode
func ParseInputMode(s string) (InputMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct", "capital":
		return InputModeDirect, true
	case "fromtotal", "from_total", "total":
		return InputModeFromTotal, true
	default:
		return "", false
	}
}

// Investment represents a single investment record held by a ledger
// Capital is always the principal before profit. Profit is never stored.
type Investment struct {
	ID         uuid.UUID
	Name       string
	Capital    decimal.Decimal // Base form, never negative
	ProfitRate decimal.Decimal // Percentage units: 15 means 15%
	CreatedAt  time.Time
}

// Profit returns Capital * ProfitRate / 100
func (i *Investment) Profit() decimal.Decimal {
	return i.Capital.Mul(i.ProfitRate).Div(hundred)
}

// TotalValue returns capital plus profit
func (i *Investment) TotalValue() decimal.Decimal {
	return i.Capital.Add(i.Profit())
}

// Category classifies the investment by its name
func (i *Investment) Category() Category {
	return Classify(i.Name)
}

// InvestmentInput is the validated input for a new investment.
// It is either a DirectInput or a FromTotalInput.
type InvestmentInput interface {
	isInvestmentInput()
	Mode() InputMode
	InvestmentName() string
	Rate() decimal.Decimal
}

// DirectInput carries the capital as entered by the user
type DirectInput struct {
	Name       string
	Capital    decimal.Decimal
	ProfitRate decimal.Decimal
}

func (DirectInput) isInvestmentInput()        {}
func (DirectInput) Mode() InputMode           { return InputModeDirect }
func (in DirectInput) InvestmentName() string { return in.Name }
func (in DirectInput) Rate() decimal.Decimal  { return in.ProfitRate }

// FromTotalInput carries the total amount (capital plus profit)
type FromTotalInput struct {
	Name        string
	TotalAmount decimal.Decimal
	ProfitRate  decimal.Decimal
}

func (FromTotalInput) isInvestmentInput()        {}
func (FromTotalInput) Mode() InputMode           { return InputModeFromTotal }
func (in FromTotalInput) InvestmentName() string { return in.Name }
func (in FromTotalInput) Rate() decimal.Decimal  { return in.ProfitRate }

// InvestmentForm is the raw text submitted by a form
type InvestmentForm struct {
	Name       string
	ProfitRate string
	Amount     string // Capital for DIRECT, total amount for FROM_TOTAL
	Mode       InputMode
}

// ParseForm validates the raw form and turns it into an InvestmentInput
// Checks run in order: name, rate, amount, mode. The first failure wins.
func ParseForm(form InvestmentForm) (InvestmentInput, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, Reject(ReasonEmptyName)
	}

	rate, amount, err := ParseFigures(form.ProfitRate, form.Amount)
	if err != nil {
		return nil, err
	}

	return NewInput(form.Mode, name, rate, amount)
}

// ParseFigures parses the profit rate and amount texts of a form
func ParseFigures(profitRate, amount string) (decimal.Decimal, decimal.Decimal, error) {
	rate, err := ParseNumber(profitRate)
	if err != nil {
		return decimal.Zero, decimal.Zero, Reject(ReasonUnparseableRate)
	}

	value, err := ParseNumber(amount)
	if err != nil {
		return decimal.Zero, decimal.Zero, Reject(ReasonUnparseableAmount)
	}
	if value.IsNegative() {
		return decimal.Zero, decimal.Zero, Reject(ReasonNegativeAmount)
	}

	return rate, value, nil
}

// NewInput builds the input variant matching mode
func NewInput(mode InputMode, name string, profitRate, amount decimal.Decimal) (InvestmentInput, error) {
	switch mode {
	case InputModeDirect:
		return DirectInput{Name: name, Capital: amount, ProfitRate: profitRate}, nil
	case InputModeFromTotal:
		return FromTotalInput{Name: name, TotalAmount: amount, ProfitRate: profitRate}, nil
	default:
		return nil, Reject(ReasonUnknownMode)
	}
}

// NewInvestment derives the capital from the input and builds a record with a fresh ID
func NewInvestment(input InvestmentInput, now time.Time) (*Investment, error) {
	capital, err := DeriveCapital(input)
	if err != nil {
		return nil, err
	}

	return &Investment{
		ID:         uuid.New(),
		Name:       input.InvestmentName(),
		Capital:    capital,
		ProfitRate: input.Rate(),
		CreatedAt:  now,
	}, nil
}
