package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	arabicDecimalSeparator   = '\u066B'
	arabicThousandsSeparator = '\u066C'

	// Bounds on accepted numbers. decimal accepts any int32 exponent, and
	// "1e10000000" would otherwise expand into a ten-million-digit integer.
	maxNumberLength   = 64
	maxNumberDigits   = 40
	maxNumberExponent = 40
)

var (
	errEmptyNumber    = errors.New("empty number")
	errNumberTooLarge = errors.New("number out of range")
)

// newNumeralNormalizer drops Arabic digit grouping, then maps Arabic-Indic digits
// and the Arabic decimal separator to their ASCII counterparts.
// Chained transformers keep state, so each call gets its own.
func newNumeralNormalizer() transform.Transformer {
	return transform.Chain(
		runes.Remove(runes.Predicate(func(r rune) bool { return r == arabicThousandsSeparator })),
		runes.Map(normalizeNumeral),
	)
}

func normalizeNumeral(r rune) rune {
	switch {
	case r >= '٠' && r <= '٩': // Arabic-Indic ٠-٩
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹': // Extended Arabic-Indic ۰-۹
		return '0' + (r - '۰')
	case r == arabicDecimalSeparator:
		return '.'
	default:
		return r
	}
}

// NormalizeNumerals rewrites s so that every digit is an ASCII digit
// Digit order is preserved; non-digit characters other than Arabic separators pass through.
func NormalizeNumerals(s string) string {
	out, _, err := transform.String(newNumeralNormalizer(), s)
	if err != nil {
		// rune-level transformers only fail on short buffers, which transform.String handles
		return s
	}
	return out
}

// ParseNumber parses user-entered numeric text into a decimal
// Accepts Western and Arabic-Indic digits, surrounded by optional whitespace.
// Numbers with more than 40 significant digits or an exponent beyond ±40 are rejected.
func ParseNumber(s string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(NormalizeNumerals(s))
	if normalized == "" {
		return decimal.Zero, errEmptyNumber
	}
	if len(normalized) > maxNumberLength {
		return decimal.Zero, errNumberTooLarge
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp > maxNumberExponent || exp < -maxNumberExponent || d.NumDigits() > maxNumberDigits {
		return decimal.Zero, fmt.Errorf("%q: %w", normalized, errNumberTooLarge)
	}
	return d, nil
}
