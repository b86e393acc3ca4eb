package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Category is the display category of an investment, derived from its name
type Category string

const (
	CategoryGold       Category = "GOLD"
	CategorySilver     Category = "SILVER"
	CategoryStocks     Category = "STOCKS"
	CategoryRealEstate Category = "REAL_ESTATE"
	CategoryCrypto     Category = "CRYPTO"
	CategoryVehicles   Category = "VEHICLES"
	CategoryBank       Category = "BANK"
	CategoryOther      Category = "OTHER"
)

type keywordGroup struct {
	category Category
	keywords []string
}

// keywordGroups is checked in order; the first group with a matching keyword wins.
var keywordGroups = []keywordGroup{
	{CategoryGold, []string{"ذهب", "gold"}},
	{CategorySilver, []string{"فضة", "silver"}},
	{CategoryStocks, []string{"أسهم", "سهم", "بورصة", "stock", "shares"}},
	{CategoryRealEstate, []string{"عقار", "شقة", "أرض", "real estate", "apartment", "property"}},
	{CategoryCrypto, []string{"عملات", "بيتكوين", "crypto", "bitcoin"}},
	{CategoryVehicles, []string{"سيارة", "car", "vehicle"}},
	{CategoryBank, []string{"شهادة", "بنك", "وديعة", "bank", "certificate", "deposit"}},
}

// Categories lists every category in classification order, OTHER last
func Categories() []Category {
	out := make([]Category, 0, len(keywordGroups)+1)
	for _, g := range keywordGroups {
		out = append(out, g.category)
	}
	return append(out, CategoryOther)
}

// Classify maps a free-form investment name to a category
// Matching is case-insensitive. Arabic keywords match anywhere in the name, since
// Arabic attaches prefixes such as ال to the word; other keywords must start a word,
// so "car" matches "Cars" but not "scarf". Names matching nothing are OTHER.
func Classify(name string) Category {
	// A Caser is stateful and must not be shared between goroutines
	folder := cases.Fold()
	folded := folder.String(name)

	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if containsKeyword(folded, folder.String(kw)) {
				return g.category
			}
		}
	}
	return CategoryOther
}

func containsKeyword(s, kw string) bool {
	first, _ := utf8.DecodeRuneInString(kw)
	if unicode.Is(unicode.Arabic, first) {
		return strings.Contains(s, kw)
	}

	for offset := 0; offset <= len(s); {
		i := strings.Index(s[offset:], kw)
		if i < 0 {
			return false
		}
		i += offset
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		if i == 0 || !(unicode.IsLetter(prev) || unicode.IsDigit(prev)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		offset = i + size
	}
	return false
}
