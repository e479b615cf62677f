package parser

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// rupee is the symbol HDFC, Axis and IDFC totals are prefixed with.
var rupee = money.GetCurrency(money.INR).Grapheme

// CleanAmount trims an amount string captured from a statement. Currency
// symbols and thousands separators are left alone; grammars strip what they
// need through their capture groups. Blank input returns nil.
func CleanAmount(s string) *string {
	return trimmed(s)
}

// NormalizeDate trims a date string. No calendar conversion is done because
// every issuer prints dates differently. Blank input returns nil.
func NormalizeDate(s string) *string {
	return trimmed(s)
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// withRupee cleans an amount and prefixes the rupee symbol.
func withRupee(s string) *string {
	amt := CleanAmount(s)
	if amt == nil {
		return nil
	}
	v := rupee + *amt
	return &v
}

// negate flips the sign of a cleaned amount string. Amounts that already
// carry a leading minus become positive.
func negate(amount string) string {
	if strings.HasPrefix(amount, "-") {
		return amount[1:]
	}
	return "-" + amount
}
