// Package money provides parsing and display formatting for decimal amounts.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// symbols maps currency codes to display symbols. Codes without a symbol are
// rendered as a trailing code.
var symbols = map[string]string{
	"PHP": "₱",
	"USD": "$",
	"EUR": "€",
}

// Format renders an amount with two decimal places and comma grouping,
// prefixed with the currency symbol when one is known: ₱1,234.50.
func Format(d decimal.Decimal, currency string) string {
	if symbol, ok := symbols[strings.ToUpper(currency)]; ok {
		return symbol + group(d)
	}
	return fmt.Sprintf("%s %s", group(d), strings.ToUpper(currency))
}

// Parse converts user input into a decimal amount. A leading currency symbol
// and grouping commas are tolerated.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	for _, symbol := range symbols {
		s = strings.TrimPrefix(s, symbol)
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// group renders d to two decimal places with thousands separators.
func group(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
