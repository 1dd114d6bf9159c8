// Package money holds the currency helpers shared by the ordering core.
// Amounts are exact decimals end to end; float64 never touches a price.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Times multiplies a unit price by a line quantity.
func Times(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Format renders an amount the way the marketplace displays prices:
// "$ 1.234,50" with dot grouping and comma decimals. Whole amounts drop
// the fraction entirely, fractions drop trailing zeros.
func Format(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	abs := amount.Abs().Round(2)

	intPart := abs.Truncate(0)
	fracPart := abs.Sub(intPart)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("$ ")
	b.WriteString(group(intPart.String()))

	if !fracPart.IsZero() {
		// "0.50" -> "50", "0.5" -> "5"
		frac := strings.TrimPrefix(fracPart.StringFixed(2), "0.")
		frac = strings.TrimRight(frac, "0")
		if frac != "" {
			b.WriteByte(',')
			b.WriteString(frac)
		}
	}
	return b.String()
}

// group inserts dot separators every three digits: "1234567" -> "1.234.567".
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
