package calculator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EqualShare divides total into count uniform shares.
// ok is false when count is not positive; callers must skip redistribution
// in that case rather than assign anything.
//
// There is no remainder handling: count shares of a total that does not divide
// evenly carry the division's representation error and need not sum back to
// total exactly.
func EqualShare(total decimal.Decimal, count int) (share decimal.Decimal, ok bool) {
	if count <= 0 {
		return decimal.Zero, false
	}
	return total.Div(decimal.NewFromInt(int64(count))), true
}

// Sum adds amounts. Decimal addition is exact, so the result does not depend
// on order and repeated calls over the same slice agree.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// ClampAmount returns a, or zero if a is negative.
func ClampAmount(a decimal.Decimal) decimal.Decimal {
	if a.IsNegative() {
		return decimal.Zero
	}
	return a
}

// ParseAmount reads user input as a non-negative amount. Non-numeric or empty
// input is zero, negative input is clamped to zero. A decimal comma is
// accepted.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(normalize(s))
	if err != nil {
		return decimal.Zero
	}
	return ClampAmount(d)
}

// ParseAmountStrict is ParseAmount without the fallback: it reports whether s
// held a number at all.
func ParseAmountStrict(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(normalize(s))
	if err != nil {
		return decimal.Zero, false
	}
	return ClampAmount(d), true
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}
