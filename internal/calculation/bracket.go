package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/tariff"
)

// ProgressiveFee applies a progressive bracket table to amount: each band
// charges its rate on the portion of the amount falling inside it, and the
// final band absorbs all remaining amount. The result is zero for a
// non-positive amount, monotone in the amount, and continuous across band
// boundaries (only the marginal rate changes, never a retroactive rate on
// prior bands).
func ProgressiveFee(amount decimal.Decimal, brackets []tariff.Bracket) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) || len(brackets) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	prev := decimal.Zero
	for i, b := range brackets {
		remaining := amount.Sub(prev)
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if i == len(brackets)-1 {
			total = total.Add(remaining.Mul(b.Rate))
			break
		}
		width := b.Limit.Sub(prev)
		slice := decimal.Min(remaining, width)
		total = total.Add(slice.Mul(b.Rate))
		prev = b.Limit
	}
	return total
}

// applyFloor enforces a statutory minimum: the result is never below
// minimum. The second return reports whether the floor fired.
func applyFloor(amount, minimum decimal.Decimal) (decimal.Decimal, bool) {
	if amount.LessThan(minimum) {
		return minimum, true
	}
	return amount, false
}

// applyCeiling enforces an upper bound, typically the underlying claim
// amount. The second return reports whether the cap fired. When both a
// floor and a ceiling apply to a fee, the floor runs first.
func applyCeiling(amount, cap decimal.Decimal) (decimal.Decimal, bool) {
	if amount.GreaterThan(cap) {
		return cap, true
	}
	return amount, false
}
