// Package money provides whole-dollar rounding, guarded division and USD
// formatting helpers over shopspring decimals. All calculator output is
// rounded to whole dollars, so the helpers here round to zero places.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// RoundDollars rounds to the nearest whole dollar, half away from zero.
func RoundDollars(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Annualize converts a monthly amount to its yearly counterpart.
func Annualize(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// ClampNonNegative returns d, or zero when d is negative.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Percent computes round(num/den*100). When den is zero it returns fallback
// instead of propagating an undefined ratio.
func Percent(num, den, fallback decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return fallback
	}
	return RoundDollars(num.Div(den).Mul(hundred))
}

// SafeDiv divides num by den, returning fallback when den is zero.
func SafeDiv(num, den, fallback decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return fallback
	}
	return num.Div(den)
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// FormatUSD renders a whole-dollar amount as "$1,234" (or "-$1,234").
func FormatUSD(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := RoundDollars(d.Abs()).StringFixed(0)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
