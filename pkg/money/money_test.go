package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundDollars(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1799.5, 1800},
		{-2.5, -3},
		{299.999, 300},
	}
	for _, c := range cases {
		got := RoundDollars(decimal.NewFromFloat(c.in))
		if !got.Equal(decimal.NewFromInt(c.want)) {
			t.Errorf("RoundDollars(%v) = %s, want %d", c.in, got, c.want)
		}
	}
}

func TestPercentGuardsZeroDenominator(t *testing.T) {
	fallback := decimal.NewFromInt(0)
	got := Percent(decimal.NewFromInt(500), decimal.Zero, fallback)
	if !got.Equal(fallback) {
		t.Fatalf("expected fallback 0, got %s", got)
	}

	got = Percent(decimal.NewFromInt(500), decimal.NewFromInt(2000), fallback)
	if !got.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected 25, got %s", got)
	}
}

func TestSafeDiv(t *testing.T) {
	fallback := decimal.NewFromInt(12)
	if got := SafeDiv(decimal.NewFromInt(10), decimal.Zero, fallback); !got.Equal(fallback) {
		t.Fatalf("expected fallback, got %s", got)
	}
	if got := SafeDiv(decimal.NewFromInt(10), decimal.NewFromInt(4), fallback); !got.Equal(decimal.NewFromFloat(2.5)) {
		t.Fatalf("expected 2.5, got %s", got)
	}
}

func TestClampNonNegative(t *testing.T) {
	if got := ClampNonNegative(decimal.NewFromInt(-400)); !got.IsZero() {
		t.Fatalf("expected 0, got %s", got)
	}
	if got := ClampNonNegative(decimal.NewFromInt(400)); !got.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected 400, got %s", got)
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{400, "$400"},
		{1800, "$1,800"},
		{1234567, "$1,234,567"},
		{-3000, "-$3,000"},
	}
	for _, c := range cases {
		if got := FormatUSD(decimal.NewFromFloat(c.in)); got != c.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
