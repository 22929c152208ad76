package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
)

func synthesizeScenarioA(t *testing.T, budget decimal.Decimal) (domain.Savings, domain.ROI) {
	t.Helper()
	profile := profileFor(t, "restaurant")
	in := scenarioAForm(t)
	in.MarketingBudget = budget

	current := CurrentCosts(in, profile, testTools(), testTiers())
	offer := OurOffer(in, profile, testTools(), DefaultToolsDiscount)
	return Synthesize(current, offer, in, profile)
}

func TestSynthesizeReferenceScenario(t *testing.T) {
	savings, roi := synthesizeScenarioA(t, dec(3000))

	// current total 3300, offer total 3000.
	assertEqualDec(t, dec(300), savings.Monthly, "savings.monthly")
	assertEqualDec(t, dec(3600), savings.Yearly, "savings.yearly")
	assertEqualDec(t, dec(9), savings.Percentage, "savings.percentage")

	// Raw growth product for restaurant runs past the cap, so the uplift is
	// the capped 60%. Default 20 clients at a $45 check give $900 revenue.
	assertEqualDec(t, dec(60), roi.RevenueGrowth.Percentage, "growth percentage")
	assertEqualDec(t, dec(540), roi.RevenueGrowth.Monthly, "growth monthly")
	assertEqualDec(t, dec(6480), roi.RevenueGrowth.Yearly, "growth yearly")

	// (6480 + 3600) / 36000 * 100
	assertEqualDec(t, dec(28), roi.TotalROI, "total ROI")

	// ceil(3000 / (540 + 300))
	if roi.PaybackMonths != 4 {
		t.Errorf("payback = %d, want 4", roi.PaybackMonths)
	}
}

// Zero budget: every investment ratio resolves to its defined fallback.
func TestSynthesizeZeroBudgetFallbacks(t *testing.T) {
	savings, roi := synthesizeScenarioA(t, decimal.Zero)

	assertEqualDec(t, dec(0), savings.Percentage, "savings.percentage fallback")
	assertEqualDec(t, dec(0), roi.TotalROI, "total ROI fallback")
	if roi.PaybackMonths != 12 {
		t.Errorf("payback fallback = %d, want 12", roi.PaybackMonths)
	}
}

func TestGrowthMultiplierCapped(t *testing.T) {
	// Extreme coefficients: huge growth rate, low digitalization.
	profile := profileFor(t, "restaurant")
	extreme := *profile
	extreme.Calculations.IndustryGrowthRate = dec(5.0)
	extreme.Benchmarks.DigitalizationLevel = dec(0.1)

	m := growthMultiplier(&extreme)
	if m.GreaterThan(growthMultiplierCap) {
		t.Fatalf("multiplier %s exceeds cap %s", m, growthMultiplierCap)
	}
	assertEqualDec(t, growthMultiplierCap, m, "capped multiplier")
}

func TestGrowthMultiplierCapBindsForBaseFactors(t *testing.T) {
	// The fixed factors alone multiply to 1.61, already past the 1.6 cap, so
	// the cap binds for every profile in the built-in table.
	table := testTable()
	for _, key := range table.Keys() {
		p, _ := table.Profile(key)
		assertEqualDec(t, growthMultiplierCap, growthMultiplier(p), "multiplier for "+key)
	}
}

func TestPaybackFallbackOnNonPositiveBenefit(t *testing.T) {
	if got := paybackMonths(dec(36000), decimal.Zero); got != fallbackPaybackMonths {
		t.Errorf("payback(benefit=0) = %d, want %d", got, fallbackPaybackMonths)
	}
	if got := paybackMonths(dec(36000), dec(-500)); got != fallbackPaybackMonths {
		t.Errorf("payback(benefit<0) = %d, want %d", got, fallbackPaybackMonths)
	}
}

func TestPaybackCeiling(t *testing.T) {
	// 36000/12 = 3000 monthly investment; benefit 999 -> ceil(3.003) = 4.
	if got := paybackMonths(dec(36000), dec(999)); got != 4 {
		t.Errorf("payback = %d, want 4", got)
	}
	if got := paybackMonths(dec(36000), dec(3000)); got != 1 {
		t.Errorf("payback = %d, want 1", got)
	}
}

// Savings grow (or hold) as the discount rises, everything else fixed.
func TestSavingsMonotoneInDiscount(t *testing.T) {
	profile := profileFor(t, "restaurant")
	in := scenarioAForm(t)
	current := CurrentCosts(in, profile, testTools(), testTiers())

	prev := decimal.NewFromInt(-1 << 30)
	for _, discount := range []float64{0.0, 0.2, 0.35, 0.5, 0.8} {
		offer := OurOffer(in, profile, testTools(), dec(discount))
		savings, _ := Synthesize(current, offer, in, profile)
		if savings.Monthly.LessThan(prev) {
			t.Fatalf("savings decreased at discount %v: %s < %s", discount, savings.Monthly, prev)
		}
		prev = savings.Monthly
	}
}
