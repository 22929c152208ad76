package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
	"github.com/marketwise/savings-calculator/pkg/money"
)

// Revenue growth factors. The projected uplift from professional management
// is the product of the independent factors below, capped so projections
// stay credible no matter how aggressive the industry coefficients are.
var (
	professionalManagementFactor = decimal.NewFromFloat(1.25)
	betterTargetingFactor        = decimal.NewFromFloat(1.15)
	optimizationFactor           = decimal.NewFromFloat(1.12)

	lowDigitalizationBonus  = decimal.NewFromFloat(1.2)
	highDigitalizationBonus = decimal.NewFromFloat(1.1)
	digitalizationThreshold = decimal.NewFromFloat(0.7)

	growthMultiplierCap = decimal.NewFromFloat(1.6)

	// fallbackPaybackMonths applies whenever the monthly benefit is not
	// positive and a real payback period is undefined.
	fallbackPaybackMonths = 12
)

// Synthesize diffs the two cost structures and derives percentage savings,
// projected revenue growth, ROI and the payback period. Every division
// guards a zero denominator with a defined fallback.
func Synthesize(current, offer domain.CostBreakdown, in domain.FormInput, profile *domain.IndustryProfile) (domain.Savings, domain.ROI) {
	// A zero budget makes every investment ratio degenerate; all of them
	// resolve to their fallbacks rather than a misleading figure.
	zeroBudget := in.MarketingBudget.IsZero()

	savingsMonthly := current.Total.Monthly.Sub(offer.Total.Monthly)
	savings := domain.Savings{
		Monthly: savingsMonthly,
		Yearly:  money.Annualize(savingsMonthly),
	}
	if !zeroBudget {
		savings.Percentage = money.Percent(savingsMonthly, current.Total.Monthly, decimal.Zero)
	}

	multiplier := growthMultiplier(profile)
	uplift := multiplier.Sub(decimal.NewFromInt(1))

	currentRevenueMonthly := in.NewClientsPerMonth.Mul(in.AverageCheck)
	growthMonthly := money.RoundDollars(currentRevenueMonthly.Mul(uplift))

	growth := domain.RevenueGrowth{
		Monthly:    growthMonthly,
		Yearly:     money.Annualize(growthMonthly),
		Percentage: money.RoundDollars(uplift.Mul(decimal.NewFromInt(100))),
	}

	yearlyInvestment := money.Annualize(in.MarketingBudget)
	roi := domain.ROI{
		TotalROI:      money.Percent(growth.Yearly.Add(savings.Yearly), yearlyInvestment, decimal.Zero),
		PaybackMonths: fallbackPaybackMonths,
		RevenueGrowth: growth,
	}
	if !zeroBudget {
		roi.PaybackMonths = paybackMonths(yearlyInvestment, growth.Monthly.Add(savings.Monthly))
	}

	return savings, roi
}

// growthMultiplier is the product of the five growth factors, capped.
func growthMultiplier(profile *domain.IndustryProfile) decimal.Decimal {
	digitalBonus := highDigitalizationBonus
	if profile.Benchmarks.DigitalizationLevel.LessThan(digitalizationThreshold) {
		digitalBonus = lowDigitalizationBonus
	}

	m := professionalManagementFactor.
		Mul(betterTargetingFactor).
		Mul(optimizationFactor).
		Mul(decimal.NewFromInt(1).Add(profile.Calculations.IndustryGrowthRate)).
		Mul(digitalBonus)

	return money.Min(m, growthMultiplierCap)
}

// paybackMonths is ceil(yearlyInvestment / 12 / monthlyBenefit), with the
// fixed fallback when the benefit is not positive.
func paybackMonths(yearlyInvestment, monthlyBenefit decimal.Decimal) int {
	if !monthlyBenefit.IsPositive() {
		return fallbackPaybackMonths
	}
	months := yearlyInvestment.Div(decimal.NewFromInt(12)).Div(monthlyBenefit).Ceil()
	return int(months.IntPart())
}
