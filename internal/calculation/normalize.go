package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
)

// Defaults applied by the normalizer for unanswered optional fields.
var (
	DefaultBudget          = decimal.NewFromInt(1000)
	DefaultClientsPerMonth = decimal.NewFromInt(20)
)

// Normalize maps raw wizard answers onto numeric fields, applying defaults
// for everything optional. It never fails: an unknown industry key yields the
// neutral profile (pass nil for profile to get it), an unresolvable budget
// answer falls back to the fixed default. Callers that need hard validation
// run it before this point.
func Normalize(raw domain.RawInput, profile *domain.IndustryProfile) domain.FormInput {
	if profile == nil {
		profile = domain.NeutralProfile(raw.Industry)
	}

	in := domain.FormInput{
		Industry:     raw.Industry,
		BusinessSize: raw.BusinessSize,
		MarketerType: raw.MarketerType,
		CurrentTools: raw.CurrentTools,
		TeamSize:     raw.TeamSize,
	}

	in.MarketingBudget = resolveBudget(raw, profile)

	if in.MarketerType == "" {
		in.MarketerType = domain.TierNone
	}
	if in.CurrentTools == nil {
		in.CurrentTools = []string{}
	}

	if raw.NewClientsPerMonth > 0 {
		in.NewClientsPerMonth = decimal.NewFromInt(int64(raw.NewClientsPerMonth))
	} else {
		in.NewClientsPerMonth = DefaultClientsPerMonth
	}

	if raw.AverageCheck > 0 {
		in.AverageCheck = decimal.NewFromFloat(raw.AverageCheck)
	} else {
		in.AverageCheck = profile.Calculations.AvgRevenuePerCustomer
	}

	return in
}

// resolveBudget turns the budget answer into a number: a known range label
// for the selected size resolves to its bucket value, a numeric answer is
// used as-is, anything else falls back to the default.
func resolveBudget(raw domain.RawInput, profile *domain.IndustryProfile) decimal.Decimal {
	if raw.MarketingBudget.Numeric {
		return raw.MarketingBudget.Amount
	}
	if raw.MarketingBudget.Label != "" {
		if v, ok := profile.BudgetValueForLabel(raw.BusinessSize, raw.MarketingBudget.Label); ok {
			return v
		}
	}
	return DefaultBudget
}
