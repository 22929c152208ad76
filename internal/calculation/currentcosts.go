package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
	"github.com/marketwise/savings-calculator/pkg/money"
)

// miscRate is the fixed "other costs" heuristic: 10% of the stated budget,
// independent of the category allocation.
var miscRate = decimal.NewFromFloat(0.10)

// CurrentCosts derives the customer's current monthly/annual marketing spend
// breakdown from normalized input and industry coefficients. Inputs are
// assumed pre-validated; unknown tool ids contribute nothing.
func CurrentCosts(in domain.FormInput, profile *domain.IndustryProfile, tools domain.ToolCatalog, tiers domain.MarketerTierCatalog) domain.CostBreakdown {
	mult := profile.SizeMultiplier(in.BusinessSize)

	marketer := money.RoundDollars(marketerBase(profile, tiers, in.MarketerType).Mul(mult))

	toolsCost := priceTools(in.CurrentTools, profile, tools, mult, decimal.Zero)

	advertising := money.RoundDollars(money.ClampNonNegative(
		in.MarketingBudget.Sub(marketer).Sub(toolsCost.Monthly)))

	misc := money.RoundDollars(in.MarketingBudget.Mul(miscRate))

	total := marketer.Add(toolsCost.Monthly).Add(advertising).Add(misc)

	return domain.CostBreakdown{
		Marketer:    domain.PairOf(marketer),
		Tools:       toolsCost,
		Advertising: domain.PairOf(advertising),
		Misc:        domain.PairOf(misc),
		Total:       domain.PairOf(total),
	}
}

// marketerBase returns the monthly salary for a tier before the size
// multiplier: the industry's own figure when it has one, the catalog
// fallback otherwise. Tier "none" and unknown tiers cost nothing.
func marketerBase(profile *domain.IndustryProfile, tiers domain.MarketerTierCatalog, tier string) decimal.Decimal {
	if s, ok := profile.Calculations.MarketerSalary[tier]; ok {
		return s
	}
	if t, ok := tiers[tier]; ok {
		return t.MonthlyCost
	}
	return decimal.Zero
}

// priceTools prices a tool set: basePrice * toolsMultiplier * sizeMultiplier
// per tool, discounted by the given rate, each term rounded before summing.
// Tool ids missing from the catalog are silently skipped.
func priceTools(ids []string, profile *domain.IndustryProfile, tools domain.ToolCatalog, sizeMult, discount decimal.Decimal) domain.ToolsCost {
	factor := decimal.NewFromInt(1).Sub(discount)
	total := decimal.Zero
	perTool := make([]domain.ToolCost, 0, len(ids))

	for _, id := range ids {
		entry, ok := tools[id]
		if !ok {
			continue
		}
		monthly := money.RoundDollars(
			entry.BasePrice.Mul(profile.Calculations.ToolsMultiplier).Mul(sizeMult).Mul(factor))
		perTool = append(perTool, domain.ToolCost{ID: id, Name: entry.Name, Monthly: monthly})
		total = total.Add(monthly)
	}

	return domain.ToolsCost{
		MoneyPair: domain.PairOf(total),
		PerTool:   perTool,
	}
}
