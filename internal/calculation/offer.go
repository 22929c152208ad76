package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
	"github.com/marketwise/savings-calculator/pkg/money"
)

// DefaultToolsDiscount is the flat tools discount in the reference offer.
var DefaultToolsDiscount = decimal.NewFromFloat(0.35)

// OurOffer derives the cost of the proposed package: a zero management fee,
// the recommended tool set priced with the discount applied, and the same ad
// budget minus tools. It is fully independent of the current-costs result.
func OurOffer(in domain.FormInput, profile *domain.IndustryProfile, tools domain.ToolCatalog, discount decimal.Decimal) domain.CostBreakdown {
	mult := profile.SizeMultiplier(in.BusinessSize)

	recommended := RecommendedTools(in.Industry, in.BusinessSize, profile)
	toolsCost := priceTools(recommended, profile, tools, mult, discount)

	// The management fee is zero, so it drops out of the subtraction.
	advertising := money.RoundDollars(money.ClampNonNegative(
		in.MarketingBudget.Sub(toolsCost.Monthly)))

	total := toolsCost.Monthly.Add(advertising)

	return domain.CostBreakdown{
		Marketer:    domain.PairOf(decimal.Zero), // flat management fee
		Tools:       toolsCost,
		Advertising: domain.PairOf(advertising),
		Misc:        domain.PairOf(decimal.Zero),
		Total:       domain.PairOf(total),
	}
}
