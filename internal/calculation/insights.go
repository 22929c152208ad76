package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
	"github.com/marketwise/savings-calculator/pkg/money"
)

// Thresholds for the insight and recommendation rules.
var (
	highSavingsPct     = decimal.NewFromInt(30)
	highGrowthPct      = decimal.NewFromInt(25)
	longPaybackMonths  = 6
	lowBudgetShare     = decimal.NewFromFloat(0.5)
	highBudgetMultiple = decimal.NewFromInt(2)
	lowDigitalization  = decimal.NewFromFloat(0.6)
)

// GenerateAdvice maps numeric thresholds from the calculation onto canned
// insight and recommendation records. It is deterministic for identical
// inputs; recommendations come back sorted high > medium > low, stable
// within a priority class.
func GenerateAdvice(in domain.FormInput, profile *domain.IndustryProfile, current, offer domain.CostBreakdown, savings domain.Savings, roi domain.ROI) ([]domain.Insight, []domain.Recommendation) {
	insights := buildInsights(in, profile, savings, roi)
	recs := buildRecommendations(profile, savings, roi)

	sort.SliceStable(recs, func(i, j int) bool {
		return domain.PriorityRank(recs[i].Priority) < domain.PriorityRank(recs[j].Priority)
	})
	return insights, recs
}

func buildInsights(in domain.FormInput, profile *domain.IndustryProfile, savings domain.Savings, roi domain.ROI) []domain.Insight {
	var insights []domain.Insight
	b := profile.Benchmarks

	if b.AvgMarketingSpend.IsPositive() {
		if in.MarketingBudget.LessThan(b.AvgMarketingSpend.Mul(lowBudgetShare)) {
			insights = append(insights, domain.Insight{
				Type:  "budget_below_benchmark",
				Title: "Budget below industry average",
				Message: fmt.Sprintf("Your monthly budget of %s is under half the %s average of %s. Competitors at the benchmark level will out-reach you.",
					money.FormatUSD(in.MarketingBudget), profile.DisplayName, money.FormatUSD(b.AvgMarketingSpend)),
			})
		} else if in.MarketingBudget.GreaterThan(b.AvgMarketingSpend.Mul(highBudgetMultiple)) {
			insights = append(insights, domain.Insight{
				Type:  "budget_above_benchmark",
				Title: "Budget well above industry average",
				Message: fmt.Sprintf("Your monthly budget of %s is more than double the %s average of %s. At this spend level, allocation quality matters more than volume.",
					money.FormatUSD(in.MarketingBudget), profile.DisplayName, money.FormatUSD(b.AvgMarketingSpend)),
			})
		}
	}

	if savings.Yearly.IsPositive() {
		insights = append(insights, domain.Insight{
			Type:  "savings_potential",
			Title: "Savings potential identified",
			Message: fmt.Sprintf("Restructuring your spend frees up %s per year (%s%% of your current costs) without reducing advertising reach.",
				money.FormatUSD(savings.Yearly), savings.Percentage),
		})
	}

	if b.AvgROI.IsPositive() && roi.TotalROI.GreaterThan(b.AvgROI) {
		insights = append(insights, domain.Insight{
			Type:  "roi_above_benchmark",
			Title: "Projected ROI beats the industry benchmark",
			Message: fmt.Sprintf("The projected ROI of %s%% exceeds the %s benchmark of %s%%.",
				roi.TotalROI, profile.DisplayName, b.AvgROI),
		})
	}

	if b.DigitalizationLevel.IsPositive() && b.DigitalizationLevel.LessThan(lowDigitalization) {
		insights = append(insights, domain.Insight{
			Type:  "digitalization_opportunity",
			Title: "Low digitalization in your industry",
			Message: fmt.Sprintf("Only a minority of %s businesses run structured digital marketing. Moving early captures demand your competitors are leaving on the table.",
				profile.DisplayName),
		})
	}

	return insights
}

func buildRecommendations(profile *domain.IndustryProfile, savings domain.Savings, roi domain.ROI) []domain.Recommendation {
	var recs []domain.Recommendation

	if savings.Percentage.GreaterThan(highSavingsPct) {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    "cost_optimization",
			Title:       "Restructure your marketing costs",
			Description: fmt.Sprintf("Over %s%% of your current spend can be redirected. Start with the management and tooling line items.", highSavingsPct),
		})
	}

	recs = append(recs, domain.Recommendation{
		Priority:    domain.PriorityMedium,
		Category:    "tools_optimization",
		Title:       "Consolidate your tool stack",
		Description: "Replace overlapping single-purpose subscriptions with the recommended set; the bundled pricing is already reflected in the offer.",
	})

	if roi.RevenueGrowth.Percentage.GreaterThan(highGrowthPct) {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    "growth_opportunity",
			Title:       "Capture the projected revenue growth",
			Description: fmt.Sprintf("Professional management projects a %s%% revenue uplift. Prioritize the channels with the shortest feedback loop first.", roi.RevenueGrowth.Percentage),
		})
	}

	if profile.CommonMistakes != "" {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    "industry_specific",
			Title:       fmt.Sprintf("Avoid the usual %s mistakes", profile.DisplayName),
			Description: profile.CommonMistakes,
		})
	}

	if roi.PaybackMonths > longPaybackMonths {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    "roi_optimization",
			Title:       "Shorten the payback period",
			Description: fmt.Sprintf("The current projection pays back in %d months. Shifting budget toward the highest-converting channel shortens it.", roi.PaybackMonths),
		})
	}

	return recs
}
