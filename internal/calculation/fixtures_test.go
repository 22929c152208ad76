package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/config"
	"github.com/marketwise/savings-calculator/internal/domain"
)

func testTable() *domain.IndustryTable {
	return config.DefaultIndustryTable()
}

func testTools() domain.ToolCatalog {
	return config.DefaultToolCatalog()
}

func testTiers() domain.MarketerTierCatalog {
	return config.DefaultMarketerTiers()
}

func profileFor(t *testing.T, key string) *domain.IndustryProfile {
	t.Helper()
	p, ok := testTable().Profile(key)
	if !ok {
		t.Fatalf("built-in table has no %q profile", key)
	}
	return p
}

// scenarioARaw is the reference input: restaurant, medium, $3000 budget,
// full-time marketer, facebook_ads + analytics.
func scenarioARaw() domain.RawInput {
	return domain.RawInput{
		Industry:        "restaurant",
		BusinessSize:    "medium",
		MarketingBudget: domain.BudgetFromAmount(3000),
		MarketerType:    domain.TierFullTime,
		CurrentTools:    []string{"facebook_ads", "analytics"},
	}
}

func scenarioAForm(t *testing.T) domain.FormInput {
	t.Helper()
	return Normalize(scenarioARaw(), profileFor(t, "restaurant"))
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func assertEqualDec(t *testing.T, want, got decimal.Decimal, label string) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}
