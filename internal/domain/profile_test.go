package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testProfile() *IndustryProfile {
	return &IndustryProfile{
		Key: "restaurant",
		SizeOptions: []SizeOption{
			{Value: "small", Multiplier: decimal.NewFromFloat(0.7)},
			{Value: "medium", Multiplier: decimal.NewFromInt(1)},
		},
		MarketingBudgetRanges: map[string][]BudgetRange{
			"medium": {
				{Range: "$1,000 - $3,000", Value: decimal.NewFromInt(2000), Effectiveness: decimal.NewFromFloat(0.7)},
			},
		},
		Calculations: Calculations{
			MarketerSalary: map[string]decimal.Decimal{
				TierFullTime: decimal.NewFromInt(1800),
			},
		},
	}
}

func TestSizeMultiplierFallback(t *testing.T) {
	p := testProfile()
	if !p.SizeMultiplier("small").Equal(decimal.NewFromFloat(0.7)) {
		t.Fatalf("small multiplier wrong")
	}
	if !p.SizeMultiplier("galactic").Equal(DefaultSizeMultiplier) {
		t.Fatalf("unknown size should fall back to default multiplier")
	}
}

func TestBudgetValueForLabel(t *testing.T) {
	p := testProfile()
	v, ok := p.BudgetValueForLabel("medium", "$1,000 - $3,000")
	if !ok || v.String() != "2000" {
		t.Fatalf("got %s/%v, want 2000/true", v, ok)
	}
	if _, ok := p.BudgetValueForLabel("small", "$1,000 - $3,000"); ok {
		t.Fatalf("label from another size should not resolve")
	}
}

func TestMarketerSalaryUnknownTier(t *testing.T) {
	p := testProfile()
	if !p.MarketerSalary("cmo").IsZero() {
		t.Fatalf("unknown tier should yield zero salary")
	}
}

func TestIndustryTableOrder(t *testing.T) {
	table := NewIndustryTable(
		&IndustryProfile{Key: "b"},
		&IndustryProfile{Key: "a"},
		&IndustryProfile{Key: "b"},
	)
	keys := table.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("keys = %v, want [b a] preserving first-seen order", keys)
	}
	if table.Len() != 2 {
		t.Fatalf("len = %d, want 2", table.Len())
	}
}

func TestNeutralProfile(t *testing.T) {
	p := NeutralProfile("mystery")
	if p.HasSize("medium") {
		t.Fatalf("neutral profile offers no sizes")
	}
	if !p.SizeMultiplier("medium").Equal(DefaultSizeMultiplier) {
		t.Fatalf("neutral profile multiplier should be 1")
	}
	if !p.Calculations.ToolsMultiplier.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("neutral tools multiplier should be 1")
	}
}
