package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultSizeMultiplier is applied whenever a selected business size has no
// entry in the industry's size options.
var DefaultSizeMultiplier = decimal.NewFromInt(1)

// SizeOption is one business-size bucket offered by an industry. Multiplier
// scales every size-dependent cost term.
type SizeOption struct {
	Value          string          `json:"value" yaml:"value"`
	Label          string          `json:"label" yaml:"label"`
	Multiplier     decimal.Decimal `json:"multiplier" yaml:"-"`
	AvgRevenue     decimal.Decimal `json:"avg_revenue" yaml:"-"`
	EmployeesCount string          `json:"employees_count" yaml:"employees_count"`
}

// BudgetRange maps a budget range label onto a representative numeric value
// and an effectiveness weight in [0,1].
type BudgetRange struct {
	Range         string          `json:"range"`
	Value         decimal.Decimal `json:"value"`
	Effectiveness decimal.Decimal `json:"effectiveness"`
}

// CPCRange is the typical cost-per-click band for an industry.
type CPCRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Calculations holds the per-industry cost coefficients.
type Calculations struct {
	MarketerSalary        map[string]decimal.Decimal `json:"marketer_salary"`
	ToolsMultiplier       decimal.Decimal            `json:"tools_multiplier"`
	AvgRevenuePerCustomer decimal.Decimal            `json:"avg_revenue_per_customer"`
	SeasonalityFactor     decimal.Decimal            `json:"seasonality_factor"`
	CompetitiveIndex      decimal.Decimal            `json:"competitive_index"`
	RepeatCustomerRate    decimal.Decimal            `json:"repeat_customer_rate"`
	ConversionRate        decimal.Decimal            `json:"conversion_rate"`
	CPCRange              CPCRange                   `json:"cpc_range"`
	IndustryGrowthRate    decimal.Decimal            `json:"industry_growth_rate"`
}

// Benchmarks are reference constants used only for comparison and insight
// text. They never feed back into the cost math.
type Benchmarks struct {
	AvgMarketingSpend       decimal.Decimal `json:"avg_marketing_spend"`
	AvgROI                  decimal.Decimal `json:"avg_roi"`
	DigitalizationLevel     decimal.Decimal `json:"digitalization_level"`
	CustomerAcquisitionCost decimal.Decimal `json:"customer_acquisition_cost"`
	AvgOrderValue           decimal.Decimal `json:"avg_order_value"`
	RepeatVisitRate         decimal.Decimal `json:"repeat_visit_rate"`
}

// IndustryProfile is the static configuration bundle for one business
// vertical: presentation metadata, size options, budget buckets, cost
// coefficients and benchmark constants.
type IndustryProfile struct {
	Key                   string                   `json:"key"`
	DisplayName           string                   `json:"display_name"`
	Icon                  string                   `json:"icon"`
	Description           string                   `json:"description"`
	SizeOptions           []SizeOption             `json:"size_options"`
	MarketingBudgetRanges map[string][]BudgetRange `json:"marketing_budget_ranges"`
	Calculations          Calculations             `json:"calculations"`
	Benchmarks            Benchmarks               `json:"benchmarks"`
	CommonMistakes        string                   `json:"common_mistakes,omitempty"`
}

// SizeOption returns the size bucket for the given value.
func (p *IndustryProfile) SizeOption(value string) (SizeOption, bool) {
	for _, opt := range p.SizeOptions {
		if opt.Value == value {
			return opt, true
		}
	}
	return SizeOption{}, false
}

// HasSize reports whether the industry offers the given business size.
func (p *IndustryProfile) HasSize(value string) bool {
	_, ok := p.SizeOption(value)
	return ok
}

// SizeMultiplier returns the multiplier for the given business size, falling
// back to the default of 1.0 when the size is not offered.
func (p *IndustryProfile) SizeMultiplier(value string) decimal.Decimal {
	if opt, ok := p.SizeOption(value); ok {
		return opt.Multiplier
	}
	return DefaultSizeMultiplier
}

// BudgetRangesFor returns the budget buckets for a business size.
func (p *IndustryProfile) BudgetRangesFor(size string) []BudgetRange {
	return p.MarketingBudgetRanges[size]
}

// BudgetValueForLabel resolves a budget range label for the given size onto
// its representative numeric value.
func (p *IndustryProfile) BudgetValueForLabel(size, label string) (decimal.Decimal, bool) {
	for _, r := range p.MarketingBudgetRanges[size] {
		if r.Range == label {
			return r.Value, true
		}
	}
	return decimal.Zero, false
}

// MarketerSalary returns the monthly salary coefficient for a marketer tier,
// before the size multiplier. Unknown tiers yield zero.
func (p *IndustryProfile) MarketerSalary(tier string) decimal.Decimal {
	if s, ok := p.Calculations.MarketerSalary[tier]; ok {
		return s
	}
	return decimal.Zero
}

// NeutralProfile builds a placeholder profile for an unknown industry key:
// multiplier 1.0 for every size, no budget buckets, zeroed coefficients. The
// normalizer uses it so that lower layers never fail on an unknown key; the
// engine rejects unknown keys before ever reaching this point.
func NeutralProfile(key string) *IndustryProfile {
	return &IndustryProfile{
		Key:         key,
		DisplayName: key,
		SizeOptions: nil,
		Calculations: Calculations{
			MarketerSalary:  map[string]decimal.Decimal{},
			ToolsMultiplier: decimal.NewFromInt(1),
		},
	}
}

// IndustryTable is the full industry configuration table, keyed by industry
// id. It is built once at process start and never mutated.
type IndustryTable struct {
	profiles map[string]*IndustryProfile
	order    []string
}

// NewIndustryTable builds a table from profiles, preserving their order.
func NewIndustryTable(profiles ...*IndustryProfile) *IndustryTable {
	t := &IndustryTable{profiles: make(map[string]*IndustryProfile, len(profiles))}
	for _, p := range profiles {
		if _, exists := t.profiles[p.Key]; !exists {
			t.order = append(t.order, p.Key)
		}
		t.profiles[p.Key] = p
	}
	return t
}

// Profile returns the profile for an industry key.
func (t *IndustryTable) Profile(key string) (*IndustryProfile, bool) {
	p, ok := t.profiles[key]
	return p, ok
}

// Keys returns the industry keys in table order.
func (t *IndustryTable) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

// Len returns the number of industries in the table.
func (t *IndustryTable) Len() int {
	return len(t.profiles)
}
