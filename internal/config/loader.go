package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/marketwise/savings-calculator/internal/domain"
)

// Wire types for the YAML industry table. Monetary values come in as plain
// numbers and are converted to decimals after parsing; yaml.v3 does not
// consult encoding.TextUnmarshaler, so decimal fields cannot be decoded
// directly.

type industryFileWire struct {
	Industries []industryWire `yaml:"industries"`
}

type industryWire struct {
	Key            string                       `yaml:"key"`
	DisplayName    string                       `yaml:"display_name"`
	Icon           string                       `yaml:"icon"`
	Description    string                       `yaml:"description"`
	Sizes          []sizeWire                   `yaml:"sizes"`
	BudgetRanges   map[string][]budgetRangeWire `yaml:"budget_ranges"`
	Calculations   calculationsWire             `yaml:"calculations"`
	Benchmarks     benchmarksWire               `yaml:"benchmarks"`
	CommonMistakes string                       `yaml:"common_mistakes"`
}

type sizeWire struct {
	Value          string  `yaml:"value"`
	Label          string  `yaml:"label"`
	Multiplier     float64 `yaml:"multiplier"`
	AvgRevenue     float64 `yaml:"avg_revenue"`
	EmployeesCount string  `yaml:"employees_count"`
}

type budgetRangeWire struct {
	Range         string  `yaml:"range"`
	Value         float64 `yaml:"value"`
	Effectiveness float64 `yaml:"effectiveness"`
}

type calculationsWire struct {
	MarketerSalary        map[string]float64 `yaml:"marketer_salary"`
	ToolsMultiplier       float64            `yaml:"tools_multiplier"`
	AvgRevenuePerCustomer float64            `yaml:"avg_revenue_per_customer"`
	SeasonalityFactor     float64            `yaml:"seasonality_factor"`
	CompetitiveIndex      float64            `yaml:"competitive_index"`
	RepeatCustomerRate    float64            `yaml:"repeat_customer_rate"`
	ConversionRate        float64            `yaml:"conversion_rate"`
	CPCMin                float64            `yaml:"cpc_min"`
	CPCMax                float64            `yaml:"cpc_max"`
	IndustryGrowthRate    float64            `yaml:"industry_growth_rate"`
}

type benchmarksWire struct {
	AvgMarketingSpend       float64 `yaml:"avg_marketing_spend"`
	AvgROI                  float64 `yaml:"avg_roi"`
	DigitalizationLevel     float64 `yaml:"digitalization_level"`
	CustomerAcquisitionCost float64 `yaml:"customer_acquisition_cost"`
	AvgOrderValue           float64 `yaml:"avg_order_value"`
	RepeatVisitRate         float64 `yaml:"repeat_visit_rate"`
}

// LoadIndustryTable reads an industry table from a YAML file, validates it
// and converts it into the domain representation. The loaded table replaces
// the compiled-in default wholesale.
func LoadIndustryTable(filename string) (*domain.IndustryTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var wire industryFileWire
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(wire.Industries) == 0 {
		return nil, fmt.Errorf("industry table %s defines no industries", filename)
	}

	profiles := make([]*domain.IndustryProfile, 0, len(wire.Industries))
	for i, iw := range wire.Industries {
		p, err := iw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("industry %d (%s): %w", i, iw.Key, err)
		}
		profiles = append(profiles, p)
	}

	table := domain.NewIndustryTable(profiles...)
	if err := ValidateIndustryTable(table); err != nil {
		return nil, fmt.Errorf("industry table validation failed: %w", err)
	}
	return table, nil
}

func (iw industryWire) toDomain() (*domain.IndustryProfile, error) {
	if iw.Key == "" {
		return nil, fmt.Errorf("industry key is required")
	}

	sizes := make([]domain.SizeOption, 0, len(iw.Sizes))
	for _, sw := range iw.Sizes {
		sizes = append(sizes, domain.SizeOption{
			Value:          sw.Value,
			Label:          sw.Label,
			Multiplier:     decimal.NewFromFloat(sw.Multiplier),
			AvgRevenue:     decimal.NewFromFloat(sw.AvgRevenue),
			EmployeesCount: sw.EmployeesCount,
		})
	}

	ranges := make(map[string][]domain.BudgetRange, len(iw.BudgetRanges))
	for sizeValue, rws := range iw.BudgetRanges {
		buckets := make([]domain.BudgetRange, 0, len(rws))
		for _, rw := range rws {
			buckets = append(buckets, domain.BudgetRange{
				Range:         rw.Range,
				Value:         decimal.NewFromFloat(rw.Value),
				Effectiveness: decimal.NewFromFloat(rw.Effectiveness),
			})
		}
		ranges[sizeValue] = buckets
	}

	salaries := make(map[string]decimal.Decimal, len(iw.Calculations.MarketerSalary))
	for tier, v := range iw.Calculations.MarketerSalary {
		salaries[tier] = decimal.NewFromFloat(v)
	}

	return &domain.IndustryProfile{
		Key:                   iw.Key,
		DisplayName:           iw.DisplayName,
		Icon:                  iw.Icon,
		Description:           iw.Description,
		SizeOptions:           sizes,
		MarketingBudgetRanges: ranges,
		Calculations: domain.Calculations{
			MarketerSalary:        salaries,
			ToolsMultiplier:       decimal.NewFromFloat(iw.Calculations.ToolsMultiplier),
			AvgRevenuePerCustomer: decimal.NewFromFloat(iw.Calculations.AvgRevenuePerCustomer),
			SeasonalityFactor:     decimal.NewFromFloat(iw.Calculations.SeasonalityFactor),
			CompetitiveIndex:      decimal.NewFromFloat(iw.Calculations.CompetitiveIndex),
			RepeatCustomerRate:    decimal.NewFromFloat(iw.Calculations.RepeatCustomerRate),
			ConversionRate:        decimal.NewFromFloat(iw.Calculations.ConversionRate),
			CPCRange: domain.CPCRange{
				Min: decimal.NewFromFloat(iw.Calculations.CPCMin),
				Max: decimal.NewFromFloat(iw.Calculations.CPCMax),
			},
			IndustryGrowthRate: decimal.NewFromFloat(iw.Calculations.IndustryGrowthRate),
		},
		Benchmarks: domain.Benchmarks{
			AvgMarketingSpend:       decimal.NewFromFloat(iw.Benchmarks.AvgMarketingSpend),
			AvgROI:                  decimal.NewFromFloat(iw.Benchmarks.AvgROI),
			DigitalizationLevel:     decimal.NewFromFloat(iw.Benchmarks.DigitalizationLevel),
			CustomerAcquisitionCost: decimal.NewFromFloat(iw.Benchmarks.CustomerAcquisitionCost),
			AvgOrderValue:           decimal.NewFromFloat(iw.Benchmarks.AvgOrderValue),
			RepeatVisitRate:         decimal.NewFromFloat(iw.Benchmarks.RepeatVisitRate),
		},
		CommonMistakes: iw.CommonMistakes,
	}, nil
}

// ValidateIndustryTable checks the structural invariants every profile must
// hold: at least one size, positive multipliers, budget buckets for every
// size value, effectiveness weights inside [0,1] and a non-negative salary
// table. The compiled-in table is validated by the package tests with the
// same function.
func ValidateIndustryTable(table *domain.IndustryTable) error {
	one := decimal.NewFromInt(1)
	for _, key := range table.Keys() {
		p, _ := table.Profile(key)
		if len(p.SizeOptions) == 0 {
			return fmt.Errorf("industry %s: no size options", key)
		}
		for _, opt := range p.SizeOptions {
			if opt.Value == "" {
				return fmt.Errorf("industry %s: size option with empty value", key)
			}
			if !opt.Multiplier.IsPositive() {
				return fmt.Errorf("industry %s size %s: multiplier must be positive", key, opt.Value)
			}
			// Every selectable size needs budget buckets.
			buckets := p.BudgetRangesFor(opt.Value)
			if len(buckets) == 0 {
				return fmt.Errorf("industry %s size %s: no budget ranges", key, opt.Value)
			}
			for _, b := range buckets {
				if b.Value.IsNegative() {
					return fmt.Errorf("industry %s size %s range %q: negative value", key, opt.Value, b.Range)
				}
				if b.Effectiveness.IsNegative() || b.Effectiveness.GreaterThan(one) {
					return fmt.Errorf("industry %s size %s range %q: effectiveness must be in [0,1]", key, opt.Value, b.Range)
				}
			}
		}
		if !p.Calculations.ToolsMultiplier.IsPositive() {
			return fmt.Errorf("industry %s: tools multiplier must be positive", key)
		}
		for tier, salary := range p.Calculations.MarketerSalary {
			if salary.IsNegative() {
				return fmt.Errorf("industry %s: negative salary for tier %s", key, tier)
			}
		}
	}
	return nil
}
