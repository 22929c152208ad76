package config

import (
	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
)

// Compact constructors for the built-in table below.

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func size(value, label string, mult, avgRevenue float64, employees string) domain.SizeOption {
	return domain.SizeOption{
		Value:          value,
		Label:          label,
		Multiplier:     d(mult),
		AvgRevenue:     d(avgRevenue),
		EmployeesCount: employees,
	}
}

func rng(label string, value, effectiveness float64) domain.BudgetRange {
	return domain.BudgetRange{Range: label, Value: d(value), Effectiveness: d(effectiveness)}
}

func salaries(partTime, fullTime, senior, team float64) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		domain.TierNone:     decimal.Zero,
		domain.TierPartTime: d(partTime),
		domain.TierFullTime: d(fullTime),
		domain.TierSenior:   d(senior),
		domain.TierTeam:     d(team),
	}
}

// DefaultIndustryTable returns the compiled-in industry configuration table.
// A YAML file loaded through LoadIndustryTable replaces it wholesale.
func DefaultIndustryTable() *domain.IndustryTable {
	return domain.NewIndustryTable(
		restaurantProfile(),
		retailProfile(),
		ecommerceProfile(),
		beautyProfile(),
		fitnessProfile(),
		autoServiceProfile(),
	)
}

func restaurantProfile() *domain.IndustryProfile {
	return &domain.IndustryProfile{
		Key:         "restaurant",
		DisplayName: "Restaurant & Cafe",
		Icon:        "🍽️",
		Description: "Restaurants, cafes, bars and food delivery",
		SizeOptions: []domain.SizeOption{
			size("small", "Single location, up to 30 seats", 0.7, 25000, "1-10"),
			size("medium", "Established location, 30-100 seats", 1.0, 65000, "11-30"),
			size("large", "Multiple locations or 100+ seats", 1.6, 180000, "31-100"),
		},
		MarketingBudgetRanges: map[string][]domain.BudgetRange{
			"small": {
				rng("under $500", 300, 0.50),
				rng("$500 - $1,500", 1000, 0.70),
				rng("over $1,500", 2200, 0.85),
			},
			"medium": {
				rng("under $1,000", 750, 0.50),
				rng("$1,000 - $3,000", 2000, 0.75),
				rng("$3,000 - $6,000", 4500, 0.85),
				rng("over $6,000", 8000, 0.90),
			},
			"large": {
				rng("under $3,000", 2000, 0.55),
				rng("$3,000 - $8,000", 5500, 0.75),
				rng("over $8,000", 12000, 0.90),
			},
		},
		Calculations: domain.Calculations{
			MarketerSalary:        salaries(800, 1800, 3000, 5500),
			ToolsMultiplier:       d(2.5),
			AvgRevenuePerCustomer: d(45),
			SeasonalityFactor:     d(1.25),
			CompetitiveIndex:      d(0.85),
			RepeatCustomerRate:    d(0.45),
			ConversionRate:        d(0.035),
			CPCRange:              domain.CPCRange{Min: d(0.8), Max: d(2.4)},
			IndustryGrowthRate:    d(0.08),
		},
		Benchmarks: domain.Benchmarks{
			AvgMarketingSpend:       d(2800),
			AvgROI:                  d(220),
			DigitalizationLevel:     d(0.55),
			CustomerAcquisitionCost: d(18),
			AvgOrderValue:           d(45),
			RepeatVisitRate:         d(0.45),
		},
		CommonMistakes: "Restaurants routinely overspend on broad-audience ads while ignoring review management and repeat-visit campaigns, which convert far cheaper.",
	}
}

func retailProfile() *domain.IndustryProfile {
	return &domain.IndustryProfile{
		Key:         "retail",
		DisplayName: "Retail Store",
		Icon:        "🛍️",
		Description: "Brick-and-mortar retail and showrooms",
		SizeOptions: []domain.SizeOption{
			size("small", "Single store", 0.75, 35000, "1-10"),
			size("medium", "2-5 stores", 1.1, 95000, "11-50"),
			size("large", "Chain, 5+ stores", 1.7, 260000, "51-200"),
		},
		MarketingBudgetRanges: map[string][]domain.BudgetRange{
			"small": {
				rng("under $800", 500, 0.50),
				rng("$800 - $2,000", 1400, 0.70),
				rng("over $2,000", 3000, 0.85),
			},
			"medium": {
				rng("under $2,000", 1500, 0.55),
				rng("$2,000 - $5,000", 3500, 0.75),
				rng("over $5,000", 7500, 0.88),
			},
			"large": {
				rng("under $5,000", 3500, 0.55),
				rng("$5,000 - $12,000", 8500, 0.78),
				rng("over $12,000", 16000, 0.90),
			},
		},
		Calculations: domain.Calculations{
			MarketerSalary:        salaries(900, 2000, 3200, 6000),
			ToolsMultiplier:       d(2.2),
			AvgRevenuePerCustomer: d(85),
			SeasonalityFactor:     d(1.4),
			CompetitiveIndex:      d(0.8),
			RepeatCustomerRate:    d(0.35),
			ConversionRate:        d(0.028),
			CPCRange:              domain.CPCRange{Min: d(0.6), Max: d(1.9)},
			IndustryGrowthRate:    d(0.05),
		},
		Benchmarks: domain.Benchmarks{
			AvgMarketingSpend:       d(3600),
			AvgROI:                  d(190),
			DigitalizationLevel:     d(0.6),
			CustomerAcquisitionCost: d(24),
			AvgOrderValue:           d(85),
			RepeatVisitRate:         d(0.35),
		},
		CommonMistakes: "Retailers often run seasonal ads without a loyalty follow-up, paying full acquisition cost for customers who would have returned for a fraction of it.",
	}
}

func ecommerceProfile() *domain.IndustryProfile {
	return &domain.IndustryProfile{
		Key:         "ecommerce",
		DisplayName: "E-commerce",
		Icon:        "📦",
		Description: "Online stores and marketplaces",
		SizeOptions: []domain.SizeOption{
			size("small", "Up to 100 orders/month", 0.8, 20000, "1-5"),
			size("medium", "100-1,000 orders/month", 1.2, 110000, "6-25"),
			size("large", "1,000+ orders/month", 1.9, 400000, "26-100"),
		},
		MarketingBudgetRanges: map[string][]domain.BudgetRange{
			"small": {
				rng("under $1,000", 600, 0.55),
				rng("$1,000 - $2,500", 1750, 0.72),
				rng("over $2,500", 3500, 0.85),
			},
			"medium": {
				rng("under $3,000", 2000, 0.55),
				rng("$3,000 - $8,000", 5500, 0.78),
				rng("over $8,000", 11000, 0.88),
			},
			"large": {
				rng("under $8,000", 6000, 0.60),
				rng("$8,000 - $20,000", 14000, 0.80),
				rng("over $20,000", 28000, 0.92),
			},
		},
		Calculations: domain.Calculations{
			MarketerSalary:        salaries(1000, 2200, 3600, 6500),
			ToolsMultiplier:       d(2.8),
			AvgRevenuePerCustomer: d(70),
			SeasonalityFactor:     d(1.5),
			CompetitiveIndex:      d(0.95),
			RepeatCustomerRate:    d(0.3),
			ConversionRate:        d(0.022),
			CPCRange:              domain.CPCRange{Min: d(0.9), Max: d(3.2)},
			IndustryGrowthRate:    d(0.12),
		},
		Benchmarks: domain.Benchmarks{
			AvgMarketingSpend:       d(5200),
			AvgROI:                  d(240),
			DigitalizationLevel:     d(0.9),
			CustomerAcquisitionCost: d(32),
			AvgOrderValue:           d(70),
			RepeatVisitRate:         d(0.3),
		},
		CommonMistakes: "E-commerce stores tend to chase paid traffic while their email and retention funnels, the cheapest revenue they have, sit unconfigured.",
	}
}

func beautyProfile() *domain.IndustryProfile {
	return &domain.IndustryProfile{
		Key:         "beauty",
		DisplayName: "Beauty & Wellness",
		Icon:        "💇",
		Description: "Salons, spas and cosmetology clinics",
		SizeOptions: []domain.SizeOption{
			size("small", "1-3 workstations", 0.65, 15000, "1-5"),
			size("medium", "4-10 workstations", 1.0, 45000, "6-20"),
			size("large", "Network of salons", 1.55, 130000, "21-80"),
		},
		MarketingBudgetRanges: map[string][]domain.BudgetRange{
			"small": {
				rng("under $400", 250, 0.50),
				rng("$400 - $1,200", 800, 0.72),
				rng("over $1,200", 1800, 0.85),
			},
			"medium": {
				rng("under $900", 600, 0.52),
				rng("$900 - $2,500", 1700, 0.75),
				rng("over $2,500", 3800, 0.87),
			},
			"large": {
				rng("under $2,500", 1800, 0.55),
				rng("$2,500 - $6,000", 4200, 0.78),
				rng("over $6,000", 8500, 0.90),
			},
		},
		Calculations: domain.Calculations{
			MarketerSalary:        salaries(700, 1600, 2800, 5000),
			ToolsMultiplier:       d(2.0),
			AvgRevenuePerCustomer: d(60),
			SeasonalityFactor:     d(1.15),
			CompetitiveIndex:      d(0.75),
			RepeatCustomerRate:    d(0.6),
			ConversionRate:        d(0.042),
			CPCRange:              domain.CPCRange{Min: d(0.5), Max: d(1.7)},
			IndustryGrowthRate:    d(0.07),
		},
		Benchmarks: domain.Benchmarks{
			AvgMarketingSpend:       d(1900),
			AvgROI:                  d(260),
			DigitalizationLevel:     d(0.5),
			CustomerAcquisitionCost: d(14),
			AvgOrderValue:           d(60),
			RepeatVisitRate:         d(0.6),
		},
		CommonMistakes: "Salons usually have no online booking in their ads, losing the majority of after-hours leads to competitors who do.",
	}
}

func fitnessProfile() *domain.IndustryProfile {
	return &domain.IndustryProfile{
		Key:         "fitness",
		DisplayName: "Fitness & Sports",
		Icon:        "🏋️",
		Description: "Gyms, studios and personal training",
		SizeOptions: []domain.SizeOption{
			size("small", "Studio or PT practice", 0.7, 18000, "1-5"),
			size("medium", "Full gym, one location", 1.05, 55000, "6-25"),
			size("large", "Gym network", 1.65, 160000, "26-100"),
		},
		MarketingBudgetRanges: map[string][]domain.BudgetRange{
			"small": {
				rng("under $500", 350, 0.50),
				rng("$500 - $1,500", 1000, 0.72),
				rng("over $1,500", 2300, 0.85),
			},
			"medium": {
				rng("under $1,200", 800, 0.52),
				rng("$1,200 - $3,500", 2300, 0.75),
				rng("over $3,500", 5200, 0.87),
			},
			"large": {
				rng("under $3,500", 2500, 0.55),
				rng("$3,500 - $9,000", 6000, 0.78),
				rng("over $9,000", 12500, 0.90),
			},
		},
		Calculations: domain.Calculations{
			MarketerSalary:        salaries(750, 1700, 2900, 5200),
			ToolsMultiplier:       d(2.1),
			AvgRevenuePerCustomer: d(55),
			SeasonalityFactor:     d(1.35),
			CompetitiveIndex:      d(0.7),
			RepeatCustomerRate:    d(0.7),
			ConversionRate:        d(0.038),
			CPCRange:              domain.CPCRange{Min: d(0.6), Max: d(2.0)},
			IndustryGrowthRate:    d(0.09),
		},
		Benchmarks: domain.Benchmarks{
			AvgMarketingSpend:       d(2400),
			AvgROI:                  d(230),
			DigitalizationLevel:     d(0.65),
			CustomerAcquisitionCost: d(20),
			AvgOrderValue:           d(55),
			RepeatVisitRate:         d(0.7),
		},
		CommonMistakes: "Gyms pour budget into January acquisition and skip the retention campaigns that decide whether those members are still paying in April.",
	}
}

func autoServiceProfile() *domain.IndustryProfile {
	return &domain.IndustryProfile{
		Key:         "auto_service",
		DisplayName: "Auto Service",
		Icon:        "🔧",
		Description: "Car repair, detailing and tire shops",
		SizeOptions: []domain.SizeOption{
			size("small", "1-2 bays", 0.75, 22000, "1-5"),
			size("medium", "3-8 bays", 1.0, 60000, "6-20"),
			size("large", "Multi-location service", 1.6, 170000, "21-80"),
		},
		MarketingBudgetRanges: map[string][]domain.BudgetRange{
			"small": {
				rng("under $600", 400, 0.50),
				rng("$600 - $1,800", 1200, 0.72),
				rng("over $1,800", 2600, 0.85),
			},
			"medium": {
				rng("under $1,500", 1000, 0.52),
				rng("$1,500 - $4,000", 2800, 0.75),
				rng("over $4,000", 6000, 0.87),
			},
			"large": {
				rng("under $4,000", 3000, 0.55),
				rng("$4,000 - $10,000", 7000, 0.78),
				rng("over $10,000", 14000, 0.90),
			},
		},
		Calculations: domain.Calculations{
			MarketerSalary:        salaries(850, 1900, 3100, 5800),
			ToolsMultiplier:       d(2.3),
			AvgRevenuePerCustomer: d(180),
			SeasonalityFactor:     d(1.2),
			CompetitiveIndex:      d(0.65),
			RepeatCustomerRate:    d(0.55),
			ConversionRate:        d(0.05),
			CPCRange:              domain.CPCRange{Min: d(1.1), Max: d(3.5)},
			IndustryGrowthRate:    d(0.04),
		},
		Benchmarks: domain.Benchmarks{
			AvgMarketingSpend:       d(2600),
			AvgROI:                  d(200),
			DigitalizationLevel:     d(0.45),
			CustomerAcquisitionCost: d(35),
			AvgOrderValue:           d(180),
			RepeatVisitRate:         d(0.55),
		},
		CommonMistakes: "Auto shops rely on word of mouth and ignore search ads, even though repair intent is one of the highest-converting local queries available.",
	}
}
