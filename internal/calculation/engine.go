package calculation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
	"github.com/marketwise/savings-calculator/pkg/money"
)

// Advisory warning thresholds relative to the industry benchmark spend.
var (
	warnBudgetLowShare     = decimal.NewFromFloat(0.25)
	warnBudgetHighMultiple = decimal.NewFromInt(3)
)

// Engine runs the full calculation pipeline: validate, normalize, cost both
// structures, synthesize savings/ROI, generate advice. It owns the static
// tables, which are never mutated after construction.
type Engine struct {
	Table    *domain.IndustryTable
	Tools    domain.ToolCatalog
	Tiers    domain.MarketerTierCatalog
	Discount decimal.Decimal
	Cache    ResultCache
	Logger   Logger

	// Now and NewID are injectable for deterministic tests.
	Now   func() time.Time
	NewID func() string
}

// NewEngine creates an engine over the given tables with the reference
// discount, no cache and a no-op logger.
func NewEngine(table *domain.IndustryTable, tools domain.ToolCatalog, tiers domain.MarketerTierCatalog) *Engine {
	return &Engine{
		Table:    table,
		Tools:    tools,
		Tiers:    tiers,
		Discount: DefaultToolsDiscount,
		Logger:   NopLogger{},
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// SetCache installs a result cache; nil disables memoization.
func (e *Engine) SetCache(c ResultCache) {
	e.Cache = c
}

// Calculate is the single entry point to the computation core. All failure
// modes come back as a *ValidationError value; the function never panics and
// the returned result never carries NaN or infinite values.
func (e *Engine) Calculate(ctx context.Context, raw domain.RawInput) (*domain.SavingsResult, error) {
	profile, err := e.validate(raw)
	if err != nil {
		return nil, err
	}

	in := Normalize(raw, profile)

	cacheKey := e.Discount.String() + "|" + in.CacheKey()
	if e.Cache != nil {
		if cached, ok := e.Cache.Get(ctx, cacheKey); ok {
			e.Logger.Debugf("calculation cache hit for %s/%s", in.Industry, in.BusinessSize)
			return cached, nil
		}
	}

	current := CurrentCosts(in, profile, e.Tools, e.Tiers)
	offer := OurOffer(in, profile, e.Tools, e.Discount)
	savings, roi := Synthesize(current, offer, in, profile)
	insights, recommendations := GenerateAdvice(in, profile, current, offer, savings, roi)

	result := &domain.SavingsResult{
		ID:              e.NewID(),
		GeneratedAt:     e.Now().UTC(),
		Industry:        in.Industry,
		BusinessSize:    in.BusinessSize,
		CurrentCosts:    current,
		OurOffer:        offer,
		Savings:         savings,
		ROI:             roi,
		Insights:        insights,
		Recommendations: recommendations,
		Warnings:        e.inputWarnings(in, profile),
	}

	e.Logger.Infof("calculated savings for %s/%s: %s monthly, ROI %s%%",
		in.Industry, in.BusinessSize, money.FormatUSD(savings.Monthly), roi.TotalROI)

	if e.Cache != nil {
		e.Cache.Set(ctx, cacheKey, result)
	}
	return result, nil
}

// validate checks the raw answers per the error taxonomy: missing required
// fields, unsupported industry, size not offered by that industry, negative
// budget. Every problem is collected before returning.
func (e *Engine) validate(raw domain.RawInput) (*domain.IndustryProfile, error) {
	verr := &ValidationError{}

	var profile *domain.IndustryProfile
	if raw.Industry == "" {
		verr.add("industry is required")
	} else {
		p, ok := e.Table.Profile(raw.Industry)
		if !ok {
			verr.add("industry %q is not supported", raw.Industry)
		} else {
			profile = p
		}
	}

	if raw.BusinessSize == "" {
		verr.add("business size is required")
	} else if profile != nil && !profile.HasSize(raw.BusinessSize) {
		verr.add("business size %q is not offered for industry %q", raw.BusinessSize, raw.Industry)
	}

	if raw.MarketingBudget.IsZero() {
		verr.add("marketing budget is required")
	} else if raw.MarketingBudget.Numeric && raw.MarketingBudget.Amount.IsNegative() {
		verr.add("marketing budget cannot be negative")
	}

	if !verr.empty() {
		return nil, verr
	}
	return profile, nil
}

// inputWarnings flags non-fatal oddities: an unrecognized marketer type or a
// budget far off the industry benchmark. These are advisory and never block
// the calculation.
func (e *Engine) inputWarnings(in domain.FormInput, profile *domain.IndustryProfile) []string {
	var warnings []string
	if in.MarketerType != domain.TierNone &&
		!e.Tiers.Known(in.MarketerType) && profile.MarketerSalary(in.MarketerType).IsZero() {
		warnings = append(warnings,
			"marketer type is not recognized; costs assume no in-house marketer")
	}

	benchmark := profile.Benchmarks.AvgMarketingSpend
	if !benchmark.IsPositive() {
		return warnings
	}
	if in.MarketingBudget.LessThan(benchmark.Mul(warnBudgetLowShare)) {
		warnings = append(warnings,
			"marketing budget is unusually low for this industry; projections assume the stated spend is sustained")
	} else if in.MarketingBudget.GreaterThan(benchmark.Mul(warnBudgetHighMultiple)) {
		warnings = append(warnings,
			"marketing budget is unusually high for this industry; verify the amount is monthly, not yearly")
	}
	return warnings
}
