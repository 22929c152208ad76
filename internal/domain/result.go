package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPair is a monthly figure with its annualized counterpart. Yearly is
// always Monthly * 12.
type MoneyPair struct {
	Monthly decimal.Decimal `json:"monthly"`
	Yearly  decimal.Decimal `json:"yearly"`
}

// PairOf builds a MoneyPair from a monthly amount.
func PairOf(monthly decimal.Decimal) MoneyPair {
	return MoneyPair{Monthly: monthly, Yearly: monthly.Mul(decimal.NewFromInt(12))}
}

// ToolCost is the priced line item for a single tool.
type ToolCost struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Monthly decimal.Decimal `json:"monthly"`
}

// ToolsCost is the tools category with its per-tool breakdown.
type ToolsCost struct {
	MoneyPair
	PerTool []ToolCost `json:"per_tool"`
}

// CostBreakdown is a monthly/yearly spend structure. For current costs the
// Marketer slot holds the marketer salary and Misc holds the fixed 10%
// other-costs heuristic; for the offer the Marketer slot holds the flat
// management fee (always zero) and Misc is zero.
//
// Total is the sum of the already-rounded category monthlies. Because Misc
// is derived from the stated budget independently of the allocation, the
// nominal total can exceed that budget; this models habitual under-budgeting
// and is intentional.
type CostBreakdown struct {
	Marketer    MoneyPair `json:"marketer"`
	Tools       ToolsCost `json:"tools"`
	Advertising MoneyPair `json:"advertising"`
	Misc        MoneyPair `json:"misc"`
	Total       MoneyPair `json:"total"`
}

// Sum recomputes the total from the category monthlies. The stored Total
// must always equal it.
func (cb CostBreakdown) Sum() decimal.Decimal {
	return cb.Marketer.Monthly.
		Add(cb.Tools.Monthly).
		Add(cb.Advertising.Monthly).
		Add(cb.Misc.Monthly)
}

// Savings is the diff between the current costs and the offer.
type Savings struct {
	Monthly    decimal.Decimal `json:"monthly"`
	Yearly     decimal.Decimal `json:"yearly"`
	Percentage decimal.Decimal `json:"percentage"`
}

// RevenueGrowth is the projected revenue uplift from professional management.
type RevenueGrowth struct {
	Monthly    decimal.Decimal `json:"monthly"`
	Yearly     decimal.Decimal `json:"yearly"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ROI aggregates return-on-investment figures. PaybackMonths is the months
// required for cumulative monthly benefit to cover the annual marketing
// investment.
type ROI struct {
	TotalROI      decimal.Decimal `json:"total_roi"`
	PaybackMonths int             `json:"payback_months"`
	RevenueGrowth RevenueGrowth   `json:"revenue_growth"`
}

// Insight is a canned observation comparing the customer's numbers to the
// industry benchmarks.
type Insight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Recommendation priorities, highest first.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PriorityRank orders priorities for sorting; lower is more urgent.
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Recommendation is a prioritized action item derived from the calculation.
type Recommendation struct {
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SavingsResult is the final output of a calculation and the only object
// exposed past the engine boundary. It is created fresh per call, never
// mutated after return, and safe to serialize directly into an analytics
// event or a lead payload.
type SavingsResult struct {
	ID           string    `json:"id"`
	GeneratedAt  time.Time `json:"generated_at"`
	Industry     string    `json:"industry"`
	BusinessSize string    `json:"business_size"`

	CurrentCosts CostBreakdown `json:"current_costs"`
	OurOffer     CostBreakdown `json:"our_offer"`

	Savings Savings `json:"savings"`
	ROI     ROI     `json:"roi"`

	Insights        []Insight        `json:"insights"`
	Recommendations []Recommendation `json:"recommendations"`

	// Warnings carries non-fatal input oddities (budget far off the industry
	// benchmark). They never block the calculation.
	Warnings []string `json:"warnings,omitempty"`
}

// Lead is the contact-plus-result record handed to the submission boundary.
type Lead struct {
	ID          string         `json:"id"`
	SubmittedAt time.Time      `json:"submitted_at"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone,omitempty"`
	Company     string         `json:"company,omitempty"`
	Result      *SavingsResult `json:"result,omitempty"`
}
