package domain

import (
	"github.com/shopspring/decimal"
)

// Tool necessity tiers, informational only.
const (
	NecessityEssential   = "essential"
	NecessityRecommended = "recommended"
	NecessityOptional    = "optional"
)

// ToolCatalogEntry describes one marketing tool. BasePrice is a monthly USD
// figure before any industry multiplier or offer discount.
type ToolCatalogEntry struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	BasePrice decimal.Decimal `json:"base_price"`
	Necessity string          `json:"necessity"`
}

// ToolCatalog maps tool ids onto catalog entries.
type ToolCatalog map[string]ToolCatalogEntry

// Marketer tier ids.
const (
	TierNone     = "none"
	TierPartTime = "part_time"
	TierFullTime = "full_time"
	TierSenior   = "senior"
	TierTeam     = "team"
)

// MarketerTier describes one marketer staffing tier. MonthlyCost is the
// fallback salary used when an industry's own salary table lacks the tier.
type MarketerTier struct {
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	Efficiency  decimal.Decimal `json:"efficiency"`
}

// MarketerTierCatalog maps tier ids onto tier data.
type MarketerTierCatalog map[string]MarketerTier

// Known reports whether the tier id exists in the catalog.
func (c MarketerTierCatalog) Known(tier string) bool {
	_, ok := c[tier]
	return ok
}
