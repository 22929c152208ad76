package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/marketwise/savings-calculator/internal/domain"
)

// Tool sets for the recommendation rules. The base set goes to everyone, the
// advanced set only to businesses whose size multiplier exceeds the
// threshold.
var (
	baseToolSet      = []string{"crm_system", "analytics", "facebook_ads"}
	advancedToolSet  = []string{"marketing_automation", "ab_testing", "competitor_analysis"}
	genericExtension = []string{"email_marketing", "social_media_management"}

	advancedSizeThreshold = decimal.NewFromFloat(1.5)
)

// RecommendedTools resolves the tool set the offer prices: the fixed base
// set, an industry-specific extension, and for large businesses the advanced
// set. The result is deduplicated, preserving first-occurrence order.
func RecommendedTools(industryKey, businessSize string, profile *domain.IndustryProfile) []string {
	ids := make([]string, 0, 8)
	ids = append(ids, baseToolSet...)
	ids = append(ids, industryExtension(industryKey)...)

	if profile.SizeMultiplier(businessSize).GreaterThan(advancedSizeThreshold) {
		ids = append(ids, advancedToolSet...)
	}

	return dedupe(ids)
}

// industryExtension returns the extension tools for a known industry key;
// unknown industries get the generic pair.
func industryExtension(industryKey string) []string {
	switch industryKey {
	case "restaurant":
		return []string{"reputation_management", "loyalty_program"}
	case "retail":
		return []string{"email_marketing", "loyalty_program"}
	case "ecommerce":
		return []string{"email_marketing", "seo_tools"}
	case "beauty":
		return []string{"booking_system", "reputation_management"}
	case "fitness":
		return []string{"booking_system", "email_marketing"}
	case "auto_service":
		return []string{"reputation_management", "google_ads"}
	default:
		return genericExtension
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
