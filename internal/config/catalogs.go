package config

import (
	"github.com/marketwise/savings-calculator/internal/domain"
)

// DefaultToolCatalog returns the built-in marketing tool catalog. Base prices
// are monthly USD before the industry tools multiplier and any discount.
func DefaultToolCatalog() domain.ToolCatalog {
	return domain.ToolCatalog{
		"crm_system": {
			Name:      "CRM System",
			Category:  "crm",
			BasePrice: d(150),
			Necessity: domain.NecessityEssential,
		},
		"analytics": {
			Name:      "Web & Marketing Analytics",
			Category:  "analytics",
			BasePrice: d(120),
			Necessity: domain.NecessityEssential,
		},
		"facebook_ads": {
			Name:      "Facebook & Instagram Ads",
			Category:  "advertising",
			BasePrice: d(200),
			Necessity: domain.NecessityEssential,
		},
		"google_ads": {
			Name:      "Google Ads",
			Category:  "advertising",
			BasePrice: d(220),
			Necessity: domain.NecessityRecommended,
		},
		"email_marketing": {
			Name:      "Email Marketing Platform",
			Category:  "email",
			BasePrice: d(80),
			Necessity: domain.NecessityRecommended,
		},
		"social_media_management": {
			Name:      "Social Media Management",
			Category:  "social",
			BasePrice: d(90),
			Necessity: domain.NecessityRecommended,
		},
		"seo_tools": {
			Name:      "SEO Toolkit",
			Category:  "seo",
			BasePrice: d(130),
			Necessity: domain.NecessityOptional,
		},
		"content_marketing": {
			Name:      "Content Marketing Suite",
			Category:  "content",
			BasePrice: d(110),
			Necessity: domain.NecessityOptional,
		},
		"reputation_management": {
			Name:      "Review & Reputation Management",
			Category:  "reputation",
			BasePrice: d(70),
			Necessity: domain.NecessityRecommended,
		},
		"booking_system": {
			Name:      "Online Booking System",
			Category:  "operations",
			BasePrice: d(60),
			Necessity: domain.NecessityRecommended,
		},
		"loyalty_program": {
			Name:      "Loyalty Program",
			Category:  "retention",
			BasePrice: d(90),
			Necessity: domain.NecessityOptional,
		},
		"marketing_automation": {
			Name:      "Marketing Automation Platform",
			Category:  "automation",
			BasePrice: d(250),
			Necessity: domain.NecessityOptional,
		},
		"ab_testing": {
			Name:      "A/B Testing Platform",
			Category:  "optimization",
			BasePrice: d(140),
			Necessity: domain.NecessityOptional,
		},
		"competitor_analysis": {
			Name:      "Competitor Analysis",
			Category:  "research",
			BasePrice: d(160),
			Necessity: domain.NecessityOptional,
		},
	}
}

// DefaultMarketerTiers returns the built-in marketer tier catalog. MonthlyCost
// is the fallback salary when an industry's own salary table lacks the tier.
func DefaultMarketerTiers() domain.MarketerTierCatalog {
	return domain.MarketerTierCatalog{
		domain.TierNone:     {MonthlyCost: d(0), Efficiency: d(0)},
		domain.TierPartTime: {MonthlyCost: d(800), Efficiency: d(0.6)},
		domain.TierFullTime: {MonthlyCost: d(1800), Efficiency: d(1.0)},
		domain.TierSenior:   {MonthlyCost: d(3000), Efficiency: d(1.3)},
		domain.TierTeam:     {MonthlyCost: d(5500), Efficiency: d(1.6)},
	}
}
