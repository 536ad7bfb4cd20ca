package intelligence

import (
	"fmt"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// FallbackSummary is the deterministic summary used when the LLM cannot
// produce one.
func FallbackSummary(destination string) string {
	return fmt.Sprintf("Welcome to %s! Your personalized travel plan is ready.", destination)
}

// FallbackRecommendations is the fixed recommendation set used when LLM
// output is unavailable or unparseable.
func FallbackRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			Title:       "Weather Backup Plan",
			Description: "Visit museums and indoor attractions if weather is poor",
			Category:    "weather",
		},
		{
			Title:       "Local Food Tour",
			Description: "Try street food and local markets for authentic experiences",
			Category:    "food",
		},
		{
			Title:       "Photography Tips",
			Description: "Best lighting is during golden hour for city photography",
			Category:    "photography",
		},
	}
}

// FallbackPackingList is the fixed packing list used when LLM output is
// unavailable or unparseable.
func FallbackPackingList() map[string][]string {
	return map[string][]string{
		"clothing": {
			"Comfortable walking shoes",
			"Weather-appropriate clothing",
			"Formal outfit for dinner",
			"Swimwear (if applicable)",
		},
		"electronics": {
			"Phone and charger",
			"Camera",
			"Power bank",
			"Universal adapter",
		},
		"toiletries": {
			"Personal hygiene items",
			"Sunscreen",
			"First aid kit",
		},
		"documents": {
			"Passport/ID",
			"Travel insurance",
			"Booking confirmations",
			"Emergency contacts",
		},
		"miscellaneous": {
			"Day bag",
			"Water bottle",
			"Snacks",
			"Cash and cards",
		},
	}
}
