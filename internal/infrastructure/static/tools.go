// Package static provides the in-process content sources that are not
// backed by the CMS: the calculator tool catalog.
package static

import (
	"context"
	"strings"

	"github.com/foodpulse/backend/internal/domain"
)

// toolCatalog lists the calculator pages, pre-sorted by title. The
// aggregator's stable relevance sort preserves this order within a tier.
var toolCatalog = []domain.SearchResult{
	{ID: "tool-bmi", Type: domain.ContentTools, Title: "BMI Calculator", Slug: "/tools/bmi-calculator", Excerpt: "Check your body mass index and healthy weight range", Category: "body"},
	{ID: "tool-caffeine", Type: domain.ContentTools, Title: "Caffeine Intake Calculator", Slug: "/tools/caffeine-calculator", Excerpt: "Track daily caffeine against safe limits and clearance time", Category: "beverages"},
	{ID: "tool-calorie", Type: domain.ContentTools, Title: "Calorie Calculator", Slug: "/tools/calorie-calculator", Excerpt: "Estimate your BMR, TDEE and daily calorie target", Category: "energy"},
	{ID: "tool-fiber", Type: domain.ContentTools, Title: "Fiber Intake Calculator", Slug: "/tools/fiber-calculator", Excerpt: "Compare your fiber intake with the daily recommendation", Category: "nutrients"},
	{ID: "tool-hydration", Type: domain.ContentTools, Title: "Hydration Calculator", Slug: "/tools/hydration-calculator", Excerpt: "Find your daily fluid needs for your climate and activity", Category: "hydration"},
	{ID: "tool-macro", Type: domain.ContentTools, Title: "Macro Calculator", Slug: "/tools/macro-calculator", Excerpt: "Split your calorie target into protein, carbs and fat grams", Category: "nutrients"},
	{ID: "tool-protein", Type: domain.ContentTools, Title: "Protein Calculator", Slug: "/tools/protein-calculator", Excerpt: "Get a daily protein target for your weight and training", Category: "nutrients"},
}

// ToolSource serves the static tool catalog as a ContentSource
type ToolSource struct{}

// NewToolSource creates the static tools source
func NewToolSource() *ToolSource {
	return &ToolSource{}
}

// Search filters the catalog by case-insensitive substring match on title,
// excerpt and category. It is synchronous and never fails.
func (s *ToolSource) Search(ctx context.Context, query, category string, limit int) ([]domain.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	var results []domain.SearchResult
	for _, tool := range toolCatalog {
		if category != "" && !strings.EqualFold(tool.Category, category) {
			continue
		}
		if q != "" && !matches(tool, q) {
			continue
		}
		results = append(results, tool)
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results, nil
}

func matches(tool domain.SearchResult, q string) bool {
	return strings.Contains(strings.ToLower(tool.Title), q) ||
		strings.Contains(strings.ToLower(tool.Excerpt), q) ||
		strings.Contains(strings.ToLower(tool.Category), q)
}
