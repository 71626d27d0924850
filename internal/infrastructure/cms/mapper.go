package cms

import "github.com/foodpulse/backend/internal/domain"

// Item is the superset of fields the content API returns across types.
// Articles and guides carry title/excerpt, glossary entries carry
// term/definition, FAQ documents carry question/answer plus an order field.
type Item struct {
	ID          string `json:"_id"`
	Title       string `json:"title,omitempty"`
	Term        string `json:"term,omitempty"`
	Question    string `json:"question,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Definition  string `json:"definition,omitempty"`
	Answer      string `json:"answer,omitempty"`
	Category    string `json:"category,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Order       int    `json:"order,omitempty"`
}

const maxExcerptLen = 160

// MapToSearchResult normalizes one CMS item into the common SearchResult
// shape the aggregator merges over.
func MapToSearchResult(item Item, contentType domain.ContentType) domain.SearchResult {
	result := domain.SearchResult{
		ID:       item.ID,
		Type:     contentType,
		Slug:     item.Slug,
		Category: item.Category,
	}

	switch contentType {
	case domain.ContentGlossary:
		result.Title = item.Term
		result.Excerpt = truncate(item.Definition, maxExcerptLen)
	case domain.ContentFAQ:
		result.Title = item.Question
		result.Excerpt = truncate(item.Answer, maxExcerptLen)
	default:
		result.Title = item.Title
		result.Excerpt = truncate(item.Excerpt, maxExcerptLen)
	}

	return result
}

// truncate cuts s to max runes, appending an ellipsis when shortened
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
