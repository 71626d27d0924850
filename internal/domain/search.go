package domain

// ContentType identifies one searchable content source, or "all" for the
// aggregated fan-out search.
type ContentType string

const (
	ContentAll      ContentType = "all"
	ContentArticles ContentType = "articles"
	ContentGuides   ContentType = "guides"
	ContentGlossary ContentType = "glossary"
	ContentFAQ      ContentType = "faq"
	ContentTools    ContentType = "tools"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentAll, ContentArticles, ContentGuides, ContentGlossary, ContentFAQ, ContentTools:
		return true
	}
	return false
}

// CMSContentTypes are the content types backed by the CMS. Tools are a
// static local catalog and are filtered in-process.
var CMSContentTypes = []ContentType{ContentArticles, ContentGuides, ContentGlossary, ContentFAQ}

// SearchQuery is a free-text content search request
type SearchQuery struct {
	Query       string      `json:"query"`
	ContentType ContentType `json:"contentType"`
	Category    string      `json:"category,omitempty"`
	Limit       int         `json:"limit"`
}

// SearchResult is the normalized shape every content source maps into
// before merging. Type tags the originating source so the client can route
// to the right page.
type SearchResult struct {
	ID       string      `json:"id"`
	Type     ContentType `json:"type"`
	Title    string      `json:"title"`
	Slug     string      `json:"slug"`
	Excerpt  string      `json:"excerpt,omitempty"`
	Category string      `json:"category,omitempty"`
}
