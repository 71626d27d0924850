package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/foodpulse/backend/internal/domain"
	"github.com/foodpulse/backend/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

const minQueryLen = 2

// fanOutOrder fixes the merge order of sources for the "all" search so the
// stable relevance sort has a deterministic pre-order: CMS types first,
// local tools last.
var fanOutOrder = []domain.ContentType{
	domain.ContentArticles,
	domain.ContentGuides,
	domain.ContentGlossary,
	domain.ContentFAQ,
	domain.ContentTools,
}

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL     time.Duration
	DefaultLimit int
	MaxLimit     int
}

// SearchService aggregates content search across the CMS-backed sources
// and the static tools catalog.
type SearchService struct {
	cache        domain.CacheRepository
	sources      map[domain.ContentType]domain.ContentSource
	cacheTTL     time.Duration
	defaultLimit int
	maxLimit     int
}

// NewSearchService creates a search service over the per-type sources.
// The sources map must contain every non-"all" content type.
func NewSearchService(
	cache domain.CacheRepository,
	sources map[domain.ContentType]domain.ContentSource,
	config SearchServiceConfig,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}
	defaultLimit := config.DefaultLimit
	if defaultLimit == 0 {
		defaultLimit = 20
	}
	maxLimit := config.MaxLimit
	if maxLimit == 0 {
		maxLimit = 50
	}

	return &SearchService{
		cache:        cache,
		sources:      sources,
		cacheTTL:     cacheTTL,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Search runs a content search.
// Flow: validate -> check cache -> query source(s) -> rank -> cache -> return.
// For contentType "all" every source is queried concurrently and the merged
// results get a 3-tier relevance sort; a single named type delegates to that
// source and keeps its natural order.
func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	q := strings.TrimSpace(query.Query)
	if len([]rune(q)) < minQueryLen {
		return nil, domain.ErrQueryTooShort
	}

	contentType := query.ContentType
	if contentType == "" {
		contentType = domain.ContentAll
	}
	if !contentType.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, query.ContentType)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	metrics.IncSearchRequest(string(contentType))

	cacheKey := s.cacheKey(q, contentType, query.Category, limit)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		metrics.IncSearchCacheHit()
		return cached, nil
	}

	var results []domain.SearchResult
	var err error
	if contentType == domain.ContentAll {
		results, err = s.searchAll(ctx, q, query.Category, limit)
	} else {
		results, err = s.searchOne(ctx, contentType, q, query.Category, limit)
	}
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Set(ctx, cacheKey, results, s.cacheTTL); cacheErr != nil {
		// Serving the results matters more than caching them
	}

	return results, nil
}

// searchAll fans out to every source concurrently and joins on all of them.
// Any single source failure fails the whole search; there is no
// partial-results fallback. Sources are queried without a per-source limit
// and the merged set is truncated only after the relevance sort, so a
// source with many strong matches can crowd out the others.
func (s *SearchService) searchAll(ctx context.Context, query, category string, limit int) ([]domain.SearchResult, error) {
	perSource := make([][]domain.SearchResult, len(fanOutOrder))

	g, gctx := errgroup.WithContext(ctx)
	for i, contentType := range fanOutOrder {
		i, contentType := i, contentType
		source, ok := s.sources[contentType]
		if !ok {
			return nil, fmt.Errorf("%w: no source for %s", domain.ErrCMSFailure, contentType)
		}
		g.Go(func() error {
			results, err := source.Search(gctx, query, category, 0)
			if err != nil {
				return fmt.Errorf("%s: %w", contentType, err)
			}
			perSource[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCMSFailure, err)
	}

	var merged []domain.SearchResult
	for _, results := range perSource {
		merged = append(merged, results...)
	}

	rankByRelevance(merged, query)

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// searchOne delegates to a single source, skipping aggregation and the
// relevance re-sort so the source's own order survives (glossary stays
// alphabetical, FAQ keeps its category/order fields).
func (s *SearchService) searchOne(ctx context.Context, contentType domain.ContentType, query, category string, limit int) ([]domain.SearchResult, error) {
	source, ok := s.sources[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: no source for %s", domain.ErrCMSFailure, contentType)
	}

	results, err := source.Search(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCMSFailure, err)
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// rankByRelevance stable-sorts results into 3 tiers: exact title match,
// title starts with the query, everything else. The stable sort keeps each
// source's pre-order as the tiebreaker within a tier.
func rankByRelevance(results []domain.SearchResult, query string) {
	q := strings.ToLower(query)
	sort.SliceStable(results, func(i, j int) bool {
		return relevanceTier(results[i].Title, q) < relevanceTier(results[j].Title, q)
	})
}

func relevanceTier(title, lowerQuery string) int {
	t := strings.ToLower(title)
	switch {
	case t == lowerQuery:
		return 0
	case strings.HasPrefix(t, lowerQuery):
		return 1
	}
	return 2
}

// cacheKey builds a normalized cache key for a search.
// Format: "search:{type}:{category}:{normalized query}:{limit}"
func (s *SearchService) cacheKey(query string, contentType domain.ContentType, category string, limit int) string {
	return fmt.Sprintf("search:%s:%s:%s:%d", contentType, normalizeForCacheKey(category), normalizeForCacheKey(query), limit)
}

// normalizeForCacheKey lowercases, strips special characters and collapses
// whitespace so equivalent queries share a cache entry.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// getFromCache retrieves and re-types cached search results. The cache
// stores JSON, so values come back as []interface{} of maps.
func (s *SearchService) getFromCache(ctx context.Context, key string) ([]domain.SearchResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if typed, ok := value.([]domain.SearchResult); ok {
		return typed, nil
	}

	raw, ok := value.([]interface{})
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	results := make([]domain.SearchResult, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, domain.ErrCacheMiss
		}
		results = append(results, searchResultFromMap(m))
	}
	return results, nil
}

// searchResultFromMap converts a JSON-decoded map back to a SearchResult
func searchResultFromMap(m map[string]interface{}) domain.SearchResult {
	result := domain.SearchResult{}
	if v, ok := m["id"].(string); ok {
		result.ID = v
	}
	if v, ok := m["type"].(string); ok {
		result.Type = domain.ContentType(v)
	}
	if v, ok := m["title"].(string); ok {
		result.Title = v
	}
	if v, ok := m["slug"].(string); ok {
		result.Slug = v
	}
	if v, ok := m["excerpt"].(string); ok {
		result.Excerpt = v
	}
	if v, ok := m["category"].(string); ok {
		result.Category = v
	}
	return result
}
