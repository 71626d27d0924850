package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/foodpulse/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the headless CMS content API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new content API client. The limiter keeps us inside
// the CMS plan's request quota with a small burst for fan-out searches.
func NewClient(apiKey, baseURL string) *Client {
	limiter := rate.NewLimiter(rate.Limit(10), 20)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// Source returns a domain.ContentSource bound to one content type
func (c *Client) Source(contentType domain.ContentType) *Source {
	return &Source{client: c, contentType: contentType}
}

// Source adapts the client to the per-type ContentSource capability
type Source struct {
	client      *Client
	contentType domain.ContentType
}

// Search queries one content type and normalizes the payload into the
// common SearchResult shape. Results keep the CMS's per-type order
// (articles newest-first, glossary alphabetical, FAQ by category/order).
func (s *Source) Search(ctx context.Context, query, category string, limit int) ([]domain.SearchResult, error) {
	resp, err := s.client.queryContent(ctx, s.contentType, query, category, limit)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, MapToSearchResult(item, s.contentType))
	}
	return results, nil
}

// searchResponse is the envelope the content API wraps every query in
type searchResponse struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// queryContent executes a content query with retries for transient failures
func (c *Client) queryContent(ctx context.Context, contentType domain.ContentType, query, category string, limit int) (*searchResponse, error) {
	if c.debug {
		log.Printf("[CMS] query type=%s q=%q category=%q limit=%d", contentType, query, category, limit)
	}

	endpoint := fmt.Sprintf("%s/v1/content/%s", c.baseURL, contentType)
	params := url.Values{}
	params.Add("q", query)
	params.Add("api_key", c.apiKey)
	if category != "" {
		params.Add("category", category)
	}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[CMS] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			if !sleepCtx(ctx, time.Duration(attempt*250)*time.Millisecond) {
				return nil, ctx.Err()
			}
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrNotFound
		}
		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CMS] API error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCMSFailure, resp.StatusCode)
			// 4xx other than 404 will not heal on retry
			if resp.StatusCode < http.StatusInternalServerError {
				return nil, lastErr
			}
			if !sleepCtx(ctx, time.Duration(attempt*250)*time.Millisecond) {
				return nil, ctx.Err()
			}
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[CMS] type=%s returned %d items", contentType, len(searchResp.Items))
		}
		return &searchResp, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with proper headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "FoodPulse/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCMSFailure, err)
	}
	return resp, nil
}

// sleepCtx sleeps unless the context finishes first
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
