package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ContentSource is the per-type query capability the aggregator depends on.
// Implementations must return results in their natural per-type order
// (articles newest-first, glossary alphabetical, FAQ by category/order);
// the aggregator's stable relevance sort relies on that pre-order.
type ContentSource interface {
	Search(ctx context.Context, query string, category string, limit int) ([]SearchResult, error)
}

// EmailSender defines the interface for outbound email delivery
type EmailSender interface {
	SendContactNotification(ctx context.Context, req *ContactRequest) error
	Subscribe(ctx context.Context, email string) error
}
