package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/foodpulse/backend/config"
	httpDelivery "github.com/foodpulse/backend/internal/delivery/http"
	"github.com/foodpulse/backend/internal/domain"
	"github.com/foodpulse/backend/internal/infrastructure/cache"
	"github.com/foodpulse/backend/internal/infrastructure/cms"
	"github.com/foodpulse/backend/internal/infrastructure/email"
	"github.com/foodpulse/backend/internal/infrastructure/static"
	"github.com/foodpulse/backend/internal/metrics"
	"github.com/foodpulse/backend/internal/usecase"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FoodPulse Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	metrics.Register()

	// Initialize infrastructure dependencies
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisCache, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		cacheRepo = redisCache
		log.Printf("Connected to Redis")
	default:
		cacheRepo = cache.NewMemoryCache()
	}
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	cmsClient := cms.NewClient(cfg.CMS.APIKey, cfg.CMS.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		cmsClient.SetDebug(true)
		log.Printf("CMS client debug mode enabled")
	}

	sources := map[domain.ContentType]domain.ContentSource{
		domain.ContentArticles: cmsClient.Source(domain.ContentArticles),
		domain.ContentGuides:   cmsClient.Source(domain.ContentGuides),
		domain.ContentGlossary: cmsClient.Source(domain.ContentGlossary),
		domain.ContentFAQ:      cmsClient.Source(domain.ContentFAQ),
		domain.ContentTools:    static.NewToolSource(),
	}

	sender := email.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.FromAddress, cfg.Email.InboxAddress)
	if !sender.Configured() {
		log.Printf("WARNING: SendGrid not configured - contact and newsletter endpoints will fail")
	}

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		cacheRepo,
		sources,
		usecase.SearchServiceConfig{
			CacheTTL:     cfg.Cache.TTL,
			DefaultLimit: cfg.Search.DefaultLimit,
			MaxLimit:     cfg.Search.MaxLimit,
		},
	)
	contactService := usecase.NewContactService(sender)
	newsletterService := usecase.NewNewsletterService(sender)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, contactService, newsletterService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
