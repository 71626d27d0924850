package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodpulse/backend/config"
	"github.com/foodpulse/backend/internal/domain"
	"github.com/foodpulse/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	exitCode := m.Run()
	os.Exit(exitCode)
}

// --- Mock implementations ---

// mockCacheRepository is a mock implementation of domain.CacheRepository
type mockCacheRepository struct {
	data map[string]interface{}
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{data: make(map[string]interface{})}
}

func (m *mockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *mockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// mockContentSource is a mock implementation of domain.ContentSource
type mockContentSource struct {
	results []domain.SearchResult
	err     error
}

func (m *mockContentSource) Search(ctx context.Context, query, category string, limit int) ([]domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// mockEmailSender is a mock implementation of domain.EmailSender
type mockEmailSender struct {
	contactErr   error
	subscribeErr error
	sent         int
	subscribed   int
}

func (m *mockEmailSender) SendContactNotification(ctx context.Context, req *domain.ContactRequest) error {
	if m.contactErr != nil {
		return m.contactErr
	}
	m.sent++
	return nil
}

func (m *mockEmailSender) Subscribe(ctx context.Context, email string) error {
	if m.subscribeErr != nil {
		return m.subscribeErr
	}
	m.subscribed++
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"https://foodpulse.example", "http://localhost:3000"},
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}
}

// setupTestRouter creates a router with mock-backed services
func setupTestRouter(sources map[domain.ContentType]domain.ContentSource, sender domain.EmailSender) *gin.Engine {
	if sources == nil {
		sources = map[domain.ContentType]domain.ContentSource{}
	}
	if sender == nil {
		sender = &mockEmailSender{}
	}

	searchService := usecase.NewSearchService(
		newMockCacheRepository(),
		sources,
		usecase.SearchServiceConfig{CacheTTL: 5 * time.Minute, DefaultLimit: 20, MaxLimit: 50},
	)
	contactService := usecase.NewContactService(sender)
	newsletterService := usecase.NewNewsletterService(sender)

	handler := NewHandler(searchService, contactService, newsletterService)
	return SetupRouter(testConfig(), handler)
}

func allMockSources(results []domain.SearchResult) map[domain.ContentType]domain.ContentSource {
	sources := make(map[domain.ContentType]domain.ContentSource)
	for _, ct := range []domain.ContentType{
		domain.ContentArticles, domain.ContentGuides, domain.ContentGlossary,
		domain.ContentFAQ, domain.ContentTools,
	} {
		sources[ct] = &mockContentSource{}
	}
	sources[domain.ContentArticles] = &mockContentSource{results: results}
	return sources
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "foodpulse-backend" {
			t.Errorf("service = %v, want foodpulse-backend", response["service"])
		}
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			req, _ := http.NewRequest(method, "/health", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

func TestSearchEndpoint(t *testing.T) {
	t.Run("returns merged results for valid query", func(t *testing.T) {
		router := setupTestRouter(allMockSources([]domain.SearchResult{
			{ID: "a1", Type: domain.ContentArticles, Title: "Protein Timing Myths", Slug: "protein-timing"},
			{ID: "a2", Type: domain.ContentArticles, Title: "Protein", Slug: "protein"},
		}), nil)

		req, _ := http.NewRequest("GET", "/api/search?q=protein", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				Query       string                `json:"query"`
				ContentType string                `json:"contentType"`
				Results     []domain.SearchResult `json:"results"`
				TotalCount  int                   `json:"totalCount"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if !response.Success {
			t.Error("success = false, want true")
		}
		if response.Data.Query != "protein" {
			t.Errorf("query = %q, want protein", response.Data.Query)
		}
		if response.Data.ContentType != "all" {
			t.Errorf("contentType = %q, want all", response.Data.ContentType)
		}
		if response.Data.TotalCount != 2 {
			t.Errorf("totalCount = %d, want 2", response.Data.TotalCount)
		}
		// Exact title match ranks first
		if len(response.Data.Results) == 2 && response.Data.Results[0].ID != "a2" {
			t.Errorf("first result = %s, want a2", response.Data.Results[0].ID)
		}
	})

	t.Run("returns 400 for short query", func(t *testing.T) {
		router := setupTestRouter(allMockSources(nil), nil)

		req, _ := http.NewRequest("GET", "/api/search?q=a", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["success"] != false {
			t.Error("success should be false")
		}
		if response["error"] == nil {
			t.Error("expected error field in response")
		}
	})

	t.Run("returns 400 for unknown content type", func(t *testing.T) {
		router := setupTestRouter(allMockSources(nil), nil)

		req, _ := http.NewRequest("GET", "/api/search?q=protein&type=recipes", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns 400 for malformed limit", func(t *testing.T) {
		router := setupTestRouter(allMockSources(nil), nil)

		req, _ := http.NewRequest("GET", "/api/search?q=protein&limit=abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns 500 when a source fails", func(t *testing.T) {
		sources := allMockSources(nil)
		sources[domain.ContentGuides] = &mockContentSource{err: domain.ErrCMSFailure}
		router := setupTestRouter(sources, nil)

		req, _ := http.NewRequest("GET", "/api/search?q=protein", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})

	t.Run("empty result set serializes as array", func(t *testing.T) {
		router := setupTestRouter(allMockSources(nil), nil)

		req, _ := http.NewRequest("GET", "/api/search?q=zzzzz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), `"results":[]`) {
			t.Errorf("results should serialize as empty array, body %s", w.Body.String())
		}
	})
}

func TestContactEndpoint(t *testing.T) {
	validPayload := `{"name":"Jamie","email":"jamie@example.com","subject":"Hello","message":"I have a question about fiber intake."}`

	t.Run("sends notification for valid submission", func(t *testing.T) {
		sender := &mockEmailSender{}
		router := setupTestRouter(nil, sender)

		req, _ := http.NewRequest("POST", "/api/contact", strings.NewReader(validPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}
		if sender.sent != 1 {
			t.Errorf("sent = %d, want 1", sender.sent)
		}
	})

	t.Run("returns field errors for invalid submission", func(t *testing.T) {
		sender := &mockEmailSender{}
		router := setupTestRouter(nil, sender)

		payload := `{"name":"J","email":"not-an-email","subject":"Hi","message":"short"}`
		req, _ := http.NewRequest("POST", "/api/contact", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}

		var response struct {
			Success bool              `json:"success"`
			Fields  map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		for _, field := range []string{"name", "email", "message"} {
			if response.Fields[field] == "" {
				t.Errorf("expected field error for %q", field)
			}
		}
		if sender.sent != 0 {
			t.Errorf("sent = %d, want 0", sender.sent)
		}
	})

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		req, _ := http.NewRequest("POST", "/api/contact", strings.NewReader(`{invalid json}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns 500 when email provider is not configured", func(t *testing.T) {
		sender := &mockEmailSender{contactErr: domain.ErrEmailNotConfigured}
		router := setupTestRouter(nil, sender)

		req, _ := http.NewRequest("POST", "/api/contact", strings.NewReader(validPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})
}

func TestNewsletterEndpoint(t *testing.T) {
	t.Run("subscribes a valid email", func(t *testing.T) {
		sender := &mockEmailSender{}
		router := setupTestRouter(nil, sender)

		req, _ := http.NewRequest("POST", "/api/newsletter", strings.NewReader(`{"email":"jamie@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}
		if sender.subscribed != 1 {
			t.Errorf("subscribed = %d, want 1", sender.subscribed)
		}
	})

	t.Run("returns 400 for invalid email", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		req, _ := http.NewRequest("POST", "/api/newsletter", strings.NewReader(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestCalculatorEndpoints(t *testing.T) {
	t.Run("bmi returns classified result", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		payload := `{"weight":75,"weightUnit":"kg","height":180,"heightUnit":"cm"}`
		req, _ := http.NewRequest("POST", "/api/calculators/bmi", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				BMI      float64 `json:"bmi"`
				Category struct {
					Label string `json:"label"`
				} `json:"category"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Data.BMI != 23.1 {
			t.Errorf("bmi = %v, want 23.1", response.Data.BMI)
		}
		if response.Data.Category.Label != "Normal Weight" {
			t.Errorf("category = %q, want Normal Weight", response.Data.Category.Label)
		}
	})

	t.Run("calories returns reference values", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		payload := `{"weight":70,"weightUnit":"kg","height":175,"heightUnit":"cm","age":30,"sex":"male","activityLevel":"moderate","goal":"maintain"}`
		req, _ := http.NewRequest("POST", "/api/calculators/calories", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Data struct {
				BMR  int `json:"bmr"`
				TDEE int `json:"tdee"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Data.BMR != 1649 {
			t.Errorf("bmr = %d, want 1649", response.Data.BMR)
		}
		if response.Data.TDEE != 2555 {
			t.Errorf("tdee = %d, want 2555", response.Data.TDEE)
		}
	})

	t.Run("calories rejects unsupported formula basis", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		payload := `{"weight":80,"weightUnit":"kg","height":180,"heightUnit":"cm","age":30,"sex":"other","activityLevel":"moderate","goal":"maintain"}`
		req, _ := http.NewRequest("POST", "/api/calculators/calories", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("macros returns gram split", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		payload := `{"targetCalories":2000,"preset":"balanced"}`
		req, _ := http.NewRequest("POST", "/api/calculators/macros", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Data struct {
				ProteinGrams int `json:"proteinGrams"`
				CarbsGrams   int `json:"carbsGrams"`
				FatGrams     int `json:"fatGrams"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Data.ProteinGrams != 150 || response.Data.CarbsGrams != 200 || response.Data.FatGrams != 67 {
			t.Errorf("macros = %d/%d/%d, want 150/200/67",
				response.Data.ProteinGrams, response.Data.CarbsGrams, response.Data.FatGrams)
		}
	})

	t.Run("caffeine reports safe status at 48 percent", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		payload := `{"items":[{"source":"brewedCoffee","servings":2}],"population":"adult","sensitivity":"normal"}`
		req, _ := http.NewRequest("POST", "/api/calculators/caffeine", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Data struct {
				TotalMg      float64 `json:"totalMg"`
				PercentLimit int     `json:"percentOfLimit"`
				Status       struct {
					Label string `json:"label"`
				} `json:"status"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Data.TotalMg != 190 {
			t.Errorf("totalMg = %v, want 190", response.Data.TotalMg)
		}
		if response.Data.PercentLimit != 48 {
			t.Errorf("percentOfLimit = %d, want 48", response.Data.PercentLimit)
		}
		if response.Data.Status.Label != "Safe" {
			t.Errorf("status = %q, want Safe", response.Data.Status.Label)
		}
	})

	t.Run("rejects out-of-range body measurements", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		payload := `{"weight":500,"weightUnit":"kg","height":180,"heightUnit":"cm","age":30,"sex":"male","activityLevel":"moderate","goal":"maintain"}`
		req, _ := http.NewRequest("POST", "/api/calculators/calories", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestRecoveryMiddlewareIntegration(t *testing.T) {
	t.Run("recovers from panic without crashing server", func(t *testing.T) {
		router := setupTestRouter(nil, nil)

		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		req, _ := http.NewRequest("GET", "/panic", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})
}

func TestCORSIntegration(t *testing.T) {
	t.Run("search endpoint has CORS for allowed origin", func(t *testing.T) {
		router := setupTestRouter(allMockSources(nil), nil)

		req, _ := http.NewRequest("GET", "/api/search?q=protein", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		gotOrigin := w.Header().Get("Access-Control-Allow-Origin")
		if gotOrigin != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", gotOrigin, "http://localhost:3000")
		}
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(nil, nil)

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}
}
