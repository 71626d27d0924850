package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodpulse/backend/internal/calculator"
	"github.com/foodpulse/backend/internal/domain"
	"github.com/foodpulse/backend/internal/metrics"
	"github.com/foodpulse/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService     *usecase.SearchService
	contactService    *usecase.ContactService
	newsletterService *usecase.NewsletterService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	searchService *usecase.SearchService,
	contactService *usecase.ContactService,
	newsletterService *usecase.NewsletterService,
) *Handler {
	return &Handler{
		searchService:     searchService,
		contactService:    contactService,
		newsletterService: newsletterService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "foodpulse-backend",
		"version": "1.0.0",
	})
}

// Search handles GET /api/search?q=&type=&category=&limit=
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	contentType := domain.ContentType(c.DefaultQuery("type", string(domain.ContentAll)))
	category := c.Query("category")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	results, err := h.searchService.Search(c.Request.Context(), domain.SearchQuery{
		Query:       query,
		ContentType: contentType,
		Category:    category,
		Limit:       limit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrQueryTooShort) || errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.Printf("[SEARCH] query %q failed: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "search is temporarily unavailable"})
		return
	}

	// Results default to an empty array, never null
	if results == nil {
		results = []domain.SearchResult{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"query":       query,
			"contentType": contentType,
			"results":     results,
			"totalCount":  len(results),
		},
	})
}

// Contact handles POST /api/contact
func (h *Handler) Contact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	fieldErrs, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailNotConfigured) {
			log.Printf("[CONTACT] email provider not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "contact form is temporarily unavailable"})
			return
		}
		log.Printf("[CONTACT] submit failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to send your message, please try again later"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "validation failed", "fields": fieldErrs})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thanks for reaching out! We'll get back to you soon."})
}

// Newsletter handles POST /api/newsletter
func (h *Handler) Newsletter(c *gin.Context) {
	var req domain.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if err := h.newsletterService.Subscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "a valid email address is required"})
			return
		}
		if errors.Is(err, domain.ErrEmailNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "newsletter signup is temporarily unavailable"})
			return
		}
		log.Printf("[NEWSLETTER] subscribe failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "signup failed, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "You're subscribed! Watch your inbox for the next issue."})
}

// calculatorError maps formula-engine errors onto HTTP responses
func calculatorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedSex):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "inputs are out of the supported range"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "calculation failed"})
	}
}

// CalculateBMI handles POST /api/calculators/bmi
func (h *Handler) CalculateBMI(c *gin.Context) {
	var req domain.MeasurementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	metrics.IncCalculatorRequest("bmi")

	result, err := calculator.BMI(req.Weight, req.WeightUnit, req.Height, req.HeightUnit)
	if err != nil {
		calculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// CalculateCalories handles POST /api/calculators/calories
func (h *Handler) CalculateCalories(c *gin.Context) {
	var req domain.MeasurementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	metrics.IncCalculatorRequest("calories")

	result, err := calculator.Calories(req)
	if err != nil {
		calculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

type macroRequest struct {
	TargetCalories int               `json:"targetCalories"`
	Preset         domain.DietPreset `json:"preset"`
}

// CalculateMacros handles POST /api/calculators/macros
func (h *Handler) CalculateMacros(c *gin.Context) {
	var req macroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	metrics.IncCalculatorRequest("macros")

	result, err := calculator.Macros(req.TargetCalories, req.Preset)
	if err != nil {
		calculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

type proteinRequest struct {
	Weight     float64              `json:"weight"`
	WeightUnit domain.WeightUnit    `json:"weightUnit"`
	Activity   domain.ActivityLevel `json:"activityLevel"`
	Goal       domain.ProteinGoal   `json:"goal"`
}

// CalculateProtein handles POST /api/calculators/protein
func (h *Handler) CalculateProtein(c *gin.Context) {
	var req proteinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	metrics.IncCalculatorRequest("protein")

	result, err := calculator.Protein(req.Weight, req.WeightUnit, req.Activity, req.Goal)
	if err != nil {
		calculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

type fiberRequest struct {
	Sex          domain.Sex           `json:"sex"`
	Age          int                  `json:"age"`
	Activity     domain.ActivityLevel `json:"activityLevel"`
	CurrentGrams float64              `json:"currentGrams"`
}

// CalculateFiber handles POST /api/calculators/fiber
func (h *Handler) CalculateFiber(c *gin.Context) {
	var req fiberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	metrics.IncCalculatorRequest("fiber")

	result, err := calculator.Fiber(req.Sex, req.Age, req.Activity, req.CurrentGrams)
	if err != nil {
		calculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

type hydrationRequest struct {
	Weight     float64              `json:"weight"`
	WeightUnit domain.WeightUnit    `json:"weightUnit"`
	Activity   domain.ActivityLevel `json:"activityLevel"`
	Climate    domain.Climate       `json:"climate"`
	LifeStage  domain.LifeStage     `json:"lifeStage"`
}

// CalculateHydration handles POST /api/calculators/hydration
func (h *Handler) CalculateHydration(c *gin.Context) {
	var req hydrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	if req.LifeStage == "" {
		req.LifeStage = domain.LifeStageNone
	}
	metrics.IncCalculatorRequest("hydration")

	result, err := calculator.Hydration(req.Weight, req.WeightUnit, req.Activity, req.Climate, req.LifeStage)
	if err != nil {
		calculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

type caffeineRequest struct {
	Items       []calculator.CaffeineInput `json:"items"`
	Population  domain.PopulationGroup     `json:"population"`
	Sensitivity domain.CaffeineSensitivity `json:"sensitivity"`
}

// CalculateCaffeine handles POST /api/calculators/caffeine
func (h *Handler) CalculateCaffeine(c *gin.Context) {
	var req caffeineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	if req.Population == "" {
		req.Population = domain.PopulationAdult
	}
	if req.Sensitivity == "" {
		req.Sensitivity = domain.SensitivityNormal
	}
	metrics.IncCalculatorRequest("caffeine")

	result, err := calculator.Caffeine(req.Items, req.Population, req.Sensitivity)
	if err != nil {
		calculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
