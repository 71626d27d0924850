package calculator

import (
	"math"

	"github.com/foodpulse/backend/internal/domain"
)

// CaffeineSources is the built-in catalog of mg per serving. Serving counts
// entered by the user multiply these values.
var CaffeineSources = map[string]float64{
	"brewedCoffee":  95,
	"espresso":      63,
	"blackTea":      47,
	"greenTea":      28,
	"cola":          34,
	"energyDrink":   80,
	"darkChocolate": 12,
	"decafCoffee":   2,
}

// Daily caffeine limits in mg by population group
var caffeineLimits = map[domain.PopulationGroup]float64{
	domain.PopulationAdult:      400,
	domain.PopulationPregnant:   200,
	domain.PopulationAdolescent: 100,
}

// Caffeine half-life in hours. Pregnancy slows clearance dramatically;
// otherwise sensitivity stands in for metabolizer speed.
var caffeineHalfLives = map[domain.PopulationGroup]map[domain.CaffeineSensitivity]float64{
	domain.PopulationAdult: {
		domain.SensitivityLow:    3,
		domain.SensitivityNormal: 5,
		domain.SensitivityHigh:   8,
	},
	domain.PopulationPregnant: {
		domain.SensitivityLow:    10,
		domain.SensitivityNormal: 10,
		domain.SensitivityHigh:   10,
	},
	domain.PopulationAdolescent: {
		domain.SensitivityLow:    4,
		domain.SensitivityNormal: 5,
		domain.SensitivityHigh:   6,
	},
}

// 5-6 half-lives clear ~97% of circulating caffeine
const clearanceHalfLives = 5.5

// Status by percent of the daily limit
var caffeineBands = []domain.StatusBand{
	{Max: 50.5, Label: "Safe", Color: "green"},
	{Max: 75.5, Label: "Moderate", Color: "yellow"},
	{Max: 100.5, Label: "High", Color: "orange"},
	{Max: math.Inf(1), Label: "Excessive", Color: "red"},
}

// CaffeineInput is one user-added source entry before resolution against
// the catalog.
type CaffeineInput struct {
	Source   string  `json:"source"`
	Servings float64 `json:"servings"`
}

// Caffeine sums the intake across user-added items and compares it against
// the population daily limit. Unknown sources and non-positive serving
// counts are rejected rather than skipped.
func Caffeine(items []CaffeineInput, population domain.PopulationGroup, sensitivity domain.CaffeineSensitivity) (*domain.CaffeineResult, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	limit, ok := caffeineLimits[population]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	halfLife, ok := caffeineHalfLives[population][sensitivity]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	var total float64
	resolved := make([]domain.CaffeineItem, 0, len(items))
	for _, item := range items {
		mg, ok := CaffeineSources[item.Source]
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		if item.Servings <= 0 || item.Servings > 50 {
			return nil, domain.ErrInvalidInput
		}
		itemTotal := mg * item.Servings
		total += itemTotal
		resolved = append(resolved, domain.CaffeineItem{
			Source:       item.Source,
			Servings:     item.Servings,
			MgPerServing: mg,
			TotalMg:      itemTotal,
		})
	}

	percent := int(math.Round(total / limit * 100))
	return &domain.CaffeineResult{
		TotalMg:        total,
		LimitMg:        limit,
		PercentOfLimit: percent,
		Status:         Classify(float64(percent), caffeineBands),
		HalfLifeHours:  halfLife,
		ClearanceHours: round1(halfLife * clearanceHalfLives),
		Items:          resolved,
	}, nil
}
