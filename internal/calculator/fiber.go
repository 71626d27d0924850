package calculator

import (
	"math"

	"github.com/foodpulse/backend/internal/domain"
)

// fiberBase is the recommended daily fiber in grams by sex and the age-50
// threshold (IOM adequate-intake values).
const fiberAgeThreshold = 50

func fiberBaseGrams(sex domain.Sex, age int) (float64, error) {
	switch sex {
	case domain.SexMale:
		if age < fiberAgeThreshold {
			return 38, nil
		}
		return 30, nil
	case domain.SexFemale, domain.SexOther:
		// Fiber has no published intake row beyond male/female; the lower
		// (female) table is used for "other" rather than failing the
		// calculation, unlike BMR where the constants diverge sharply.
		if age < fiberAgeThreshold {
			return 25, nil
		}
		return 21, nil
	}
	return 0, domain.ErrInvalidInput
}

// fiberActivityAdjustments nudge the recommendation by up to ±5-10%
var fiberActivityAdjustments = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:   0.95,
	domain.ActivityLight:       1.0,
	domain.ActivityModerate:    1.05,
	domain.ActivityActive:      1.1,
	domain.ActivityExtraActive: 1.1,
}

// fiberBands classify percent-of-target: thresholds at 90/70/50%
var fiberBands = []domain.StatusBand{
	{Max: 50, Label: "Well Below Target", Color: "red"},
	{Max: 70, Label: "Below Target", Color: "orange"},
	{Max: 90, Label: "Close to Target", Color: "yellow"},
	{Max: math.Inf(1), Label: "On Track", Color: "green"},
}

// Fiber computes the recommended daily fiber intake and compares the
// current intake against it.
func Fiber(sex domain.Sex, age int, level domain.ActivityLevel, currentGrams float64) (*domain.FiberResult, error) {
	if age < 10 || age > 100 {
		return nil, domain.ErrInvalidInput
	}
	if currentGrams < 0 || currentGrams > 200 {
		return nil, domain.ErrInvalidInput
	}

	base, err := fiberBaseGrams(sex, age)
	if err != nil {
		return nil, err
	}
	adj, ok := fiberActivityAdjustments[level]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	recommended := round1(base * adj)
	gap := round1(recommended - currentGrams)
	if gap < 0 {
		gap = 0
	}
	percent := int(math.Round(currentGrams / recommended * 100))

	return &domain.FiberResult{
		RecommendedGrams: recommended,
		CurrentGrams:     currentGrams,
		GapGrams:         gap,
		PercentOfTarget:  percent,
		Status:           Classify(float64(percent), fiberBands),
	}, nil
}
