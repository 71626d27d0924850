package calculator

import (
	"math"

	"github.com/foodpulse/backend/internal/domain"
)

// Baseline fluid need in liters per kg of body weight
const hydrationLitersPerKg = 0.033

// Glass size used for the glasses-per-day figure
const glassMl = 250

var hydrationActivityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:   1.0,
	domain.ActivityLight:       1.05,
	domain.ActivityModerate:    1.1,
	domain.ActivityActive:      1.2,
	domain.ActivityExtraActive: 1.3,
}

var hydrationClimateMultipliers = map[domain.Climate]float64{
	domain.ClimateCold:      0.95,
	domain.ClimateTemperate: 1.0,
	domain.ClimateHot:       1.15,
	domain.ClimateVeryHot:   1.25,
}

// Fixed additive bonuses in liters, applied after the multipliers
var hydrationLifeStageBonus = map[domain.LifeStage]float64{
	domain.LifeStageNone:     0,
	domain.LifeStagePregnant: 0.3,
	domain.LifeStageNursing:  0.7,
}

// Hydration computes the daily fluid recommendation:
// weightKg * 0.033 L * activity * climate + life-stage bonus.
func Hydration(weight float64, unit domain.WeightUnit, level domain.ActivityLevel, climate domain.Climate, stage domain.LifeStage) (*domain.HydrationResult, error) {
	weightKg, err := ToMetricWeight(weight, unit)
	if err != nil {
		return nil, err
	}
	if weightKg < 30 || weightKg > 300 {
		return nil, domain.ErrInvalidInput
	}

	actMult, ok := hydrationActivityMultipliers[level]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	climMult, ok := hydrationClimateMultipliers[climate]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	bonus, ok := hydrationLifeStageBonus[stage]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	liters := weightKg*hydrationLitersPerKg*actMult*climMult + bonus
	return &domain.HydrationResult{
		Liters:  round1(liters),
		Glasses: int(math.Round(liters * 1000 / glassMl)),
	}, nil
}
