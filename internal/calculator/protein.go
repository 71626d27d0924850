package calculator

import "github.com/foodpulse/backend/internal/domain"

// RDA protein baseline in grams per kg of body weight
const proteinRDAPerKg = 0.8

// proteinActivityMultipliers is a distinct 5-level table from the TDEE one:
// protein need scales with training load faster than total energy does.
var proteinActivityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:   1.0,
	domain.ActivityLight:       1.2,
	domain.ActivityModerate:    1.4,
	domain.ActivityActive:      1.6,
	domain.ActivityExtraActive: 1.8,
}

var proteinGoalMultipliers = map[domain.ProteinGoal]float64{
	domain.ProteinMaintain:    1.0,
	domain.ProteinLoseWeight:  1.2,
	domain.ProteinBuildMuscle: 1.4,
}

// Protein computes the daily protein recommendation:
// weightKg * 0.8 * activity multiplier * goal multiplier.
func Protein(weight float64, unit domain.WeightUnit, level domain.ActivityLevel, goal domain.ProteinGoal) (*domain.ProteinResult, error) {
	weightKg, err := ToMetricWeight(weight, unit)
	if err != nil {
		return nil, err
	}
	if weightKg < 30 || weightKg > 300 {
		return nil, domain.ErrInvalidInput
	}

	actMult, ok := proteinActivityMultipliers[level]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	goalMult, ok := proteinGoalMultipliers[goal]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	baseline := weightKg * proteinRDAPerKg
	return &domain.ProteinResult{
		GramsPerDay:   round1(baseline * actMult * goalMult),
		BaselineGrams: round1(baseline),
	}, nil
}
