package calculator

import (
	"math"

	"github.com/foodpulse/backend/internal/domain"
)

// tdeeMultipliers maps activity level to the TDEE multiplier. This is the
// single source of truth for the calorie calculator; the protein, fiber and
// hydration calculators carry their own distinct tables.
var tdeeMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:   1.2,
	domain.ActivityLight:       1.375,
	domain.ActivityModerate:    1.55,
	domain.ActivityActive:      1.725,
	domain.ActivityExtraActive: 1.9,
}

// goalAdjustments are fixed daily calorie deltas per weight goal, derived
// from the ~7700 kcal/kg fat energy-density heuristic (1100 * 7 ≈ 7700).
var goalAdjustments = map[domain.Goal]float64{
	domain.GoalLose1Kg:    -1100,
	domain.GoalLoseHalfKg: -550,
	domain.GoalMaintain:   0,
	domain.GoalGainHalfKg: 550,
	domain.GoalGain1Kg:    1100,
}

// minTargetCalories floors the goal-adjusted target; aggressive deficits on
// small bodies would otherwise recommend unsafe intakes.
const minTargetCalories = 1200

// BMR computes basal metabolic rate via Mifflin-St Jeor from metric inputs.
// There is no formula branch for SexOther: callers must pass an explicit
// male or female formula basis or receive ErrUnsupportedSex.
func BMR(weightKg, heightCm float64, age int, sex domain.Sex) (float64, error) {
	if err := validateBody(weightKg, heightCm, age); err != nil {
		return 0, err
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case domain.SexMale:
		return base + 5, nil
	case domain.SexFemale:
		return base - 161, nil
	}
	return 0, domain.ErrUnsupportedSex
}

// TDEE computes total daily energy expenditure from an unrounded BMR
func TDEE(bmr float64, level domain.ActivityLevel) (float64, error) {
	mult, ok := tdeeMultipliers[level]
	if !ok {
		return 0, domain.ErrInvalidInput
	}
	return bmr * mult, nil
}

// Calories runs the full calorie calculation: convert to metric, BMR, TDEE,
// goal adjustment. BMR rounds half-up while TDEE and the target truncate
// from the unrounded intermediate values, matching the published example
// figures (BMR 1648.75 -> 1649, TDEE at moderate -> 2555).
func Calories(in domain.MeasurementInput) (*domain.CalorieResult, error) {
	weightKg, err := ToMetricWeight(in.Weight, in.WeightUnit)
	if err != nil {
		return nil, err
	}
	heightCm, err := ToMetricHeight(in.Height, in.HeightUnit)
	if err != nil {
		return nil, err
	}

	bmr, err := BMR(weightKg, heightCm, in.Age, in.Sex)
	if err != nil {
		return nil, err
	}

	tdee, err := TDEE(bmr, in.Activity)
	if err != nil {
		return nil, err
	}

	adj, ok := goalAdjustments[in.Goal]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	target := tdee + adj
	if target < minTargetCalories {
		target = minTargetCalories
	}

	return &domain.CalorieResult{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(tdee),
		TargetCalories: int(target),
		Goal:           in.Goal,
	}, nil
}

// validateBody checks metric inputs against plausible physiological bounds.
// The original site clamps these at the input widgets; as a library we
// validate explicitly instead of trusting callers.
func validateBody(weightKg, heightCm float64, age int) error {
	if weightKg < 30 || weightKg > 300 {
		return domain.ErrInvalidInput
	}
	if heightCm < 100 || heightCm > 250 {
		return domain.ErrInvalidInput
	}
	if age < 10 || age > 100 {
		return domain.ErrInvalidInput
	}
	return nil
}
