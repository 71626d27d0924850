package calculator

import (
	"math"

	"github.com/foodpulse/backend/internal/domain"
)

// Calories per gram of each macronutrient
const (
	calPerGramProtein = 4
	calPerGramCarbs   = 4
	calPerGramFat     = 9
)

// macroPreset is a protein/carb/fat calorie fraction triple summing to 1.0
type macroPreset struct {
	protein float64
	carbs   float64
	fat     float64
}

var macroPresets = map[domain.DietPreset]macroPreset{
	domain.PresetBalanced:    {protein: 0.30, carbs: 0.40, fat: 0.30},
	domain.PresetLowCarb:     {protein: 0.35, carbs: 0.25, fat: 0.40},
	domain.PresetHighProtein: {protein: 0.40, carbs: 0.30, fat: 0.30},
	domain.PresetKeto:        {protein: 0.25, carbs: 0.05, fat: 0.70},
}

// Macros splits a daily calorie target into macro grams for a diet preset.
// Grams are rounded half-up, so gram-derived calories may differ from the
// target by a few kcal.
func Macros(targetCalories int, preset domain.DietPreset) (*domain.MacroResult, error) {
	if targetCalories < 800 || targetCalories > 10000 {
		return nil, domain.ErrInvalidInput
	}
	p, ok := macroPresets[preset]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	cal := float64(targetCalories)
	proteinG := int(math.Round(cal * p.protein / calPerGramProtein))
	carbsG := int(math.Round(cal * p.carbs / calPerGramCarbs))
	fatG := int(math.Round(cal * p.fat / calPerGramFat))

	return &domain.MacroResult{
		TargetCalories:  targetCalories,
		Preset:          preset,
		ProteinGrams:    proteinG,
		CarbsGrams:      carbsG,
		FatGrams:        fatG,
		ProteinCalories: proteinG * calPerGramProtein,
		CarbsCalories:   carbsG * calPerGramCarbs,
		FatCalories:     fatG * calPerGramFat,
	}, nil
}
