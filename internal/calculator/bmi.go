package calculator

import (
	"math"

	"github.com/foodpulse/backend/internal/domain"
)

// Healthy BMI bounds used to solve the weight range at a given height
const (
	bmiHealthyLow  = 18.5
	bmiHealthyHigh = 25.0
)

// bmiBands are half-open: 18.5 is Normal Weight, 25 is Overweight, 30 is Obese
var bmiBands = []domain.StatusBand{
	{Max: 18.5, Label: "Underweight", Color: "blue"},
	{Max: 25, Label: "Normal Weight", Color: "green"},
	{Max: 30, Label: "Overweight", Color: "yellow"},
	{Max: math.Inf(1), Label: "Obese", Color: "red"},
}

// BMIValue computes body mass index from metric inputs
func BMIValue(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, domain.ErrInvalidInput
	}
	h := heightCm / 100
	return weightKg / (h * h), nil
}

// BMICategory classifies a BMI value into the standard four bands
func BMICategory(bmi float64) domain.Status {
	return Classify(bmi, bmiBands)
}

// BMI computes BMI, its category and the healthy weight range for the
// height (weights solving BMI=18.5 and BMI=25).
func BMI(weight float64, weightUnit domain.WeightUnit, height float64, heightUnit domain.HeightUnit) (*domain.BMIResult, error) {
	weightKg, err := ToMetricWeight(weight, weightUnit)
	if err != nil {
		return nil, err
	}
	heightCm, err := ToMetricHeight(height, heightUnit)
	if err != nil {
		return nil, err
	}
	if weightKg < 30 || weightKg > 300 || heightCm < 100 || heightCm > 250 {
		return nil, domain.ErrInvalidInput
	}

	bmi, err := BMIValue(weightKg, heightCm)
	if err != nil {
		return nil, err
	}

	hm := heightCm / 100
	return &domain.BMIResult{
		BMI:              round1(bmi),
		Category:         BMICategory(bmi),
		HealthyWeightMin: round1(bmiHealthyLow * hm * hm),
		HealthyWeightMax: round1(bmiHealthyHigh * hm * hm),
	}, nil
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
