package calculator

import "github.com/foodpulse/backend/internal/domain"

// Conversion factors to metric base units
const (
	kgPerLb = 0.453592
	cmPerFt = 30.48
)

// ToMetricWeight converts a weight value to kilograms.
func ToMetricWeight(value float64, unit domain.WeightUnit) (float64, error) {
	switch unit {
	case domain.WeightKg:
		return value, nil
	case domain.WeightLbs:
		return value * kgPerLb, nil
	}
	return 0, domain.ErrInvalidInput
}

// ToMetricHeight converts a height value to centimeters. The "ft" unit is
// treated as decimal feet (value * 30.48), not feet+inches; this matches
// the original calculator inputs.
func ToMetricHeight(value float64, unit domain.HeightUnit) (float64, error) {
	switch unit {
	case domain.HeightCm:
		return value, nil
	case domain.HeightFt:
		return value * cmPerFt, nil
	}
	return 0, domain.ErrInvalidInput
}
