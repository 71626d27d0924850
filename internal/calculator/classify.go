package calculator

import "github.com/foodpulse/backend/internal/domain"

// Classify returns the first band whose Max the value is strictly below.
// Band tables are ordered ascending and end with a +Inf catch-all, giving
// half-open intervals: a value exactly on a boundary falls into the band
// above it (BMI 18.5 is "Normal Weight", 25 is "Overweight").
func Classify(value float64, bands []domain.StatusBand) domain.Status {
	for _, b := range bands {
		if value < b.Max {
			return domain.Status{Label: b.Label, Color: b.Color}
		}
	}
	// Unreachable when the table ends with +Inf; return the last band anyway
	last := bands[len(bands)-1]
	return domain.Status{Label: last.Label, Color: last.Color}
}
