package calculator

import (
	"errors"
	"testing"

	"github.com/foodpulse/backend/internal/domain"
)

func TestHydration(t *testing.T) {
	t.Run("baseline temperate sedentary", func(t *testing.T) {
		// 70 * 0.033 = 2.31 L -> 9 glasses of 250ml
		result, err := Hydration(70, domain.WeightKg, domain.ActivitySedentary, domain.ClimateTemperate, domain.LifeStageNone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Liters != 2.3 {
			t.Errorf("Liters = %v, want 2.3", result.Liters)
		}
		if result.Glasses != 9 {
			t.Errorf("Glasses = %d, want 9", result.Glasses)
		}
	})

	t.Run("activity and climate multiply", func(t *testing.T) {
		// 70 * 0.033 * 1.2 * 1.15 = 3.1878 -> 3.2
		result, err := Hydration(70, domain.WeightKg, domain.ActivityActive, domain.ClimateHot, domain.LifeStageNone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Liters != 3.2 {
			t.Errorf("Liters = %v, want 3.2", result.Liters)
		}
	})

	t.Run("pregnancy adds a fixed bonus", func(t *testing.T) {
		base, err := Hydration(70, domain.WeightKg, domain.ActivitySedentary, domain.ClimateTemperate, domain.LifeStageNone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pregnant, err := Hydration(70, domain.WeightKg, domain.ActivitySedentary, domain.ClimateTemperate, domain.LifeStagePregnant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(pregnant.Liters-base.Liters, 0.3) {
			t.Errorf("pregnancy bonus = %v, want 0.3", pregnant.Liters-base.Liters)
		}
	})

	t.Run("nursing bonus is larger than pregnancy", func(t *testing.T) {
		nursing, err := Hydration(70, domain.WeightKg, domain.ActivitySedentary, domain.ClimateTemperate, domain.LifeStageNursing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if nursing.Liters != 3.0 { // 2.31 + 0.7 = 3.01 -> 3.0
			t.Errorf("Liters = %v, want 3.0", nursing.Liters)
		}
	})

	t.Run("rejects unknown climate", func(t *testing.T) {
		_, err := Hydration(70, domain.WeightKg, domain.ActivitySedentary, domain.Climate("arctic"), domain.LifeStageNone)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})
}
