package domain

// WeightUnit is the unit a weight value was entered in
type WeightUnit string

const (
	WeightKg  WeightUnit = "kg"
	WeightLbs WeightUnit = "lbs"
)

// Valid reports whether the unit is one of the supported weight units
func (u WeightUnit) Valid() bool {
	return u == WeightKg || u == WeightLbs
}

// HeightUnit is the unit a height value was entered in
type HeightUnit string

const (
	HeightCm HeightUnit = "cm"
	HeightFt HeightUnit = "ft"
)

func (u HeightUnit) Valid() bool {
	return u == HeightCm || u == HeightFt
}

// Sex is the formula basis for sex-dependent calculations.
// Mifflin-St Jeor only defines male/female constants; SexOther is a valid
// profile value but callers must pick an explicit formula basis for BMR.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale || s == SexOther
}

// ActivityLevel is the 5-level self-reported activity scale shared by the
// calorie, protein, fiber and hydration calculators. Each calculator maps
// the level to its own multiplier table.
type ActivityLevel string

const (
	ActivitySedentary   ActivityLevel = "sedentary"
	ActivityLight       ActivityLevel = "light"
	ActivityModerate    ActivityLevel = "moderate"
	ActivityActive      ActivityLevel = "active"
	ActivityExtraActive ActivityLevel = "extraActive"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityExtraActive:
		return true
	}
	return false
}

// Goal is the weight goal driving the daily calorie adjustment
type Goal string

const (
	GoalLose1Kg    Goal = "lose1kg"
	GoalLoseHalfKg Goal = "lose05kg"
	GoalMaintain   Goal = "maintain"
	GoalGainHalfKg Goal = "gain05kg"
	GoalGain1Kg    Goal = "gain1kg"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalLose1Kg, GoalLoseHalfKg, GoalMaintain, GoalGainHalfKg, GoalGain1Kg:
		return true
	}
	return false
}

// DietPreset names a fixed protein/carb/fat fraction triple
type DietPreset string

const (
	PresetBalanced    DietPreset = "balanced"
	PresetLowCarb     DietPreset = "lowCarb"
	PresetHighProtein DietPreset = "highProtein"
	PresetKeto        DietPreset = "keto"
)

func (p DietPreset) Valid() bool {
	switch p {
	case PresetBalanced, PresetLowCarb, PresetHighProtein, PresetKeto:
		return true
	}
	return false
}

// ProteinGoal adjusts the protein recommendation beyond the RDA baseline
type ProteinGoal string

const (
	ProteinMaintain    ProteinGoal = "maintain"
	ProteinLoseWeight  ProteinGoal = "loseWeight"
	ProteinBuildMuscle ProteinGoal = "buildMuscle"
)

func (g ProteinGoal) Valid() bool {
	return g == ProteinMaintain || g == ProteinLoseWeight || g == ProteinBuildMuscle
}

// Climate scales the hydration recommendation
type Climate string

const (
	ClimateCold      Climate = "cold"
	ClimateTemperate Climate = "temperate"
	ClimateHot       Climate = "hot"
	ClimateVeryHot   Climate = "veryHot"
)

func (c Climate) Valid() bool {
	switch c {
	case ClimateCold, ClimateTemperate, ClimateHot, ClimateVeryHot:
		return true
	}
	return false
}

// LifeStage adds a fixed hydration bonus for pregnancy or nursing
type LifeStage string

const (
	LifeStageNone     LifeStage = "none"
	LifeStagePregnant LifeStage = "pregnant"
	LifeStageNursing  LifeStage = "nursing"
)

func (s LifeStage) Valid() bool {
	return s == LifeStageNone || s == LifeStagePregnant || s == LifeStageNursing
}

// PopulationGroup selects the daily caffeine limit
type PopulationGroup string

const (
	PopulationAdult      PopulationGroup = "adult"
	PopulationPregnant   PopulationGroup = "pregnant"
	PopulationAdolescent PopulationGroup = "adolescent"
)

func (p PopulationGroup) Valid() bool {
	return p == PopulationAdult || p == PopulationPregnant || p == PopulationAdolescent
}

// CaffeineSensitivity selects the caffeine half-life used for clearance
type CaffeineSensitivity string

const (
	SensitivityLow    CaffeineSensitivity = "low"
	SensitivityNormal CaffeineSensitivity = "normal"
	SensitivityHigh   CaffeineSensitivity = "high"
)

func (s CaffeineSensitivity) Valid() bool {
	return s == SensitivityLow || s == SensitivityNormal || s == SensitivityHigh
}

// MeasurementInput is the common body-measurement input shared by the
// calorie, BMI, protein, fiber and hydration calculators. Weight and height
// carry their entry unit; calculators convert to metric before computing.
type MeasurementInput struct {
	Weight     float64       `json:"weight" binding:"required"`
	WeightUnit WeightUnit    `json:"weightUnit"`
	Height     float64       `json:"height"`
	HeightUnit HeightUnit    `json:"heightUnit"`
	Age        int           `json:"age"`
	Sex        Sex           `json:"sex"`
	Activity   ActivityLevel `json:"activityLevel"`
	Goal       Goal          `json:"goal"`
}
