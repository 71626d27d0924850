package domain

// StatusBand is one row of an ordered threshold table. A value belongs to
// the first band whose Max it is strictly below; the final band uses +Inf
// as a catch-all. Color is a presentation tag ("green", "yellow", ...)
// carried through to the client untouched.
type StatusBand struct {
	Max   float64
	Label string
	Color string
}

// Status is a classified metric band as returned to the client
type Status struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// BMIResult holds the BMI value, its category and the healthy weight range
// for the given height. Values are computed fresh per calculation and never
// persisted.
type BMIResult struct {
	BMI              float64 `json:"bmi"`
	Category         Status  `json:"category"`
	HealthyWeightMin float64 `json:"healthyWeightMin"` // kg at BMI 18.5
	HealthyWeightMax float64 `json:"healthyWeightMax"` // kg at BMI 25
}

// CalorieResult holds BMR, TDEE and the goal-adjusted daily calorie target
type CalorieResult struct {
	BMR            int  `json:"bmr"`
	TDEE           int  `json:"tdee"`
	TargetCalories int  `json:"targetCalories"`
	Goal           Goal `json:"goal"`
}

// MacroResult is the gram split of a calorie target for a diet preset
type MacroResult struct {
	TargetCalories  int        `json:"targetCalories"`
	Preset          DietPreset `json:"preset"`
	ProteinGrams    int        `json:"proteinGrams"`
	CarbsGrams      int        `json:"carbsGrams"`
	FatGrams        int        `json:"fatGrams"`
	ProteinCalories int        `json:"proteinCalories"`
	CarbsCalories   int        `json:"carbsCalories"`
	FatCalories     int        `json:"fatCalories"`
}

// ProteinResult holds the daily protein recommendation in grams
type ProteinResult struct {
	GramsPerDay   float64 `json:"gramsPerDay"`
	BaselineGrams float64 `json:"baselineGrams"` // RDA 0.8 g/kg before adjustments
}

// FiberResult compares current fiber intake against the recommendation
type FiberResult struct {
	RecommendedGrams float64 `json:"recommendedGrams"`
	CurrentGrams     float64 `json:"currentGrams"`
	GapGrams         float64 `json:"gapGrams"`
	PercentOfTarget  int     `json:"percentOfTarget"`
	Status           Status  `json:"status"`
}

// HydrationResult holds the daily fluid recommendation
type HydrationResult struct {
	Liters  float64 `json:"liters"`
	Glasses int     `json:"glasses"` // 250 ml glasses
}

// CaffeineItem is one user-added caffeine source within a single
// calculation. MgPerServing comes from the built-in source catalog;
// TotalMg = MgPerServing * Servings.
type CaffeineItem struct {
	Source       string  `json:"source"`
	Servings     float64 `json:"servings"`
	MgPerServing float64 `json:"mgPerServing"`
	TotalMg      float64 `json:"totalMg"`
}

// CaffeineResult compares total intake against the population daily limit
// and estimates clearance time from the half-life.
type CaffeineResult struct {
	TotalMg        float64        `json:"totalMg"`
	LimitMg        float64        `json:"limitMg"`
	PercentOfLimit int            `json:"percentOfLimit"`
	Status         Status         `json:"status"`
	HalfLifeHours  float64        `json:"halfLifeHours"`
	ClearanceHours float64        `json:"clearanceHours"`
	Items          []CaffeineItem `json:"items"`
}
