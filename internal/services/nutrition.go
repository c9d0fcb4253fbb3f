package services

import (
	"math"

	"fitgenius/internal/models"
)

const (
	DefaultBMR      = 1500
	DefaultProteinG = 120
	DefaultCalories = 1800

	MinCaloriesMale   = 1500
	MinCaloriesFemale = 1200

	proteinPerGoalLb = 0.9
)

// MealDistribution is the fixed calorie/protein split across the day. The
// four shares always sum to 100.
var MealDistribution = map[string]int{
	models.MealSlotBreakfast: 25,
	models.MealSlotLunch:     35,
	models.MealSlotDinner:    30,
	models.MealSlotSnack:     10,
}

type NutritionTargets struct {
	BMR                 int            `json:"bmr"`
	MaintenanceCalories int            `json:"maintenance_calories"`
	DailyCalories       int            `json:"daily_calories"`
	DailyProteinG       int            `json:"daily_protein_g"`
	DailyWaterCups      int            `json:"daily_water_cups"`
	CaloriesBySlot      map[string]int `json:"calories_by_slot"`
	ProteinBySlot       map[string]int `json:"protein_by_slot"`
	TargetOverridden    bool           `json:"target_overridden"`
}

// MifflinStJeorBMR expects metric inputs; callers holding pounds or inches
// convert first.
func MifflinStJeorBMR(gender string, weightKg float64, heightCm float64, age int) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

func MinimumCalories(gender string) int {
	if gender == models.GenderMale {
		return MinCaloriesMale
	}
	return MinCaloriesFemale
}

// ComputeNutrition derives daily targets from the profile plus optional saved
// calculator overrides. It never fails: incomplete profiles fall back to the
// documented defaults.
func ComputeNutrition(user models.User, settings models.CalculatorSettings) NutritionTargets {
	targets := NutritionTargets{
		BMR:            DefaultBMR,
		DailyProteinG:  DefaultProteinG,
		DailyCalories:  DefaultCalories,
		DailyWaterCups: 8,
	}

	profileComplete := user.Age > 0 && user.HeightCm > 0 && user.WeightLbs > 0
	multiplier, knownActivity := ActivityMultipliers[user.ActivityLevel]

	if profileComplete {
		bmr := MifflinStJeorBMR(user.Gender, LbsToKg(user.WeightLbs), user.HeightCm, user.Age)
		targets.BMR = int(math.Round(bmr))
		if !knownActivity {
			multiplier = ActivityMultipliers[models.ActivityModerate]
		}
		tdee := bmr * multiplier
		targets.MaintenanceCalories = int(math.Round(tdee))
		targets.DailyCalories = calorieTarget(user, tdee)
	}

	if settings.DailyCalorieTarget != nil && *settings.DailyCalorieTarget > 0 {
		targets.DailyCalories = *settings.DailyCalorieTarget
		targets.TargetOverridden = true
	}

	goalWeight := user.WeightLbs
	if user.GoalWeightLbs != nil && *user.GoalWeightLbs > 0 {
		goalWeight = *user.GoalWeightLbs
	}
	if goalWeight > 0 {
		// Protein keys off goal weight, never current weight, to avoid
		// overestimating needs for users with a large weight gap.
		targets.DailyProteinG = int(math.Round(goalWeight * proteinPerGoalLb))
	}

	if user.WeightLbs >= 300 || user.StrictProgram {
		targets.DailyWaterCups = 16
	}

	targets.CaloriesBySlot = distributeBySlot(targets.DailyCalories)
	targets.ProteinBySlot = distributeBySlot(targets.DailyProteinG)
	return targets
}

func calorieTarget(user models.User, tdee float64) int {
	switch user.Goal {
	case models.GoalLoseWeight:
		target := int(math.Round(tdee)) - 400
		floor := MinimumCalories(user.Gender)
		if target < floor {
			return floor
		}
		return target
	case models.GoalGainMuscle:
		return int(math.Round(tdee)) + 300
	default:
		return int(math.Round(tdee))
	}
}

func distributeBySlot(total int) map[string]int {
	shares := make(map[string]int, len(MealDistribution))
	for slot, percent := range MealDistribution {
		shares[slot] = int(math.Round(float64(total) * float64(percent) / 100))
	}
	return shares
}
