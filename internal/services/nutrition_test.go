package services

import (
	"testing"

	"fitgenius/internal/models"
)

func TestMifflinStJeorBMRReferenceCase(t *testing.T) {
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	bmr := MifflinStJeorBMR(models.GenderMale, 80, 180, 30)
	if bmr != 1780 {
		t.Fatalf("expected BMR 1780, got %v", bmr)
	}

	female := MifflinStJeorBMR(models.GenderFemale, 80, 180, 30)
	if female != 1780-166 {
		t.Fatalf("expected female BMR %v, got %v", 1780-166, female)
	}
}

func TestMealDistributionSumsToOneHundred(t *testing.T) {
	total := 0
	for _, percent := range MealDistribution {
		total += percent
	}
	if total != 100 {
		t.Fatalf("expected distribution to sum to 100, got %d", total)
	}
}

func TestComputeNutritionCalorieFloors(t *testing.T) {
	tests := []struct {
		name   string
		gender string
		floor  int
	}{
		{name: "female floor", gender: models.GenderFemale, floor: MinCaloriesFemale},
		{name: "male floor", gender: models.GenderMale, floor: MinCaloriesMale},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			// Small, sedentary profile whose TDEE-400 lands below the floor.
			user := models.User{
				Age:           70,
				Gender:        testCase.gender,
				HeightCm:      150,
				WeightLbs:     95,
				ActivityLevel: models.ActivitySedentary,
				Goal:          models.GoalLoseWeight,
			}
			targets := ComputeNutrition(user, models.CalculatorSettings{})
			if targets.DailyCalories < testCase.floor {
				t.Fatalf("expected calories >= %d, got %d", testCase.floor, targets.DailyCalories)
			}
		})
	}
}

func TestComputeNutritionGoalAdjustments(t *testing.T) {
	base := models.User{
		Age:           30,
		Gender:        models.GenderMale,
		HeightCm:      180,
		WeightLbs:     KgToLbs(80),
		ActivityLevel: models.ActivityModerate,
	}

	maintain := base
	maintain.Goal = models.GoalMaintain
	maintainTargets := ComputeNutrition(maintain, models.CalculatorSettings{})
	if maintainTargets.BMR != 1780 {
		t.Fatalf("expected BMR 1780, got %d", maintainTargets.BMR)
	}
	if maintainTargets.DailyCalories != maintainTargets.MaintenanceCalories {
		t.Fatalf("expected maintain target %d, got %d", maintainTargets.MaintenanceCalories, maintainTargets.DailyCalories)
	}

	lose := base
	lose.Goal = models.GoalLoseWeight
	loseTargets := ComputeNutrition(lose, models.CalculatorSettings{})
	if loseTargets.DailyCalories != maintainTargets.MaintenanceCalories-400 {
		t.Fatalf("expected lose target %d, got %d", maintainTargets.MaintenanceCalories-400, loseTargets.DailyCalories)
	}

	gain := base
	gain.Goal = models.GoalGainMuscle
	gainTargets := ComputeNutrition(gain, models.CalculatorSettings{})
	if gainTargets.DailyCalories != maintainTargets.MaintenanceCalories+300 {
		t.Fatalf("expected gain target %d, got %d", maintainTargets.MaintenanceCalories+300, gainTargets.DailyCalories)
	}
}

func TestComputeNutritionSavedTargetOverrides(t *testing.T) {
	user := models.User{
		Age:           30,
		Gender:        models.GenderMale,
		HeightCm:      180,
		WeightLbs:     200,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalLoseWeight,
	}
	override := 2200
	targets := ComputeNutrition(user, models.CalculatorSettings{DailyCalorieTarget: &override})

	if !targets.TargetOverridden {
		t.Fatal("expected override flag")
	}
	if targets.DailyCalories != 2200 {
		t.Fatalf("expected overridden target 2200, got %d", targets.DailyCalories)
	}
}

func TestComputeNutritionProteinUsesGoalWeight(t *testing.T) {
	goalWeight := 180.0
	user := models.User{
		Age:           35,
		Gender:        models.GenderFemale,
		HeightCm:      170,
		WeightLbs:     240,
		ActivityLevel: models.ActivityLight,
		Goal:          models.GoalLoseWeight,
		GoalWeightLbs: &goalWeight,
	}
	targets := ComputeNutrition(user, models.CalculatorSettings{})
	if targets.DailyProteinG != 162 {
		t.Fatalf("expected protein 162 (180*0.9), got %d", targets.DailyProteinG)
	}
}

func TestComputeNutritionWaterRules(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		strict bool
		want   int
	}{
		{name: "default", weight: 180, strict: false, want: 8},
		{name: "heavy", weight: 305, strict: false, want: 16},
		{name: "strict program", weight: 180, strict: true, want: 16},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			user := models.User{
				Age:           40,
				Gender:        models.GenderMale,
				HeightCm:      178,
				WeightLbs:     testCase.weight,
				ActivityLevel: models.ActivityModerate,
				Goal:          models.GoalMaintain,
				StrictProgram: testCase.strict,
			}
			targets := ComputeNutrition(user, models.CalculatorSettings{})
			if targets.DailyWaterCups != testCase.want {
				t.Fatalf("expected %d cups, got %d", testCase.want, targets.DailyWaterCups)
			}
		})
	}
}

func TestComputeNutritionIncompleteProfileDefaults(t *testing.T) {
	targets := ComputeNutrition(models.User{}, models.CalculatorSettings{})

	if targets.BMR != DefaultBMR {
		t.Fatalf("expected default BMR %d, got %d", DefaultBMR, targets.BMR)
	}
	if targets.DailyCalories != DefaultCalories {
		t.Fatalf("expected default calories %d, got %d", DefaultCalories, targets.DailyCalories)
	}
	if targets.DailyProteinG != DefaultProteinG {
		t.Fatalf("expected default protein %d, got %d", DefaultProteinG, targets.DailyProteinG)
	}
	if targets.CaloriesBySlot[models.MealSlotBreakfast] != 450 {
		t.Fatalf("expected breakfast share 450 of 1800, got %d", targets.CaloriesBySlot[models.MealSlotBreakfast])
	}
}
