package services

import (
	"math"

	"fitgenius/internal/models"
)

type PlannedMealView struct {
	Slot     string  `json:"slot"`
	MealID   uint    `json:"meal_id"`
	MealName string  `json:"meal_name"`
	Servings int     `json:"servings"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
}

type DaySummary struct {
	Day      string            `json:"day"`
	Meals    []PlannedMealView `json:"meals"`
	Calories int               `json:"calories"`
	ProteinG float64           `json:"protein_g"`
	CarbsG   float64           `json:"carbs_g"`
	FatG     float64           `json:"fat_g"`
}

type WeekSummary struct {
	Days             []DaySummary `json:"days"`
	PlannedDayCount  int          `json:"planned_day_count"`
	AvgDailyCalories int          `json:"avg_daily_calories"`
	TargetCalories   int          `json:"target_calories"`
	CaloriesDelta    int          `json:"calories_delta"`
	AvgDailyProteinG int          `json:"avg_daily_protein_g"`
	TargetProteinG   int          `json:"target_protein_g"`
}

// BuildWeekSummary totals the planned week per day and compares the average
// planned day against the nutrition targets. Days with nothing planned are
// included empty but excluded from the averages.
func BuildWeekSummary(planned []models.PlannedMeal, mealsByID map[uint]models.Meal, targets NutritionTargets) WeekSummary {
	byDay := make(map[string][]models.PlannedMeal, len(models.WeekDays))
	for _, plannedMeal := range planned {
		byDay[plannedMeal.Day] = append(byDay[plannedMeal.Day], plannedMeal)
	}

	summary := WeekSummary{
		Days:           make([]DaySummary, 0, len(models.WeekDays)),
		TargetCalories: targets.DailyCalories,
		TargetProteinG: targets.DailyProteinG,
	}

	var totalCalories int
	var totalProtein float64
	for _, day := range models.WeekDays {
		daySummary := DaySummary{Day: day, Meals: make([]PlannedMealView, 0, len(byDay[day]))}
		for _, plannedMeal := range byDay[day] {
			meal, found := mealsByID[plannedMeal.MealID]
			if !found {
				continue
			}

			servings := plannedMeal.Servings
			if servings < 1 {
				servings = 1
			}

			daySummary.Meals = append(daySummary.Meals, PlannedMealView{
				Slot:     plannedMeal.Slot,
				MealID:   meal.ID,
				MealName: meal.Name,
				Servings: servings,
				Calories: meal.Calories * servings,
				ProteinG: meal.ProteinG * float64(servings),
			})
			daySummary.Calories += meal.Calories * servings
			daySummary.ProteinG += meal.ProteinG * float64(servings)
			daySummary.CarbsG += meal.CarbsG * float64(servings)
			daySummary.FatG += meal.FatG * float64(servings)
		}

		if len(daySummary.Meals) > 0 {
			summary.PlannedDayCount++
			totalCalories += daySummary.Calories
			totalProtein += daySummary.ProteinG
		}
		summary.Days = append(summary.Days, daySummary)
	}

	if summary.PlannedDayCount > 0 {
		summary.AvgDailyCalories = totalCalories / summary.PlannedDayCount
		summary.AvgDailyProteinG = int(math.Round(totalProtein / float64(summary.PlannedDayCount)))
		summary.CaloriesDelta = summary.AvgDailyCalories - targets.DailyCalories
	}

	return summary
}
