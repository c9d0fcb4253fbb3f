package services

import (
	"errors"
	"math"
	"time"

	"fitgenius/internal/models"
)

// 3500 kcal per pound of fat is a fixed constant of the plan math, not a
// tunable parameter.
const caloriesPerLb = 3500.0
const weeksPerMonth = 4.33

// ErrGoalNotBelowCurrent is a validation failure, not a fault: callers report
// it inline and keep going.
var ErrGoalNotBelowCurrent = errors.New("current weight must exceed goal weight")

type PlanInput struct {
	CurrentWeightLbs float64
	GoalWeightLbs    float64
	Age              int
	HeightInches     float64
	Gender           string
	ActivityLevel    string
	DailyDeficit     int
	MonthsTimeline   float64
	Today            time.Time
}

type WeightLossPlan struct {
	CurrentWeightLbs float64   `json:"current_weight_lbs"`
	GoalWeightLbs    float64   `json:"goal_weight_lbs"`
	TotalToLoseLbs   float64   `json:"total_to_lose_lbs"`
	BMR              int       `json:"bmr"`
	TDEE             int       `json:"tdee"`
	MinimumCalories  int       `json:"minimum_calories"`
	RequestedDeficit int       `json:"requested_deficit"`
	ActualDeficit    int       `json:"actual_deficit"`
	TargetCalories   int       `json:"target_calories"`
	WeeklyLossLbs    float64   `json:"weekly_loss_lbs"`
	WeeksToGoal      float64   `json:"weeks_to_goal"`
	MonthsToGoal     float64   `json:"months_to_goal"`
	TargetDate       time.Time `json:"target_date"`

	// The requested-timeline reconciliation is informational: the schedule
	// above always honors the (safety-capped) deficit, while
	// RequiredDailyDeficit shows what the requested timeline would demand.
	RequestedMonths      float64 `json:"requested_months"`
	RequiredDailyDeficit int     `json:"required_daily_deficit"`
	TimelineMatches      bool    `json:"timeline_matches"`

	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// ComputePlan builds a weight-loss schedule from current state and the
// user-chosen deficit/timeline. The deficit is capped so target calories
// never drop below the gender safety floor; the timeline the user asked for
// is reconciled against the achievable one rather than silently honored.
func ComputePlan(input PlanInput) (WeightLossPlan, error) {
	if input.CurrentWeightLbs <= input.GoalWeightLbs {
		return WeightLossPlan{}, ErrGoalNotBelowCurrent
	}

	today := input.Today
	if today.IsZero() {
		today = time.Now()
	}

	bmr := MifflinStJeorBMR(input.Gender, LbsToKg(input.CurrentWeightLbs), InchesToCm(input.HeightInches), input.Age)
	multiplier, known := ActivityMultipliers[input.ActivityLevel]
	if !known {
		multiplier = ActivityMultipliers[models.ActivityModerate]
	}
	tdee := bmr * multiplier

	minimumCalories := MinimumCalories(input.Gender)
	maxSafeDeficit := int(math.Round(tdee)) - minimumCalories
	if maxSafeDeficit < 0 {
		maxSafeDeficit = 0
	}

	actualDeficit := input.DailyDeficit
	if actualDeficit > maxSafeDeficit {
		actualDeficit = maxSafeDeficit
	}

	targetCalories := int(math.Round(tdee)) - actualDeficit
	if targetCalories < minimumCalories {
		targetCalories = minimumCalories
	}

	totalToLose := input.CurrentWeightLbs - input.GoalWeightLbs
	weeklyLoss := float64(actualDeficit) * 7 / caloriesPerLb

	plan := WeightLossPlan{
		CurrentWeightLbs: input.CurrentWeightLbs,
		GoalWeightLbs:    input.GoalWeightLbs,
		TotalToLoseLbs:   roundTo(totalToLose, 1),
		BMR:              int(math.Round(bmr)),
		TDEE:             int(math.Round(tdee)),
		MinimumCalories:  minimumCalories,
		RequestedDeficit: input.DailyDeficit,
		ActualDeficit:    actualDeficit,
		TargetCalories:   targetCalories,
		WeeklyLossLbs:    roundTo(weeklyLoss, 2),
		RequestedMonths:  input.MonthsTimeline,
	}

	if weeklyLoss > 0 {
		weeksToGoal := totalToLose / weeklyLoss
		plan.WeeksToGoal = roundTo(weeksToGoal, 1)
		plan.MonthsToGoal = roundTo(weeksToGoal/weeksPerMonth, 1)
		plan.TargetDate = today.AddDate(0, 0, int(math.Round(weeksToGoal*7)))
	}

	if input.MonthsTimeline > 0 {
		requiredWeekly := totalToLose / (input.MonthsTimeline * weeksPerMonth)
		plan.RequiredDailyDeficit = int(math.Round(requiredWeekly * caloriesPerLb / 7))
		plan.TimelineMatches = weeklyLoss > 0 && math.Abs(plan.MonthsToGoal-input.MonthsTimeline) < 0.5
	}

	plan.ProteinG, plan.CarbsG, plan.FatG = planMacros(input.GoalWeightLbs, targetCalories)
	return plan, nil
}

// planMacros reserves protein at 0.9 g per goal pound and splits the
// remaining calories 45% carbs / 35% fat by calories (4 kcal/g carbs,
// 9 kcal/g fat).
func planMacros(goalWeightLbs float64, targetCalories int) (int, int, int) {
	proteinG := goalWeightLbs * proteinPerGoalLb
	remaining := float64(targetCalories) - proteinG*4
	if remaining < 0 {
		remaining = 0
	}
	carbsG := remaining * 0.45 / 4
	fatG := remaining * 0.35 / 9
	return int(math.Round(proteinG)), int(math.Round(carbsG)), int(math.Round(fatG))
}

// DeriveGoalWeight projects a goal weight forward from the chosen deficit and
// timeline. It drives the auto-calculation mode that stays active until the
// user locks an explicit goal weight.
func DeriveGoalWeight(currentWeightLbs float64, dailyDeficit int, monthsTimeline float64) float64 {
	projectedLoss := float64(dailyDeficit) * 7 * monthsTimeline * weeksPerMonth / caloriesPerLb
	derived := currentWeightLbs - projectedLoss
	if derived < models.MinWeightLbs {
		derived = models.MinWeightLbs
	}
	return roundTo(derived, 1)
}

type GoalWeightValue struct {
	Lbs    float64 `json:"lbs"`
	Locked bool    `json:"locked"`
}

// GoalWeightFor applies the derived-vs-locked rule: a locked settings value
// always wins; otherwise the goal weight is re-derived from the current
// weight and saved deficit/timeline on every read.
func GoalWeightFor(settings models.CalculatorSettings, currentWeightLbs float64) GoalWeightValue {
	if settings.GoalWeightState == models.GoalWeightLocked && settings.GoalWeightLbs != nil {
		return GoalWeightValue{Lbs: *settings.GoalWeightLbs, Locked: true}
	}
	return GoalWeightValue{
		Lbs: DeriveGoalWeight(currentWeightLbs, settings.DailyDeficit, settings.MonthsTimeline),
	}
}
