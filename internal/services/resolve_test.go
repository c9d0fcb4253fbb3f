package services

import (
	"testing"
	"time"

	"fitgenius/internal/models"
)

func TestResolveCurrentWeightPriority(t *testing.T) {
	user := models.User{WeightLbs: 210}
	entries := []models.ProgressEntry{
		{Date: time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC), WeightLbs: 204.5},
		{Date: time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC), WeightLbs: 207},
	}

	if got := ResolveCurrentWeight(entries, user); got != 204.5 {
		t.Fatalf("expected latest entry weight 204.5, got %v", got)
	}
	if got := ResolveCurrentWeight(nil, user); got != 210 {
		t.Fatalf("expected profile weight 210, got %v", got)
	}
	if got := ResolveCurrentWeight(nil, models.User{}); got != DefaultWeightLbs {
		t.Fatalf("expected default weight %v, got %v", DefaultWeightLbs, got)
	}
}

func TestResolveGoalWeightPriority(t *testing.T) {
	lockedGoal := 170.0
	profileGoal := 185.0

	settings := models.CalculatorSettings{
		DailyDeficit:    500,
		MonthsTimeline:  3,
		GoalWeightState: models.GoalWeightLocked,
		GoalWeightLbs:   &lockedGoal,
	}
	user := models.User{GoalWeightLbs: &profileGoal}

	if got := ResolveGoalWeight(settings, user, 200); got != 170 {
		t.Fatalf("expected locked goal 170, got %v", got)
	}

	settings.GoalWeightState = models.GoalWeightDerived
	if got := ResolveGoalWeight(settings, user, 200); got != 185 {
		t.Fatalf("expected profile goal 185, got %v", got)
	}

	if got := ResolveGoalWeight(settings, models.User{}, 200); got != 187 {
		t.Fatalf("expected derived goal 187, got %v", got)
	}
}
