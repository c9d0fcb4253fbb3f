package services

import "fitgenius/internal/models"

const DefaultWeightLbs = 150.0

// ResolveCurrentWeight is the one canonical priority order for "what does the
// user weigh right now": latest progress entry by date, then the profile
// field, then the default. Entries are expected newest-first as returned by
// EntryRepository.ListForUser.
func ResolveCurrentWeight(entries []models.ProgressEntry, user models.User) float64 {
	if len(entries) > 0 && entries[0].WeightLbs > 0 {
		return entries[0].WeightLbs
	}
	if user.WeightLbs > 0 {
		return user.WeightLbs
	}
	return DefaultWeightLbs
}

// ResolveGoalWeight prefers a locked calculator value, then the explicit
// profile field, then derives forward from the saved deficit/timeline.
func ResolveGoalWeight(settings models.CalculatorSettings, user models.User, currentWeightLbs float64) float64 {
	if settings.GoalWeightState == models.GoalWeightLocked && settings.GoalWeightLbs != nil {
		return *settings.GoalWeightLbs
	}
	if user.GoalWeightLbs != nil && *user.GoalWeightLbs > 0 {
		return *user.GoalWeightLbs
	}
	return DeriveGoalWeight(currentWeightLbs, settings.DailyDeficit, settings.MonthsTimeline)
}
