package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"fitgenius/internal/models"
	"fitgenius/internal/services"
)

type calculatorSettingsInput struct {
	DailyCalorieTarget *int    `json:"daily_calorie_target"`
	DailyDeficit       int     `json:"daily_deficit"`
	MonthsTimeline     float64 `json:"months_timeline"`
}

type goalWeightInput struct {
	GoalWeightLbs float64 `json:"goal_weight_lbs"`
}

// GetNutritionTargets serves the daily targets with the current weight
// resolved through the entry history, so logging a weigh-in immediately moves
// the numbers.
func (handler *Handler) GetNutritionTargets(c *fiber.Ctx) error {
	user := currentUser(c)

	entries, err := handler.repositories.Entries.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	settings, _, err := handler.repositories.Settings.FindForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	resolved := user
	resolved.WeightLbs = services.ResolveCurrentWeight(entries, user)
	goalWeight := services.ResolveGoalWeight(settings, user, resolved.WeightLbs)
	resolved.GoalWeightLbs = &goalWeight

	targets := services.ComputeNutrition(resolved, settings)
	return c.JSON(fiber.Map{
		"targets":            targets,
		"current_weight_lbs": resolved.WeightLbs,
		"goal_weight":        services.GoalWeightFor(settings, resolved.WeightLbs),
	})
}

// GetWeightLossPlan computes the schedule from the resolved weights and saved
// deficit/timeline. A goal at or above the current weight is a 422, not a 500.
func (handler *Handler) GetWeightLossPlan(c *fiber.Ctx) error {
	user := currentUser(c)

	entries, err := handler.repositories.Entries.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	settings, _, err := handler.repositories.Settings.FindForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	currentWeight := services.ResolveCurrentWeight(entries, user)
	goalWeight := services.ResolveGoalWeight(settings, user, currentWeight)

	heightInches := user.HeightCm / 2.54
	plan, err := services.ComputePlan(services.PlanInput{
		CurrentWeightLbs: currentWeight,
		GoalWeightLbs:    goalWeight,
		Age:              user.Age,
		HeightInches:     heightInches,
		Gender:           user.Gender,
		ActivityLevel:    user.ActivityLevel,
		DailyDeficit:     settings.DailyDeficit,
		MonthsTimeline:   settings.MonthsTimeline,
		Today:            time.Now(),
	})
	if err != nil {
		if errors.Is(err, services.ErrGoalNotBelowCurrent) {
			return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to compute plan")
	}

	return c.JSON(plan)
}

func (handler *Handler) SaveCalculatorSettings(c *fiber.Ctx) error {
	user := currentUser(c)

	var input calculatorSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if input.DailyDeficit < models.MinDailyDeficit || input.DailyDeficit > models.MaxDailyDeficit {
		return apiError(c, fiber.StatusBadRequest, "daily deficit must be between 200 and 1000")
	}
	if input.MonthsTimeline <= 0 || input.MonthsTimeline > 24 {
		return apiError(c, fiber.StatusBadRequest, "months timeline must be between 1 and 24")
	}
	if input.DailyCalorieTarget != nil && *input.DailyCalorieTarget < services.MinCaloriesFemale {
		return apiError(c, fiber.StatusBadRequest, "calorie target is below the safety floor")
	}

	settings, _, err := handler.repositories.Settings.FindForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	settings.UserID = user.ID
	settings.DailyCalorieTarget = input.DailyCalorieTarget
	settings.DailyDeficit = input.DailyDeficit
	settings.MonthsTimeline = input.MonthsTimeline

	if err := handler.repositories.Settings.Upsert(&settings); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}

	return c.JSON(settings)
}

func (handler *Handler) ClearCalorieTarget(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.repositories.Settings.ClearCalorieTarget(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear calorie target")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// LockGoalWeight pins an explicit goal weight; auto-derivation stops until
// UnlockGoalWeight switches the state back.
func (handler *Handler) LockGoalWeight(c *fiber.Ctx) error {
	user := currentUser(c)

	var input goalWeightInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.GoalWeightLbs < models.MinWeightLbs || input.GoalWeightLbs > models.MaxWeightLbs {
		return apiError(c, fiber.StatusBadRequest, "goal weight is out of range")
	}

	settings, found, err := handler.repositories.Settings.FindForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	if !found {
		settings.UserID = user.ID
		if err := handler.repositories.Settings.Upsert(&settings); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
		}
	}

	goal := input.GoalWeightLbs
	if err := handler.repositories.Settings.SetGoalWeightState(user.ID, models.GoalWeightLocked, &goal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to lock goal weight")
	}

	return c.JSON(services.GoalWeightValue{Lbs: goal, Locked: true})
}

func (handler *Handler) UnlockGoalWeight(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.repositories.Settings.SetGoalWeightState(user.ID, models.GoalWeightDerived, nil); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unlock goal weight")
	}

	entries, err := handler.repositories.Entries.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	settings, _, err := handler.repositories.Settings.FindForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	currentWeight := services.ResolveCurrentWeight(entries, user)
	return c.JSON(services.GoalWeightFor(settings, currentWeight))
}
