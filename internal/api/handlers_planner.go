package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fitgenius/internal/models"
	"fitgenius/internal/services"
)

type plannedMealInput struct {
	Day      string `json:"day"`
	Slot     string `json:"slot"`
	MealID   uint   `json:"meal_id"`
	Servings int    `json:"servings"`
}

func (handler *Handler) GetWeekPlan(c *fiber.Ctx) error {
	user := currentUser(c)

	planned, mealsByID, err := handler.loadWeekPlan(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plan")
	}

	settings, _, err := handler.repositories.Settings.FindForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	entries, err := handler.repositories.Entries.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}

	resolved := user
	resolved.WeightLbs = services.ResolveCurrentWeight(entries, user)
	targets := services.ComputeNutrition(resolved, settings)

	return c.JSON(services.BuildWeekSummary(planned, mealsByID, targets))
}

func (handler *Handler) SetPlannedMeal(c *fiber.Ctx) error {
	user := currentUser(c)

	var input plannedMealInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	day := strings.ToLower(strings.TrimSpace(input.Day))
	slot := strings.ToLower(strings.TrimSpace(input.Slot))
	if !isWeekDay(day) {
		return apiError(c, fiber.StatusBadRequest, "unknown day of week")
	}
	if !isMealSlot(slot) {
		return apiError(c, fiber.StatusBadRequest, "unknown meal slot")
	}

	servings := input.Servings
	if servings < 1 {
		servings = 1
	}
	if servings > 10 {
		return apiError(c, fiber.StatusBadRequest, "servings must be between 1 and 10")
	}

	// The meal must exist and be visible to this user (built-in or their own).
	if _, err := handler.repositories.Library.FindMealForUser(input.MealID, user.ID); err != nil {
		return apiError(c, fiber.StatusNotFound, "meal not found")
	}

	if err := handler.repositories.Plans.SetSlot(user.ID, day, slot, input.MealID, servings); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save planned meal")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ClearPlannedMeal(c *fiber.Ctx) error {
	user := currentUser(c)

	day := strings.ToLower(strings.TrimSpace(c.Params("day")))
	slot := strings.ToLower(strings.TrimSpace(c.Params("slot")))
	if !isWeekDay(day) || !isMealSlot(slot) {
		return apiError(c, fiber.StatusBadRequest, "unknown day or slot")
	}

	if err := handler.repositories.Plans.ClearSlot(user.ID, day, slot); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear slot")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ClearWeekPlan(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.repositories.Plans.ClearWeek(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear week")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) loadWeekPlan(userID uint) ([]models.PlannedMeal, map[uint]models.Meal, error) {
	planned, err := handler.repositories.Plans.ListForUser(userID)
	if err != nil {
		return nil, nil, err
	}

	mealIDs := make([]uint, 0, len(planned))
	for _, plannedMeal := range planned {
		mealIDs = append(mealIDs, plannedMeal.MealID)
	}
	if len(mealIDs) == 0 {
		return planned, map[uint]models.Meal{}, nil
	}

	mealsByID, err := handler.repositories.Library.FindMealsByIDs(mealIDs, userID)
	if err != nil {
		return nil, nil, err
	}
	return planned, mealsByID, nil
}

func isWeekDay(day string) bool {
	for _, known := range models.WeekDays {
		if day == known {
			return true
		}
	}
	return false
}

func isMealSlot(slot string) bool {
	switch slot {
	case models.MealSlotBreakfast, models.MealSlotLunch, models.MealSlotDinner, models.MealSlotSnack:
		return true
	}
	return false
}
