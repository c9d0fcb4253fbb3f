package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fitgenius/internal/services"
)

type coachQuestionInput struct {
	Question string `json:"question"`
}

func (handler *Handler) CoachMealPlan(c *fiber.Ctx) error {
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
	targets := services.ComputeNutrition(resolved, settings)

	return c.JSON(handler.coach.MealPlanAdvice(c.Context(), resolved, targets))
}

func (handler *Handler) CoachWorkout(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.JSON(handler.coach.WorkoutAdvice(c.Context(), user))
}

func (handler *Handler) CoachAsk(c *fiber.Ctx) error {
	user := currentUser(c)

	var input coachQuestionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Question) == "" {
		return apiError(c, fiber.StatusBadRequest, "question is required")
	}

	return c.JSON(handler.coach.Ask(c.Context(), user, input.Question))
}
