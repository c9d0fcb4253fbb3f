package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"fitgenius/internal/models"
)

type mealInput struct {
	Name        string   `json:"name"`
	Slot        string   `json:"slot"`
	Calories    int      `json:"calories"`
	ProteinG    float64  `json:"protein_g"`
	CarbsG      float64  `json:"carbs_g"`
	FatG        float64  `json:"fat_g"`
	Ingredients []string `json:"ingredients"`
}

type workoutInput struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
	Difficulty      string `json:"difficulty"`
	CaloriesBurned  int    `json:"calories_burned"`
}

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	user := currentUser(c)

	meals, err := handler.repositories.Library.ListMealsForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}
	return c.JSON(fiber.Map{"meals": meals})
}

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	user := currentUser(c)

	workouts, err := handler.repositories.Library.ListWorkoutsForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(fiber.Map{"workouts": workouts})
}

// CreateMeal adds a user-owned meal next to the built-in library.
func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	user := currentUser(c)

	var input mealInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "meal name is required")
	}
	slot := strings.ToLower(strings.TrimSpace(input.Slot))
	if !isMealSlot(slot) {
		return apiError(c, fiber.StatusBadRequest, "unknown meal slot")
	}
	if input.Calories < 0 || input.ProteinG < 0 || input.CarbsG < 0 || input.FatG < 0 {
		return apiError(c, fiber.StatusBadRequest, "macros must not be negative")
	}

	ingredients := make([]string, 0, len(input.Ingredients))
	for _, ingredient := range input.Ingredients {
		if cleaned := strings.ToLower(strings.TrimSpace(ingredient)); cleaned != "" {
			ingredients = append(ingredients, cleaned)
		}
	}
	if len(ingredients) == 0 {
		return apiError(c, fiber.StatusBadRequest, "at least one ingredient is required")
	}

	meal := models.Meal{
		UserID:      user.ID,
		Name:        name,
		Slot:        slot,
		Calories:    input.Calories,
		ProteinG:    input.ProteinG,
		CarbsG:      input.CarbsG,
		FatG:        input.FatG,
		Ingredients: ingredients,
		CreatedAt:   time.Now(),
	}
	if err := handler.repositories.Library.CreateMeal(&meal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save meal")
	}

	return c.Status(fiber.StatusCreated).JSON(meal)
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	user := currentUser(c)

	var input workoutInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "workout name is required")
	}
	if input.DurationMinutes < 1 || input.DurationMinutes > 240 {
		return apiError(c, fiber.StatusBadRequest, "duration must be between 1 and 240 minutes")
	}

	difficulty := strings.ToLower(strings.TrimSpace(input.Difficulty))
	switch difficulty {
	case "":
		difficulty = models.DifficultyBeginner
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
	default:
		return apiError(c, fiber.StatusBadRequest, "unknown difficulty")
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = "strength"
	}

	workout := models.Workout{
		UserID:          user.ID,
		Name:            name,
		Category:        category,
		DurationMinutes: input.DurationMinutes,
		Difficulty:      difficulty,
		CaloriesBurned:  input.CaloriesBurned,
		CreatedAt:       time.Now(),
	}
	if err := handler.repositories.Library.CreateWorkout(&workout); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save workout")
	}

	return c.Status(fiber.StatusCreated).JSON(workout)
}
