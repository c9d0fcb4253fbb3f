package api

import (
	"github.com/gofiber/fiber/v2"

	"fitgenius/internal/services"
)

type profileInput struct {
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	HeightCm      float64  `json:"height_cm"`
	HeightFeet    int      `json:"height_feet"`
	HeightInches  int      `json:"height_inches"`
	WeightLbs     float64  `json:"weight_lbs"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
	GoalWeightLbs *float64 `json:"goal_weight_lbs"`
	StrictProgram bool     `json:"strict_program"`
	Zipcode       string   `json:"zipcode"`
	HouseholdSize int      `json:"household_size"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user := currentUser(c)
	feet, inches := services.CmToFeetInches(user.HeightCm)

	return c.JSON(fiber.Map{
		"email":               user.Email,
		"age":                 user.Age,
		"gender":              user.Gender,
		"height_cm":           user.HeightCm,
		"height_feet":         feet,
		"height_inches":       inches,
		"weight_lbs":          user.WeightLbs,
		"activity_level":      user.ActivityLevel,
		"goal":                user.Goal,
		"goal_weight_lbs":     user.GoalWeightLbs,
		"strict_program":      user.StrictProgram,
		"zipcode":             user.Zipcode,
		"household_size":      user.HouseholdSize,
		"onboarding_complete": user.OnboardingComplete,
	})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	return handler.saveProfile(c, false)
}

// CompleteOnboarding is the same validated profile write, but it also flips
// the onboarding flag that gates the rest of the API.
func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	return handler.saveProfile(c, true)
}

func (handler *Handler) saveProfile(c *fiber.Ctx, completeOnboarding bool) error {
	user := currentUser(c)

	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	heightCm := input.HeightCm
	if heightCm == 0 && (input.HeightFeet > 0 || input.HeightInches > 0) {
		heightCm = services.FeetInchesToCm(input.HeightFeet, input.HeightInches)
	}

	profile := services.SanitizeProfile(services.ProfileInput{
		Age:           input.Age,
		Gender:        input.Gender,
		HeightCm:      heightCm,
		WeightLbs:     input.WeightLbs,
		ActivityLevel: input.ActivityLevel,
		Goal:          input.Goal,
		GoalWeightLbs: input.GoalWeightLbs,
		Zipcode:       input.Zipcode,
		HouseholdSize: input.HouseholdSize,
	})
	if err := services.ValidateProfile(profile); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{
		"age":             profile.Age,
		"gender":          profile.Gender,
		"height_cm":       profile.HeightCm,
		"weight_lbs":      profile.WeightLbs,
		"activity_level":  profile.ActivityLevel,
		"goal":            profile.Goal,
		"goal_weight_lbs": profile.GoalWeightLbs,
		"strict_program":  input.StrictProgram,
		"zipcode":         profile.Zipcode,
		"household_size":  profile.HouseholdSize,
	}

	var err error
	if completeOnboarding {
		err = handler.repositories.Users.CompleteOnboarding(user.ID, updates)
	} else {
		err = handler.repositories.Users.UpdateProfile(user.ID, updates)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	return c.JSON(fiber.Map{"ok": true})
}
