package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fitgenius/internal/models"
)

// TextGenerator is the LLM collaborator. Any failure is non-fatal: the coach
// always answers, falling back to deterministic templates.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type CoachService struct {
	generator TextGenerator
}

type CoachReply struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

func NewCoachService(generator TextGenerator) *CoachService {
	return &CoachService{generator: generator}
}

func (service *CoachService) MealPlanAdvice(ctx context.Context, user models.User, targets NutritionTargets) CoachReply {
	prompt := fmt.Sprintf(
		"You are a nutrition coach. Build a one-day meal plan for a %d-year-old (%s) whose goal is %s. "+
			"Daily targets: %d kcal, %d g protein, split breakfast/lunch/dinner/snack %d/%d/%d/%d%%. "+
			"Keep meals simple and grocery-store friendly.",
		user.Age, user.Gender, strings.ReplaceAll(user.Goal, "_", " "),
		targets.DailyCalories, targets.DailyProteinG,
		MealDistribution[models.MealSlotBreakfast], MealDistribution[models.MealSlotLunch],
		MealDistribution[models.MealSlotDinner], MealDistribution[models.MealSlotSnack],
	)
	return service.reply(ctx, prompt, fallbackMealPlan(targets))
}

func (service *CoachService) WorkoutAdvice(ctx context.Context, user models.User) CoachReply {
	prompt := fmt.Sprintf(
		"You are a fitness coach. Suggest a one-week workout split for a %d-year-old (%s), activity level %s, goal %s. "+
			"Include rest days and keep sessions under an hour.",
		user.Age, user.Gender, strings.ReplaceAll(user.ActivityLevel, "_", " "),
		strings.ReplaceAll(user.Goal, "_", " "),
	)
	return service.reply(ctx, prompt, fallbackWorkoutPlan(user))
}

func (service *CoachService) Ask(ctx context.Context, user models.User, question string) CoachReply {
	question = strings.TrimSpace(question)
	if question == "" {
		return CoachReply{Text: fallbackGeneral, Fallback: true}
	}

	prompt := fmt.Sprintf(
		"You are a supportive fitness coach. The user (goal: %s) asks: %q. "+
			"Answer in 3-5 sentences, practical and encouraging, no medical claims.",
		strings.ReplaceAll(user.Goal, "_", " "), question,
	)
	return service.reply(ctx, prompt, fallbackGeneral)
}

func (service *CoachService) reply(ctx context.Context, prompt string, fallback string) CoachReply {
	if service.generator != nil {
		text, err := service.generator.GenerateText(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return CoachReply{Text: strings.TrimSpace(text)}
		}
		if err != nil {
			log.Printf("coach text generation failed, using fallback: %v", err)
		}
	}
	return CoachReply{Text: fallback, Fallback: true}
}

const fallbackGeneral = "Consistency beats intensity. Hit your calorie and protein targets today, " +
	"drink your water, and get your planned training in. Small daily wins compound into the result you want."

func fallbackMealPlan(targets NutritionTargets) string {
	return fmt.Sprintf(
		"Here is a simple day built around your %d kcal / %d g protein targets:\n"+
			"- Breakfast (~%d kcal): Greek yogurt with granola and berries.\n"+
			"- Lunch (~%d kcal): grilled chicken salad with olive oil dressing.\n"+
			"- Dinner (~%d kcal): baked salmon, brown rice, and broccoli.\n"+
			"- Snack (~%d kcal): apple with peanut butter.\n"+
			"Drink %d cups of water across the day.",
		targets.DailyCalories, targets.DailyProteinG,
		targets.CaloriesBySlot[models.MealSlotBreakfast],
		targets.CaloriesBySlot[models.MealSlotLunch],
		targets.CaloriesBySlot[models.MealSlotDinner],
		targets.CaloriesBySlot[models.MealSlotSnack],
		targets.DailyWaterCups,
	)
}

func fallbackWorkoutPlan(user models.User) string {
	split := "3 full-body strength sessions (Mon/Wed/Fri) plus 2 easy cardio days (Tue/Sat)"
	if user.Goal == models.GoalGainMuscle {
		split = "an upper/lower split (Mon/Tue/Thu/Fri) plus one optional cardio day (Sat)"
	}
	if user.ActivityLevel == models.ActivitySedentary {
		split = "2 beginner strength circuits (Mon/Thu) and 2 brisk 30-minute walks (Tue/Sat)"
	}
	return fmt.Sprintf(
		"A sustainable week for you: %s. Keep sessions under an hour, leave one or two reps in the tank, "+
			"and take Sunday fully off. Progress the weights only when all planned reps feel solid.", split)
}
