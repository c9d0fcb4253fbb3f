package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	authenticated := app.Group("/api", handler.AuthRequired)

	authenticated.Get("/profile", handler.GetProfile)
	authenticated.Put("/profile", handler.UpdateProfile)
	authenticated.Post("/profile/onboarding", handler.CompleteOnboarding)
	authenticated.Delete("/account", handler.DeleteAccount)

	authenticated.Get("/entries", handler.ListEntries)
	authenticated.Post("/entries", handler.CreateEntry)
	authenticated.Get("/entries/export.csv", handler.ExportEntriesCSV)
	authenticated.Post("/photos", handler.UploadPhoto)
	authenticated.Get("/photos/:id", handler.GetPhoto)

	authenticated.Get("/calculator/targets", handler.GetNutritionTargets)
	authenticated.Get("/calculator/plan", handler.GetWeightLossPlan)
	authenticated.Put("/calculator/settings", handler.SaveCalculatorSettings)
	authenticated.Delete("/calculator/target", handler.ClearCalorieTarget)
	authenticated.Put("/calculator/goal-weight", handler.LockGoalWeight)
	authenticated.Delete("/calculator/goal-weight", handler.UnlockGoalWeight)

	authenticated.Get("/planner/week", handler.GetWeekPlan)
	authenticated.Put("/planner/slot", handler.SetPlannedMeal)
	authenticated.Delete("/planner/slot/:day/:slot", handler.ClearPlannedMeal)
	authenticated.Delete("/planner/week", handler.ClearWeekPlan)

	authenticated.Get("/grocery/list", handler.GetGroceryList)
	authenticated.Get("/grocery/prices", handler.PriceGroceryList)
	authenticated.Post("/grocery/check", handler.CheckOffItem)
	authenticated.Post("/grocery/uncheck", handler.UncheckItem)
	authenticated.Get("/pantry", handler.ListPantry)
	authenticated.Put("/pantry", handler.UpsertPantryItem)
	authenticated.Delete("/pantry/:name", handler.DeletePantryItem)

	authenticated.Post("/coach/meal-plan", handler.CoachMealPlan)
	authenticated.Post("/coach/workout", handler.CoachWorkout)
	authenticated.Post("/coach/ask", handler.CoachAsk)

	authenticated.Get("/library/meals", handler.ListMeals)
	authenticated.Post("/library/meals", handler.CreateMeal)
	authenticated.Get("/library/workouts", handler.ListWorkouts)
	authenticated.Post("/library/workouts", handler.CreateWorkout)
}
