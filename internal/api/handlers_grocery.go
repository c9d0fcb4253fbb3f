package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fitgenius/internal/services"
)

type groceryCheckInput struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type pantryItemInput struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// GetGroceryList consolidates the planned week into the shopping list, scaled
// by household size and offset by the pantry.
func (handler *Handler) GetGroceryList(c *fiber.Ctx) error {
	user := currentUser(c)

	list, err := handler.buildGroceryList(c)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build grocery list")
	}

	return c.JSON(fiber.Map{
		"items":          list,
		"household_size": user.HouseholdSize,
	})
}

// PriceGroceryList prices the current list against every simulated retailer.
// The zipcode comes from the query or falls back to the profile.
func (handler *Handler) PriceGroceryList(c *fiber.Ctx) error {
	user := currentUser(c)

	list, err := handler.buildGroceryList(c)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build grocery list")
	}

	zipcode := strings.TrimSpace(c.Query("zipcode"))
	if zipcode == "" {
		zipcode = user.Zipcode
	}

	quotes := services.PriceList(list, zipcode, handler.priceSource)
	return c.JSON(fiber.Map{
		"zipcode": zipcode,
		"quotes":  quotes,
	})
}

// CheckOffItem records a purchase: the full amount moves into the pantry so
// the next list build excludes it.
func (handler *Handler) CheckOffItem(c *fiber.Ctx) error {
	return handler.adjustPantryFromCheck(c, 1)
}

// UncheckItem reverses a check-off by subtracting the same amount; the pantry
// floor at zero makes a double-uncheck harmless.
func (handler *Handler) UncheckItem(c *fiber.Ctx) error {
	return handler.adjustPantryFromCheck(c, -1)
}

func (handler *Handler) adjustPantryFromCheck(c *fiber.Ctx, direction float64) error {
	user := currentUser(c)

	var input groceryCheckInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "item name is required")
	}
	if input.Amount <= 0 {
		return apiError(c, fiber.StatusBadRequest, "amount must be positive")
	}

	unit := input.Unit
	if unit == "" {
		_, unit = services.IngredientPortion(input.Name)
	}

	if err := handler.repositories.Pantry.Adjust(user.ID, input.Name, direction*input.Amount, unit); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update pantry")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListPantry(c *fiber.Ctx) error {
	user := currentUser(c)

	items, err := handler.repositories.Pantry.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load pantry")
	}
	return c.JSON(fiber.Map{"items": items})
}

// UpsertPantryItem sets an item's on-hand amount to an absolute value.
func (handler *Handler) UpsertPantryItem(c *fiber.Ctx) error {
	user := currentUser(c)

	var input pantryItemInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := strings.ToLower(strings.TrimSpace(input.Name))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "item name is required")
	}
	if input.Amount < 0 {
		return apiError(c, fiber.StatusBadRequest, "amount must not be negative")
	}

	unit := input.Unit
	if unit == "" {
		_, unit = services.IngredientPortion(name)
	}

	amounts, err := handler.repositories.Pantry.AmountsByName(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load pantry")
	}
	delta := input.Amount - amounts[name]
	if err := handler.repositories.Pantry.Adjust(user.ID, name, delta, unit); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save pantry item")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeletePantryItem(c *fiber.Ctx) error {
	user := currentUser(c)

	name := strings.TrimSpace(c.Params("name"))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "item name is required")
	}

	if err := handler.repositories.Pantry.Remove(user.ID, name); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete pantry item")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) buildGroceryList(c *fiber.Ctx) ([]services.GroceryItem, error) {
	user := currentUser(c)

	planned, mealsByID, err := handler.loadWeekPlan(user.ID)
	if err != nil {
		return nil, err
	}
	pantry, err := handler.repositories.Pantry.AmountsByName(user.ID)
	if err != nil {
		return nil, err
	}

	return services.BuildGroceryList(planned, mealsByID, user.HouseholdSize, pantry), nil
}
