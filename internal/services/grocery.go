package services

import (
	"sort"
	"strings"

	"fitgenius/internal/models"
)

type GroceryItem struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit"`
	NeededAmount  float64 `json:"needed_amount"`
	TotalRequired float64 `json:"total_required"`
	OnHandUsed    float64 `json:"on_hand_used"`
}

type ingredientPortion struct {
	Amount float64
	Unit   string
}

// ingredientPortions holds per-serving base amounts. Ingredients missing from
// the table default to 1 "each".
var ingredientPortions = map[string]ingredientPortion{
	"chicken breast":      {Amount: 0.5, Unit: "lbs"},
	"ground beef":         {Amount: 0.5, Unit: "lbs"},
	"turkey breast":       {Amount: 0.33, Unit: "lbs"},
	"salmon":              {Amount: 0.5, Unit: "lbs"},
	"shrimp":              {Amount: 0.4, Unit: "lbs"},
	"tuna":                {Amount: 1, Unit: "can"},
	"tofu":                {Amount: 0.5, Unit: "block"},
	"eggs":                {Amount: 3, Unit: "each"},
	"greek yogurt":        {Amount: 1, Unit: "cup"},
	"cottage cheese":      {Amount: 0.75, Unit: "cup"},
	"milk":                {Amount: 1, Unit: "cup"},
	"cheddar cheese":      {Amount: 0.25, Unit: "cup"},
	"feta cheese":         {Amount: 0.25, Unit: "cup"},
	"coconut milk":        {Amount: 0.5, Unit: "can"},
	"brown rice":          {Amount: 0.5, Unit: "cup"},
	"quinoa":              {Amount: 0.5, Unit: "cup"},
	"oats":                {Amount: 0.5, Unit: "cup"},
	"granola":             {Amount: 0.25, Unit: "cup"},
	"whole wheat tortilla": {Amount: 1, Unit: "each"},
	"corn tortillas":      {Amount: 3, Unit: "each"},
	"lentils":             {Amount: 0.5, Unit: "cup"},
	"black beans":         {Amount: 0.5, Unit: "can"},
	"chickpeas":           {Amount: 0.5, Unit: "can"},
	"edamame":             {Amount: 0.5, Unit: "cup"},
	"spinach":             {Amount: 2, Unit: "cup"},
	"romaine lettuce":     {Amount: 2, Unit: "cup"},
	"broccoli":            {Amount: 1, Unit: "cup"},
	"cauliflower":         {Amount: 1, Unit: "cup"},
	"bell pepper":         {Amount: 1, Unit: "each"},
	"cherry tomatoes":     {Amount: 1, Unit: "cup"},
	"diced tomatoes":      {Amount: 1, Unit: "can"},
	"cucumber":            {Amount: 0.5, Unit: "each"},
	"carrots":             {Amount: 1, Unit: "each"},
	"celery":              {Amount: 2, Unit: "stalk"},
	"onion":               {Amount: 0.5, Unit: "each"},
	"cabbage":             {Amount: 1, Unit: "cup"},
	"garlic":              {Amount: 2, Unit: "clove"},
	"ginger":              {Amount: 1, Unit: "tbsp"},
	"banana":              {Amount: 1, Unit: "each"},
	"apple":               {Amount: 1, Unit: "each"},
	"blueberries":         {Amount: 0.5, Unit: "cup"},
	"strawberries":        {Amount: 0.75, Unit: "cup"},
	"avocado":             {Amount: 0.5, Unit: "each"},
	"lemon":               {Amount: 0.5, Unit: "each"},
	"lime":                {Amount: 0.5, Unit: "each"},
	"raisins":             {Amount: 0.25, Unit: "cup"},
	"almonds":             {Amount: 0.25, Unit: "cup"},
	"walnuts":             {Amount: 0.25, Unit: "cup"},
	"chia seeds":          {Amount: 2, Unit: "tbsp"},
	"peanut butter":       {Amount: 2, Unit: "tbsp"},
	"protein powder":      {Amount: 1, Unit: "scoop"},
	"olive oil":           {Amount: 1, Unit: "tbsp"},
	"sesame oil":          {Amount: 1, Unit: "tbsp"},
	"soy sauce":           {Amount: 2, Unit: "tbsp"},
	"honey":               {Amount: 1, Unit: "tbsp"},
	"dark chocolate":      {Amount: 1, Unit: "oz"},
	"cumin":               {Amount: 1, Unit: "tsp"},
	"chili powder":        {Amount: 1, Unit: "tbsp"},
	"curry powder":        {Amount: 1, Unit: "tbsp"},
}

const CategoryCondiments = "condiments"

// categoryKeywords is checked in order; the first category with a matching
// keyword wins, and anything unmatched lands in condiments.
var categoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{Category: "protein", Keywords: []string{"chicken", "beef", "turkey", "salmon", "shrimp", "tuna", "tofu", "egg", "protein powder"}},
	{Category: "dairy", Keywords: []string{"yogurt", "milk", "cheese", "butter"}},
	{Category: "vegetables", Keywords: []string{"spinach", "lettuce", "broccoli", "cauliflower", "pepper", "tomato", "cucumber", "carrot", "celery", "onion", "cabbage", "garlic", "ginger"}},
	{Category: "fruits", Keywords: []string{"banana", "apple", "berries", "berry", "avocado", "lemon", "lime", "raisin"}},
	{Category: "grains", Keywords: []string{"rice", "quinoa", "oat", "granola", "tortilla", "bread", "lentil", "bean", "chickpea", "edamame"}},
	{Category: "nuts", Keywords: []string{"almond", "walnut", "peanut", "cashew", "seed"}},
	{Category: "oils", Keywords: []string{"oil"}},
	{Category: "spices", Keywords: []string{"cumin", "chili powder", "curry", "cinnamon", "paprika", "salt"}},
}

func CategorizeIngredient(name string) string {
	lowered := strings.ToLower(name)
	// Peanut butter reads as dairy via "butter"; nuts win on the full phrase.
	if strings.Contains(lowered, "peanut butter") {
		return "nuts"
	}
	for _, group := range categoryKeywords {
		for _, keyword := range group.Keywords {
			if strings.Contains(lowered, keyword) {
				return group.Category
			}
		}
	}
	return CategoryCondiments
}

func IngredientPortion(name string) (float64, string) {
	if portion, found := ingredientPortions[strings.ToLower(strings.TrimSpace(name))]; found {
		return portion.Amount, portion.Unit
	}
	return 1, "each"
}

// BuildGroceryList expands a week of planned meals into a consolidated,
// categorized shopping list. Per occurrence the per-serving base amount is
// scaled by servings and diner count, the on-hand pantry amount is subtracted
// floored at zero, then duplicates are summed across the week. Items fully
// covered by the pantry are excluded. Output order is deterministic
// (category, then name) so identical inputs produce identical lists.
func BuildGroceryList(planned []models.PlannedMeal, mealsByID map[uint]models.Meal, peopleCount int, pantry map[string]float64) []GroceryItem {
	if peopleCount < 1 {
		peopleCount = 1
	}

	aggregated := make(map[string]*GroceryItem)
	for _, plannedMeal := range planned {
		meal, found := mealsByID[plannedMeal.MealID]
		if !found {
			continue
		}

		servings := plannedMeal.Servings
		if servings < 1 {
			servings = 1
		}

		for _, ingredient := range meal.Ingredients {
			name := strings.ToLower(strings.TrimSpace(ingredient))
			if name == "" {
				continue
			}

			baseAmount, unit := IngredientPortion(name)
			required := baseAmount * float64(servings) * float64(peopleCount)
			onHand := pantry[name]
			needed := required - onHand
			used := onHand
			if needed < 0 {
				needed = 0
				used = required
			}

			item, exists := aggregated[name]
			if !exists {
				item = &GroceryItem{
					Name:     name,
					Category: CategorizeIngredient(name),
					Unit:     unit,
				}
				aggregated[name] = item
			}
			item.NeededAmount += needed
			item.TotalRequired += required
			item.OnHandUsed += used
		}
	}

	list := make([]GroceryItem, 0, len(aggregated))
	for _, item := range aggregated {
		if item.NeededAmount <= 0 {
			continue
		}
		item.NeededAmount = roundTo(item.NeededAmount, 2)
		item.TotalRequired = roundTo(item.TotalRequired, 2)
		item.OnHandUsed = roundTo(item.OnHandUsed, 2)
		list = append(list, *item)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Category == list[j].Category {
			return list[i].Name < list[j].Name
		}
		return list[i].Category < list[j].Category
	})
	return list
}
