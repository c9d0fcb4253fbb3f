package db

import (
	"fitgenius/internal/models"
	"gorm.io/gorm"
)

// LibraryRepository serves the seeded meal/workout reference tables plus
// user-added rows. UserID 0 marks built-in library content visible to all.
type LibraryRepository struct {
	database *gorm.DB
}

func NewLibraryRepository(database *gorm.DB) *LibraryRepository {
	return &LibraryRepository{database: database}
}

func (repo *LibraryRepository) ListMealsForUser(userID uint) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id IN (0, ?)", userID).
		Order("slot, name").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *LibraryRepository) FindMealForUser(mealID uint, userID uint) (models.Meal, error) {
	var meal models.Meal
	if err := repo.database.
		Where("id = ? AND user_id IN (0, ?)", mealID, userID).
		First(&meal).Error; err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

func (repo *LibraryRepository) FindMealsByIDs(mealIDs []uint, userID uint) (map[uint]models.Meal, error) {
	meals := make([]models.Meal, 0, len(mealIDs))
	if err := repo.database.
		Where("id IN ? AND user_id IN (0, ?)", mealIDs, userID).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Meal, len(meals))
	for _, meal := range meals {
		byID[meal.ID] = meal
	}
	return byID, nil
}

func (repo *LibraryRepository) CreateMeal(meal *models.Meal) error {
	return repo.database.Create(meal).Error
}

func (repo *LibraryRepository) ListWorkoutsForUser(userID uint) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Where("user_id IN (0, ?)", userID).
		Order("category, name").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *LibraryRepository) CreateWorkout(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}
