package db

import (
	"errors"
	"time"

	"fitgenius/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) ListForUser(userID uint) ([]models.PlannedMeal, error) {
	planned := make([]models.PlannedMeal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("day, slot").
		Find(&planned).Error; err != nil {
		return nil, err
	}
	return planned, nil
}

func (repo *PlanRepository) SetSlot(userID uint, day string, slot string, mealID uint, servings int) error {
	var existing models.PlannedMeal
	err := repo.database.
		Where("user_id = ? AND day = ? AND slot = ?", userID, day, slot).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.database.Create(&models.PlannedMeal{
			UserID:    userID,
			Day:       day,
			Slot:      slot,
			MealID:    mealID,
			Servings:  servings,
			CreatedAt: time.Now(),
		}).Error
	}
	if err != nil {
		return err
	}

	return repo.database.Model(&existing).Updates(map[string]any{
		"meal_id":  mealID,
		"servings": servings,
	}).Error
}

func (repo *PlanRepository) ClearSlot(userID uint, day string, slot string) error {
	return repo.database.
		Where("user_id = ? AND day = ? AND slot = ?", userID, day, slot).
		Delete(&models.PlannedMeal{}).Error
}

func (repo *PlanRepository) ClearWeek(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.PlannedMeal{}).Error
}
