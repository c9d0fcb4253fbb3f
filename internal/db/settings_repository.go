package db

import (
	"errors"
	"time"

	"fitgenius/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

// FindForUser resolves saved calculator overrides; absence is not an error,
// callers get zero-value settings with documented defaults instead.
func (repo *SettingsRepository) FindForUser(userID uint) (models.CalculatorSettings, bool, error) {
	var settings models.CalculatorSettings
	err := repo.database.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CalculatorSettings{
			UserID:          userID,
			DailyDeficit:    500,
			MonthsTimeline:  3,
			GoalWeightState: models.GoalWeightDerived,
		}, false, nil
	}
	if err != nil {
		return models.CalculatorSettings{}, false, err
	}
	return settings, true, nil
}

func (repo *SettingsRepository) Upsert(settings *models.CalculatorSettings) error {
	var existing models.CalculatorSettings
	err := repo.database.Where("user_id = ?", settings.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings.CreatedAt = time.Now()
		return repo.database.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	return repo.database.Save(settings).Error
}

func (repo *SettingsRepository) ClearCalorieTarget(userID uint) error {
	return repo.database.Model(&models.CalculatorSettings{}).
		Where("user_id = ?", userID).
		Update("daily_calorie_target", nil).Error
}

func (repo *SettingsRepository) SetGoalWeightState(userID uint, state string, goalWeightLbs *float64) error {
	return repo.database.Model(&models.CalculatorSettings{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"goal_weight_state": state,
			"goal_weight_lbs":   goalWeightLbs,
		}).Error
}
